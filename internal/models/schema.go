package models

// Schemas describes the stored collections in a JSON-schema-like form.
// Keys are collection names.
func Schemas() map[string]any {
	return map[string]any{
		"user": objectSchema("User", "Users collection schema", []string{"name", "email", "password_salt", "password_hash"}, map[string]any{
			"name":          stringProp("Name", "Full name"),
			"email":         stringProp("Email", "Email address"),
			"password_salt": stringProp("Password Salt", "Salt used for hashing"),
			"password_hash": stringProp("Password Hash", "Password hash"),
		}, nil),
		"session": objectSchema("Session", "User sessions (simple token-based sessions)", []string{"user_id", "token"}, map[string]any{
			"user_id":    stringProp("User Id", "User id"),
			"token":      stringProp("Token", "Session token"),
			"user_agent": nullable(stringProp("User Agent", "Client user agent")),
			"expires_at": nullable(stringProp("Expires At", "ISO timestamp of expiration")),
		}, nil),
		"syllabus": objectSchema("Syllabus", "Syllabuses collection schema", []string{"owner_id", "title"}, map[string]any{
			"owner_id":       stringProp("Owner Id", "Owner user id"),
			"title":          stringProp("Title", ""),
			"course_code":    nullable(stringProp("Course Code", "")),
			"description":    nullable(stringProp("Description", "")),
			"objectives":     arrayProp("Objectives", map[string]any{"type": "string"}),
			"weeks":          arrayProp("Weeks", map[string]any{"$ref": "#/$defs/WeekPlan"}),
			"level":          nullable(stringProp("Level", "")),
			"subject":        nullable(stringProp("Subject", "")),
			"duration_weeks": nullable(map[string]any{"title": "Duration Weeks", "type": "integer"}),
		}, map[string]any{
			"WeekPlan": objectSchema("WeekPlan", "", []string{"week"}, map[string]any{
				"week":        map[string]any{"title": "Week", "type": "integer"},
				"topics":      arrayProp("Topics", map[string]any{"type": "string"}),
				"readings":    arrayProp("Readings", map[string]any{"type": "string"}),
				"assignments": arrayProp("Assignments", map[string]any{"type": "string"}),
			}, nil),
		}),
	}
}

func objectSchema(title, description string, required []string, properties, defs map[string]any) map[string]any {
	s := map[string]any{
		"title":      title,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
	if description != "" {
		s["description"] = description
	}
	if defs != nil {
		s["$defs"] = defs
	}
	return s
}

func stringProp(title, description string) map[string]any {
	p := map[string]any{"title": title, "type": "string"}
	if description != "" {
		p["description"] = description
	}
	return p
}

func arrayProp(title string, items map[string]any) map[string]any {
	return map[string]any{"title": title, "type": "array", "items": items, "default": []any{}}
}

// nullable turns {"type": T} into {"anyOf": [{"type": T}, {"type": "null"}]} with a null default.
func nullable(p map[string]any) map[string]any {
	out := map[string]any{"default": nil}
	for k, v := range p {
		if k == "type" {
			out["anyOf"] = []any{map[string]any{"type": v}, map[string]any{"type": "null"}}
			continue
		}
		out[k] = v
	}
	return out
}
