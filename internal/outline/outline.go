// Package outline builds course outlines without calling a language model.
//
// The result is a pure function of the input: the same title, subject and
// level always give the same number of weeks and the same topic strings.
package outline

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const preamble = "You are an expert course designer. Given the course title, subject, level, " +
	"goals, and any constraints, produce a practical syllabus outline with 8-12 " +
	"weekly topics. Keep topics concise and actionable."

const (
	MinWeeks = 8
	MaxWeeks = 12
)

// Input describes the course to outline. Nil and empty optional fields are
// treated alike.
type Input struct {
	CourseTitle string
	Subject     *string
	Level       *string
	Goals       []string
	Constraints *string
}

// Result is the composed prompt and one topic per week.
type Result struct {
	Prompt  string
	Outline []string
}

// Generate composes the prompt and the weekly outline for in.
func Generate(in Input) Result {
	goals := "N/A"
	if len(in.Goals) > 0 {
		goals = strings.Join(in.Goals, ", ")
	}

	fields := []string{
		"Course Title: " + in.CourseTitle,
		"Subject: " + valueOr(in.Subject, "General"),
		"Level: " + valueOr(in.Level, "Mixed"),
		"Goals: " + goals,
		"Constraints: " + valueOr(in.Constraints, "None"),
	}

	seed := strings.TrimSpace(in.CourseTitle + valueOr(in.Subject, "") + valueOr(in.Level, ""))
	count := WeekCount(seed)

	topics := make([]string, count)
	for i := range topics {
		topics[i] = fmt.Sprintf("Week %d: Topic derived from '%s' - Part %d", i+1, in.CourseTitle, i+1)
	}

	return Result{
		Prompt:  preamble + "\n\n" + strings.Join(fields, "\n"),
		Outline: topics,
	}
}

// WeekCount maps a seed to a number of weeks in [MinWeeks, MaxWeeks].
// Length is counted in characters, not bytes.
func WeekCount(seed string) int {
	n := 4 + utf8.RuneCountInString(seed)%9
	return max(MinWeeks, min(MaxWeeks, n))
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
