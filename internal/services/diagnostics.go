package services

//go:generate mockgen -source=diagnostics.go -destination=mock_diagnostics.go -package=services

import (
	"context"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

const (
	maxCollections = 10
	maxErrorRunes  = 50
)

// StoreInspector reports on document store connectivity.
type StoreInspector interface {
	Name() string
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// DiagnosticsService describes the health of the backend and its store.
type DiagnosticsService struct {
	store        StoreInspector // nil when no store was initialized
	databaseURL  string
	databaseName string
}

// NewDiagnosticsService creates a new DiagnosticsService. store may be nil.
func NewDiagnosticsService(store StoreInspector, databaseURL, databaseName string) *DiagnosticsService {
	return &DiagnosticsService{
		store:        store,
		databaseURL:  databaseURL,
		databaseName: databaseName,
	}
}

// Diagnose never fails: problems are reported inside the result.
func (svc *DiagnosticsService) Diagnose(ctx context.Context) models.Diagnostics {
	d := models.Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		DatabaseURL:      setOrNot(svc.databaseURL),
		DatabaseName:     setOrNot(svc.databaseName),
	}

	if svc.store == nil {
		d.Database = "⚠️  Available but not initialized"
		return d
	}

	if err := svc.store.Ping(ctx); err != nil {
		logger.Log.Warnw("store ping failed", "store", svc.store.Name(), "error", err)
		d.Database = "❌ Error: " + truncate(err.Error(), maxErrorRunes)
		return d
	}
	d.Database = "✅ Available"
	d.ConnectionStatus = "Connected"

	collections, err := svc.store.Collections(ctx)
	if err != nil {
		logger.Log.Warnw("failed to list collections", "store", svc.store.Name(), "error", err)
		d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorRunes)
		return d
	}
	if len(collections) > maxCollections {
		collections = collections[:maxCollections]
	}
	if collections != nil {
		d.Collections = collections
	}
	d.Database = "✅ Connected & Working"
	return d
}

func setOrNot(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
