package repositories

import (
	"context"

	"github.com/sbilibin2017/syllabus-builder/internal/docstore"
)

// DocumentStore is the document store contract the repositories rely on.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	FindOne(ctx context.Context, collection string, filter docstore.Filter, dest any) error
	FindMany(ctx context.Context, collection string, filter docstore.Filter, sort *docstore.Sort, dest any) error
	DeleteMany(ctx context.Context, collection string, filter docstore.Filter) (int64, error)
}
