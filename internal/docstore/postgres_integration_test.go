package docstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *PostgresStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "postgres", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/ignored?sslmode=disable", host, port.Port())
	db, err := Open(ctx, dsn, "postgres", 4, 2)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewPostgresStore(db, "postgres")
	require.NoError(t, store.EnsureSchema(ctx))
	return store
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, CollectionUser, testDoc{Email: "ada@example.com", CreatedAt: "1"})
	require.NoError(t, err)

	_, err = store.Insert(ctx, CollectionUser, testDoc{Email: "Ada@Example.com", CreatedAt: "2"})
	assert.ErrorIs(t, err, ErrDuplicate)

	var doc testDoc
	require.NoError(t, store.FindOne(ctx, CollectionUser, Filter{IDField: id}, &doc))
	assert.Equal(t, "ada@example.com", doc.Email)

	for _, ts := range []string{"a", "c", "b"} {
		_, err := store.Insert(ctx, CollectionSyllabus, map[string]any{"owner_id": "u1", "created_at": ts})
		require.NoError(t, err)
	}
	var docs []testDoc
	require.NoError(t, store.FindMany(ctx, CollectionSyllabus, Filter{"owner_id": "u1"},
		&Sort{Field: "created_at", Order: Descending}, &docs))
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{docs[0].CreatedAt, docs[1].CreatedAt, docs[2].CreatedAt})

	_, err = store.Insert(ctx, CollectionSession, map[string]any{"token": "tok", "user_id": id})
	require.NoError(t, err)
	n, err := store.DeleteMany(ctx, CollectionSession, Filter{"token": "tok"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	names, err := store.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"syllabus", "user"}, names)
}
