package resolve

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/pkg/database"
	"github.com/autodiag/refinery/pkg/jobqueue"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

var (
	sharedDBOnce sync.Once
	sharedDBURL  string
	sharedDBErr  error
)

// sharedDatabaseURL returns a connection string for the shared test
// database: CI_DATABASE_URL when set, otherwise a postgres container
// started once per package.
func sharedDatabaseURL(ctx context.Context) (string, error) {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url, nil
	}

	sharedDBOnce.Do(func() {
		container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
			tcpostgres.WithDatabase("test"),
			tcpostgres.WithUsername("test"),
			tcpostgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)))
		if err != nil {
			sharedDBErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		sharedDBURL, sharedDBErr = container.ConnectionString(ctx, "sslmode=disable")
	})
	return sharedDBURL, sharedDBErr
}

// testSchemaName derives a unique schema name from the test name so tests
// sharing the database never see each other's rows.
func testSchemaName(t *testing.T) string {
	name := strings.ToLower(t.Name())
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	schema := "test_" + b.String()
	if len(schema) > 40 {
		schema = schema[:40]
	}
	return schema + "_" + hex.EncodeToString(suffix)
}

// setupTestDatabase gives the test its own schema in the shared database,
// migrated to the current Ent schema and dropped on cleanup.
func setupTestDatabase(t *testing.T) *database.Client {
	t.Helper()
	ctx := context.Background()

	connStr, err := sharedDatabaseURL(ctx)
	require.NoError(t, err)

	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	schema := testSchemaName(t)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %q", schema))
	require.NoError(t, err)

	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	db, err := stdsql.Open("pgx", fmt.Sprintf("%s%ssearch_path=%s", connStr, sep, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		_ = entClient.Close()
		_, _ = admin.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA %q CASCADE", schema))
		_ = admin.Close()
	})
	return database.NewClientFromEnt(entClient, db)
}

func setupTestQueue(t *testing.T) *jobqueue.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return jobqueue.NewClientFromRedis(rdb)
}

// seedDocument creates a document parked at the given pipeline stage.
func seedDocument(t *testing.T, db *database.Client, stage document.ProcessingStage) string {
	t.Helper()
	docID := uuid.NewString()
	err := db.Document.Create().
		SetID(docID).
		SetTitle("P0171 lean condition diagnosis").
		SetContentHash(uuid.NewString()).
		SetProcessingStage(stage).
		Exec(context.Background())
	require.NoError(t, err)
	return docID
}

// seedChunk creates one chunk of the document and returns its ID.
func seedChunk(t *testing.T, db *database.Client, docID string, index int) string {
	t.Helper()
	chunkID := uuid.NewString()
	err := db.DocumentChunk.Create().
		SetID(chunkID).
		SetDocumentID(docID).
		SetChunkIndex(index).
		SetContent(fmt.Sprintf("chunk %d of the diagnosis writeup", index)).
		SetCharStart(index * 100).
		SetCharEnd(index*100 + 100).
		Exec(context.Background())
	require.NoError(t, err)
	return chunkID
}
