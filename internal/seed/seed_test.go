package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Simplici0/coat.works/internal/db"
	"github.com/Simplici0/coat.works/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	for i := 0; i < 10; i++ {
		stats, err := Run(database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != len(defaultProducts) {
				t.Fatalf("expected %d inserts in first run, got %d", len(defaultProducts), stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM products`, len(defaultProducts))
	assertCount(t, database, `SELECT COUNT(*) FROM products WHERE name = 'Polyurethane Topcoat'`, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM products WHERE active = TRUE`, len(defaultProducts))
}

func assertCount(t *testing.T, database *sql.DB, query string, expected int) {
	t.Helper()

	var count int
	if err := database.QueryRow(query).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
