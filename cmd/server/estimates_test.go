package main

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/Simplici0/coat.works/internal/reference"
)

func TestListEstimatesOrdersByDateDescAndReadsTotal(t *testing.T) {
	database := newEstimatesTestDB(t)
	srv := newServer(database, reference.Default())

	seedEstimate(t, database, "2025-03-01 10:00:00", "Water tower", "two coat epoxy", `{"total": 18250.40}`)
	seedEstimate(t, database, "2025-03-03 12:00:00", "Warehouse floor", "single coat", `{"total": 5200.00}`)
	seedEstimate(t, database, "2025-03-02 11:00:00", "Pipe rack", "full system", `{"total_cost": 9600.25}`)

	estimates, err := srv.listEstimates("")
	if err != nil {
		t.Fatalf("listEstimates returned error: %v", err)
	}

	if len(estimates) != 3 {
		t.Fatalf("expected 3 estimates, got %d", len(estimates))
	}

	if estimates[0].Title != "Warehouse floor" || estimates[1].Title != "Pipe rack" || estimates[2].Title != "Water tower" {
		t.Fatalf("estimates are not sorted desc by created_at: %+v", estimates)
	}

	if estimates[0].Total != 5200.00 || estimates[1].Total != 9600.25 || estimates[2].Total != 18250.40 {
		t.Fatalf("unexpected totals: %+v", estimates)
	}
}

func TestListEstimatesFilterByTitleAndNotes(t *testing.T) {
	database := newEstimatesTestDB(t)
	srv := newServer(database, reference.Default())

	seedEstimate(t, database, "2025-03-01 10:00:00", "Tank farm", "urgent repaint", `{"total": 800}`)
	seedEstimate(t, database, "2025-03-02 10:00:00", "Bridge deck", "DOT contract", `{"total": 1200}`)
	seedEstimate(t, database, "2025-03-03 10:00:00", "Silo", "next to the tank farm", `{"total": 1600}`)

	byTitle, err := srv.listEstimates("Bridge")
	if err != nil {
		t.Fatalf("listEstimates title filter returned error: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "Bridge deck" {
		t.Fatalf("expected 1 estimate filtered by title, got %+v", byTitle)
	}

	byNotes, err := srv.listEstimates("tank farm")
	if err != nil {
		t.Fatalf("listEstimates notes filter returned error: %v", err)
	}
	if len(byNotes) != 2 {
		t.Fatalf("expected 2 estimates filtered by notes/title, got %+v", byNotes)
	}
}

func TestSaveEstimateRoundTrips(t *testing.T) {
	database := newEstimatesTestDB(t)
	srv := newServer(database, reference.Default())

	err := srv.saveEstimate(estimateSaveRequest{
		Title:  "Compressor shed",
		Notes:  "primer and topcoat",
		Totals: []byte(`{"total": 4321.10}`),
	})
	if err != nil {
		t.Fatalf("saveEstimate returned error: %v", err)
	}

	estimates, err := srv.listEstimates("Compressor")
	if err != nil {
		t.Fatalf("listEstimates returned error: %v", err)
	}
	if len(estimates) != 1 {
		t.Fatalf("expected 1 estimate, got %d", len(estimates))
	}
	if estimates[0].Total != 4321.10 {
		t.Fatalf("total = %v, want 4321.10", estimates[0].Total)
	}
}

func newEstimatesTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_, err = database.Exec(`
		CREATE TABLE estimates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			title TEXT,
			notes TEXT,
			totals_json TEXT NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("failed creating estimates table: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

func seedEstimate(t *testing.T, database *sql.DB, createdAt, title, notes, totalsJSON string) {
	t.Helper()

	_, err := database.Exec(`
		INSERT INTO estimates (created_at, title, notes, totals_json)
		VALUES (?, ?, ?, ?)
	`, createdAt, title, notes, totalsJSON)
	if err != nil {
		t.Fatalf("failed to seed estimate: %v", err)
	}
}
