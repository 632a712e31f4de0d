package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/coat.works/internal/config"
	"github.com/Simplici0/coat.works/internal/costing"
	"github.com/Simplici0/coat.works/internal/coverage"
	"github.com/Simplici0/coat.works/internal/db"
	"github.com/Simplici0/coat.works/internal/environmental"
	"github.com/Simplici0/coat.works/internal/migrations"
	"github.com/Simplici0/coat.works/internal/reference"
	"github.com/Simplici0/coat.works/internal/seed"
	"github.com/Simplici0/coat.works/internal/technical"
)

type server struct {
	db            *sql.DB
	ref           reference.Data
	coverage      *coverage.Engine
	environmental *environmental.Engine
	costing       *costing.Engine
	technical     *technical.Engine
}

func newServer(database *sql.DB, ref reference.Data) *server {
	return &server{
		db:            database,
		ref:           ref,
		coverage:      coverage.NewEngine(ref),
		environmental: environmental.NewEngine(ref),
		costing:       costing.NewEngine(ref),
		technical:     technical.NewEngine(ref),
	}
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
		stats, err := seed.Run(database)
		if err != nil {
			log.Fatalf("failed to run startup seed: %v", err)
		}
		if stats.Inserts > 0 {
			log.Printf("seeded %d products", stats.Inserts)
		}
	}

	srv := newServer(database, reference.Default())

	r := chi.NewRouter()
	r.Use(tokenAuthMiddleware(cfg.APIToken))
	r.Route("/api", func(r chi.Router) {
		r.Post("/coverage", srv.handleCoverage)
		r.Post("/coverage/system", srv.handleCoverageSystem)
		r.Post("/environmental/dewpoint", srv.handleDewPoint)
		r.Post("/environmental/voc", srv.handleVOC)
		r.Get("/environmental/weather-window", srv.handleWeatherWindow)
		r.Post("/cost/project", srv.handleProjectEstimate)
		r.Post("/cost/roi", srv.handleROI)
		r.Post("/technical/wft", srv.handleWetFilm)
		r.Post("/technical/surface-area", srv.handleSurfaceArea)
		r.Post("/technical/mix-ratio", srv.handleMixRatio)
		r.Post("/technical/solvent-reduction", srv.handleSolventReduction)
		r.Get("/technical/profile-depth", srv.handleProfileDepth)
		r.Get("/reference", srv.handleReference)
		r.Get("/products", srv.handleProductsList)
		r.Get("/estimates", srv.handleEstimatesList)
		r.Post("/estimates", srv.handleEstimateSave)
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// estimateListItem is one row of the saved-estimates listing.
type estimateListItem struct {
	CreatedAt string  `json:"created_at"`
	Title     string  `json:"title"`
	Total     float64 `json:"total"`
}

// estimateSaveRequest is the payload for saving a finished estimate.
type estimateSaveRequest struct {
	Title  string          `json:"title"`
	Notes  string          `json:"notes"`
	Totals json.RawMessage `json:"totals"`
}

type product struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	CoatingType    string  `json:"coating_type"`
	VolumeSolids   float64 `json:"volume_solids"`
	VOCContent     float64 `json:"voc_content"`
	PricePerGallon float64 `json:"price_per_gallon"`
	Active         bool    `json:"active"`
}

func (s *server) handleEstimatesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	estimates, err := s.listEstimates(query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load estimates")
		return
	}

	respondJSON(w, http.StatusOK, estimates)
}

func (s *server) handleEstimateSave(w http.ResponseWriter, r *http.Request) {
	var req estimateSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Totals) == 0 {
		respondError(w, http.StatusBadRequest, "totals is required")
		return
	}

	if err := s.saveEstimate(req); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save estimate")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (s *server) handleProductsList(w http.ResponseWriter, r *http.Request) {
	products, err := s.listProducts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (s *server) handleReference(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.ref)
}

func (s *server) listEstimates(query string) ([]estimateListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			created_at,
			COALESCE(title, ''),
			totals_json
		FROM estimates
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estimates := make([]estimateListItem, 0)
	for rows.Next() {
		var item estimateListItem
		var totalsJSON string
		if err := rows.Scan(&item.CreatedAt, &item.Title, &totalsJSON); err != nil {
			return nil, err
		}
		item.Total = extractTotalFromJSON(totalsJSON)
		estimates = append(estimates, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return estimates, nil
}

func (s *server) saveEstimate(req estimateSaveRequest) error {
	_, err := s.db.Exec(`
		INSERT INTO estimates (title, notes, totals_json)
		VALUES (?, ?, ?)
	`, strings.TrimSpace(req.Title), strings.TrimSpace(req.Notes), string(req.Totals))
	if err != nil {
		return fmt.Errorf("insert estimate: %w", err)
	}
	return nil
}

func (s *server) listProducts() ([]product, error) {
	rows, err := s.db.Query(`
		SELECT id, name, coating_type, volume_solids, voc_content, price_per_gallon, active
		FROM products
		WHERE active = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]product, 0)
	for rows.Next() {
		var p product
		if err := rows.Scan(&p.ID, &p.Name, &p.CoatingType, &p.VolumeSolids, &p.VOCContent, &p.PricePerGallon, &p.Active); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func extractTotalFromJSON(totalsJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(totalsJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"total", "total_cost", "estimated_cost"} {
		if total, ok := values[key]; ok {
			return total
		}
	}

	return 0
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	// Encode before touching the response so an unencodable payload
	// (non-finite floats from degenerate inputs) still yields a real
	// error status instead of a 200 with an empty body.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, `{"error":"result is not representable as JSON"}`)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondCalculation maps calculation failures onto HTTP statuses:
// rejected inputs are the caller's fault, anything else is ours.
func respondCalculation(w http.ResponseWriter, result any, err error) {
	if err != nil {
		if errors.Is(err, coverage.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "calculation failed")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
