package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Simplici0/coat.works/internal/costing"
	"github.com/Simplici0/coat.works/internal/coverage"
	"github.com/Simplici0/coat.works/internal/environmental"
	"github.com/Simplici0/coat.works/internal/technical"
)

// decodeJSON reads one JSON body into dst and reports whether it
// succeeded, writing the error response itself when it did not.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	var spec coverage.Spec
	if !decodeJSON(w, r, &spec) {
		return
	}

	result, err := s.coverage.Calculate(spec)
	respondCalculation(w, result, err)
}

func (s *server) handleCoverageSystem(w http.ResponseWriter, r *http.Request) {
	var spec coverage.SystemSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	result, err := s.coverage.MultiCoatSystem(spec)
	respondCalculation(w, result, err)
}

func (s *server) handleDewPoint(w http.ResponseWriter, r *http.Request) {
	var spec environmental.DewPointSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	respondJSON(w, http.StatusOK, s.environmental.DewPoint(spec))
}

func (s *server) handleVOC(w http.ResponseWriter, r *http.Request) {
	var spec environmental.VOCSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	respondJSON(w, http.StatusOK, s.environmental.VOCEmissions(spec))
}

func (s *server) handleWeatherWindow(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.technical.CurrentWeatherWindow())
}

func (s *server) handleProjectEstimate(w http.ResponseWriter, r *http.Request) {
	var spec costing.ProjectSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	result, err := s.costing.ProjectEstimate(spec)
	respondCalculation(w, result, err)
}

func (s *server) handleROI(w http.ResponseWriter, r *http.Request) {
	var spec costing.ROISpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	respondJSON(w, http.StatusOK, s.costing.ROI(spec))
}

func (s *server) handleWetFilm(w http.ResponseWriter, r *http.Request) {
	var spec technical.WetFilmSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	respondJSON(w, http.StatusOK, s.technical.WetFilmThickness(spec))
}

func (s *server) handleSurfaceArea(w http.ResponseWriter, r *http.Request) {
	var spec technical.SurfaceAreaSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	respondJSON(w, http.StatusOK, s.technical.SurfaceArea(spec))
}

func (s *server) handleMixRatio(w http.ResponseWriter, r *http.Request) {
	var spec technical.MixSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	respondJSON(w, http.StatusOK, s.technical.MixRatio(spec))
}

func (s *server) handleSolventReduction(w http.ResponseWriter, r *http.Request) {
	var spec technical.SolventSpec
	if !decodeJSON(w, r, &spec) {
		return
	}

	respondJSON(w, http.StatusOK, s.technical.SolventReduction(spec))
}

func (s *server) handleProfileDepth(w http.ResponseWriter, r *http.Request) {
	media := strings.TrimSpace(r.URL.Query().Get("media"))
	if media == "" {
		respondError(w, http.StatusBadRequest, "media is required")
		return
	}

	respondJSON(w, http.StatusOK, s.technical.ProfileDepth(media))
}
