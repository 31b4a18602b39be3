package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/nchub/internal/assistant"
	"github.com/example/nchub/internal/calc"
	"github.com/example/nchub/internal/catalog"
	"github.com/example/nchub/internal/store"
	"github.com/example/nchub/pkg/models"
)

func (s *Server) getProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Progress())
}

// CounterRequest increments a numeric progress field. A zero delta counts
// as 1.
type CounterRequest struct {
	Field string `json:"field"`
	Delta int    `json:"delta,omitempty"`
}

func (s *Server) incrementCounter(w http.ResponseWriter, r *http.Request) {
	var req CounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.store.IncrementCounter(store.CounterField(req.Field), req.Delta)
	writeJSON(w, http.StatusOK, s.store.Progress())
}

// SetRequest adds a value to a set-valued progress field.
type SetRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) addToSet(w http.ResponseWriter, r *http.Request) {
	var req SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.store.AddToSet(store.SetField(req.Field), req.Value)
	writeJSON(w, http.StatusOK, s.store.Progress())
}

func (s *Server) setStudyDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.store.ReplaceScalar(store.FieldLastStudyDate, req.Date)
	writeJSON(w, http.StatusOK, s.store.Progress())
}

func (s *Server) applyQuizScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.store.ApplyQuizScore(req.Score)
	writeJSON(w, http.StatusOK, s.store.Progress())
}

type termRequest struct {
	Term string `json:"term"`
}

func (s *Server) markTermKnown(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Term == "" {
		writeError(w, http.StatusBadRequest, "term is required")
		return
	}
	s.store.MarkTermKnown(req.Term)
	writeJSON(w, http.StatusOK, s.store.Progress())
}

func (s *Server) markTermForReview(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Term == "" {
		writeError(w, http.StatusBadRequest, "term is required")
		return
	}
	s.store.MarkTermForReview(req.Term)
	writeJSON(w, http.StatusOK, s.store.Progress())
}

func (s *Server) listCustomTerms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.CustomTerms())
}

func (s *Server) addCustomTerm(w http.ResponseWriter, r *http.Request) {
	var term models.CustomTerm
	if err := json.NewDecoder(r.Body).Decode(&term); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(term.Term) == "" {
		writeError(w, http.StatusBadRequest, "term is required")
		return
	}
	saved := s.store.AddCustomTerm(r.Context(), term)
	if saved == nil {
		writeError(w, http.StatusServiceUnavailable, "term was not saved")
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) deleteCustomTerm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid term id")
		return
	}
	s.store.DeleteCustomTerm(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Notes())
}

func (s *Server) addNote(w http.ResponseWriter, r *http.Request) {
	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	saved := s.store.AddNote(r.Context(), note)
	if saved == nil {
		writeError(w, http.StatusServiceUnavailable, "note was not saved")
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) listLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.SavedLocations())
}

func (s *Server) saveLocation(w http.ResponseWriter, r *http.Request) {
	var loc models.SavedLocation
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(loc.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	saved := s.store.SaveLocation(r.Context(), loc)
	if saved == nil {
		writeError(w, http.StatusServiceUnavailable, "location was not saved")
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) listLayers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"layers": catalog.MapLayers,
		"active": s.store.ActiveLayers(),
	})
}

func (s *Server) toggleLayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Layer string `json:"layer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Layer == "" {
		writeError(w, http.StatusBadRequest, "layer is required")
		return
	}
	s.store.ToggleLayer(req.Layer)
	writeJSON(w, http.StatusOK, map[string]any{"active": s.store.ActiveLayers()})
}

func (s *Server) catalogFrameworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Frameworks)
}

func (s *Server) catalogUKPolicies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.UKPolicies)
}

func (s *Server) catalogGlobalPolicies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.GlobalPolicies)
}

func (s *Server) catalogTerminology(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Terminology)
}

func (s *Server) catalogScoping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ecosystemTypes":   catalog.EcosystemTypes,
		"assessmentDepths": catalog.AssessmentDepths,
		"sizeCategories":   catalog.SizeCategories,
	})
}

func (s *Server) catalogRisks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.RiskCategories)
}

func (s *Server) catalogSectors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Sectors)
}

func (s *Server) catalogRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.UKRegions)
}

// EffortRequest selects one row of each scoping table by name.
type EffortRequest struct {
	EcosystemType   string `json:"ecosystemType"`
	AssessmentDepth string `json:"assessmentDepth"`
	SizeCategory    string `json:"sizeCategory"`
}

// EffortResponse carries the estimate plus the selected ecosystem's
// categorical potential ratings.
type EffortResponse struct {
	Days                  int    `json:"days"`
	CarbonPotential       string `json:"carbonPotential"`
	BiodiversityPotential string `json:"biodiversityPotential"`
	WaterPotential        string `json:"waterPotential"`
	BNGPotential          string `json:"bngPotential"`
}

func (s *Server) estimateEffort(w http.ResponseWriter, r *http.Request) {
	var req EffortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eco := catalog.EcosystemTypeByName(req.EcosystemType)
	depth := catalog.AssessmentDepthByName(req.AssessmentDepth)
	size := catalog.SizeCategoryByName(req.SizeCategory)
	if eco == nil || depth == nil || size == nil {
		writeError(w, http.StatusBadRequest, "unknown scoping selection")
		return
	}

	writeJSON(w, http.StatusOK, EffortResponse{
		Days:                  calc.EstimateEffort(*eco, *depth, *size),
		CarbonPotential:       eco.CarbonPotential,
		BiodiversityPotential: eco.BiodiversityPotential,
		WaterPotential:        eco.WaterPotential,
		BNGPotential:          eco.BNGPotential,
	})
}

func (s *Server) relevantRisks(w http.ResponseWriter, r *http.Request) {
	sector := r.URL.Query().Get("sector")
	if sector == "" {
		writeError(w, http.StatusBadRequest, "sector is required")
		return
	}
	writeJSON(w, http.StatusOK, calc.RelevantRisks(sector))
}

// ChatRequest is one new user turn plus the mode flag. The server owns the
// conversation history; the full prior exchange goes out with every request.
type ChatRequest struct {
	Mode    string `json:"mode"`
	Content string `json:"content"`
}

// ChatResponse is the assistant's reply plus the updated history. A failed
// upstream call still becomes a rendered exchange.
type ChatResponse struct {
	Reply    models.Message   `json:"reply"`
	Messages []models.Message `json:"messages"`
}

func (s *Server) assistantChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	s.store.AddMessage(models.Message{Role: "user", Content: req.Content})
	content := s.gateway.Respond(r.Context(), assistant.Mode(req.Mode), s.store.Messages())
	reply := models.Message{Role: "assistant", Content: content}
	s.store.AddMessage(reply)

	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply, Messages: s.store.Messages()})
}

func (s *Server) assistantHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Messages())
}

func (s *Server) clearAssistantHistory(w http.ResponseWriter, r *http.Request) {
	s.store.ClearMessages()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getActiveTab(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"tab": s.store.ActiveTab()})
}

func (s *Server) setActiveTab(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tab == "" {
		writeError(w, http.StatusBadRequest, "tab is required")
		return
	}
	s.store.SetActiveTab(req.Tab)
	writeJSON(w, http.StatusOK, map[string]string{"tab": req.Tab})
}
