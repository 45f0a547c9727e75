package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radar-ali360/radar-engine/pkg/cache"
	"github.com/radar-ali360/radar-engine/pkg/models"
	"github.com/radar-ali360/radar-engine/pkg/services"
)

// RecommendationHandler exposes the recommendation pipeline: per-company
// recommendations, per-solution adherence, regional course suggestions, and
// the explicit cache clear.
type RecommendationHandler struct {
	recommender services.RecommenderService
	store       cache.Store
	logger      *zap.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommender services.RecommenderService, store cache.Store, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommender: recommender,
		store:       store,
		logger:      logger.Named("recommendation-handler"),
	}
}

// RegisterRoutes registers the recommendation routes on the given mux.
func (h *RecommendationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/recommendations", h.Recommend)
	mux.HandleFunc("POST /api/adherence", h.Adherence)
	mux.HandleFunc("POST /api/suggestions", h.Suggest)
	mux.HandleFunc("POST /api/cache/clear", h.ClearCache)
}

// RecommendRequest asks for recommendations for one company. Scheduled
// lists solutions the company already has booked; they are excluded from
// the generated recommendations.
type RecommendRequest struct {
	Company   models.CompanyProfile   `json:"company"`
	Scheduled []models.SolutionRecord `json:"scheduled,omitempty"`
}

// RecommendResponse carries the ranked, catalog-resolved results. An empty
// list means the pipeline degraded (empty catalog, completion failure, or
// unparsable response); the distinction lives in the server logs.
type RecommendResponse struct {
	Company         string                        `json:"company"`
	Recommendations []models.RecommendationResult `json:"recommendations"`
}

// Recommend handles POST /api/recommendations.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if req.Company.Name == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", "company.name is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	results, err := h.recommender.GetRecommendations(r.Context(), req.Company, req.Scheduled)
	if err != nil {
		h.logger.Error("Recommendation request failed",
			zap.String("request_id", requestID),
			zap.String("company", req.Company.Name),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "recommendation_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.logger.Info("Recommendations answered",
		zap.String("request_id", requestID),
		zap.String("company", req.Company.Name),
		zap.Int("results", len(results)))

	response := RecommendResponse{Company: req.Company.Name, Recommendations: results}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// AdherenceRequest scores one solution against a set of companies.
type AdherenceRequest struct {
	Solution  models.SolutionRecord   `json:"solution"`
	Companies []models.CompanyProfile `json:"companies"`
}

// AdherenceResponse lists per-company scores in descending order.
type AdherenceResponse struct {
	Solution string                   `json:"solution"`
	Results  []models.AdherenceResult `json:"results"`
}

// Adherence handles POST /api/adherence.
func (h *RecommendationHandler) Adherence(w http.ResponseWriter, r *http.Request) {
	var req AdherenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if req.Solution.Name == "" || len(req.Companies) == 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", "solution.name and companies are required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	results, err := h.recommender.CalculateAdherence(r.Context(), req.Solution, req.Companies)
	if err != nil {
		h.logger.Error("Adherence request failed",
			zap.String("solution", req.Solution.Name),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "adherence_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := AdherenceResponse{Solution: req.Solution.Name, Results: results}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// SuggestRequest asks for portfolio suggestions for one regional. The
// aggregates are computed server-side from the posted companies.
type SuggestRequest struct {
	Regional  string                  `json:"regional,omitempty"`
	Companies []models.CompanyProfile `json:"companies"`
	Scheduled []models.SolutionRecord `json:"scheduled,omitempty"`
}

// SuggestResponse carries the parsed course suggestions plus the aggregates
// the prompt was built from, so the dashboard can show both.
type SuggestResponse struct {
	Aggregates  models.RegionalAggregates `json:"aggregates"`
	Suggestions []models.CourseSuggestion `json:"suggestions"`
}

// Suggest handles POST /api/suggestions.
func (h *RecommendationHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if len(req.Companies) == 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", "companies are required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	agg := services.BuildRegionalAggregates(req.Companies, req.Regional)
	suggestions, err := h.recommender.SuggestNewSolutions(r.Context(), agg, req.Scheduled)
	if err != nil {
		h.logger.Error("Suggestion request failed",
			zap.String("regional", req.Regional),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "suggestion_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := SuggestResponse{Aggregates: agg, Suggestions: suggestions}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ClearCache handles POST /api/cache/clear.
func (h *RecommendationHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		h.logger.Error("Cache clear failed", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "cache_clear_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.logger.Info("Recommendation cache cleared")
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "cache cleared"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
