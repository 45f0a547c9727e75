package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/radar-ali360/radar-engine/pkg/apperrors"
	"github.com/radar-ali360/radar-engine/pkg/models"
	"github.com/radar-ali360/radar-engine/pkg/schema"
	"github.com/radar-ali360/radar-engine/pkg/services"
)

// CatalogHandler exposes catalog construction and inspection.
type CatalogHandler struct {
	catalogs services.CatalogService
	logger   *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogs services.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs, logger: logger.Named("catalog-handler")}
}

// RegisterRoutes registers the catalog routes on the given mux.
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/catalog", h.Rebuild)
	mux.HandleFunc("GET /api/catalog", h.List)
	mux.HandleFunc("POST /api/companies/normalize", h.NormalizeCompanies)
}

// RebuildCatalogRequest carries the source row sets for one rebuild.
type RebuildCatalogRequest struct {
	Sources []services.SolutionSource `json:"sources"`
}

// CatalogListResponse lists the current canonical catalog.
type CatalogListResponse struct {
	Records []models.SolutionRecord `json:"records"`
	Total   int                     `json:"total"`
}

// Rebuild handles POST /api/catalog. The previous catalog stays in place
// when the posted sources are unusable.
func (h *CatalogHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	var req RebuildCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	stats, err := h.catalogs.Rebuild(req.Sources)
	if err != nil {
		h.logger.Warn("Catalog rebuild rejected", zap.Error(err))
		status := http.StatusBadRequest
		code := "invalid_sources"
		if errors.Is(err, apperrors.ErrEmptySource) {
			code = "empty_source"
		}
		if err := ErrorResponse(w, status, code, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// NormalizeCompaniesRequest carries raw company rows from a source
// collaborator, typically the radar spreadsheet.
type NormalizeCompaniesRequest struct {
	Rows []schema.Row `json:"rows"`
}

// NormalizeCompaniesResponse returns the canonical profiles plus the number
// of rows rejected for a missing company name.
type NormalizeCompaniesResponse struct {
	Companies []models.CompanyProfile `json:"companies"`
	Skipped   int                     `json:"skipped"`
}

// NormalizeCompanies handles POST /api/companies/normalize. Callers feed the
// result straight into the adherence and suggestion endpoints.
func (h *CatalogHandler) NormalizeCompanies(w http.ResponseWriter, r *http.Request) {
	var req NormalizeCompaniesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	companies, skipped := schema.NormalizeCompanies(req.Rows, schema.RadarCompanyAliases)
	if skipped > 0 {
		h.logger.Warn("Company rows skipped during normalization",
			zap.Int("skipped", skipped),
			zap.Int("accepted", len(companies)))
	}

	response := NormalizeCompaniesResponse{Companies: companies, Skipped: skipped}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/catalog.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.catalogs.Records()
	response := CatalogListResponse{
		Records: records,
		Total:   len(records),
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
