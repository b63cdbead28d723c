/*
handlers.go - HTTP API handlers for the merchandising plan engine

PURPOSE:
  Exposes the planning service via REST. Handles HTTP request/response and
  JSON serialization, delegating all semantics to the planning package.

ENDPOINTS:
  Master data:
    GET    /api/stores             List stores
    POST   /api/stores             Create store
    PUT    /api/stores/{id}        Update store (id immutable)
    DELETE /api/stores/{id}        Delete store (idempotent)
    POST   /api/stores/reorder     Move a row; renumbers ALL store ids
    (same surface under /api/skus)
    GET    /api/calendar           Read-only plan calendar

  Plan:
    GET    /api/plan/grid          Dense store x SKU grid with derived cells
    GET    /api/plan/columns       Month -> week -> leaf column schema
    PUT    /api/plan/cells         Commit a Sales Units cell edit
    GET    /api/plan/chart?store=  Weekly totals for one store
    GET    /api/plan/export        xlsx workbook of the dense grid

  Admin:
    POST   /api/reset              Restore the sample dataset

ERROR HANDLING:
  Errors map to JSON with appropriate HTTP status:
  - 400: validation failure, negative units, malformed body or id
  - 404: unknown record id or plan cell key
  - 500: persistence failures
  Validation failures carry the reason; nothing is silently swallowed.

SEE ALSO:
  - dto.go: request/response types
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/merchkit/plan-engine/collection"
	"github.com/merchkit/plan-engine/planning"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Planner *planning.Planner
}

// NewHandler creates a handler over the given planning service.
func NewHandler(p *planning.Planner) *Handler {
	return &Handler{Planner: p}
}

// =============================================================================
// STORES
// =============================================================================

func (h *Handler) ListStores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.Stores().List())
}

func (h *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var draft planning.Store
	if !decodeBody(w, r, &draft) {
		return
	}
	created, err := h.Planner.Stores().Create(r.Context(), draft)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var record planning.Store
	if !decodeBody(w, r, &record) {
		return
	}
	updated, err := h.Planner.Stores().Update(r.Context(), id, record)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Planner.Stores().Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReorderStores(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Planner.Stores().Reorder(r.Context(), req.From, req.To); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Planner.Stores().List())
}

// =============================================================================
// SKUS
// =============================================================================

func (h *Handler) ListSKUs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.SKUs().List())
}

func (h *Handler) CreateSKU(w http.ResponseWriter, r *http.Request) {
	var draft planning.SKU
	if !decodeBody(w, r, &draft) {
		return
	}
	created, err := h.Planner.SKUs().Create(r.Context(), draft)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateSKU(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var record planning.SKU
	if !decodeBody(w, r, &record) {
		return
	}
	updated, err := h.Planner.SKUs().Update(r.Context(), id, record)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSKU(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Planner.SKUs().Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReorderSKUs(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Planner.SKUs().Reorder(r.Context(), req.From, req.To); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Planner.SKUs().List())
}

// =============================================================================
// CALENDAR
// =============================================================================

func (h *Handler) ListCalendar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.Calendar())
}

// =============================================================================
// PLAN
// =============================================================================

func (h *Handler) GetPlanGrid(w http.ResponseWriter, r *http.Request) {
	weeks := h.Planner.Calendar()
	writeJSON(w, http.StatusOK, toPlanRowDTOs(h.Planner.Grid(), weeks))
}

func (h *Handler) GetPlanColumns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.ColumnSchema())
}

func (h *Handler) EditPlanCell(w http.ResponseWriter, r *http.Request) {
	var req CellEditRequest
	if !decodeBody(w, r, &req) {
		return
	}
	fact, err := h.Planner.SetSalesUnits(r.Context(), req.StoreID, req.SKUCode, req.Week, req.SalesUnits)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fact)
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store")
	if storeID == "" {
		writeError(w, http.StatusBadRequest, "missing store query parameter", nil)
		return
	}
	writeJSON(w, http.StatusOK, ChartDTO{
		StoreID:        storeID,
		PercentAxisMax: planning.PercentAxisMax,
		Series:         h.Planner.ChartSeries(storeID),
	})
}

func (h *Handler) ExportPlan(w http.ResponseWriter, r *http.Request) {
	f, err := planning.ExportGrid(h.Planner.Grid(), h.Planner.Calendar())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="plan.xlsx"`)
	if err := f.Write(w); err != nil {
		// Headers are gone; nothing useful left to send.
		return
	}
}

// =============================================================================
// ADMIN
// =============================================================================

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Planner.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "reset failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case collection.IsNotFound(err), errors.Is(err, planning.ErrUnknownKey):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case collection.IsClientError(err), errors.Is(err, planning.ErrNegativeUnits):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, "internal error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
