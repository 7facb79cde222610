package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/explorer"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	explorer explorer.Explorer
}

func NewHandler(e explorer.Explorer) *Handler {
	return &Handler{explorer: e}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := []api.ReportSummary{}
	for _, def := range h.explorer.ListReports(ctx) {
		response = append(response, adapters.MapReportToSummary(def))
	}

	writeJSON(w, http.StatusOK, response, logger)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "name")

	on, err := h.evaluationDate(r, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid 'date' format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	def, err := h.explorer.GetReport(ctx, name)
	if err != nil {
		writeError(w, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, adapters.MapReportToAPI(def, on), logger)
}

func (h *Handler) GetConditions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "name")

	var req api.ConditionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	on, err := h.evaluationDate(r, req.Date)
	if err != nil {
		http.Error(w, "invalid 'date' format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	params, err := h.explorer.Parameterize(ctx, name, on, domain.FilterValues(req.Filters))
	if err != nil {
		writeError(w, err, logger)
		return
	}

	response := api.Conditions{
		Report:     params.Report.Name,
		Filters:    params.Values,
		Conditions: adapters.MapConditionsToAPI(params.Conditions),
		Query:      params.Query,
		Args:       params.Args,
	}
	if params.Period != nil {
		response.Period = adapters.MapPeriodToAPI(*params.Period)
	}

	writeJSON(w, http.StatusOK, response, logger)
}

func (h *Handler) evaluationDate(r *http.Request, raw string) (time.Time, error) {
	today := h.explorer.Today(r.Context())
	if raw == "" {
		return today, nil
	}
	return time.ParseInLocation(domain.DateLayout, raw, today.Location())
}

func writeError(w http.ResponseWriter, err error, logger *zerolog.Logger) {
	switch {
	case errors.Is(err, explorer.ErrReportNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case isFilterError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error().Err(err).Msg("failed to handle report request")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode response")
	}
}
