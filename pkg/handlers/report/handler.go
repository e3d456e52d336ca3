package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/adapters"
	"github.com/de-tools/wellness-atlas/pkg/models/api"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/services/history"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 4 << 20

type Generator interface {
	Generate(ctx context.Context, data *domain.ReportData) (*report.Document, error)
}

type Handler struct {
	generator Generator
	history   history.Service // optional
	now       func() time.Time
}

func NewHandler(generator Generator, history history.Service) *Handler {
	return &Handler{
		generator: generator,
		history:   history,
		now:       time.Now,
	}
}

// GenerateReport renders the posted ReportData and streams the PDF back.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.ReportData
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&payload); err != nil {
		writeError(ctx, w, http.StatusBadRequest, fmt.Sprintf("invalid report payload: %v", err))
		return
	}

	data := adapters.MapReportDataApiToDomain(payload, h.now())
	doc, err := h.generator.Generate(ctx, &data)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.Error().Err(err).Str("subject", data.Subject).Msg("failed to generate report")
		writeError(ctx, w, http.StatusInternalServerError, "failed to generate report")
		return
	}

	body, err := doc.Bytes()
	if err != nil {
		logger.Error().Err(err).Str("filename", doc.Filename).Msg("failed to render report")
		writeError(ctx, w, http.StatusInternalServerError, "failed to render report")
		return
	}

	if h.history != nil {
		if _, err := h.history.Record(ctx, doc.Run("")); err != nil {
			logger.Warn().Err(err).Str("filename", doc.Filename).Msg("report run not recorded")
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Report-Pages", strconv.Itoa(doc.Pages))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Error().Err(err).Str("filename", doc.Filename).Msg("failed to write report")
	}
}

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.history == nil {
		writeError(ctx, w, http.StatusNotFound, "report history is not enabled")
		return
	}

	filter := domain.RunFilter{Subject: r.URL.Query().Get("subject")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(ctx, w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw))
			return
		}
		filter.Limit = limit
	}

	runs, err := h.history.List(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list report runs")
		writeError(ctx, w, http.StatusInternalServerError, "failed to list report runs")
		return
	}

	response := make([]api.ReportRun, 0, len(runs))
	for _, run := range runs {
		response = append(response, adapters.MapReportRunDomainToApi(run))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report runs")
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Message: msg}); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode error response")
	}
}
