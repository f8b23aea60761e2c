package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/weddingtools/seating-planner/internal/ingest"
	"github.com/weddingtools/seating-planner/internal/planner"
	"github.com/weddingtools/seating-planner/internal/seating"
	"github.com/weddingtools/seating-planner/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// maxUploadBytes caps guest-list uploads. A list of a few thousand
// rows is well under a megabyte; 10 MiB leaves plenty of headroom.
const maxUploadBytes = 10 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler wires planner and storage dependencies into HTTP handlers.
type Handler struct {
	planner *planner.Service
	storage storage.Storage

	clock func() time.Time

	mu                sync.RWMutex
	settingsUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(service *planner.Service, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		planner: service,
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.settingsUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	_ = r
	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		TableSize:     settings.TableSize,
		CategoryOrder: string(settings.CategoryOrder),
		UpdatedAt:     h.currentSettingsUpdatedAt(),
	})
}

func (h *Handler) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	settings := storage.Settings{
		TableSize:     req.TableSize,
		CategoryOrder: seating.OrderPolicy(req.CategoryOrder),
	}
	if err := h.storage.SetSettings(settings); err != nil {
		if errors.Is(err, storage.ErrInvalidSettings) {
			writeError(w, http.StatusBadRequest, "Invalid settings", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markSettingsUpdated()

	stored, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		TableSize:     stored.TableSize,
		CategoryOrder: string(stored.CategoryOrder),
		UpdatedAt:     h.currentSettingsUpdatedAt(),
		Message:       "Settings updated successfully",
	})
}

// handleGeneratePlan accepts a guest-list CSV and responds with the
// finished workbook as a download.
func (h *Handler) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	body, err := csvBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer func() {
		_ = body.Close()
	}()

	result, genErr := h.planner.Generate(body)
	if genErr != nil {
		writeGenerateError(w, genErr)
		return
	}
	defer func() {
		_ = result.Workbook.Close()
	}()

	filename := planner.Filename(h.clock())
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := result.Workbook.Write(w); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

// handlePreviewPlan runs the same pipeline but responds with a JSON
// summary instead of the workbook.
func (h *Handler) handlePreviewPlan(w http.ResponseWriter, r *http.Request) {
	body, err := csvBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid upload", err.Error())
		return
	}
	defer func() {
		_ = body.Close()
	}()

	result, genErr := h.planner.Generate(body)
	if genErr != nil {
		writeGenerateError(w, genErr)
		return
	}
	defer func() {
		_ = result.Workbook.Close()
	}()

	writeJSON(w, http.StatusOK, previewResponse{
		Tables:    result.Tables,
		Attending: result.Attending,
		Pending:   result.Pending,
		Declined:  result.Declined,
	})
}

// csvBody extracts the uploaded CSV: the "file" part of a multipart
// form, or the raw request body for plain uploads (curl-friendly).
func csvBody(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf(`multipart upload must carry a "file" part: %w`, err)
		}
		return file, nil
	}

	return r.Body, nil
}

func writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ingest.ErrMissingColumn):
		writeError(w, http.StatusBadRequest, "Invalid guest list", err.Error(),
			"Check the CSV header against the configured column mapping")
	case errors.Is(err, ingest.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "Invalid guest list", err.Error())
	case errors.Is(err, seating.ErrInvalidCapacity):
		writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
	default:
		writeInternalError(w, err)
	}
}

func (h *Handler) currentSettingsUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.settingsUpdatedAt
}

func (h *Handler) markSettingsUpdated() {
	h.mu.Lock()
	h.settingsUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type settingsRequest struct {
	TableSize     int    `json:"tableSize"`
	CategoryOrder string `json:"categoryOrder"`
}

type settingsResponse struct {
	TableSize     int       `json:"tableSize"`
	CategoryOrder string    `json:"categoryOrder"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Message       string    `json:"message,omitempty"`
}

type previewResponse struct {
	Tables    []planner.TableSummary `json:"tables"`
	Attending int                    `json:"attending"`
	Pending   int                    `json:"pending"`
	Declined  int                    `json:"declined"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
