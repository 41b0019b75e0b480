package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/champion-rotations/internal/api/views"
	"github.com/dom/champion-rotations/internal/domain"
	"github.com/dom/champion-rotations/internal/service"
	"go.uber.org/zap"
)

const noRotationDataMessage = "No rotation data found"

type RotationHandler struct {
	rotationService *service.RotationService
	logger          *zap.Logger
}

func NewRotationHandler(rotationService *service.RotationService, logger *zap.Logger) *RotationHandler {
	return &RotationHandler{
		rotationService: rotationService,
		logger:          logger.Named("handlers.rotation"),
	}
}

type HistoryResponse struct {
	History []domain.HistoryEntry `json:"history"`
}

// Index renders the current rotation page.
func (h *RotationHandler) Index(w http.ResponseWriter, r *http.Request) {
	regular, newbie, info := h.rotationService.GetCurrentRotations(r.Context())

	page := views.IndexPage{
		RegularRotation: regular,
		NewbieRotation:  newbie,
		RotationInfo:    info,
	}
	if info == nil {
		page.Error = noRotationDataMessage
	}

	h.render(w, "index.html", page)
}

// History renders the historical rotation list.
func (h *RotationHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rotationService.GetHistory(r.Context())

	page := views.HistoryPage{HistoryData: entries}
	if err != nil {
		page.Error = err.Error()
	}

	h.render(w, "history.html", page)
}

func (h *RotationHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	current, err := h.rotationService.CurrentRotation(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			http.Error(w, noRotationDataMessage, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get current rotation", zap.Error(err))
		http.Error(w, "Failed to get current rotation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, current)
}

func (h *RotationHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rotationService.GetHistory(r.Context())
	if err != nil {
		http.Error(w, "Failed to get rotation history: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, HistoryResponse{History: entries})
}

func (h *RotationHandler) render(w http.ResponseWriter, name string, data any) {
	if err := views.Render(w, http.StatusOK, name, data); err != nil {
		h.logger.Error("failed to render page", zap.String("template", name), zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
