package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ykarpenko/urlkeys/internal/app/service"
)

const lookupTimeout = 3 * time.Second

type GetHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewGet(s service.URLServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// ByShort handles GET /{url}: a redirect to the canonical URL.
func (h *GetHandler) ByShort(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), lookupTimeout)
	defer cancel()

	short := chi.URLParam(req, "url")

	record, err := h.service.GetURLByShort(ctx, short)
	if err != nil {
		h.logger.Info("short key not found", zap.String("short", short))
		http.Error(res, "URL not found", http.StatusNotFound)
		return
	}

	res.Header().Set("Location", record.Original)
	res.WriteHeader(http.StatusTemporaryRedirect)
}

// PingDB handles GET /ping.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), lookupTimeout)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
