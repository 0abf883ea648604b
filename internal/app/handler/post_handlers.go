package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ykarpenko/urlkeys/internal/app/service"
	"github.com/ykarpenko/urlkeys/internal/models"
)

type PostHandler struct {
	baseURL    string
	urlService service.URLServiceIface
	logger     *zap.Logger
}

func NewPost(baseURL string, s service.URLServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		baseURL:    baseURL,
		urlService: s,
		logger:     l,
	}
}

// PlainBody handles POST / with a raw URL in the body.
func (h *PostHandler) PlainBody(res http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	defer req.Body.Close()

	if err != nil {
		res.WriteHeader(http.StatusBadRequest)
		return
	}

	record, created, err := h.urlService.CreateURLRecord(req.Context(), string(body))
	if err != nil {
		if isNormalizationError(err) {
			http.Error(res, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("unable to shorten url", zap.Error(err))
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if created {
		res.WriteHeader(http.StatusCreated)
	} else {
		// The canonical URL was shortened before; hand back the
		// existing short URL.
		h.logger.Info("url already exists", zap.String("original", record.Original))
		res.WriteHeader(http.StatusConflict)
	}

	if _, err := res.Write([]byte(h.baseURL + "/" + record.Short)); err != nil {
		h.logger.Error("unable to write response", zap.Error(err))
	}
}

// ShortenJSON handles POST /api/shorten.
func (h *PostHandler) ShortenJSON(res http.ResponseWriter, req *http.Request) {
	var request models.Request

	if err := decodeJSONBody(res, req, &request); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
		} else {
			h.logger.Error("unable to decode request", zap.Error(err))
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	record, created, err := h.urlService.CreateURLRecord(req.Context(), request.URL)
	if err != nil {
		if isNormalizationError(err) {
			http.Error(res, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("unable to shorten url", zap.Error(err))
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if !created {
		h.logger.Info("url already exists", zap.String("original", record.Original))
		status = http.StatusConflict
	}

	writeJSON(res, h.logger, models.Response{Result: h.baseURL + "/" + record.Short}, status)
}

// ShortenBatch handles POST /api/shorten/batch.
func (h *PostHandler) ShortenBatch(res http.ResponseWriter, req *http.Request) {
	var urls []models.BatchRequest

	if err := decodeJSONBody(res, req, &urls); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
			return
		}
		h.logger.Error("unable to decode batch request", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	response := make([]models.BatchResponse, 0, len(urls))
	for _, u := range urls {
		record, _, err := h.urlService.CreateURLRecord(req.Context(), u.OriginalURL)
		if err != nil {
			if isNormalizationError(err) {
				http.Error(res, err.Error(), http.StatusBadRequest)
				return
			}
			h.logger.Error("unable to shorten batch url", zap.Error(err))
			res.WriteHeader(http.StatusInternalServerError)
			return
		}
		response = append(response, models.BatchResponse{
			CorrelationID: u.CorrelationID,
			ShortURL:      h.baseURL + "/" + record.Short,
		})
	}

	writeJSON(res, h.logger, response, http.StatusCreated)
}

// Expand handles POST /api/expand, resolving a submitted short URL or
// bare key back to the canonical URL.
func (h *PostHandler) Expand(res http.ResponseWriter, req *http.Request) {
	var request models.ExpandRequest

	if err := decodeJSONBody(res, req, &request); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
			return
		}
		h.logger.Error("unable to decode expand request", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	key := extractKey(request.ShortURL)
	record, err := h.urlService.GetURLByShort(req.Context(), key)
	if err != nil {
		http.Error(res, "URL not found", http.StatusNotFound)
		return
	}

	writeJSON(res, h.logger, models.ExpandResponse{OriginalURL: record.Original}, http.StatusOK)
}

func writeJSON(res http.ResponseWriter, logger *zap.Logger, v any, status int) {
	body, err := json.Marshal(v)
	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if _, err := res.Write(body); err != nil {
		logger.Error("unable to write response", zap.Error(err))
	}
}
