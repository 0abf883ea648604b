package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ykarpenko/urlkeys/internal/mocks"
	"github.com/ykarpenko/urlkeys/internal/storage"
)

func newGetRequest(key string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/"+key, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("url", key)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestByShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockURLServiceIface(ctrl)
	svc.EXPECT().
		GetURLByShort(gomock.Any(), "a1b2c3").
		Return(&storage.URLRecord{Original: "http://example.com/page", Short: "a1b2c3"}, nil)

	h := NewGet(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ByShort(rec, newGetRequest("a1b2c3"))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://example.com/page", rec.Header().Get("Location"))
}

func TestByShortNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockURLServiceIface(ctrl)
	svc.EXPECT().
		GetURLByShort(gomock.Any(), "zzzzzz").
		Return(nil, storage.ErrNotFound)

	h := NewGet(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ByShort(rec, newGetRequest("zzzzzz"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPingDB(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "healthy", pingErr: nil, wantStatus: http.StatusOK},
		{name: "unreachable", pingErr: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockURLServiceIface(ctrl)
			svc.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			h := NewGet(svc, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			rec := httptest.NewRecorder()

			h.PingDB(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
