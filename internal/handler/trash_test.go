package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/perpusid/perpustakaan-service/internal/errs"
	service_mocks "github.com/perpusid/perpustakaan-service/internal/handler/mocks"
)

func TestHandler_RestoreTrash(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockTrashService)

	var tests = []struct {
		name         string
		trashID      string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:    "ok",
			trashID: "t1",
			mockBehavior: func(r *service_mocks.MockTrashService) {
				r.EXPECT().
					Restore(context.Background(), "t1").
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
			},
		},
		{
			name:    "err. entry not found",
			trashID: "nope",
			mockBehavior: func(r *service_mocks.MockTrashService) {
				r.EXPECT().
					Restore(context.Background(), "nope").
					Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:    "err. live record missing",
			trashID: "t2",
			mockBehavior: func(r *service_mocks.MockTrashService) {
				r.EXPECT().
					Restore(context.Background(), "t2").
					Return(errs.ErrGone)
			},
			response: response{
				expectedCode: http.StatusGone,
				expectedBody: `{"message":"live record missing"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _, trashSvc, _ := newTestHandler(t)

			e := echo.New()
			e.POST("/api/v1/trash/:id/restore", h.RestoreTrash)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/trash/"+tt.trashID+"/restore", http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(trashSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PurgeTrash(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockTrashService)

	var tests = []struct {
		name         string
		trashID      string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:    "ok",
			trashID: "t1",
			mockBehavior: func(r *service_mocks.MockTrashService) {
				r.EXPECT().
					Purge(context.Background(), "t1").
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
			},
		},
		{
			name:    "err. entry not found",
			trashID: "nope",
			mockBehavior: func(r *service_mocks.MockTrashService) {
				r.EXPECT().
					Purge(context.Background(), "nope").
					Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _, trashSvc, _ := newTestHandler(t)

			e := echo.New()
			e.DELETE("/api/v1/trash/:id", h.PurgeTrash)

			r := httptest.NewRequest(http.MethodDelete, "/api/v1/trash/"+tt.trashID, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(trashSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
