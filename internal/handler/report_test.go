package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	service_mocks "github.com/perpusid/perpustakaan-service/internal/handler/mocks"
	"github.com/perpusid/perpustakaan-service/internal/model"
)

func TestHandler_PopularBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
		contentType  string
	}
	type mockBehavior func(r *service_mocks.MockReportService)

	rng := model.DateRange{
		From: model.NewDate(2024, 1, 1),
		To:   model.NewDate(2024, 1, 31),
	}
	items := []model.PopularBook{
		{BookID: "b1", Title: "Laskar Pelangi", Author: "Andrea Hirata", Category: "Novel", LoanCount: 12},
		{BookID: "b2", Title: "Bumi Manusia", Author: "Pramoedya Ananta Toer", Category: "Novel", LoanCount: 9},
	}

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok json",
			query: "?from=2024-01-01&to=2024-01-31",
			mockBehavior: func(r *service_mocks.MockReportService) {
				r.EXPECT().
					PopularBooks(context.Background(), rng).
					Return(items, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"bookId":"b1","title":"Laskar Pelangi","author":"Andrea Hirata","category":"Novel","loanCount":12},{"bookId":"b2","title":"Bumi Manusia","author":"Pramoedya Ananta Toer","category":"Novel","loanCount":9}]`,
			},
		},
		{
			name:  "ok csv",
			query: "?from=2024-01-01&to=2024-01-31&format=csv",
			mockBehavior: func(r *service_mocks.MockReportService) {
				r.EXPECT().
					PopularBooks(context.Background(), rng).
					Return(items, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "Title,Author,Category,Loans\nLaskar Pelangi,Andrea Hirata,Novel,12\nBumi Manusia,Pramoedya Ananta Toer,Novel,9",
				contentType:  "text/csv; charset=utf-8",
			},
		},
		{
			name:         "err. inverted range",
			query:        "?from=2024-02-01&to=2024-01-31",
			mockBehavior: func(r *service_mocks.MockReportService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"from is after to"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _, _, reportSvc := newTestHandler(t)

			e := echo.New()
			e.GET("/api/v1/reports/popular-books", h.PopularBooks)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/popular-books"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(reportSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			if tt.response.contentType != "" {
				require.Equal(t, tt.response.contentType, w.Header().Get(echo.HeaderContentType))
			}
		})
	}
}

func TestHandler_OverdueReport_CSV(t *testing.T) {
	t.Parallel()

	h, _, _, _, reportSvc := newTestHandler(t)

	e := echo.New()
	e.GET("/api/v1/reports/overdue", h.OverdueReport)

	reportSvc.EXPECT().
		Overdue(context.Background(), model.NewDate(2024, 1, 12)).
		Return([]model.OverdueLoan{
			{
				LoanID:            "l1",
				MemberID:          "m1",
				MemberName:        "Budi Santoso",
				BookID:            "b1",
				BookTitle:         "Laskar Pelangi",
				BorrowDate:        model.NewDate(2024, 1, 1),
				PlannedReturnDate: model.NewDate(2024, 1, 8),
				DaysLate:          4,
				Fine:              4000,
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/overdue?date=2024-01-12&format=csv", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		"MemberName,BookTitle,BorrowDate,PlannedReturnDate,DaysLate,Fine\nBudi Santoso,Laskar Pelangi,2024-01-01,2024-01-08,4,4000",
		strings.Trim(w.Body.String(), "\n"))
	require.Contains(t, w.Header().Get(echo.HeaderContentDisposition), "overdue.csv")
}

func TestHandler_StatsReport(t *testing.T) {
	t.Parallel()

	h, _, _, _, reportSvc := newTestHandler(t)

	e := echo.New()
	e.GET("/api/v1/reports/stats", h.StatsReport)

	reportSvc.EXPECT().
		Stats(context.Background(), model.NewDate(2024, 1, 12)).
		Return(model.Stats{
			TotalBooks:   42,
			TotalMembers: 17,
			LoansToday:   3,
			OverdueLoans: 2,
			TotalFines:   11000,
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/stats?date=2024-01-12", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"totalBooks":42,"totalMembers":17,"loansToday":3,"overdueLoans":2,"totalFines":11000}`,
		strings.Trim(w.Body.String(), "\n"))
}
