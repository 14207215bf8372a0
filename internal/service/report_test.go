package service_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/perpusid/perpustakaan-service/internal/model"
	"github.com/perpusid/perpustakaan-service/internal/service"
)

type fakeReportStore struct {
	stats    model.Stats
	statsErr error
}

func (f *fakeReportStore) PopularBooks(context.Context, model.DateRange) ([]model.PopularBook, error) {
	return nil, nil
}

func (f *fakeReportStore) ActiveMembers(context.Context, model.DateRange) ([]model.MemberActivity, error) {
	return nil, nil
}

func (f *fakeReportStore) MonthlyTrend(context.Context, model.Date) ([]model.MonthlyCount, error) {
	return nil, nil
}

func (f *fakeReportStore) OverdueLoans(context.Context, model.Date) ([]model.OverdueLoan, error) {
	return nil, nil
}

func (f *fakeReportStore) CountBooks(context.Context) (int, error) {
	return f.stats.TotalBooks, f.statsErr
}

func (f *fakeReportStore) CountMembers(context.Context) (int, error) {
	return f.stats.TotalMembers, nil
}

func (f *fakeReportStore) CountLoansOn(context.Context, model.Date) (int, error) {
	return f.stats.LoansToday, nil
}

func (f *fakeReportStore) CountOverdue(context.Context, model.Date) (int, error) {
	return f.stats.OverdueLoans, nil
}

func (f *fakeReportStore) SumFines(context.Context) (int64, error) {
	return f.stats.TotalFines, nil
}

func TestReportService_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("collates every counter", func(t *testing.T) {
		t.Parallel()
		want := model.Stats{
			TotalBooks:   42,
			TotalMembers: 17,
			LoansToday:   3,
			OverdueLoans: 2,
			TotalFines:   11000,
		}
		svc := service.NewReportService(&fakeReportStore{stats: want})

		got, err := svc.Stats(ctx, model.NewDate(2024, 1, 12))
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("any failing counter fails the whole collation", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("db down")
		svc := service.NewReportService(&fakeReportStore{statsErr: boom})

		_, err := svc.Stats(ctx, model.NewDate(2024, 1, 12))
		require.ErrorIs(t, err, boom)
	})
}
