package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

// ReportStore is the slice of the repository the collator reads from.
// Everything here is derived data; nothing mutates.
type ReportStore interface {
	PopularBooks(ctx context.Context, r model.DateRange) ([]model.PopularBook, error)
	ActiveMembers(ctx context.Context, r model.DateRange) ([]model.MemberActivity, error)
	MonthlyTrend(ctx context.Context, reference model.Date) ([]model.MonthlyCount, error)
	OverdueLoans(ctx context.Context, reference model.Date) ([]model.OverdueLoan, error)

	CountBooks(ctx context.Context) (int, error)
	CountMembers(ctx context.Context) (int, error)
	CountLoansOn(ctx context.Context, day model.Date) (int, error)
	CountOverdue(ctx context.Context, reference model.Date) (int, error)
	SumFines(ctx context.Context) (int64, error)
}

type ReportService struct {
	repo ReportStore
}

func NewReportService(repo ReportStore) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) PopularBooks(ctx context.Context, r model.DateRange) ([]model.PopularBook, error) {
	return s.repo.PopularBooks(ctx, r)
}

func (s *ReportService) ActiveMembers(ctx context.Context, r model.DateRange) ([]model.MemberActivity, error) {
	return s.repo.ActiveMembers(ctx, r)
}

func (s *ReportService) MonthlyTrend(ctx context.Context, reference model.Date) ([]model.MonthlyCount, error) {
	return s.repo.MonthlyTrend(ctx, reference)
}

func (s *ReportService) Overdue(ctx context.Context, reference model.Date) ([]model.OverdueLoan, error) {
	return s.repo.OverdueLoans(ctx, reference)
}

// Stats collates the dashboard counters for the reference day.
func (s *ReportService) Stats(ctx context.Context, reference model.Date) (model.Stats, error) {
	var stats model.Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalBooks, err = s.repo.CountBooks(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalMembers, err = s.repo.CountMembers(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.LoansToday, err = s.repo.CountLoansOn(ctx, reference)
		return err
	})
	g.Go(func() (err error) {
		stats.OverdueLoans, err = s.repo.CountOverdue(ctx, reference)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalFines, err = s.repo.SumFines(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Stats{}, err
	}
	return stats, nil
}
