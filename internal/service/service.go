package service

import (
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/repository"
)

// Service bundles the four engines behind one constructor for wiring.
type Service struct {
	Catalog *CatalogService
	Loans   *LoanService
	Trash   *TrashService
	Reports *ReportService
}

func New(repo repository.Repository, events Publisher, finePerDay int64, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo),
		Loans:   NewLoanService(repo, events, finePerDay, log),
		Trash:   NewTrashService(repo, log),
		Reports: NewReportService(repo),
	}
}
