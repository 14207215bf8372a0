package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/errs"
	"github.com/perpusid/perpustakaan-service/internal/model"
)

// TrashStore is the slice of the repository the trash subsystem needs.
type TrashStore interface {
	SoftDelete(ctx context.Context, table, recordID, actor string) (model.TrashEntry, error)
	Restore(ctx context.Context, trashID string) error
	Purge(ctx context.Context, trashID string) error
	GetTrashEntry(ctx context.Context, id string) (model.TrashEntry, error)
	ListTrash(ctx context.Context) ([]model.TrashEntry, error)

	GetLoan(ctx context.Context, id string) (model.Loan, error)
}

type TrashService struct {
	repo TrashStore
	log  *zap.Logger
}

func NewTrashService(repo TrashStore, log *zap.Logger) *TrashService {
	return &TrashService{
		repo: repo,
		log:  log.Named("trash"),
	}
}

// SoftDelete flags the record and snapshots it into the trash. A loan
// that is still out cannot be deleted: returning is the only path that
// restores stock, so trashing an open loan would lose a copy.
func (s *TrashService) SoftDelete(ctx context.Context, table, recordID, actor string) (model.TrashEntry, error) {
	if table == model.TableLoans {
		loan, err := s.repo.GetLoan(ctx, recordID)
		if err != nil {
			return model.TrashEntry{}, err
		}
		if !loan.Returned() {
			return model.TrashEntry{}, errs.ErrLoanActive
		}
	}
	return s.repo.SoftDelete(ctx, table, recordID, actor)
}

// Restore brings the record back exactly as flagged, dropping the
// trash entry. Deleting a member or book never cascaded to its loans,
// so nothing else needs repair here.
func (s *TrashService) Restore(ctx context.Context, trashID string) error {
	return s.repo.Restore(ctx, trashID)
}

// Purge removes the record and its trash entry for good.
func (s *TrashService) Purge(ctx context.Context, trashID string) error {
	return s.repo.Purge(ctx, trashID)
}

func (s *TrashService) Get(ctx context.Context, id string) (model.TrashEntry, error) {
	return s.repo.GetTrashEntry(ctx, id)
}

func (s *TrashService) List(ctx context.Context) ([]model.TrashEntry, error) {
	return s.repo.ListTrash(ctx)
}
