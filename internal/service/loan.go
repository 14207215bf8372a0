package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/errs"
	"github.com/perpusid/perpustakaan-service/internal/model"
)

// LoanStore is the slice of the repository the lifecycle engine needs.
type LoanStore interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	GetLoan(ctx context.Context, id string) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) ([]model.Loan, error)
	ReturnLoan(ctx context.Context, id string, actual model.Date, fine int64) (model.Loan, error)
	ListDueLoans(ctx context.Context, reference model.Date) ([]model.Loan, error)
	MarkOverdue(ctx context.Context, id string, fine int64) error

	GetMember(ctx context.Context, id string) (model.Member, error)
	GetStaff(ctx context.Context, id string) (model.Staff, error)
}

type LoanService struct {
	repo       LoanStore
	events     Publisher
	finePerDay int64
	log        *zap.Logger
}

func NewLoanService(repo LoanStore, events Publisher, finePerDay int64, log *zap.Logger) *LoanService {
	if finePerDay <= 0 {
		finePerDay = DefaultFinePerDay
	}
	return &LoanService{
		repo:       repo,
		events:     events,
		finePerDay: finePerDay,
		log:        log.Named("loans"),
	}
}

// Create opens a loan for an active member and takes one copy off the
// shelf. Book existence and the stock guard live inside the store's
// atomic unit, so nothing is committed when the book is out of stock.
func (s *LoanService) Create(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	if req.PlannedReturnDate.Before(req.BorrowDate) {
		return model.Loan{}, errors.Wrap(errs.ErrValidation, "planned return date precedes borrow date")
	}

	member, err := s.repo.GetMember(ctx, req.MemberID)
	if err != nil {
		return model.Loan{}, errors.Wrap(err, "member")
	}
	if member.Status != model.MemberActive {
		return model.Loan{}, errs.ErrMemberInactive
	}
	if _, err := s.repo.GetStaff(ctx, req.StaffID); err != nil {
		return model.Loan{}, errors.Wrap(err, "staff")
	}

	loan, err := s.repo.CreateLoan(ctx, req)
	if err != nil {
		return model.Loan{}, err
	}

	s.events.PublishLoanEvent(model.LoanEvent{
		Type:     model.LoanCreated,
		LoanID:   loan.ID,
		MemberID: loan.MemberID,
		BookID:   loan.BookID,
		Date:     loan.BorrowDate,
	})
	return loan, nil
}

// Return closes the loan at the actual return date. The fine is fixed
// here and never recomputed afterwards; the copy goes back on the shelf
// in the same atomic unit.
func (s *LoanService) Return(ctx context.Context, loanID string, actual model.Date) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, loanID)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Returned() {
		return model.Loan{}, errs.ErrAlreadyReturned
	}
	if actual.Before(loan.BorrowDate) {
		return model.Loan{}, errors.Wrap(errs.ErrValidation, "return date precedes borrow date")
	}

	fine := CalculateFine(loan.PlannedReturnDate, actual, s.finePerDay)
	returned, err := s.repo.ReturnLoan(ctx, loanID, actual, fine)
	if err != nil {
		return model.Loan{}, err
	}

	s.events.PublishLoanEvent(model.LoanEvent{
		Type:     model.LoanReturned,
		LoanID:   returned.ID,
		MemberID: returned.MemberID,
		BookID:   returned.BookID,
		Fine:     returned.Fine,
		Date:     actual,
	})
	return returned, nil
}

// RefreshOverdue re-derives the overdue state of every open loan
// against the reference date and returns how many were updated.
// Running it twice with the same date writes the same fines, so it is
// safe to call on every read.
func (s *LoanService) RefreshOverdue(ctx context.Context, reference model.Date) (int, error) {
	due, err := s.repo.ListDueLoans(ctx, reference)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, loan := range due {
		fine := CalculateFine(loan.PlannedReturnDate, reference, s.finePerDay)
		if err := s.repo.MarkOverdue(ctx, loan.ID, fine); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				// Raced with a return or delete; the loan is no
				// longer ours to flag.
				continue
			}
			return updated, err
		}
		updated++

		if loan.Status != model.StatusOverdue {
			s.events.PublishLoanEvent(model.LoanEvent{
				Type:     model.LoanOverdue,
				LoanID:   loan.ID,
				MemberID: loan.MemberID,
				BookID:   loan.BookID,
				Fine:     fine,
				Date:     reference,
			})
		}
	}
	if updated > 0 {
		s.log.Debug("overdue refresh", zap.Int("updated", updated), zap.String("reference", reference.String()))
	}
	return updated, nil
}

func (s *LoanService) Get(ctx context.Context, id string) (model.Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *LoanService) List(ctx context.Context, f model.LoanFilter) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx, f)
}
