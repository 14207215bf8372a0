package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/errs"
	"github.com/perpusid/perpustakaan-service/internal/model"
)

type LoanRepository interface {
	// CreateLoan inserts the loan and takes one copy off the shelf as a
	// single atomic unit.
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	GetLoan(ctx context.Context, id string) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) ([]model.Loan, error)
	// ReturnLoan closes the loan with the given fine and puts the copy
	// back, atomically. The fine is never touched again afterwards.
	ReturnLoan(ctx context.Context, id string, actual model.Date, fine int64) (model.Loan, error)
	// ListDueLoans returns unreturned loans whose planned return date
	// lies before the reference date.
	ListDueLoans(ctx context.Context, reference model.Date) ([]model.Loan, error)
	MarkOverdue(ctx context.Context, id string, fine int64) error
}

func (r *repository) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	var loan model.Loan
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var stock int
		err := tx.QueryRowContext(ctx,
			`select stock from books where id = $1 and not is_deleted for update`,
			req.BookID).Scan(&stock)
		if err != nil {
			return wrapPgError(err)
		}
		if stock == 0 {
			return errs.ErrOutOfStock
		}

		if _, err := tx.ExecContext(ctx,
			`update books set stock = stock - 1, updated_at = now() where id = $1`,
			req.BookID); err != nil {
			return wrapPgError(err)
		}

		query, args, err := qb.Insert(loansTableName).
			Columns("member_id", "book_id", "staff_id", "borrow_date", "planned_return_date", "status", "fine", "notes").
			Values(req.MemberID, req.BookID, req.StaffID, req.BorrowDate, req.PlannedReturnDate, model.StatusBorrowed, 0, req.Notes).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &loan, query, args...); err != nil {
			r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
			return wrapPgError(err)
		}
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) GetLoan(ctx context.Context, id string) (model.Loan, error) {
	query, args, err := qb.Select("*").
		From(loansTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		return model.Loan{}, wrapPgError(err)
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context, f model.LoanFilter) ([]model.Loan, error) {
	q := qb.Select("*").
		From(loansTableName).
		OrderBy("created_at")

	if !f.IncludeDeleted {
		q = q.Where(sq.Eq{"is_deleted": false})
	}
	if f.MemberID != "" {
		q = q.Where(sq.Eq{"member_id": f.MemberID})
	}
	if f.BookID != "" {
		q = q.Where(sq.Eq{"book_id": f.BookID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, wrapPgError(err)
	}
	return loans, nil
}

func (r *repository) ReturnLoan(ctx context.Context, id string, actual model.Date, fine int64) (model.Loan, error) {
	var loan model.Loan
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q := `
update loans
    set actual_return_date = $2, status = $3, fine = $4, updated_at = now()
where id = $1 and actual_return_date is null and not is_deleted
returning *`
		if err := tx.GetContext(ctx, &loan, q, id, actual, model.StatusReturned, fine); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Either the loan is gone or it was already closed.
				var closed bool
				checkErr := tx.QueryRowContext(ctx,
					`select actual_return_date is not null from loans where id = $1 and not is_deleted`,
					id).Scan(&closed)
				if checkErr == nil && closed {
					return errs.ErrAlreadyReturned
				}
				return errs.ErrNotFound
			}
			return wrapPgError(err)
		}

		// A purged book has no stock row to restore; that is fine.
		_, err := tx.ExecContext(ctx,
			`update books set stock = stock + 1, updated_at = now() where id = $1`,
			loan.BookID)
		return wrapPgError(err)
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) ListDueLoans(ctx context.Context, reference model.Date) ([]model.Loan, error) {
	query, args, err := qb.Select("*").
		From(loansTableName).
		Where(sq.Eq{"actual_return_date": nil, "is_deleted": false}).
		Where(sq.Lt{"planned_return_date": reference}).
		OrderBy("planned_return_date").
		ToSql()
	if err != nil {
		return nil, err
	}

	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, wrapPgError(err)
	}
	return loans, nil
}

func (r *repository) MarkOverdue(ctx context.Context, id string, fine int64) error {
	q := `
update loans
    set status = $2, fine = $3, updated_at = now()
where id = $1 and actual_return_date is null and not is_deleted`
	res, err := r.db.ExecContext(ctx, q, id, model.StatusOverdue, fine)
	if err != nil {
		return wrapPgError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
