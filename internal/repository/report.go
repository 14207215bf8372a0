package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

type ReportRepository interface {
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

func (r *repository) PopularBooks(ctx context.Context, rng model.DateRange) ([]model.PopularBook, error) {
	q := `
select b.id       as book_id,
       b.title,
       b.author,
       b.category,
       count(l.id) as loan_count
from books b
         left join loans l on l.book_id = b.id
    and not l.is_deleted
    and l.status = 'RETURNED'
    and l.borrow_date between $1 and $2
where not b.is_deleted
group by b.id
order by loan_count desc, b.created_at
limit 10`
	var items []model.PopularBook
	if err := r.db.SelectContext(ctx, &items, q, rng.From, rng.To); err != nil {
		return nil, wrapPgError(err)
	}
	return items, nil
}

func (r *repository) ActiveMembers(ctx context.Context, rng model.DateRange) ([]model.MemberActivity, error) {
	q := `
select m.id            as member_id,
       m.full_name,
       m.member_number,
       m.email,
       count(l.id) filter (where l.status = 'RETURNED' and l.borrow_date between $1 and $2) as completed_loans,
       count(l.id) filter (where l.actual_return_date is null)                              as outstanding_loans
from members m
         left join loans l on l.member_id = m.id and not l.is_deleted
where not m.is_deleted
group by m.id
order by completed_loans desc, m.created_at`
	var items []model.MemberActivity
	if err := r.db.SelectContext(ctx, &items, q, rng.From, rng.To); err != nil {
		return nil, wrapPgError(err)
	}
	return items, nil
}

// MonthlyTrend buckets completed loans by borrow month over the six
// months ending at the reference month. Empty months still appear.
func (r *repository) MonthlyTrend(ctx context.Context, reference model.Date) ([]model.MonthlyCount, error) {
	q := `
select to_char(months.m, 'YYYY-MM') as month,
       count(l.id)                  as loans
from generate_series(date_trunc('month', $1::date) - interval '5 months',
                     date_trunc('month', $1::date), interval '1 month') as months(m)
         left join loans l on date_trunc('month', l.borrow_date) = months.m
    and not l.is_deleted
    and l.status = 'RETURNED'
group by months.m
order by months.m`
	var items []model.MonthlyCount
	if err := r.db.SelectContext(ctx, &items, q, reference); err != nil {
		return nil, wrapPgError(err)
	}
	return items, nil
}

// OverdueLoans lists loans late at the reference date: returned after
// the planned date, or still out past it. Days late count against the
// actual return date when there is one, the reference date otherwise.
func (r *repository) OverdueLoans(ctx context.Context, reference model.Date) ([]model.OverdueLoan, error) {
	q := `
select l.id                      as loan_id,
       l.member_id,
       coalesce(m.full_name, '') as member_name,
       l.book_id,
       coalesce(b.title, '')     as book_title,
       l.borrow_date,
       l.planned_return_date,
       l.actual_return_date,
       coalesce(l.actual_return_date, $1::date) - l.planned_return_date as days_late,
       l.fine
from loans l
         left join members m on m.id = l.member_id
         left join books b on b.id = l.book_id
where not l.is_deleted
  and coalesce(l.actual_return_date, $1::date) > l.planned_return_date
order by days_late desc, l.planned_return_date`
	var items []model.OverdueLoan
	if err := r.db.SelectContext(ctx, &items, q, reference); err != nil {
		return nil, wrapPgError(err)
	}
	return items, nil
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(booksTableName).Where(sq.Eq{"is_deleted": false}))
}

func (r *repository) CountMembers(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(membersTableName).Where(sq.Eq{"is_deleted": false}))
}

func (r *repository) CountLoansOn(ctx context.Context, day model.Date) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(loansTableName).
		Where(sq.Eq{"is_deleted": false, "borrow_date": day}))
}

func (r *repository) CountOverdue(ctx context.Context, reference model.Date) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(loansTableName).
		Where(sq.Eq{"is_deleted": false, "actual_return_date": nil}).
		Where(sq.Lt{"planned_return_date": reference}))
}

func (r *repository) SumFines(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("coalesce(sum(fine), 0)").
		From(loansTableName).
		Where(sq.Eq{"is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, wrapPgError(err)
	}
	return total, nil
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, wrapPgError(err)
	}
	return n, nil
}
