package handler

import (
	"context"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type CatalogService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context, includeDeleted bool) ([]model.BookCirculation, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)

	CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error)
	GetMember(ctx context.Context, id string) (model.Member, error)
	ListMembers(ctx context.Context, includeDeleted bool) ([]model.Member, error)
	UpdateMember(ctx context.Context, id string, req model.UpdateMemberRequest) (model.Member, error)

	CreateStaff(ctx context.Context, req model.CreateStaffRequest) (model.Staff, error)
	GetStaff(ctx context.Context, id string) (model.Staff, error)
	ListStaff(ctx context.Context, includeDeleted bool) ([]model.Staff, error)
	UpdateStaff(ctx context.Context, id string, req model.UpdateStaffRequest) (model.Staff, error)
}

type LoanService interface {
	Create(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	Get(ctx context.Context, id string) (model.Loan, error)
	List(ctx context.Context, f model.LoanFilter) ([]model.Loan, error)
	Return(ctx context.Context, loanID string, actual model.Date) (model.Loan, error)
	RefreshOverdue(ctx context.Context, reference model.Date) (int, error)
}

type TrashService interface {
	SoftDelete(ctx context.Context, table, recordID, actor string) (model.TrashEntry, error)
	Restore(ctx context.Context, trashID string) error
	Purge(ctx context.Context, trashID string) error
	List(ctx context.Context) ([]model.TrashEntry, error)
}

type ReportService interface {
	PopularBooks(ctx context.Context, r model.DateRange) ([]model.PopularBook, error)
	ActiveMembers(ctx context.Context, r model.DateRange) ([]model.MemberActivity, error)
	MonthlyTrend(ctx context.Context, reference model.Date) ([]model.MonthlyCount, error)
	Overdue(ctx context.Context, reference model.Date) ([]model.OverdueLoan, error)
	Stats(ctx context.Context, reference model.Date) (model.Stats, error)
}
