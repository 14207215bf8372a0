package service

import (
	"context"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

// CatalogStore is the slice of the repository backing plain CRUD for
// books, members and staff.
type CatalogStore interface {
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

type CatalogService struct {
	repo CatalogStore
}

func NewCatalogService(repo CatalogStore) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *CatalogService) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *CatalogService) ListBooks(ctx context.Context, includeDeleted bool) ([]model.BookCirculation, error) {
	return s.repo.ListBooks(ctx, includeDeleted)
}

func (s *CatalogService) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *CatalogService) CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	// Registration metadata defaults; borrowing eligibility is decided
	// by the loan engine, not here.
	if req.Status == "" {
		req.Status = model.MemberActive
	}
	if req.RegisteredAt.IsZero() {
		req.RegisteredAt = model.Today()
	}
	return s.repo.CreateMember(ctx, req)
}

func (s *CatalogService) GetMember(ctx context.Context, id string) (model.Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *CatalogService) ListMembers(ctx context.Context, includeDeleted bool) ([]model.Member, error) {
	return s.repo.ListMembers(ctx, includeDeleted)
}

func (s *CatalogService) UpdateMember(ctx context.Context, id string, req model.UpdateMemberRequest) (model.Member, error) {
	return s.repo.UpdateMember(ctx, id, req)
}

func (s *CatalogService) CreateStaff(ctx context.Context, req model.CreateStaffRequest) (model.Staff, error) {
	return s.repo.CreateStaff(ctx, req)
}

func (s *CatalogService) GetStaff(ctx context.Context, id string) (model.Staff, error) {
	return s.repo.GetStaff(ctx, id)
}

func (s *CatalogService) ListStaff(ctx context.Context, includeDeleted bool) ([]model.Staff, error) {
	return s.repo.ListStaff(ctx, includeDeleted)
}

func (s *CatalogService) UpdateStaff(ctx context.Context, id string, req model.UpdateStaffRequest) (model.Staff, error) {
	return s.repo.UpdateStaff(ctx, id, req)
}
