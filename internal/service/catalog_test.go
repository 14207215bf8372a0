package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perpusid/perpustakaan-service/internal/model"
	"github.com/perpusid/perpustakaan-service/internal/service"
)

// fakeCatalogStore only captures CreateMember; the rest is passthrough
// plumbing the catalog service never touches.
type fakeCatalogStore struct {
	createdMember model.CreateMemberRequest
}

func (f *fakeCatalogStore) CreateBook(context.Context, model.CreateBookRequest) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeCatalogStore) GetBook(context.Context, string) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeCatalogStore) ListBooks(context.Context, bool) ([]model.BookCirculation, error) {
	return nil, nil
}

func (f *fakeCatalogStore) UpdateBook(context.Context, string, model.UpdateBookRequest) (model.Book, error) {
	return model.Book{}, nil
}

func (f *fakeCatalogStore) CreateMember(_ context.Context, req model.CreateMemberRequest) (model.Member, error) {
	f.createdMember = req
	return model.Member{}, nil
}

func (f *fakeCatalogStore) GetMember(context.Context, string) (model.Member, error) {
	return model.Member{}, nil
}

func (f *fakeCatalogStore) ListMembers(context.Context, bool) ([]model.Member, error) {
	return nil, nil
}

func (f *fakeCatalogStore) UpdateMember(context.Context, string, model.UpdateMemberRequest) (model.Member, error) {
	return model.Member{}, nil
}

func (f *fakeCatalogStore) CreateStaff(context.Context, model.CreateStaffRequest) (model.Staff, error) {
	return model.Staff{}, nil
}

func (f *fakeCatalogStore) GetStaff(context.Context, string) (model.Staff, error) {
	return model.Staff{}, nil
}

func (f *fakeCatalogStore) ListStaff(context.Context, bool) ([]model.Staff, error) {
	return nil, nil
}

func (f *fakeCatalogStore) UpdateStaff(context.Context, string, model.UpdateStaffRequest) (model.Staff, error) {
	return model.Staff{}, nil
}

func TestCatalogService_CreateMember_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()
		store := &fakeCatalogStore{}
		svc := service.NewCatalogService(store)

		_, err := svc.CreateMember(ctx, model.CreateMemberRequest{
			FullName: "Budi Santoso",
			Email:    "budi@example.com",
		})
		require.NoError(t, err)
		require.Equal(t, model.MemberActive, store.createdMember.Status)
		require.True(t, store.createdMember.RegisteredAt.Equal(model.Today()))
	})

	t.Run("explicit values kept", func(t *testing.T) {
		t.Parallel()
		store := &fakeCatalogStore{}
		svc := service.NewCatalogService(store)

		registered := model.NewDate(2023, 6, 1)
		_, err := svc.CreateMember(ctx, model.CreateMemberRequest{
			FullName:     "Siti Aminah",
			Email:        "siti@example.com",
			RegisteredAt: registered,
			Status:       model.MemberInactive,
		})
		require.NoError(t, err)
		require.Equal(t, model.MemberInactive, store.createdMember.Status)
		require.True(t, store.createdMember.RegisteredAt.Equal(registered))
	})
}
