package service_test

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/errs"
	"github.com/perpusid/perpustakaan-service/internal/model"
	"github.com/perpusid/perpustakaan-service/internal/service"
)

// fakeTrashStore mirrors the repository's soft-delete unit: snapshot,
// flag and trash entry move together.
type fakeTrashStore struct {
	mu    sync.Mutex
	books map[string]*model.Book
	loans map[string]*model.Loan
	trash map[string]model.TrashEntry
	seq   int
}

func newFakeTrashStore() *fakeTrashStore {
	return &fakeTrashStore{
		books: make(map[string]*model.Book),
		loans: make(map[string]*model.Loan),
		trash: make(map[string]model.TrashEntry),
	}
}

func (f *fakeTrashStore) record(table, id string) (deleted *bool, snapshot any, ok bool) {
	switch table {
	case model.TableBooks:
		if b, found := f.books[id]; found {
			return &b.IsDeleted, b, true
		}
	case model.TableLoans:
		if l, found := f.loans[id]; found {
			return &l.IsDeleted, l, true
		}
	}
	return nil, nil, false
}

func (f *fakeTrashStore) SoftDelete(_ context.Context, table, recordID, actor string) (model.TrashEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted, snapshot, ok := f.record(table, recordID)
	if !ok {
		return model.TrashEntry{}, errs.ErrNotFound
	}
	if *deleted {
		return model.TrashEntry{}, errs.ErrAlreadyDeleted
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return model.TrashEntry{}, err
	}
	*deleted = true
	f.seq++
	entry := model.TrashEntry{
		ID:          "trash-" + strconv.Itoa(f.seq),
		SourceTable: table,
		RecordID:    recordID,
		Snapshot:    data,
		DeletedBy:   actor,
		DeletedAt:   time.Now(),
	}
	f.trash[entry.ID] = entry
	return entry, nil
}

func (f *fakeTrashStore) Restore(_ context.Context, trashID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.trash[trashID]
	if !ok {
		return errs.ErrNotFound
	}
	deleted, _, ok := f.record(entry.SourceTable, entry.RecordID)
	if !ok {
		return errs.ErrGone
	}
	*deleted = false
	delete(f.trash, trashID)
	return nil
}

func (f *fakeTrashStore) Purge(_ context.Context, trashID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.trash[trashID]
	if !ok {
		return errs.ErrNotFound
	}
	switch entry.SourceTable {
	case model.TableBooks:
		delete(f.books, entry.RecordID)
	case model.TableLoans:
		delete(f.loans, entry.RecordID)
	}
	delete(f.trash, trashID)
	return nil
}

func (f *fakeTrashStore) GetTrashEntry(_ context.Context, id string) (model.TrashEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.trash[id]
	if !ok {
		return model.TrashEntry{}, errs.ErrNotFound
	}
	return entry, nil
}

func (f *fakeTrashStore) ListTrash(_ context.Context) ([]model.TrashEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.TrashEntry, 0, len(f.trash))
	for _, entry := range f.trash {
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeTrashStore) GetLoan(_ context.Context, id string) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	loan, ok := f.loans[id]
	if !ok {
		return model.Loan{}, errs.ErrNotFound
	}
	return *loan, nil
}

func seedTrashStore() *fakeTrashStore {
	store := newFakeTrashStore()
	store.books["b1"] = &model.Book{ID: "b1", Title: "Laskar Pelangi", ISBN: "978-979-3062-79-2", Stock: 3}
	returned := model.NewDate(2024, 1, 8)
	store.loans["l-open"] = &model.Loan{
		ID:                "l-open",
		BookID:            "b1",
		BorrowDate:        model.NewDate(2024, 1, 1),
		PlannedReturnDate: model.NewDate(2024, 1, 8),
		Status:            model.StatusBorrowed,
	}
	store.loans["l-closed"] = &model.Loan{
		ID:                "l-closed",
		BookID:            "b1",
		BorrowDate:        model.NewDate(2024, 1, 1),
		PlannedReturnDate: model.NewDate(2024, 1, 8),
		ActualReturnDate:  &returned,
		Status:            model.StatusReturned,
	}
	return store
}

func TestTrashService_SoftDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("book goes to trash with snapshot", func(t *testing.T) {
		t.Parallel()
		store := seedTrashStore()
		svc := service.NewTrashService(store, zap.NewNop())

		entry, err := svc.SoftDelete(ctx, model.TableBooks, "b1", "admin")
		require.NoError(t, err)
		require.Equal(t, model.TableBooks, entry.SourceTable)
		require.Equal(t, "b1", entry.RecordID)
		require.Equal(t, "admin", entry.DeletedBy)
		require.True(t, store.books["b1"].IsDeleted)

		var snap model.Book
		require.NoError(t, json.Unmarshal(entry.Snapshot, &snap))
		require.Equal(t, "Laskar Pelangi", snap.Title)
		require.Equal(t, 3, snap.Stock)
	})

	t.Run("deleting twice conflicts", func(t *testing.T) {
		t.Parallel()
		store := seedTrashStore()
		svc := service.NewTrashService(store, zap.NewNop())

		_, err := svc.SoftDelete(ctx, model.TableBooks, "b1", "admin")
		require.NoError(t, err)
		_, err = svc.SoftDelete(ctx, model.TableBooks, "b1", "admin")
		require.ErrorIs(t, err, errs.ErrAlreadyDeleted)
	})

	t.Run("open loan cannot be deleted", func(t *testing.T) {
		t.Parallel()
		store := seedTrashStore()
		svc := service.NewTrashService(store, zap.NewNop())

		_, err := svc.SoftDelete(ctx, model.TableLoans, "l-open", "admin")
		require.ErrorIs(t, err, errs.ErrLoanActive)
		require.Empty(t, store.trash)
	})

	t.Run("returned loan can be deleted", func(t *testing.T) {
		t.Parallel()
		store := seedTrashStore()
		svc := service.NewTrashService(store, zap.NewNop())

		entry, err := svc.SoftDelete(ctx, model.TableLoans, "l-closed", "admin")
		require.NoError(t, err)
		require.Equal(t, model.TableLoans, entry.SourceTable)
		require.True(t, store.loans["l-closed"].IsDeleted)
	})

	t.Run("unknown record", func(t *testing.T) {
		t.Parallel()
		svc := service.NewTrashService(seedTrashStore(), zap.NewNop())

		_, err := svc.SoftDelete(ctx, model.TableBooks, "ghost", "admin")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestTrashService_Restore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("restore clears the flag and drops the entry", func(t *testing.T) {
		t.Parallel()
		store := seedTrashStore()
		svc := service.NewTrashService(store, zap.NewNop())

		entry, err := svc.SoftDelete(ctx, model.TableBooks, "b1", "admin")
		require.NoError(t, err)

		require.NoError(t, svc.Restore(ctx, entry.ID))
		require.False(t, store.books["b1"].IsDeleted)
		require.Empty(t, store.trash)
	})

	t.Run("unknown entry", func(t *testing.T) {
		t.Parallel()
		svc := service.NewTrashService(seedTrashStore(), zap.NewNop())

		require.ErrorIs(t, svc.Restore(ctx, "ghost"), errs.ErrNotFound)
	})

	t.Run("live record gone", func(t *testing.T) {
		t.Parallel()
		store := seedTrashStore()
		svc := service.NewTrashService(store, zap.NewNop())

		entry, err := svc.SoftDelete(ctx, model.TableBooks, "b1", "admin")
		require.NoError(t, err)

		// The row disappears underneath the trash entry.
		delete(store.books, "b1")
		require.ErrorIs(t, svc.Restore(ctx, entry.ID), errs.ErrGone)
	})
}

func TestTrashService_Purge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := seedTrashStore()
	svc := service.NewTrashService(store, zap.NewNop())

	entry, err := svc.SoftDelete(ctx, model.TableBooks, "b1", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Purge(ctx, entry.ID))
	require.NotContains(t, store.books, "b1")
	require.Empty(t, store.trash)

	require.ErrorIs(t, svc.Purge(ctx, entry.ID), errs.ErrNotFound)
}
