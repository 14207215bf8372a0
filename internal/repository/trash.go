package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/perpusid/perpustakaan-service/internal/errs"
	"github.com/perpusid/perpustakaan-service/internal/model"
)

type TrashRepository interface {
	// SoftDelete flags the live record and snapshots its pre-delete
	// state into the trash, atomically.
	SoftDelete(ctx context.Context, table, recordID, actor string) (model.TrashEntry, error)
	// Restore clears the flag on the live record and drops the entry.
	Restore(ctx context.Context, trashID string) error
	// Purge removes the live record and the entry for good.
	Purge(ctx context.Context, trashID string) error
	GetTrashEntry(ctx context.Context, id string) (model.TrashEntry, error)
	ListTrash(ctx context.Context) ([]model.TrashEntry, error)
}

// Table names reach these queries as strings, so only known tables may
// ever be interpolated.
var trashableTables = map[string]bool{
	booksTableName:   true,
	membersTableName: true,
	staffTableName:   true,
	loansTableName:   true,
}

func (r *repository) SoftDelete(ctx context.Context, table, recordID, actor string) (model.TrashEntry, error) {
	if !trashableTables[table] {
		return model.TrashEntry{}, errs.ErrValidation
	}

	var entry model.TrashEntry
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var (
			snapshot json.RawMessage
			deleted  bool
		)
		q := fmt.Sprintf(`select to_jsonb(t), is_deleted from %s t where id = $1 for update`, table)
		if err := tx.QueryRowContext(ctx, q, recordID).Scan(&snapshot, &deleted); err != nil {
			return wrapPgError(err)
		}
		if deleted {
			return errs.ErrAlreadyDeleted
		}

		q = fmt.Sprintf(`update %s set is_deleted = true, updated_at = now() where id = $1`, table)
		if _, err := tx.ExecContext(ctx, q, recordID); err != nil {
			return wrapPgError(err)
		}

		query, args, err := qb.Insert(trashTableName).
			Columns("source_table", "record_id", "snapshot", "deleted_by").
			Values(table, recordID, snapshot, actor).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		return wrapPgError(tx.GetContext(ctx, &entry, query, args...))
	})
	if err != nil {
		return model.TrashEntry{}, err
	}
	return entry, nil
}

func (r *repository) Restore(ctx context.Context, trashID string) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		entry, err := getTrashEntryTx(ctx, tx, trashID)
		if err != nil {
			return err
		}

		q := fmt.Sprintf(`update %s set is_deleted = false, updated_at = now() where id = $1`, entry.SourceTable)
		res, err := tx.ExecContext(ctx, q, entry.RecordID)
		if err != nil {
			return wrapPgError(err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return errs.ErrGone
		}

		_, err = tx.ExecContext(ctx, `delete from trash where id = $1`, trashID)
		return wrapPgError(err)
	})
}

func (r *repository) Purge(ctx context.Context, trashID string) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		entry, err := getTrashEntryTx(ctx, tx, trashID)
		if err != nil {
			return err
		}

		// The live record may already be gone; the entry goes either way.
		q := fmt.Sprintf(`delete from %s where id = $1`, entry.SourceTable)
		if _, err := tx.ExecContext(ctx, q, entry.RecordID); err != nil {
			return wrapPgError(err)
		}

		_, err = tx.ExecContext(ctx, `delete from trash where id = $1`, trashID)
		return wrapPgError(err)
	})
}

func getTrashEntryTx(ctx context.Context, tx *sqlx.Tx, trashID string) (model.TrashEntry, error) {
	var entry model.TrashEntry
	err := tx.GetContext(ctx, &entry, `select * from trash where id = $1 for update`, trashID)
	if err != nil {
		return model.TrashEntry{}, wrapPgError(err)
	}
	if !trashableTables[entry.SourceTable] {
		return model.TrashEntry{}, errs.ErrValidation
	}
	return entry, nil
}

func (r *repository) GetTrashEntry(ctx context.Context, id string) (model.TrashEntry, error) {
	query, args, err := qb.Select("*").
		From(trashTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.TrashEntry{}, err
	}

	var entry model.TrashEntry
	if err := r.db.GetContext(ctx, &entry, query, args...); err != nil {
		return model.TrashEntry{}, wrapPgError(err)
	}
	return entry, nil
}

func (r *repository) ListTrash(ctx context.Context) ([]model.TrashEntry, error) {
	query, args, err := qb.Select("*").
		From(trashTableName).
		OrderBy("deleted_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var entries []model.TrashEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, wrapPgError(err)
	}
	return entries, nil
}
