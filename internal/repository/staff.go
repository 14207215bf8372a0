package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

type StaffRepository interface {
	CreateStaff(ctx context.Context, req model.CreateStaffRequest) (model.Staff, error)
	GetStaff(ctx context.Context, id string) (model.Staff, error)
	ListStaff(ctx context.Context, includeDeleted bool) ([]model.Staff, error)
	UpdateStaff(ctx context.Context, id string, req model.UpdateStaffRequest) (model.Staff, error)
}

func (r *repository) CreateStaff(ctx context.Context, req model.CreateStaffRequest) (model.Staff, error) {
	query, args, err := qb.Insert(staffTableName).
		Columns("name", "position", "phone", "address").
		Values(req.Name, req.Position, req.Phone, req.Address).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Staff{}, err
	}

	var st model.Staff
	if err := r.db.GetContext(ctx, &st, query, args...); err != nil {
		return model.Staff{}, wrapPgError(err)
	}
	return st, nil
}

func (r *repository) GetStaff(ctx context.Context, id string) (model.Staff, error) {
	query, args, err := qb.Select("*").
		From(staffTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Staff{}, err
	}

	var st model.Staff
	if err := r.db.GetContext(ctx, &st, query, args...); err != nil {
		return model.Staff{}, wrapPgError(err)
	}
	return st, nil
}

func (r *repository) ListStaff(ctx context.Context, includeDeleted bool) ([]model.Staff, error) {
	q := qb.Select("*").
		From(staffTableName).
		OrderBy("created_at")

	if !includeDeleted {
		q = q.Where(sq.Eq{"is_deleted": false})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var staff []model.Staff
	if err := r.db.SelectContext(ctx, &staff, query, args...); err != nil {
		return nil, wrapPgError(err)
	}
	return staff, nil
}

func (r *repository) UpdateStaff(ctx context.Context, id string, req model.UpdateStaffRequest) (model.Staff, error) {
	sets := map[string]any{}
	if req.Name != nil {
		sets["name"] = *req.Name
	}
	if req.Position != nil {
		sets["position"] = *req.Position
	}
	if req.Phone != nil {
		sets["phone"] = *req.Phone
	}
	if req.Address != nil {
		sets["address"] = *req.Address
	}
	if len(sets) == 0 {
		return r.GetStaff(ctx, id)
	}
	sets["updated_at"] = sq.Expr("now()")

	query, args, err := qb.Update(staffTableName).
		SetMap(sets).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Staff{}, err
	}

	var st model.Staff
	if err := r.db.GetContext(ctx, &st, query, args...); err != nil {
		return model.Staff{}, wrapPgError(err)
	}
	return st, nil
}
