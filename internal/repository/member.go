package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

type MemberRepository interface {
	CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error)
	GetMember(ctx context.Context, id string) (model.Member, error)
	ListMembers(ctx context.Context, includeDeleted bool) ([]model.Member, error)
	UpdateMember(ctx context.Context, id string, req model.UpdateMemberRequest) (model.Member, error)
}

// member numbers come off a dedicated sequence so they survive deletes
// without ever being reissued.
var memberNumberExpr = sq.Expr(`'AGT-' || to_char(now(), 'YYYY') || '-' || lpad(nextval('member_number_seq')::text, 4, '0')`)

func (r *repository) CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	query, args, err := qb.Insert(membersTableName).
		Columns("full_name", "member_number", "address", "phone", "email", "registered_at", "status").
		Values(req.FullName, memberNumberExpr, req.Address, req.Phone, req.Email, req.RegisteredAt, req.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		r.log.Error("CreateMember", zap.String("q", query), zap.Any("args", args))
		return model.Member{}, wrapPgError(err)
	}
	return member, nil
}

func (r *repository) GetMember(ctx context.Context, id string) (model.Member, error) {
	query, args, err := qb.Select("*").
		From(membersTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		return model.Member{}, wrapPgError(err)
	}
	return member, nil
}

func (r *repository) ListMembers(ctx context.Context, includeDeleted bool) ([]model.Member, error) {
	q := qb.Select("*").
		From(membersTableName).
		OrderBy("created_at")

	if !includeDeleted {
		q = q.Where(sq.Eq{"is_deleted": false})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var members []model.Member
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, wrapPgError(err)
	}
	return members, nil
}

func (r *repository) UpdateMember(ctx context.Context, id string, req model.UpdateMemberRequest) (model.Member, error) {
	sets := map[string]any{}
	if req.FullName != nil {
		sets["full_name"] = *req.FullName
	}
	if req.Address != nil {
		sets["address"] = *req.Address
	}
	if req.Phone != nil {
		sets["phone"] = *req.Phone
	}
	if req.Email != nil {
		sets["email"] = *req.Email
	}
	if req.Status != nil {
		sets["status"] = *req.Status
	}
	if len(sets) == 0 {
		return r.GetMember(ctx, id)
	}
	sets["updated_at"] = sq.Expr("now()")

	query, args, err := qb.Update(membersTableName).
		SetMap(sets).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		return model.Member{}, wrapPgError(err)
	}
	return member, nil
}
