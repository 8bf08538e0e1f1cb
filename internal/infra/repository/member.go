package repository

import (
	"context"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/repository/converter"
	sqlc "store-reservation/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=member.go -destination=../../../tests/mock/repository/member_mock.go -package=repositorymock

type MemberWriteQueries interface {
	CreateMember(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMemberParams) error
	GetMember(ctx context.Context, db sqlc.DBTX, userID string) (sqlc.Member, error)
	DeleteMember(ctx context.Context, db sqlc.DBTX, userID string) (int64, error)
	MemberOwnsStore(ctx context.Context, db sqlc.DBTX, ownerID string) (bool, error)
}

type MemberRepository struct {
	queries MemberWriteQueries
	db      sqlc.DBTX
}

func NewMemberRepository(queries MemberWriteQueries, db sqlc.DBTX) *MemberRepository {
	return &MemberRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	if err := r.queries.CreateMember(ctx, r.db, converter.MemberToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create member", err)
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, userID string) (*member.Member, error) {
	row, err := r.queries.GetMember(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member", err)
	}
	return converter.MemberFromRow(row), nil
}

func (r *MemberRepository) Delete(ctx context.Context, userID string) error {
	n, err := r.queries.DeleteMember(ctx, r.db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete member", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("member not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MemberRepository) OwnsStore(ctx context.Context, userID string) (bool, error) {
	owns, err := r.queries.MemberOwnsStore(ctx, r.db, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check store ownership", err)
	}
	return owns, nil
}
