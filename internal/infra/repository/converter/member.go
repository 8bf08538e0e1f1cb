package converter

import (
	"store-reservation/internal/domain/member"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
)

func MemberToCreateParams(m *member.Member) sqlc.CreateMemberParams {
	return sqlc.CreateMemberParams{
		UserID:       m.UserID(),
		PasswordHash: m.PasswordHash(),
		Name:         m.Name(),
		Phone:        m.Phone(),
		MemberType:   m.Type().String(),
		CreatedAt:    pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MemberFromRow(row sqlc.Member) *member.Member {
	return member.ReconstructMember(
		row.UserID,
		row.PasswordHash,
		row.Name,
		row.Phone,
		member.Type(row.MemberType),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
