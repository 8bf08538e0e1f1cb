//go:build unit

package member_test

import (
	"strings"
	"testing"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/pkg/errs"
	"store-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.MemberBuilder)
		errIs  error
	}{
		{name: "user"},
		{name: "partner", mutate: func(b *builder.MemberBuilder) { b.Type = member.TypePartner }},
		{name: "blank id", mutate: func(b *builder.MemberBuilder) { b.UserID = "  " }, errIs: member.ErrBlankUserID},
		{
			name:   "id too long",
			mutate: func(b *builder.MemberBuilder) { b.UserID = strings.Repeat("x", member.MaxUserIDLength+1) },
			errIs:  member.ErrBlankUserID,
		},
		{name: "blank name", mutate: func(b *builder.MemberBuilder) { b.Name = "" }, errIs: member.ErrBlankName},
		{name: "blank phone", mutate: func(b *builder.MemberBuilder) { b.Phone = "" }, errIs: member.ErrBlankPhone},
		{name: "missing hash", mutate: func(b *builder.MemberBuilder) { b.PasswordHash = "" }, errIs: member.ErrBlankHash},
		{name: "unknown type", mutate: func(b *builder.MemberBuilder) { b.Type = "ADMIN" }, errIs: member.ErrInvalidType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewMemberBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			m, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest), "want INVALID_REQUEST, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{b.Type.Role()}, m.Roles())
		})
	}
}

func TestParseType(t *testing.T) {
	cases := map[string]member.Type{
		"":          member.TypeUser,
		"user":      member.TypeUser,
		"PARTNER":   member.TypePartner,
		" partner ": member.TypePartner,
	}
	for in, want := range cases {
		got, err := member.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := member.ParseType("owner")
	assert.ErrorIs(t, err, member.ErrInvalidType)
}

func TestMember_Roles(t *testing.T) {
	assert.Equal(t, []string{member.RoleUser}, builder.NewMemberBuilder().MustDomain().Roles())
	assert.Equal(t, []string{member.RolePartner}, builder.NewPartnerBuilder().MustDomain().Roles())
}

func TestMember_EnsureDeletableBy(t *testing.T) {
	m := builder.NewPartnerBuilder().MustDomain()

	assert.NoError(t, m.EnsureDeletableBy("owner1", false))
	assert.ErrorIs(t, m.EnsureDeletableBy("u1", false), errs.ErrCannotDeleteOtherMember)
	assert.ErrorIs(t, m.EnsureDeletableBy("owner1", true), errs.ErrMemberHasStore)
}
