package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/domain/store"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/pkg/password"
	"store-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=member.go -destination=../../../tests/mock/commands/member_mock.go -package=commandsmock

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type TokenIssuer interface {
	GenerateToken(userID string, roles []string) (string, time.Time, error)
}

type SignUpInput struct {
	UserID     string
	Password   string
	Name       string
	Phone      string
	MemberType string
}

type SignUpResult struct {
	UserID     string
	Name       string
	Phone      string
	MemberType string
}

type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn time.Duration
}

type MemberCommands interface {
	SignUp(ctx context.Context, in SignUpInput) (*SignUpResult, error)
	SignIn(ctx context.Context, userID, rawPassword string) (*SignInResult, error)
	Delete(ctx context.Context, actor shared.Actor, memberID string) error
}

type memberCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	tokens TokenIssuer
	cache  shared.StoreCacheInvalidator
	clock  clock.Clock
}

func NewMemberCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer, cache shared.StoreCacheInvalidator, clk clock.Clock) MemberCommands {
	return &memberCommandsImpl{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
		cache:  cache,
		clock:  clk,
	}
}

func (m *memberCommandsImpl) SignUp(ctx context.Context, in SignUpInput) (*SignUpResult, error) {
	memberType, err := member.ParseType(in.MemberType)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < password.MinLength || strings.TrimSpace(in.Password) == "" {
		return nil, errs.Mark(errs.New("password must be at least 4 characters"), errs.ErrInvalidRequest)
	}

	hash, err := m.hasher.Hash(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	mem, err := member.NewMember(in.UserID, hash, in.Name, in.Phone, memberType, m.clock.Now())
	if err != nil {
		return nil, err
	}

	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Members().Create(ctx, mem), nil, constraintMemberPK, errs.ErrAlreadyUsingID)
	})
	if err != nil {
		return nil, err
	}

	return &SignUpResult{
		UserID:     mem.UserID(),
		Name:       mem.Name(),
		Phone:      mem.Phone(),
		MemberType: mem.Type().String(),
	}, nil
}

func (m *memberCommandsImpl) SignIn(ctx context.Context, userID, rawPassword string) (*SignInResult, error) {
	var mem *member.Member
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Members().FindByID(ctx, strings.TrimSpace(userID))
		if err != nil {
			return notFound(err, errs.ErrNotFoundMember)
		}
		mem = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := m.hasher.Compare(mem.PasswordHash(), rawPassword); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, errs.ErrPasswordUnmatch
		}
		return nil, errs.Wrap(err, "compare password")
	}

	token, expiresAt, err := m.tokens.GenerateToken(mem.UserID(), mem.Roles())
	if err != nil {
		return nil, errs.Wrap(err, "issue token")
	}
	return &SignInResult{
		Token:     token,
		ExpiresAt: expiresAt,
		ExpiresIn: expiresAt.Sub(m.clock.Now()),
	}, nil
}

// Delete removes the actor's own member record. Reservations and reviews go
// with it, so the ratings of every store the member reviewed are recomputed.
func (m *memberCommandsImpl) Delete(ctx context.Context, actor shared.Actor, memberID string) error {
	if !actor.Authenticated() {
		return errs.ErrNeedLogin
	}
	if actor.UserID != memberID {
		return errs.ErrCannotDeleteOtherMember
	}

	var reviewed []int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mem, err := tx.Members().FindByID(ctx, memberID)
		if err != nil {
			return notFound(err, errs.ErrNotFoundMember)
		}
		ownsStore, err := tx.Members().OwnsStore(ctx, memberID)
		if err != nil {
			return err
		}
		if err := mem.EnsureDeletableBy(actor.UserID, ownsStore); err != nil {
			return err
		}

		storeIDs, err := tx.Reviews().StoreIDsByMember(ctx, memberID)
		if err != nil {
			return err
		}
		// Lock in id order before the cascade so concurrent review writers
		// queue behind this transaction.
		stores := make([]*store.Store, 0, len(storeIDs))
		for _, id := range storeIDs {
			st, err := lockStore(ctx, tx, id)
			if err != nil {
				return err
			}
			stores = append(stores, st)
		}

		if err := tx.Members().Delete(ctx, memberID); err != nil {
			return notFound(err, errs.ErrNotFoundMember)
		}

		now := m.clock.Now()
		for _, st := range stores {
			if err := rerate(ctx, tx, st, now); err != nil {
				return err
			}
		}
		reviewed = storeIDs
		return nil
	})
	if err != nil {
		return err
	}

	m.cache.Invalidate(ctx, reviewed...)
	return nil
}
