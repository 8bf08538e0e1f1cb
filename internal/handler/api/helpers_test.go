//go:build unit

package api_test

import (
	"strings"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	userToken    = "user-token"
	partnerToken = "partner-token"
)

var (
	userActor    = shared.Actor{UserID: "u1", Roles: []string{member.RoleUser}}
	partnerActor = shared.Actor{UserID: "owner1", Roles: []string{member.RolePartner}}
)

// fakeAuth maps the two fixed bearer tokens to actors and rejects the rest.
func fakeAuth(c *gin.Context) {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	switch token {
	case userToken:
		c.Set("actor", userActor)
	case partnerToken:
		c.Set("actor", partnerActor)
	default:
		httperr.Abort(c, errs.ErrNeedLogin)
		return
	}
	c.Next()
}
