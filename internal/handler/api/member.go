package api

import (
	"net/http"

	reqdto "store-reservation/internal/handler/dto/request"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/pkg/config"
	"store-reservation/internal/pkg/cookie"
	"store-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	cmds      commands.MemberCommands
	cookieCfg config.CookieConfig
}

func NewMemberHandler(cmds commands.MemberCommands, cfg config.Config) *MemberHandler {
	return &MemberHandler{cmds: cmds, cookieCfg: cfg.Cookie}
}

// @Summary Sign up
// @Description Register a USER or PARTNER member
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign-up request"
// @Success 201 {object} resdto.SignUpResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /user/signup [post]
func (h *MemberHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromSignUpResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Sign in
// @Description Exchange credentials for a bearer token; the token is also set as an HttpOnly cookie
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.SignInRequest true "Sign-in request"
// @Success 200 {object} resdto.SignInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/signin [post]
func (h *MemberHandler) SignIn(c *gin.Context) {
	var req reqdto.SignInRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.SignIn(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.SetAccessToken(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromSignInResult(result))
}

// @Summary Delete member
// @Description Delete the caller's own membership
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param memberId path string true "Member user id"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /user/{memberId} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), c.Param("memberId")); err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.Message("delete complete"))
}
