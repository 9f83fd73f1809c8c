package api

import (
	"net/http"

	reqdto "parking-occupancy/internal/handler/dto/request"
	resdto "parking-occupancy/internal/handler/dto/response"
	"parking-occupancy/internal/handler/httperr"
	"parking-occupancy/internal/handler/middleware"
	"parking-occupancy/internal/pkg/config"
	"parking-occupancy/internal/pkg/cookie"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = errs.New("operator not authenticated")

type AuthHandler struct {
	cmds      commands.AuthCommands
	operators queries.OperatorQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, operators queries.OperatorQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, operators: operators, cookieCfg: cfg.Cookie}
}

// @Summary Operator login
// @Description Returns an access token and also sets it as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Operator logout
// @Description Clears the access token cookie. Bearer tokens simply expire.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OperatorResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Operator not authenticated", nil)
		return
	}

	op, err := h.operators.GetCurrent(c.Request.Context(), operatorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOperatorRM(op))
}
