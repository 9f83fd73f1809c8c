package api

import (
	"net/http"

	reqdto "parking-occupancy/internal/handler/dto/request"
	resdto "parking-occupancy/internal/handler/dto/response"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.OccupancyCommands
	q    queries.SessionQueries
}

func NewSessionHandler(cmds commands.OccupancyCommands, q queries.SessionQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q}
}

// @Summary Register vehicle entry
// @Description Opens a session and marks the spot occupied
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EntryRequest true "Entry request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sessions/entry [post]
func (h *SessionHandler) Entry(c *gin.Context) {
	var req reqdto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	sess, err := h.cmds.Entry(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSession(sess))
}

// @Summary Register vehicle exit
// @Description Closes the open session for the plate, bills it and frees the spot
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExitRequest true "Exit request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /sessions/exit [post]
func (h *SessionHandler) Exit(c *gin.Context) {
	var req reqdto.ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	sess, err := h.cmds.Exit(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(sess))
}

// @Summary List open sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} resdto.SessionResponse
// @Router /sessions/active [get]
func (h *SessionHandler) ListActive(c *gin.Context) {
	sessions, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionRMs(sessions))
}

// @Summary Session history
// @Description Closed sessions, newest exit first. The range applies only when both bounds are set.
// @Tags sessions
// @Produce json
// @Param from query string false "RFC3339 or YYYY-MM-DD"
// @Param to query string false "RFC3339 or YYYY-MM-DD (whole day)"
// @Success 200 {array} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Router /sessions/history [get]
func (h *SessionHandler) ListHistory(c *gin.Context) {
	var query reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	sessions, err := h.q.ListHistory(c.Request.Context(), query.From, query.To)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionRMs(sessions))
}
