package api

import (
	"net/http"

	reqdto "parking-occupancy/internal/handler/dto/request"
	resdto "parking-occupancy/internal/handler/dto/response"
	"parking-occupancy/internal/handler/httperr"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpotHandler struct {
	cmds  commands.SpotCommands
	q     queries.SpotQueries
	stats queries.StatisticsQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries, stats queries.StatisticsQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q, stats: stats}
}

// @Summary Create spot
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpotRequest true "Create spot request"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	s, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/spots/"+s.ID().String())
	c.JSON(http.StatusCreated, resdto.FromSpot(s))
}

// @Summary List spots
// @Description Filters combine with AND; results are ordered by label
// @Tags spots
// @Produce json
// @Param status query string false "free, occupied or maintenance"
// @Param class query string false "car, motorcycle or accessible"
// @Success 200 {array} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Router /spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	var query reqdto.ListSpotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	spots, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromSpotRMs(spots)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get spot
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rm, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromSpotRM(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update spot
// @Description Partial update. Occupied cannot be set manually.
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.UpdateSpotRequest true "Update spot request"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spots/{id} [put]
func (h *SpotHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	s, err := h.cmds.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpot(s))
}

// @Summary Delete spot
// @Tags spots
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [delete]
func (h *SpotHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Occupancy statistics
// @Description Spot counts, occupancy percent and today's revenue in the configured zone
// @Tags spots
// @Produce json
// @Success 200 {object} resdto.StatisticsResponse
// @Failure 503 {object} httperr.Response
// @Router /spots/statistics [get]
func (h *SpotHandler) Statistics(c *gin.Context) {
	stats, err := h.stats.Get(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromStatisticsRM(stats)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
