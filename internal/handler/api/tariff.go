package api

import (
	"net/http"

	reqdto "parking-occupancy/internal/handler/dto/request"
	resdto "parking-occupancy/internal/handler/dto/response"
	"parking-occupancy/internal/handler/httperr"
	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errEmptyTariffUpdate = errs.New("no tariff field to update")

type TariffHandler struct {
	cmds commands.TariffCommands
	q    queries.TariffQueries
}

func NewTariffHandler(cmds commands.TariffCommands, q queries.TariffQueries) *TariffHandler {
	return &TariffHandler{cmds: cmds, q: q}
}

// @Summary List tariffs
// @Tags tariffs
// @Produce json
// @Success 200 {array} resdto.TariffResponse
// @Router /tariffs [get]
func (h *TariffHandler) List(c *gin.Context) {
	tariffs, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromTariffRMs(tariffs)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get tariff
// @Tags tariffs
// @Produce json
// @Param id path string true "Tariff ID"
// @Success 200 {object} resdto.TariffResponse
// @Failure 404 {object} httperr.Response
// @Router /tariffs/{id} [get]
func (h *TariffHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rm, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromTariffRM(rm)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update tariff
// @Description Partial update; omitted fields keep their value
// @Tags tariffs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tariff ID"
// @Param request body reqdto.UpdateTariffRequest true "Update tariff request"
// @Success 200 {object} resdto.TariffResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tariffs/{id} [put]
func (h *TariffHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyTariffUpdate, "At least one field is required", nil)
		return
	}
	t, err := h.cmds.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTariff(t))
}
