package handler

import (
	"net/http"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductionHandler struct{ svc service.ProductionService }

func NewProductionHandler(svc service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// Record godoc
// @Summary      Record a daily production entry
// @Description  Creates or appends to the (labour, date) day header inside one transaction. The day's rate is latched from the role the first time the header is created; later role rate changes never touch it.
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecordProductionRequest true "Entry: date, labourer, line items"
// @Success      201  {object} dto.RecordProductionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/production [post]
func (h *ProductionHandler) Record(c *gin.Context) {
	var req dto.RecordProductionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Production history
// @Description  Day headers with nested items, newest date first. All filters optional.
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Param        startDate query string false "YYYY-MM-DD"
// @Param        endDate   query string false "YYYY-MM-DD"
// @Param        labourId  query string false "Labour id"
// @Success      200 {array} dto.ProductionDayResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/production [get]
func (h *ProductionHandler) List(c *gin.Context) {
	var filter dto.ProductionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListProduction(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
