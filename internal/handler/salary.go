package handler

import (
	"net/http"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	"github.com/gin-gonic/gin"
)

type SalaryHandler struct{ svc service.SalaryService }

func NewSalaryHandler(svc service.SalaryService) *SalaryHandler { return &SalaryHandler{svc: svc} }

// Weekly godoc
// @Summary      Weekly salary report
// @Description  One row per labourer with production in range: total kg, earned amount (summed from latched item amounts), advances in range, and net payable. Net payable may be negative.
// @Tags         salary
// @Produce      json
// @Security     BearerAuth
// @Param        startOfWeek query string true  "YYYY-MM-DD"
// @Param        endOfWeek   query string true  "YYYY-MM-DD"
// @Param        labourId    query string false "Labour id"
// @Success      200 {array}  dto.SalarySummary
// @Failure      400 {object} apierror.APIError
// @Router       /v1/salary [get]
func (h *SalaryHandler) Weekly(c *gin.Context) {
	var filter dto.SalaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ComputeWeeklySalary(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
