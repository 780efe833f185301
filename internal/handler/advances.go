package handler

import (
	"net/http"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdvancesHandler struct{ svc service.AdvanceService }

func NewAdvancesHandler(svc service.AdvanceService) *AdvancesHandler {
	return &AdvancesHandler{svc: svc}
}

// Create godoc
// @Summary      Record a cash advance
// @Tags         advances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateAdvanceRequest true "Advance"
// @Success      201 {object} dto.AdvanceResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/advances [post]
func (h *AdvancesHandler) Create(c *gin.Context) {
	var req dto.CreateAdvanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List advances
// @Tags         advances
// @Produce      json
// @Security     BearerAuth
// @Param        startOfWeek query string false "YYYY-MM-DD"
// @Param        endOfWeek   query string false "YYYY-MM-DD"
// @Param        labourId    query string false "Labour id"
// @Success      200 {array} dto.AdvanceResponse
// @Router       /v1/advances [get]
func (h *AdvancesHandler) List(c *gin.Context) {
	var filter dto.AdvanceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete an advance
// @Tags         advances
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Advance id"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/advances/{id} [delete]
func (h *AdvancesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
