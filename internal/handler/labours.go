package handler

import (
	"net/http"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LaboursHandler struct{ svc service.LabourService }

func NewLaboursHandler(svc service.LabourService) *LaboursHandler { return &LaboursHandler{svc: svc} }

// List godoc
// @Summary      List labourers with their roles
// @Tags         labours
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.LabourResponse
// @Router       /v1/labours [get]
func (h *LaboursHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Register a labourer
// @Tags         labours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateLabourRequest true "Labourer"
// @Success      201 {object} dto.LabourResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/labours [post]
func (h *LaboursHandler) Create(c *gin.Context) {
	var req dto.CreateLabourRequest
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

// Update godoc
// @Summary      Update a labourer
// @Tags         labours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Labour id"
// @Param        body body dto.UpdateLabourRequest true "Fields to update"
// @Success      200 {object} dto.LabourResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/labours/{id} [put]
func (h *LaboursHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateLabourRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete a labourer
// @Description  Blocked when production days or advances reference the labourer.
// @Tags         labours
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Labour id"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/labours/{id} [delete]
func (h *LaboursHandler) Delete(c *gin.Context) {
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
