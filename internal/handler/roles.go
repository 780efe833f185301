package handler

import (
	"net/http"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RolesHandler struct{ svc service.RoleService }

func NewRolesHandler(svc service.RoleService) *RolesHandler { return &RolesHandler{svc: svc} }

// List godoc
// @Summary      List wage roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.RoleResponse
// @Router       /v1/roles [get]
func (h *RolesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create a wage role
// @Description  Role names are unique. The rate applies to future production days only.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateRoleRequest true "Role"
// @Success      201 {object} dto.RoleResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/roles [post]
func (h *RolesHandler) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
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
// @Summary      Update a wage role
// @Description  Rate changes never touch rates already latched on production days.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Role id"
// @Param        body body dto.UpdateRoleRequest true "Fields to update"
// @Success      200 {object} dto.RoleResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/roles/{id} [put]
func (h *RolesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateRoleRequest
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
