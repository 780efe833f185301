package handler

import (
	"net/http"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentsHandler struct{ svc service.PaymentService }

func NewPaymentsHandler(svc service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{svc: svc}
}

// Create godoc
// @Summary      Record a weekly settlement
// @Description  paid_on is assigned by the server at creation. The ledger is append-only; corrections are compensating entries.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePaymentRequest true "Payment"
// @Success      201 {object} dto.PaymentResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/payments [post]
func (h *PaymentsHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
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
// @Summary      List payments, newest paid first
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        labourId query string false "Labour id"
// @Success      200 {array} dto.PaymentResponse
// @Router       /v1/payments [get]
func (h *PaymentsHandler) List(c *gin.Context) {
	var filter dto.PaymentFilter
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
