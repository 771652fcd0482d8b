package handler

import (
	"payment-gateway-core/internal/adapter/http/dto"
	"payment-gateway-core/internal/adapter/http/middleware"
	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/pkg/apperror"
	"payment-gateway-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles the merchant-facing payment lifecycle endpoints
// (spec.md §6).
type PaymentHandler struct {
	paymentSvc ports.PaymentLifecycleService
	webhookSvc ports.WebhookService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentLifecycleService, webhookSvc ports.WebhookService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, webhookSvc: webhookSvc}
}

// Init handles POST /api/v1/init.
func (h *PaymentHandler) Init(c *gin.Context) {
	teamID, ok := c.Get(middleware.CtxTeamID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	items := make([]domain.PaymentItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.PaymentItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	payment, err := h.paymentSvc.Init(c.Request.Context(), ports.InitRequest{
		TeamID:    teamID.(uuid.UUID),
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Metadata:  req.Data,
		Items:     items,
		RequestID: c.GetHeader("X-Request-ID"),
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentResponse(payment))
}

// Confirm handles POST /api/v1/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req dto.PaymentOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payment, err := h.paymentSvc.Confirm(c.Request.Context(), req.PaymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifyWebhook(c, payment)
	response.OK(c, toPaymentResponse(payment))
}

// Cancel handles POST /api/v1/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	var req dto.PaymentOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payment, err := h.paymentSvc.Cancel(c.Request.Context(), req.PaymentID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifyWebhook(c, payment)
	response.OK(c, toPaymentResponse(payment))
}

// Refund handles POST /api/v1/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req dto.PaymentOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payment, err := h.paymentSvc.Refund(c.Request.Context(), req.PaymentID, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifyWebhook(c, payment)
	response.OK(c, toPaymentResponse(payment))
}

// GetState handles POST /api/v1/getState (and the alias /api/v1/check).
func (h *PaymentHandler) GetState(c *gin.Context) {
	var req dto.PaymentOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payment, err := h.paymentSvc.GetState(c.Request.Context(), req.PaymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(payment))
}

// GetActivePayments handles GET /api/v1/payments/active, listing
// the calling team's non-terminal payments.
func (h *PaymentHandler) GetActivePayments(c *gin.Context) {
	teamID, ok := c.Get(middleware.CtxTeamID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	payments, err := h.paymentSvc.GetActivePayments(c.Request.Context(), teamID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, toPaymentResponse(&payments[i]))
	}
	response.OK(c, dto.ActivePaymentsResponse{Items: items})
}

// Rollback handles POST /api/v1/payments/rollback, reversing a
// previously recorded transition for an operator correcting a mistaken
// action (spec.md §4.2).
func (h *PaymentHandler) Rollback(c *gin.Context) {
	var req dto.RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	transitionID, err := uuid.Parse(req.TransitionID)
	if err != nil {
		response.Error(c, apperror.Validation("TransitionId must be a UUID"))
		return
	}

	userID := ""
	if v, ok := c.Get(middleware.CtxTeamID); ok {
		if id, ok := v.(uuid.UUID); ok {
			userID = id.String()
		}
	}

	payment, err := h.paymentSvc.Rollback(c.Request.Context(), req.PaymentID, transitionID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(payment))
}

func (h *PaymentHandler) notifyWebhook(c *gin.Context, payment *domain.Payment) {
	if h.webhookSvc == nil {
		return
	}
	_ = h.webhookSvc.EnqueueWebhook(c.Request.Context(), payment)
}

// toPaymentResponse converts domain.Payment to the merchant-facing wire DTO.
func toPaymentResponse(p *domain.Payment) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		Success:        true,
		Status:         string(p.Status),
		PaymentID:      p.PaymentID,
		OrderID:        p.OrderID,
		PaymentURL:     p.PaymentURL,
		Amount:         p.Amount,
		Currency:       p.Currency,
		RefundedAmount: p.RefundedAmount,
		Data:           p.Metadata,
	}
	if p.Status.IsFailure() {
		resp.Success = false
		resp.ErrorCode = p.ErrorCode
		resp.Message = p.ErrorMessage
	}
	return resp
}
