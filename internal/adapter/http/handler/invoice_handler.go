package handler

import (
	"strings"

	"hdwallet-settlement/internal/adapter/http/dto"
	"hdwallet-settlement/internal/adapter/http/middleware"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/pkg/apperror"
	"hdwallet-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice and sweep endpoints.
type InvoiceHandler struct {
	invoiceSvc ports.InvoiceService
	checker    ports.TransactionChecker
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceSvc ports.InvoiceService, checker ports.TransactionChecker) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceSvc: invoiceSvc,
		checker:    checker,
	}
}

// Create handles POST /api/v1/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid wallet_id"))
		return
	}

	inv, err := h.invoiceSvc.CreateInvoice(c.Request.Context(), ports.CreateInvoiceRequest{
		WalletID:     walletID,
		Password:     req.Password,
		UserID:       req.UserID,
		FiatAmount:   req.Amount,
		FiatCurrency: strings.ToUpper(req.Currency),
		RankID:       req.RankID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewInvoiceResponse(inv))
}

// List handles GET /api/v1/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	var q dto.ListInvoicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params := ports.InvoiceListParams{
		UserID: q.UserID,
		Limit:  q.Limit,
	}
	for _, s := range q.Status {
		params.Statuses = append(params.Statuses, domain.InvoiceStatus(s))
	}
	if q.WalletID != "" {
		id, err := uuid.Parse(q.WalletID)
		if err != nil {
			response.Error(c, apperror.Validation("invalid wallet_id"))
			return
		}
		params.WalletID = &id
	}

	invoices, err := h.invoiceSvc.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, dto.NewInvoiceResponse(&invoices[i]))
	}
	response.OK(c, items)
}

// Status handles the public GET /api/v1/invoices/:id. It reports the
// last-known state and never queries the chain.
func (h *InvoiceHandler) Status(c *gin.Context) {
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}

	status, err := h.invoiceSvc.GetPaymentStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPaymentStatusResponse(status))
}

// Check handles POST /api/v1/invoices/:id/check.
func (h *InvoiceHandler) Check(c *gin.Context) {
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}

	result, err := h.checker.CheckInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewCheckResultResponse(result))
}

// Cancel handles POST /api/v1/invoices/:id/cancel.
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}

	if err := h.invoiceSvc.CancelInvoice(c.Request.Context(), id, middleware.Operator(c)); err != nil {
		response.Error(c, err)
		return
	}

	inv, err := h.invoiceSvc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewInvoiceResponse(inv))
}

// Sweep handles POST /api/v1/sweeps, running one sweep synchronously.
func (h *InvoiceHandler) Sweep(c *gin.Context) {
	active, err := h.checker.CheckAllPendingInvoices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SweepResponse{ActiveInvoices: active})
}

func invoiceIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvoiceNotFound())
		return uuid.Nil, false
	}
	return id, true
}
