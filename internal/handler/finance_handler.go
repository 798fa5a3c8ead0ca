package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
	"ejderhub-api/internal/service"
)

// FinanceHandler handles purchase request and invoice endpoints
type FinanceHandler struct {
	financeService service.FinanceService
}

// NewFinanceHandler creates a new instance of FinanceHandler
func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// ListPurchaseRequests godoc
// @Summary      List purchase requests, newest first
// @Tags         finance
// @Produce      json
// @Success      200 {array} domain.PurchaseRequest
// @Router       /purchase-requests [get]
func (h *FinanceHandler) ListPurchaseRequests(c *gin.Context) {
	requests, err := h.financeService.ListPurchaseRequests(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, requests)
}

// CreatePurchaseRequest godoc
// @Summary      Raise a purchase request
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePurchaseRequestRequest true "Purchase request"
// @Success      201 {object} domain.PurchaseRequest
// @Failure      400 {object} response.ErrorResponse
// @Router       /purchase-requests [post]
func (h *FinanceHandler) CreatePurchaseRequest(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	request, err := h.financeService.CreatePurchaseRequest(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, request)
}

// UpdatePurchaseRequest godoc
// @Summary      Update a purchase request, including approval state
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Purchase request ID (UUID)"
// @Param        request body dto.UpdatePurchaseRequestRequest true "Fields to update"
// @Success      200 {object} domain.PurchaseRequest
// @Failure      404 {object} response.ErrorResponse
// @Router       /purchase-requests/{id} [put]
func (h *FinanceHandler) UpdatePurchaseRequest(c *gin.Context) {
	requestID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	request, err := h.financeService.UpdatePurchaseRequest(c.Request.Context(), requestID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, request)
}

// DeletePurchaseRequest godoc
// @Summary      Delete a purchase request
// @Tags         finance
// @Param        id path string true "Purchase request ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /purchase-requests/{id} [delete]
func (h *FinanceHandler) DeletePurchaseRequest(c *gin.Context) {
	requestID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.financeService.DeletePurchaseRequest(c.Request.Context(), requestID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         finance
// @Produce      json
// @Success      200 {array} domain.Invoice
// @Router       /invoices [get]
func (h *FinanceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.financeService.ListInvoices(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, invoices)
}

// CreateInvoice godoc
// @Summary      Attach an invoice to a project
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateInvoiceRequest true "Invoice"
// @Success      201 {object} domain.Invoice
// @Failure      400 {object} response.ErrorResponse
// @Router       /invoices [post]
func (h *FinanceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	invoice, err := h.financeService.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, invoice)
}

// UpdateInvoice godoc
// @Summary      Update an invoice, including marking it paid
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice ID (UUID)"
// @Param        request body dto.UpdateInvoiceRequest true "Fields to update"
// @Success      200 {object} domain.Invoice
// @Failure      404 {object} response.ErrorResponse
// @Router       /invoices/{id} [put]
func (h *FinanceHandler) UpdateInvoice(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	invoice, err := h.financeService.UpdateInvoice(c.Request.Context(), invoiceID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, invoice)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         finance
// @Param        id path string true "Invoice ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /invoices/{id} [delete]
func (h *FinanceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.financeService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
