package dto

import (
	"github.com/google/uuid"

	"ejderhub-api/internal/domain"
)

// CreatePurchaseRequestRequest is the payload for raising a purchase request
type CreatePurchaseRequestRequest struct {
	ProjectID   uuid.UUID  `json:"projectId" binding:"required"`
	RequesterID *uuid.UUID `json:"requesterId"`
	Item        string     `json:"item" binding:"required"`
	Quantity    *int       `json:"quantity"`
	UnitPrice   float64    `json:"unitPrice"`
	RequestDate string     `json:"requestDate"`
	Link        string     `json:"link"`
	Files       []string   `json:"files"`
}

// UpdatePurchaseRequestRequest is the payload for a partial purchase request
// update, including approval state changes
type UpdatePurchaseRequestRequest struct {
	Item      *string                       `json:"item"`
	Quantity  *int                          `json:"quantity"`
	UnitPrice *float64                      `json:"unitPrice"`
	Status    *domain.PurchaseRequestStatus `json:"status"`
	Link      *string                       `json:"link"`
	Files     *[]string                     `json:"files"`
}

// CreateInvoiceRequest is the payload for attaching an invoice to a project
type CreateInvoiceRequest struct {
	ProjectID     uuid.UUID `json:"projectId" binding:"required"`
	InvoiceNumber string    `json:"invoiceNumber" binding:"required"`
	Amount        float64   `json:"amount"`
	IssueDate     string    `json:"issueDate"`
	DueDate       string    `json:"dueDate"`
}

// UpdateInvoiceRequest is the payload for a partial invoice update
type UpdateInvoiceRequest struct {
	InvoiceNumber *string               `json:"invoiceNumber"`
	Amount        *float64              `json:"amount"`
	Status        *domain.InvoiceStatus `json:"status"`
	IssueDate     *string               `json:"issueDate"`
	DueDate       *string               `json:"dueDate"`
}
