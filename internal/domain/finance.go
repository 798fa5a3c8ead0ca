package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PurchaseRequestStatus is the approval state of a purchase request
type PurchaseRequestStatus string

const (
	PurchaseRequestPending  PurchaseRequestStatus = "Pending"
	PurchaseRequestApproved PurchaseRequestStatus = "Approved"
	PurchaseRequestRejected PurchaseRequestStatus = "Rejected"
)

// InvoiceStatus is the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "Unpaid"
	InvoicePaid   InvoiceStatus = "Paid"
)

// PurchaseRequest is a spend request raised against a project
type PurchaseRequest struct {
	BaseModel
	ProjectID   uuid.UUID                   `gorm:"type:uuid;not null;index:idx_purchase_requests_project_id" json:"projectId"`
	Project     *Project                    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	RequesterID uuid.UUID                   `gorm:"type:uuid;not null" json:"requesterId"`
	Requester   *Resource                   `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Item        string                      `gorm:"type:varchar(255);not null" json:"item"`
	Quantity    int                         `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64                     `gorm:"not null" json:"unitPrice"`
	Status      PurchaseRequestStatus       `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	RequestDate string                      `gorm:"type:varchar(10);not null" json:"requestDate"`
	Link        string                      `gorm:"type:varchar(500)" json:"link,omitempty"`
	Files       datatypes.JSONSlice[string] `json:"files,omitempty"`
}

// TableName specifies the table name for PurchaseRequest
func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}

// Invoice is a billing document attached to a project
type Invoice struct {
	BaseModel
	ProjectID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_invoices_project_id" json:"projectId"`
	Project       *Project      `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	InvoiceNumber string        `gorm:"type:varchar(100);not null" json:"invoiceNumber"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Status        InvoiceStatus `gorm:"type:varchar(50);not null;default:'Unpaid'" json:"status"`
	IssueDate     string        `gorm:"type:varchar(10)" json:"issueDate"`
	DueDate       string        `gorm:"type:varchar(10)" json:"dueDate"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
