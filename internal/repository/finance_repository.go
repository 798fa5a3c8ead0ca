package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
)

// PurchaseRequestRepository defines the interface for purchase request data access
type PurchaseRequestRepository interface {
	Create(ctx context.Context, request *domain.PurchaseRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseRequest, error)
	FindAll(ctx context.Context) ([]*domain.PurchaseRequest, error)
	Update(ctx context.Context, request *domain.PurchaseRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseRequestRepositoryImpl struct {
	db *gorm.DB
}

// NewPurchaseRequestRepository creates a new instance of PurchaseRequestRepository
func NewPurchaseRequestRepository(db *gorm.DB) PurchaseRequestRepository {
	return &purchaseRequestRepositoryImpl{db: db}
}

func (r *purchaseRequestRepositoryImpl) Create(ctx context.Context, request *domain.PurchaseRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *purchaseRequestRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseRequest, error) {
	var request domain.PurchaseRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *purchaseRequestRepositoryImpl) FindAll(ctx context.Context) ([]*domain.PurchaseRequest, error) {
	var requests []*domain.PurchaseRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Order("request_date DESC, created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *purchaseRequestRepositoryImpl) Update(ctx context.Context, request *domain.PurchaseRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *purchaseRequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PurchaseRequest{}, "id = ?", id).Error
}

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	FindAll(ctx context.Context) ([]*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepositoryImpl struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new instance of InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

func (r *invoiceRepositoryImpl) Create(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	if err := r.db.WithContext(ctx).
		Order("due_date ASC, created_at ASC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepositoryImpl) Update(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Invoice{}, "id = ?", id).Error
}
