package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// FinanceService defines the interface for purchase request and invoice
// business logic
type FinanceService interface {
	CreatePurchaseRequest(ctx context.Context, userID uuid.UUID, req *dto.CreatePurchaseRequestRequest) (*domain.PurchaseRequest, error)
	ListPurchaseRequests(ctx context.Context) ([]*domain.PurchaseRequest, error)
	UpdatePurchaseRequest(ctx context.Context, requestID uuid.UUID, req *dto.UpdatePurchaseRequestRequest) (*domain.PurchaseRequest, error)
	DeletePurchaseRequest(ctx context.Context, requestID uuid.UUID) error

	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID uuid.UUID, req *dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID uuid.UUID) error
}

type financeServiceImpl struct {
	purchaseRepo repository.PurchaseRequestRepository
	invoiceRepo  repository.InvoiceRepository
	projectRepo  repository.ProjectRepository
	logger       *zap.Logger
}

// NewFinanceService creates a new instance of FinanceService
func NewFinanceService(
	purchaseRepo repository.PurchaseRequestRepository,
	invoiceRepo repository.InvoiceRepository,
	projectRepo repository.ProjectRepository,
	logger *zap.Logger,
) FinanceService {
	return &financeServiceImpl{
		purchaseRepo: purchaseRepo,
		invoiceRepo:  invoiceRepo,
		projectRepo:  projectRepo,
		logger:       logger,
	}
}

func (s *financeServiceImpl) verifyProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", projectID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
	}
	return nil
}

// CreatePurchaseRequest raises a pending purchase request against a project
func (s *financeServiceImpl) CreatePurchaseRequest(ctx context.Context, userID uuid.UUID, req *dto.CreatePurchaseRequestRequest) (*domain.PurchaseRequest, error) {
	if err := s.verifyProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if req.UnitPrice < 0 {
		return nil, response.NewValidationError("Unit price must not be negative", "")
	}

	requesterID := userID
	if req.RequesterID != nil {
		requesterID = *req.RequesterID
	}
	quantity := 1
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, response.NewValidationError("Quantity must be at least 1", "")
		}
		quantity = *req.Quantity
	}
	requestDate := req.RequestDate
	if requestDate == "" {
		requestDate = today()
	}

	request := &domain.PurchaseRequest{
		ProjectID:   req.ProjectID,
		RequesterID: requesterID,
		Item:        req.Item,
		Quantity:    quantity,
		UnitPrice:   req.UnitPrice,
		Status:      domain.PurchaseRequestPending,
		RequestDate: requestDate,
		Link:        req.Link,
		Files:       datatypes.JSONSlice[string](req.Files),
	}
	if err := s.purchaseRepo.Create(ctx, request); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create purchase request", err.Error())
	}

	s.logger.Info("purchase request created",
		zap.String("request_id", request.ID.String()),
		zap.String("project_id", req.ProjectID.String()),
	)
	return request, nil
}

// ListPurchaseRequests returns all purchase requests, newest first
func (s *financeServiceImpl) ListPurchaseRequests(ctx context.Context) ([]*domain.PurchaseRequest, error) {
	requests, err := s.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list purchase requests", err.Error())
	}
	return requests, nil
}

// UpdatePurchaseRequest applies a partial update, including approval or
// rejection
func (s *financeServiceImpl) UpdatePurchaseRequest(ctx context.Context, requestID uuid.UUID, req *dto.UpdatePurchaseRequestRequest) (*domain.PurchaseRequest, error) {
	request, err := s.purchaseRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Purchase request not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load purchase request", err.Error())
	}

	if req.Item != nil {
		request.Item = *req.Item
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, response.NewValidationError("Quantity must be at least 1", "")
		}
		request.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice < 0 {
			return nil, response.NewValidationError("Unit price must not be negative", "")
		}
		request.UnitPrice = *req.UnitPrice
	}
	if req.Status != nil {
		switch *req.Status {
		case domain.PurchaseRequestPending, domain.PurchaseRequestApproved, domain.PurchaseRequestRejected:
			request.Status = *req.Status
		default:
			return nil, response.NewValidationError("Invalid purchase request status", string(*req.Status))
		}
	}
	if req.Link != nil {
		request.Link = *req.Link
	}
	if req.Files != nil {
		request.Files = datatypes.JSONSlice[string](*req.Files)
	}

	if err := s.purchaseRepo.Update(ctx, request); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update purchase request", err.Error())
	}
	return request, nil
}

// DeletePurchaseRequest removes a purchase request
func (s *financeServiceImpl) DeletePurchaseRequest(ctx context.Context, requestID uuid.UUID) error {
	if _, err := s.purchaseRepo.FindByID(ctx, requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Purchase request not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load purchase request", err.Error())
	}
	if err := s.purchaseRepo.Delete(ctx, requestID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete purchase request", err.Error())
	}
	return nil
}

// CreateInvoice attaches an unpaid invoice to a project
func (s *financeServiceImpl) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := s.verifyProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if req.Amount < 0 {
		return nil, response.NewValidationError("Amount must not be negative", "")
	}

	issueDate := req.IssueDate
	if issueDate == "" {
		issueDate = today()
	}

	invoice := &domain.Invoice{
		ProjectID:     req.ProjectID,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Status:        domain.InvoiceUnpaid,
		IssueDate:     issueDate,
		DueDate:       req.DueDate,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create invoice", err.Error())
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("project_id", req.ProjectID.String()),
	)
	return invoice, nil
}

// ListInvoices returns all invoices ordered by due date
func (s *financeServiceImpl) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list invoices", err.Error())
	}
	return invoices, nil
}

// UpdateInvoice applies a partial update, including marking the invoice paid
func (s *financeServiceImpl) UpdateInvoice(ctx context.Context, invoiceID uuid.UUID, req *dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Invoice not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load invoice", err.Error())
	}

	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, response.NewValidationError("Amount must not be negative", "")
		}
		invoice.Amount = *req.Amount
	}
	if req.Status != nil {
		switch *req.Status {
		case domain.InvoiceUnpaid, domain.InvoicePaid:
			invoice.Status = *req.Status
		default:
			return nil, response.NewValidationError("Invalid invoice status", string(*req.Status))
		}
	}
	if req.IssueDate != nil {
		invoice.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update invoice", err.Error())
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice
func (s *financeServiceImpl) DeleteInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, invoiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Invoice not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load invoice", err.Error())
	}
	if err := s.invoiceRepo.Delete(ctx, invoiceID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete invoice", err.Error())
	}
	return nil
}
