package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/domain"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/response"
)

// AnnouncementService defines the interface for announcement business logic
type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, userID uuid.UUID, req *dto.CreateAnnouncementRequest) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcementID uuid.UUID, req *dto.UpdateAnnouncementRequest) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, announcementID uuid.UUID) error
}

type announcementServiceImpl struct {
	announcementRepo repository.AnnouncementRepository
	logger           *zap.Logger
}

// NewAnnouncementService creates a new instance of AnnouncementService
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, logger *zap.Logger) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

// CreateAnnouncement posts an announcement, company-wide by default
func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, userID uuid.UUID, req *dto.CreateAnnouncementRequest) (*domain.Announcement, error) {
	departmentID := req.DepartmentID
	if departmentID == "" {
		departmentID = "all"
	}

	announcement := &domain.Announcement{
		Title:        req.Title,
		Content:      req.Content,
		AuthorID:     userID,
		Timestamp:    time.Now().UTC(),
		DepartmentID: departmentID,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create announcement", err.Error())
	}

	s.logger.Info("announcement created",
		zap.String("announcement_id", announcement.ID.String()),
		zap.String("department_id", departmentID),
	)
	return announcement, nil
}

// ListAnnouncements returns all announcements, newest first
func (s *announcementServiceImpl) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	announcements, err := s.announcementRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list announcements", err.Error())
	}
	return announcements, nil
}

// UpdateAnnouncement applies a partial update to an announcement
func (s *announcementServiceImpl) UpdateAnnouncement(ctx context.Context, announcementID uuid.UUID, req *dto.UpdateAnnouncementRequest) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.FindByID(ctx, announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Announcement not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load announcement", err.Error())
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Content != nil {
		announcement.Content = *req.Content
	}
	if req.DepartmentID != nil {
		announcement.DepartmentID = *req.DepartmentID
	}

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update announcement", err.Error())
	}
	return announcement, nil
}

// DeleteAnnouncement removes an announcement
func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, announcementID uuid.UUID) error {
	if _, err := s.announcementRepo.FindByID(ctx, announcementID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Announcement not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load announcement", err.Error())
	}
	if err := s.announcementRepo.Delete(ctx, announcementID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete announcement", err.Error())
	}
	return nil
}
