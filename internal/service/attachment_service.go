package service

import (
	"context"

	"go.uber.org/zap"

	"ejderhub-api/internal/client"
	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
)

// AttachmentService hands out presigned S3 URLs for direct browser uploads
// and resolves object keys to download URLs. When the deployment has no S3
// configuration the service is constructed with a nil client and every call
// reports the feature as unavailable.
type AttachmentService interface {
	PresignUpload(ctx context.Context, req *dto.PresignUploadRequest) (*dto.PresignUploadResponse, error)
	FileURL(key string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type attachmentServiceImpl struct {
	s3     client.S3ClientInterface
	logger *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(s3 client.S3ClientInterface, logger *zap.Logger) AttachmentService {
	return &attachmentServiceImpl{
		s3:     s3,
		logger: logger,
	}
}

func (s *attachmentServiceImpl) unavailable() *response.AppError {
	return response.NewAppError(response.ErrCodeInternal, "File storage is not configured", "")
}

// PresignUpload returns a presigned PUT URL plus the final object URL
func (s *attachmentServiceImpl) PresignUpload(ctx context.Context, req *dto.PresignUploadRequest) (*dto.PresignUploadResponse, error) {
	if s.s3 == nil {
		return nil, s.unavailable()
	}

	uploadURL, fileKey, err := s.s3.GeneratePresignedURL(ctx, req.EntityType, req.EntityID, req.FileName, req.ContentType)
	if err != nil {
		return nil, response.NewValidationError("Failed to presign upload", err.Error())
	}

	s.logger.Info("upload presigned",
		zap.String("entity_type", req.EntityType),
		zap.String("file_key", fileKey),
	)

	return &dto.PresignUploadResponse{
		UploadURL: uploadURL,
		FileKey:   fileKey,
		FileURL:   s.s3.GetFileURL(fileKey),
	}, nil
}

// FileURL resolves an object key to a download URL
func (s *attachmentServiceImpl) FileURL(key string) (string, error) {
	if s.s3 == nil {
		return "", s.unavailable()
	}
	return s.s3.GetFileURL(key), nil
}

// DeleteFile removes an uploaded object
func (s *attachmentServiceImpl) DeleteFile(ctx context.Context, key string) error {
	if s.s3 == nil {
		return s.unavailable()
	}
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete file", err.Error())
	}
	return nil
}
