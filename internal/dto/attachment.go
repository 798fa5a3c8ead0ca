package dto

// PresignUploadRequest asks for a presigned S3 PUT URL
type PresignUploadRequest struct {
	EntityType  string `json:"entityType" binding:"required"`
	EntityID    string `json:"entityId" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// PresignUploadResponse carries the upload URL and the object's final
// location
type PresignUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
	FileURL   string `json:"fileUrl"`
}
