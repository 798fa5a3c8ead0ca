package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
	"ejderhub-api/internal/service"
)

// NotificationHandler handles notification, announcement, feedback and
// performance evaluation endpoints
type NotificationHandler struct {
	notificationService service.NotificationService
	announcementService service.AnnouncementService
	feedbackService     service.FeedbackService
	performanceService  service.PerformanceService
}

// NewNotificationHandler creates a new instance of NotificationHandler
func NewNotificationHandler(
	notificationService service.NotificationService,
	announcementService service.AnnouncementService,
	feedbackService service.FeedbackService,
	performanceService service.PerformanceService,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		announcementService: announcementService,
		feedbackService:     feedbackService,
		performanceService:  performanceService,
	}
}

// ListNotifications godoc
// @Summary      List notifications, newest first
// @Tags         notifications
// @Produce      json
// @Success      200 {array} domain.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationService.ListNotifications(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, notifications)
}

// CreateNotification godoc
// @Summary      Push a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateNotificationRequest true "Notification"
// @Success      201 {object} domain.Notification
// @Failure      400 {object} response.ErrorResponse
// @Router       /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	notification, err := h.notificationService.CreateNotification(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, notification)
}

// MarkNotificationRead godoc
// @Summary      Toggle a notification's read flag
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        id path string true "Notification ID (UUID)"
// @Param        request body dto.UpdateNotificationRequest true "Read flag"
// @Success      200 {object} domain.Notification
// @Failure      404 {object} response.ErrorResponse
// @Router       /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	notificationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	read := true
	if req.Read != nil {
		read = *req.Read
	}
	notification, err := h.notificationService.MarkRead(c.Request.Context(), notificationID, read)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, notification)
}

// MarkAllNotificationsRead godoc
// @Summary      Mark every notification read
// @Tags         notifications
// @Produce      json
// @Success      200 {object} map[string]int64
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	count, err := h.notificationService.MarkAllRead(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"updated": count})
}

// UnreadNotificationCount godoc
// @Summary      Count unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200 {object} dto.UnreadCountResponse
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) UnreadNotificationCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// DeleteNotification godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Param        id path string true "Notification ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	notificationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.DeleteNotification(c.Request.Context(), notificationID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAnnouncements godoc
// @Summary      List announcements, newest first
// @Tags         announcements
// @Produce      json
// @Success      200 {array} domain.Announcement
// @Router       /announcements [get]
func (h *NotificationHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.ListAnnouncements(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, announcements)
}

// CreateAnnouncement godoc
// @Summary      Post an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAnnouncementRequest true "Announcement"
// @Success      201 {object} domain.Announcement
// @Failure      400 {object} response.ErrorResponse
// @Router       /announcements [post]
func (h *NotificationHandler) CreateAnnouncement(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	announcement, err := h.announcementService.CreateAnnouncement(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, announcement)
}

// UpdateAnnouncement godoc
// @Summary      Update an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        id path string true "Announcement ID (UUID)"
// @Param        request body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success      200 {object} domain.Announcement
// @Failure      404 {object} response.ErrorResponse
// @Router       /announcements/{id} [put]
func (h *NotificationHandler) UpdateAnnouncement(c *gin.Context) {
	announcementID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	announcement, err := h.announcementService.UpdateAnnouncement(c.Request.Context(), announcementID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, announcement)
}

// DeleteAnnouncement godoc
// @Summary      Delete an announcement
// @Tags         announcements
// @Param        id path string true "Announcement ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /announcements/{id} [delete]
func (h *NotificationHandler) DeleteAnnouncement(c *gin.Context) {
	announcementID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.announcementService.DeleteAnnouncement(c.Request.Context(), announcementID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFeedback godoc
// @Summary      List feedback entries, newest first
// @Tags         feedback
// @Produce      json
// @Success      200 {array} domain.Feedback
// @Router       /feedback [get]
func (h *NotificationHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, feedback)
}

// CreateFeedback godoc
// @Summary      Submit feedback; anonymous submissions are allowed
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateFeedbackRequest true "Feedback"
// @Success      201 {object} domain.Feedback
// @Failure      400 {object} response.ErrorResponse
// @Router       /feedback [post]
func (h *NotificationHandler) CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	feedback, err := h.feedbackService.CreateFeedback(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, feedback)
}

// UpdateFeedback godoc
// @Summary      Update a feedback entry's triage state
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id path string true "Feedback ID (UUID)"
// @Param        request body dto.UpdateFeedbackRequest true "Fields to update"
// @Success      200 {object} domain.Feedback
// @Failure      404 {object} response.ErrorResponse
// @Router       /feedback/{id} [put]
func (h *NotificationHandler) UpdateFeedback(c *gin.Context) {
	feedbackID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	feedback, err := h.feedbackService.UpdateFeedback(c.Request.Context(), feedbackID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, feedback)
}

// DeleteFeedback godoc
// @Summary      Delete a feedback entry
// @Tags         feedback
// @Param        id path string true "Feedback ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /feedback/{id} [delete]
func (h *NotificationHandler) DeleteFeedback(c *gin.Context) {
	feedbackID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), feedbackID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPerformanceEvaluations godoc
// @Summary      List performance evaluations
// @Tags         performance
// @Produce      json
// @Success      200 {array} domain.PerformanceEvaluation
// @Router       /performance-evaluations [get]
func (h *NotificationHandler) ListPerformanceEvaluations(c *gin.Context) {
	evaluations, err := h.performanceService.ListEvaluations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, evaluations)
}

// CreatePerformanceEvaluation godoc
// @Summary      File a performance evaluation
// @Tags         performance
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePerformanceEvaluationRequest true "Evaluation"
// @Success      201 {object} domain.PerformanceEvaluation
// @Failure      400 {object} response.ErrorResponse
// @Router       /performance-evaluations [post]
func (h *NotificationHandler) CreatePerformanceEvaluation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreatePerformanceEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	evaluation, err := h.performanceService.CreateEvaluation(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, evaluation)
}

// UpdatePerformanceEvaluation godoc
// @Summary      Update a performance evaluation
// @Tags         performance
// @Accept       json
// @Produce      json
// @Param        id path string true "Evaluation ID (UUID)"
// @Param        request body dto.UpdatePerformanceEvaluationRequest true "Fields to update"
// @Success      200 {object} domain.PerformanceEvaluation
// @Failure      404 {object} response.ErrorResponse
// @Router       /performance-evaluations/{id} [put]
func (h *NotificationHandler) UpdatePerformanceEvaluation(c *gin.Context) {
	evaluationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePerformanceEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	evaluation, err := h.performanceService.UpdateEvaluation(c.Request.Context(), evaluationID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, evaluation)
}

// DeletePerformanceEvaluation godoc
// @Summary      Delete a performance evaluation
// @Tags         performance
// @Param        id path string true "Evaluation ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /performance-evaluations/{id} [delete]
func (h *NotificationHandler) DeletePerformanceEvaluation(c *gin.Context) {
	evaluationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.performanceService.DeleteEvaluation(c.Request.Context(), evaluationID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
