package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ejderhub-api/internal/client"
	"ejderhub-api/internal/config"
	"ejderhub-api/internal/handler"
	"ejderhub-api/internal/metrics"
	"ejderhub-api/internal/middleware"
	"ejderhub-api/internal/repository"
	"ejderhub-api/internal/service"
)

// Config holds router configuration
type Config struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	S3Client client.S3ClientInterface
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(nil))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes (no auth)
	healthHandler := handler.NewHealthHandler(cfg.DB)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	eventRepo := repository.NewEventRepository(cfg.DB)
	ideaRepo := repository.NewIdeaRepository(cfg.DB)
	resourceRepo := repository.NewResourceRepository(cfg.DB)
	departmentRepo := repository.NewDepartmentRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	evaluationRepo := repository.NewEvaluationRepository(cfg.DB)
	purchaseRepo := repository.NewPurchaseRequestRepository(cfg.DB)
	invoiceRepo := repository.NewInvoiceRepository(cfg.DB)
	notificationRepo := repository.NewNotificationRepository(cfg.DB)
	announcementRepo := repository.NewAnnouncementRepository(cfg.DB)
	feedbackRepo := repository.NewFeedbackRepository(cfg.DB)
	perfRepo := repository.NewPerformanceEvaluationRepository(cfg.DB)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, projectRepo, cfg.Metrics, cfg.Logger)
	eventService := service.NewEventService(eventRepo, taskRepo, taskService, cfg.Logger)
	ideaService := service.NewIdeaService(ideaRepo, resourceRepo, eventRepo, projectService, cfg.Metrics, cfg.Logger)
	resourceService := service.NewResourceService(resourceRepo, cfg.Logger)
	departmentService := service.NewDepartmentService(departmentRepo, resourceRepo, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, evaluationRepo, projectRepo, ideaRepo, cfg.Logger)
	financeService := service.NewFinanceService(purchaseRepo, invoiceRepo, projectRepo, cfg.Logger)
	notificationService := service.NewNotificationService(notificationRepo, cfg.Redis, cfg.Cfg, cfg.Logger)
	announcementService := service.NewAnnouncementService(announcementRepo, cfg.Logger)
	feedbackService := service.NewFeedbackService(feedbackRepo, cfg.Logger)
	performanceService := service.NewPerformanceService(perfRepo, resourceRepo, cfg.Logger)
	attachmentService := service.NewAttachmentService(cfg.S3Client, cfg.Logger)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService, taskService)
	taskHandler := handler.NewTaskHandler(taskService)
	eventHandler := handler.NewEventHandler(eventService)
	ideaHandler := handler.NewIdeaHandler(ideaService)
	resourceHandler := handler.NewResourceHandler(resourceService, departmentService, performanceService)
	commentHandler := handler.NewCommentHandler(commentService)
	financeHandler := handler.NewFinanceHandler(financeService)
	notificationHandler := handler.NewNotificationHandler(notificationService, announcementService, feedbackService, performanceService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)

	// API routes group (authenticated)
	api := r.Group(cfg.Cfg.Server.BasePath)
	api.Use(middleware.Auth(cfg.Cfg.Auth.JWTSecret))
	{
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/tasks", projectHandler.ListProjectTasks)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.PATCH("/:id/progress", taskHandler.UpdateTaskProgress)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.PATCH("/:id/rsvp", eventHandler.UpdateRsvp)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		ideas := api.Group("/ideas")
		{
			ideas.GET("", ideaHandler.ListIdeas)
			ideas.POST("", ideaHandler.CreateIdea)
			ideas.GET("/:id", ideaHandler.GetIdea)
			ideas.PUT("/:id", ideaHandler.UpdateIdea)
			ideas.POST("/:id/convert", ideaHandler.ConvertIdea)
			ideas.DELETE("/:id", ideaHandler.DeleteIdea)
		}

		resources := api.Group("/resources")
		{
			resources.GET("", resourceHandler.ListResources)
			resources.POST("", resourceHandler.CreateResource)
			resources.GET("/:id", resourceHandler.GetResource)
			resources.PUT("/:id", resourceHandler.UpdateResource)
			resources.DELETE("/:id", resourceHandler.DeleteResource)
			resources.GET("/:id/evaluations", resourceHandler.ListResourceEvaluations)
		}

		departments := api.Group("/departments")
		{
			departments.GET("", resourceHandler.ListDepartments)
			departments.POST("", resourceHandler.CreateDepartment)
			departments.GET("/:id", resourceHandler.GetDepartment)
			departments.PUT("/:id", resourceHandler.UpdateDepartment)
			departments.DELETE("/:id", resourceHandler.DeleteDepartment)
		}

		comments := api.Group("/comments")
		{
			comments.GET("", commentHandler.ListComments)
			comments.POST("", commentHandler.CreateComment)
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.PATCH("/:id/vote", commentHandler.VoteOnComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		evaluations := api.Group("/evaluations")
		{
			evaluations.GET("", commentHandler.ListEvaluations)
			evaluations.POST("", commentHandler.CreateEvaluation)
			evaluations.PUT("/:id", commentHandler.UpdateEvaluation)
			evaluations.DELETE("/:id", commentHandler.DeleteEvaluation)
		}

		purchaseRequests := api.Group("/purchase-requests")
		{
			purchaseRequests.GET("", financeHandler.ListPurchaseRequests)
			purchaseRequests.POST("", financeHandler.CreatePurchaseRequest)
			purchaseRequests.PUT("/:id", financeHandler.UpdatePurchaseRequest)
			purchaseRequests.DELETE("/:id", financeHandler.DeletePurchaseRequest)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", financeHandler.ListInvoices)
			invoices.POST("", financeHandler.CreateInvoice)
			invoices.PUT("/:id", financeHandler.UpdateInvoice)
			invoices.DELETE("/:id", financeHandler.DeleteInvoice)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.GET("/unread-count", notificationHandler.UnreadNotificationCount)
			notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.POST("/read-all", notificationHandler.MarkAllNotificationsRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", notificationHandler.ListAnnouncements)
			announcements.POST("", notificationHandler.CreateAnnouncement)
			announcements.PUT("/:id", notificationHandler.UpdateAnnouncement)
			announcements.DELETE("/:id", notificationHandler.DeleteAnnouncement)
		}

		feedback := api.Group("/feedback")
		{
			feedback.GET("", notificationHandler.ListFeedback)
			feedback.POST("", notificationHandler.CreateFeedback)
			feedback.PUT("/:id", notificationHandler.UpdateFeedback)
			feedback.DELETE("/:id", notificationHandler.DeleteFeedback)
		}

		performanceEvaluations := api.Group("/performance-evaluations")
		{
			performanceEvaluations.GET("", notificationHandler.ListPerformanceEvaluations)
			performanceEvaluations.POST("", notificationHandler.CreatePerformanceEvaluation)
			performanceEvaluations.PUT("/:id", notificationHandler.UpdatePerformanceEvaluation)
			performanceEvaluations.DELETE("/:id", notificationHandler.DeletePerformanceEvaluation)
		}

		files := api.Group("/files")
		{
			files.POST("/presign-upload", attachmentHandler.PresignUpload)
			files.DELETE("", attachmentHandler.DeleteFile)
		}
	}

	return r
}
