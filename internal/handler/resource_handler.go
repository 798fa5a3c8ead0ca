package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
	"ejderhub-api/internal/service"
)

// ResourceHandler handles resource and department endpoints
type ResourceHandler struct {
	resourceService    service.ResourceService
	departmentService  service.DepartmentService
	performanceService service.PerformanceService
}

// NewResourceHandler creates a new instance of ResourceHandler
func NewResourceHandler(
	resourceService service.ResourceService,
	departmentService service.DepartmentService,
	performanceService service.PerformanceService,
) *ResourceHandler {
	return &ResourceHandler{
		resourceService:    resourceService,
		departmentService:  departmentService,
		performanceService: performanceService,
	}
}

// ListResources godoc
// @Summary      List resources
// @Tags         resources
// @Produce      json
// @Success      200 {array} domain.Resource
// @Router       /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	resources, err := h.resourceService.ListResources(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resources)
}

// GetResource godoc
// @Summary      Get a resource
// @Tags         resources
// @Produce      json
// @Param        id path string true "Resource ID (UUID)"
// @Success      200 {object} domain.Resource
// @Failure      404 {object} response.ErrorResponse
// @Router       /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	resourceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	resource, err := h.resourceService.GetResource(c.Request.Context(), resourceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resource)
}

// CreateResource godoc
// @Summary      Create a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateResourceRequest true "Resource"
// @Success      201 {object} domain.Resource
// @Failure      400 {object} response.ErrorResponse
// @Router       /resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	resource, err := h.resourceService.CreateResource(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, resource)
}

// UpdateResource godoc
// @Summary      Update a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id path string true "Resource ID (UUID)"
// @Param        request body dto.UpdateResourceRequest true "Fields to update"
// @Success      200 {object} domain.Resource
// @Failure      404 {object} response.ErrorResponse
// @Router       /resources/{id} [put]
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	resourceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	resource, err := h.resourceService.UpdateResource(c.Request.Context(), resourceID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resource)
}

// DeleteResource godoc
// @Summary      Delete a resource
// @Tags         resources
// @Param        id path string true "Resource ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	resourceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.resourceService.DeleteResource(c.Request.Context(), resourceID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListResourceEvaluations godoc
// @Summary      List one resource's performance evaluations
// @Tags         resources
// @Produce      json
// @Param        id path string true "Resource ID (UUID)"
// @Success      200 {array} domain.PerformanceEvaluation
// @Router       /resources/{id}/evaluations [get]
func (h *ResourceHandler) ListResourceEvaluations(c *gin.Context) {
	resourceID, ok := parseID(c, "id")
	if !ok {
		return
	}
	evaluations, err := h.performanceService.ListEvaluationsByResource(c.Request.Context(), resourceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, evaluations)
}

// ListDepartments godoc
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200 {array} domain.Department
// @Router       /departments [get]
func (h *ResourceHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, departments)
}

// GetDepartment godoc
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID (UUID)"
// @Success      200 {object} domain.Department
// @Failure      404 {object} response.ErrorResponse
// @Router       /departments/{id} [get]
func (h *ResourceHandler) GetDepartment(c *gin.Context) {
	departmentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	department, err := h.departmentService.GetDepartment(c.Request.Context(), departmentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, department)
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateDepartmentRequest true "Department"
// @Success      201 {object} domain.Department
// @Failure      400 {object} response.ErrorResponse
// @Router       /departments [post]
func (h *ResourceHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	department, err := h.departmentService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, department)
}

// UpdateDepartment godoc
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id path string true "Department ID (UUID)"
// @Param        request body dto.UpdateDepartmentRequest true "Fields to update"
// @Success      200 {object} domain.Department
// @Failure      404 {object} response.ErrorResponse
// @Router       /departments/{id} [put]
func (h *ResourceHandler) UpdateDepartment(c *gin.Context) {
	departmentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), departmentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, department)
}

// DeleteDepartment godoc
// @Summary      Delete a department; 409 while resources still reference it
// @Tags         departments
// @Param        id path string true "Department ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /departments/{id} [delete]
func (h *ResourceHandler) DeleteDepartment(c *gin.Context) {
	departmentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), departmentID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
