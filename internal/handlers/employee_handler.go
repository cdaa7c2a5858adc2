package handlers

import (
	"net/http"

	"github.com/brandreach/campaign-crm-backend/internal/database/repository"
	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployeeHandler struct {
	employeeRepo   *repository.EmployeeRepository
	assignmentRepo *repository.AssignmentRepository
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo:   repository.NewEmployeeRepository(db),
		assignmentRepo: repository.NewAssignmentRepository(db),
	}
}

// GetEmployees godoc
// @Summary List field employees
// @Description List employees with pagination and search. With campaign_id each row carries its assignment status for that campaign.
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search over code, name and state"
// @Param campaign_id query string false "Campaign to report assignment status against"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/employees [get]
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	employees, total, err := h.employeeRepo.List(utils.CalculateOffset(page, pageSize), pageSize, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get employees", "details": err.Error()})
		return
	}

	statuses := map[string]models.AssignmentStatus{}
	if campaignID := c.Query("campaign_id"); campaignID != "" {
		statuses, err = h.assignmentRepo.EmployeeStatuses(campaignID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignment statuses", "details": err.Error()})
			return
		}
	}

	responses := make([]models.EmployeeResponse, len(employees))
	for i, employee := range employees {
		status, assigned := statuses[employee.ID]
		if !assigned {
			status = models.StatusNotAssigned
		}
		responses[i] = models.EmployeeResponse{
			ID:               employee.ID,
			EmployeeCode:     employee.EmployeeCode,
			Name:             employee.Name,
			State:            employee.State,
			Phone:            employee.Phone,
			AssignmentStatus: status,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"employees":  responses,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// GetEmployeeByID godoc
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	employee, err := h.employeeRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, employee)
}
