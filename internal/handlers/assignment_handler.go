package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/brandreach/campaign-crm-backend/internal/database/repository"
	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/services"
	"github.com/brandreach/campaign-crm-backend/internal/services/assignment"
	"github.com/brandreach/campaign-crm-backend/internal/services/excel"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AssignmentHandler struct {
	engine         *assignment.Engine
	excelService   *excel.Service
	assignmentRepo *repository.AssignmentRepository
	campaignRepo   *repository.CampaignRepository
}

func NewAssignmentHandler(db *gorm.DB, rabbitMQService *services.RabbitMQService) *AssignmentHandler {
	campaignRepo := repository.NewCampaignRepository(db)
	retailerRepo := repository.NewRetailerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Keep the publisher a true nil interface when RabbitMQ is unavailable
	var events assignment.EventPublisher
	if rabbitMQService != nil {
		events = rabbitMQService
	}

	return &AssignmentHandler{
		engine:         assignment.NewEngine(campaignRepo, retailerRepo, employeeRepo, assignmentRepo, events),
		excelService:   excel.NewExcelService(),
		assignmentRepo: assignmentRepo,
		campaignRepo:   campaignRepo,
	}
}

// AssignSelected godoc
// @Summary Assign selected retailers or employees to a campaign
// @Description Assign a list of entity ids to one campaign. Exactly one of retailer_ids/employee_ids must be populated. Each id is processed independently; the response lists assigned ids and skipped ids with reasons.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AssignRequest true "Assignment request"
// @Success 200 {object} models.AssignManyResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/assignments [post]
func (h *AssignmentHandler) AssignSelected(c *gin.Context) {
	var req models.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	entityType, entityIDs, err := requestEntities(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.engine.AssignMany(c.Request.Context(), req.CampaignID, entityType, entityIDs)
	if err != nil {
		var notFound *assignment.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// BulkAssign godoc
// @Summary Bulk assign from an uploaded spreadsheet
// @Description Upload an xlsx file of assignment rows. Each row is resolved, validated and written independently; no row failure aborts the batch. Returns a per-row failure report and summary. With format=xlsx the failed rows come back as a correction spreadsheet instead of JSON.
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param type query string true "Assignment type" Enums(retailer, employee)
// @Param format query string false "Response format" Enums(json, xlsx)
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} models.BulkAssignmentResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/assignments/bulk [post]
func (h *AssignmentHandler) BulkAssign(c *gin.Context) {
	cfg, ok := assignment.ImportConfigFor(models.EntityType(c.Query("type")))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'retailer' or 'employee'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Spreadsheet file is required", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file", "details": err.Error()})
		return
	}
	defer file.Close()

	// File-level parse failure is the only fatal error of the bulk path
	rows, err := h.excelService.ImportAssignmentRows(file, cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to parse spreadsheet", "details": err.Error()})
		return
	}

	result := h.engine.RunBulk(c.Request.Context(), cfg, rows)

	if c.Query("format") == "xlsx" {
		report, err := h.excelService.ExportFailedRows(result, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build failure report", "details": err.Error()})
			return
		}
		writeWorkbook(c, report, fmt.Sprintf("failed_rows_%s.xlsx", result.BatchID))
		return
	}

	// Partial failure is not an error: the batch completed and produced a result
	c.JSON(http.StatusOK, result)
}

// DownloadTemplate godoc
// @Summary Download the bulk assignment upload template
// @Description Returns an xlsx file with the expected header row for the given assignment type
// @Tags assignments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param type query string true "Assignment type" Enums(retailer, employee)
// @Success 200 {file} binary "Template file"
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/assignments/template [get]
func (h *AssignmentHandler) DownloadTemplate(c *gin.Context) {
	cfg, ok := assignment.ImportConfigFor(models.EntityType(c.Query("type")))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'retailer' or 'employee'"})
		return
	}

	template, err := h.excelService.ExportAssignmentTemplate(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template", "details": err.Error()})
		return
	}

	writeWorkbook(c, template, h.excelService.TemplateFilename(cfg))
}

// ListCampaignAssignments godoc
// @Summary List a campaign's assignment entries
// @Description Returns the campaign's assignment entries of one type in assignment order, with the entity's code, name and current status
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param type query string true "Assignment type" Enums(retailer, employee)
// @Success 200 {array} models.AssignmentEntryResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/assignments [get]
func (h *AssignmentHandler) ListCampaignAssignments(c *gin.Context) {
	campaignID := c.Param("id")
	entityType := models.EntityType(c.Query("type"))
	if !entityType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'retailer' or 'employee'"})
		return
	}

	if _, err := h.campaignRepo.GetByID(campaignID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}

	responses, err := h.listEntries(campaignID, entityType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, responses)
}

// RespondToAssignment godoc
// @Summary Accept or reject a pending assignment
// @Description Transition an existing pending assignment entry to accepted or rejected. Only pending entries can transition; this endpoint never creates an entry.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment entry ID"
// @Param type query string true "Assignment type" Enums(retailer, employee)
// @Param request body models.RespondRequest true "Response status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/assignments/{id}/respond [put]
func (h *AssignmentHandler) RespondToAssignment(c *gin.Context) {
	entryID := c.Param("id")
	entityType := models.EntityType(c.Query("type"))
	if !entityType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'retailer' or 'employee'"})
		return
	}

	var req models.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if req.Status != models.StatusAccepted && req.Status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be 'accepted' or 'rejected'"})
		return
	}

	var err error
	if entityType == models.EntityRetailer {
		err = h.assignmentRepo.RespondRetailer(entryID, req.Status)
	} else {
		err = h.assignmentRepo.RespondEmployee(entryID, req.Status)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			c.JSON(http.StatusConflict, gin.H{"error": "Assignment is not pending"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status})
}

// listEntries maps stored entries to listing responses
func (h *AssignmentHandler) listEntries(campaignID string, entityType models.EntityType) ([]models.AssignmentEntryResponse, error) {
	if entityType == models.EntityRetailer {
		entries, err := h.assignmentRepo.ListRetailersByCampaign(campaignID)
		if err != nil {
			return nil, err
		}
		responses := make([]models.AssignmentEntryResponse, len(entries))
		for i, entry := range entries {
			responses[i] = models.AssignmentEntryResponse{
				ID:          entry.ID,
				CampaignID:  entry.CampaignID,
				EntityType:  models.EntityRetailer,
				EntityID:    entry.RetailerID,
				EntityCode:  entry.Retailer.UniqueCode,
				EntityName:  entry.Retailer.ShopName,
				Status:      entry.Status,
				AssignedAt:  entry.AssignedAt.Format(timeFormat),
				RespondedAt: formatTimePtr(entry.RespondedAt),
			}
		}
		return responses, nil
	}

	entries, err := h.assignmentRepo.ListEmployeesByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.AssignmentEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = models.AssignmentEntryResponse{
			ID:          entry.ID,
			CampaignID:  entry.CampaignID,
			EntityType:  models.EntityEmployee,
			EntityID:    entry.EmployeeID,
			EntityCode:  entry.Employee.EmployeeCode,
			EntityName:  entry.Employee.Name,
			Status:      entry.Status,
			AssignedAt:  entry.AssignedAt.Format(timeFormat),
			RespondedAt: formatTimePtr(entry.RespondedAt),
		}
	}
	return responses, nil
}

// requestEntities extracts the one populated id list from an AssignRequest
func requestEntities(req *models.AssignRequest) (models.EntityType, []string, error) {
	hasRetailers := len(req.RetailerIDs) > 0
	hasEmployees := len(req.EmployeeIDs) > 0

	switch {
	case hasRetailers && hasEmployees:
		return "", nil, errors.New("populate only one of retailer_ids or employee_ids")
	case hasRetailers:
		return models.EntityRetailer, req.RetailerIDs, nil
	case hasEmployees:
		return models.EntityEmployee, req.EmployeeIDs, nil
	}
	return "", nil, errors.New("one of retailer_ids or employee_ids is required")
}
