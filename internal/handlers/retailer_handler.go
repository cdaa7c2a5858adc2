package handlers

import (
	"net/http"

	"github.com/brandreach/campaign-crm-backend/internal/database/repository"
	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RetailerHandler struct {
	retailerRepo   *repository.RetailerRepository
	assignmentRepo *repository.AssignmentRepository
}

func NewRetailerHandler(db *gorm.DB) *RetailerHandler {
	return &RetailerHandler{
		retailerRepo:   repository.NewRetailerRepository(db),
		assignmentRepo: repository.NewAssignmentRepository(db),
	}
}

// GetRetailers godoc
// @Summary List retailers
// @Description List retailers with pagination and search. With campaign_id each row carries its assignment status for that campaign, so the UI can preselect unassigned retailers.
// @Tags retailers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search over code, shop name and state"
// @Param campaign_id query string false "Campaign to report assignment status against"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/retailers [get]
func (h *RetailerHandler) GetRetailers(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	retailers, total, err := h.retailerRepo.List(utils.CalculateOffset(page, pageSize), pageSize, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get retailers", "details": err.Error()})
		return
	}

	statuses := map[string]models.AssignmentStatus{}
	if campaignID := c.Query("campaign_id"); campaignID != "" {
		statuses, err = h.assignmentRepo.RetailerStatuses(campaignID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assignment statuses", "details": err.Error()})
			return
		}
	}

	responses := make([]models.RetailerResponse, len(retailers))
	for i, retailer := range retailers {
		status, assigned := statuses[retailer.ID]
		if !assigned {
			status = models.StatusNotAssigned
		}
		responses[i] = models.RetailerResponse{
			ID:               retailer.ID,
			UniqueCode:       retailer.UniqueCode,
			ShopName:         retailer.ShopName,
			OwnerName:        retailer.OwnerName,
			State:            retailer.State,
			BusinessType:     retailer.BusinessType,
			Phone:            retailer.Phone,
			AssignmentStatus: status,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"retailers":  responses,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// GetRetailerByID godoc
// @Summary Get retailer by ID
// @Tags retailers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Retailer ID"
// @Success 200 {object} models.Retailer
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/retailers/{id} [get]
func (h *RetailerHandler) GetRetailerByID(c *gin.Context) {
	retailer, err := h.retailerRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Retailer not found"})
		return
	}

	c.JSON(http.StatusOK, retailer)
}
