package handlers

import (
	"net/http"

	"github.com/brandreach/campaign-crm-backend/internal/database/repository"
	"github.com/brandreach/campaign-crm-backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CampaignHandler serves read-only campaign endpoints. Campaign records are
// managed by the campaign-management system; this service only lists them
// for the assignment UI.
type CampaignHandler struct {
	campaignRepo *repository.CampaignRepository
}

func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	return &CampaignHandler{
		campaignRepo: repository.NewCampaignRepository(db),
	}
}

// GetCampaigns godoc
// @Summary List campaigns
// @Description List campaigns with their assignment counts. active=true restricts to active campaigns (the set assignable through this service).
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active campaigns"
// @Success 200 {array} models.CampaignResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	var campaigns []*models.Campaign
	var err error

	if c.Query("active") == "true" {
		campaigns, err = h.campaignRepo.GetAllActive()
	} else {
		campaigns, err = h.campaignRepo.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaigns", "details": err.Error()})
		return
	}

	responses := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		responses[i] = h.toResponse(campaign)
	}

	c.JSON(http.StatusOK, responses)
}

// GetCampaignByID godoc
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}

	c.JSON(http.StatusOK, h.toResponse(campaign))
}

// toResponse converts Campaign model to response DTO
func (h *CampaignHandler) toResponse(campaign *models.Campaign) *models.CampaignResponse {
	retailers, employees, err := h.campaignRepo.CountAssignments(campaign.ID)
	if err != nil {
		// Counts are decorative; the campaign itself is still returned
		retailers, employees = 0, 0
	}

	return &models.CampaignResponse{
		ID:                campaign.ID,
		Name:              campaign.Name,
		Description:       campaign.Description,
		IsActive:          campaign.IsActive,
		StartDate:         campaign.StartDate,
		EndDate:           campaign.EndDate,
		BudgetAmount:      campaign.BudgetAmount,
		AssignedRetailers: int(retailers),
		AssignedEmployees: int(employees),
		CreatedAt:         campaign.CreatedAt.Format(timeFormat),
		UpdatedAt:         campaign.UpdatedAt.Format(timeFormat),
	}
}
