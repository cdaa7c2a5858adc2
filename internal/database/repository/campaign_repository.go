package repository

import (
	"github.com/brandreach/campaign-crm-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// FindActiveByName retrieves an active campaign by its exact name.
// Inactive campaigns are not visible through this lookup; bulk rows naming
// one fail with "campaign not found or inactive".
func (r *CampaignRepository) FindActiveByName(name string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Where("name = ? AND is_active = ?", name, true).First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetAll retrieves all campaigns
func (r *CampaignRepository) GetAll() ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// GetAllActive retrieves all active campaigns
func (r *CampaignRepository) GetAllActive() ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// CountAssignments returns how many retailer and employee assignment entries
// a campaign has, for listing responses.
func (r *CampaignRepository) CountAssignments(campaignID string) (retailers int64, employees int64, err error) {
	if err = r.db.Model(&models.CampaignRetailer{}).Where("campaign_id = ?", campaignID).Count(&retailers).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.Model(&models.CampaignEmployee{}).Where("campaign_id = ?", campaignID).Count(&employees).Error; err != nil {
		return 0, 0, err
	}
	return retailers, employees, nil
}
