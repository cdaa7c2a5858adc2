package repository

import (
	"errors"
	"time"

	"github.com/brandreach/campaign-crm-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateAssignment is returned when a conditional append finds an entry
// already present for the (campaign, entity) pair. The unique index makes the
// append-if-absent atomic, so two racing writers get exactly one success and
// one ErrDuplicateAssignment.
var ErrDuplicateAssignment = errors.New("assignment already exists for this campaign and entity")

// ErrNotPending is returned when a respond transition targets an entry that
// is not in pending state (or does not exist).
var ErrNotPending = errors.New("assignment is not pending")

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// GetRetailerEntry retrieves the assignment entry for a (campaign, retailer)
// pair. A missing entry is not an error: it returns (nil, nil), which the
// engine reads as not_assigned.
func (r *AssignmentRepository) GetRetailerEntry(campaignID, retailerID string) (*models.CampaignRetailer, error) {
	var entry models.CampaignRetailer
	err := r.db.Where("campaign_id = ? AND retailer_id = ?", campaignID, retailerID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEmployeeEntry retrieves the assignment entry for a (campaign, employee)
// pair, (nil, nil) when absent.
func (r *AssignmentRepository) GetEmployeeEntry(campaignID, employeeID string) (*models.CampaignEmployee, error) {
	var entry models.CampaignEmployee
	err := r.db.Where("campaign_id = ? AND employee_id = ?", campaignID, employeeID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// AppendRetailer inserts a retailer assignment entry only if none exists for
// the pair. The insert rides the unique index: ON CONFLICT DO NOTHING, zero
// rows affected means somebody else got there first.
func (r *AssignmentRepository) AppendRetailer(entry *models.CampaignRetailer) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "retailer_id"}},
		DoNothing: true,
	}).Create(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateAssignment
	}
	return nil
}

// AppendEmployee inserts an employee assignment entry only if none exists
// for the pair.
func (r *AssignmentRepository) AppendEmployee(entry *models.CampaignEmployee) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "employee_id"}},
		DoNothing: true,
	}).Create(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateAssignment
	}
	return nil
}

// ListRetailersByCampaign retrieves a campaign's retailer entries in
// assignment order with the retailer record preloaded
func (r *AssignmentRepository) ListRetailersByCampaign(campaignID string) ([]models.CampaignRetailer, error) {
	var entries []models.CampaignRetailer
	err := r.db.Where("campaign_id = ?", campaignID).
		Preload("Retailer").
		Order("assigned_at ASC").
		Find(&entries).Error
	return entries, err
}

// ListEmployeesByCampaign retrieves a campaign's employee entries in
// assignment order with the employee record preloaded
func (r *AssignmentRepository) ListEmployeesByCampaign(campaignID string) ([]models.CampaignEmployee, error) {
	var entries []models.CampaignEmployee
	err := r.db.Where("campaign_id = ?", campaignID).
		Preload("Employee").
		Order("assigned_at ASC").
		Find(&entries).Error
	return entries, err
}

// RetailerStatuses returns the assignment status of every retailer assigned
// to a campaign, keyed by retailer ID. Retailers without an entry are simply
// absent from the map.
func (r *AssignmentRepository) RetailerStatuses(campaignID string) (map[string]models.AssignmentStatus, error) {
	var entries []models.CampaignRetailer
	if err := r.db.Select("retailer_id", "status").Where("campaign_id = ?", campaignID).Find(&entries).Error; err != nil {
		return nil, err
	}
	statuses := make(map[string]models.AssignmentStatus, len(entries))
	for _, entry := range entries {
		statuses[entry.RetailerID] = entry.Status
	}
	return statuses, nil
}

// EmployeeStatuses returns the assignment status of every employee assigned
// to a campaign, keyed by employee ID
func (r *AssignmentRepository) EmployeeStatuses(campaignID string) (map[string]models.AssignmentStatus, error) {
	var entries []models.CampaignEmployee
	if err := r.db.Select("employee_id", "status").Where("campaign_id = ?", campaignID).Find(&entries).Error; err != nil {
		return nil, err
	}
	statuses := make(map[string]models.AssignmentStatus, len(entries))
	for _, entry := range entries {
		statuses[entry.EmployeeID] = entry.Status
	}
	return statuses, nil
}

// RespondRetailer transitions a pending retailer entry to accepted or
// rejected. The WHERE status = 'pending' guard means the transition can only
// ever update an existing pending entry, never create or re-transition one.
func (r *AssignmentRepository) RespondRetailer(entryID string, status models.AssignmentStatus) error {
	now := time.Now()
	result := r.db.Model(&models.CampaignRetailer{}).
		Where("id = ? AND status = ?", entryID, models.StatusPending).
		Updates(map[string]interface{}{"status": status, "responded_at": &now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}

// RespondEmployee transitions a pending employee entry to accepted or rejected
func (r *AssignmentRepository) RespondEmployee(entryID string, status models.AssignmentStatus) error {
	now := time.Now()
	result := r.db.Model(&models.CampaignEmployee{}).
		Where("id = ? AND status = ?", entryID, models.StatusPending).
		Updates(map[string]interface{}{"status": status, "responded_at": &now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}
