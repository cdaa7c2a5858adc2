package assignment_test

import (
	"context"
	"sync"

	"github.com/brandreach/campaign-crm-backend/internal/database/repository"
	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/services/assignment"

	"gorm.io/gorm"
)

// Fake stores backing the engine in tests. They mirror the repository
// semantics: lookups return gorm.ErrRecordNotFound, appends are conditional
// and guarded by a mutex so concurrent writes behave like the unique index.

type fakeCampaignStore struct {
	campaigns []*models.Campaign
}

func (f *fakeCampaignStore) GetByID(id string) (*models.Campaign, error) {
	for _, c := range f.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCampaignStore) FindActiveByName(name string) (*models.Campaign, error) {
	for _, c := range f.campaigns {
		if c.Name == name && c.IsActive {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRetailerStore struct {
	retailers []*models.Retailer
}

func (f *fakeRetailerStore) GetByID(id string) (*models.Retailer, error) {
	for _, r := range f.retailers {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRetailerStore) GetByUniqueCode(code string) (*models.Retailer, error) {
	for _, r := range f.retailers {
		if r.UniqueCode == code {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeEmployeeStore struct {
	employees []*models.Employee
}

func (f *fakeEmployeeStore) GetByID(id string) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeStore) GetByCode(code string) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeEntryStore struct {
	mu              sync.Mutex
	retailerEntries map[string]*models.CampaignRetailer
	employeeEntries map[string]*models.CampaignEmployee
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{
		retailerEntries: make(map[string]*models.CampaignRetailer),
		employeeEntries: make(map[string]*models.CampaignEmployee),
	}
}

func pairKey(campaignID, entityID string) string {
	return campaignID + "|" + entityID
}

func (f *fakeEntryStore) GetRetailerEntry(campaignID, retailerID string) (*models.CampaignRetailer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retailerEntries[pairKey(campaignID, retailerID)], nil
}

func (f *fakeEntryStore) GetEmployeeEntry(campaignID, employeeID string) (*models.CampaignEmployee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.employeeEntries[pairKey(campaignID, employeeID)], nil
}

func (f *fakeEntryStore) AppendRetailer(entry *models.CampaignRetailer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(entry.CampaignID, entry.RetailerID)
	if _, exists := f.retailerEntries[key]; exists {
		return repository.ErrDuplicateAssignment
	}
	f.retailerEntries[key] = entry
	return nil
}

func (f *fakeEntryStore) AppendEmployee(entry *models.CampaignEmployee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(entry.CampaignID, entry.EmployeeID)
	if _, exists := f.employeeEntries[key]; exists {
		return repository.ErrDuplicateAssignment
	}
	f.employeeEntries[key] = entry
	return nil
}

// seedRetailerEntry pre-populates an entry with the given status
func (f *fakeEntryStore) seedRetailerEntry(campaignID, retailerID string, status models.AssignmentStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retailerEntries[pairKey(campaignID, retailerID)] = &models.CampaignRetailer{
		CampaignID: campaignID,
		RetailerID: retailerID,
		Status:     status,
	}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []assignment.AssignmentEvent
}

func (f *fakePublisher) PublishAssignmentEvent(_ context.Context, event assignment.AssignmentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// testFixture bundles the fakes with an engine built on them
type testFixture struct {
	campaigns *fakeCampaignStore
	retailers *fakeRetailerStore
	employees *fakeEmployeeStore
	entries   *fakeEntryStore
	publisher *fakePublisher
	engine    *assignment.Engine
}

func newFixture() *testFixture {
	f := &testFixture{
		campaigns: &fakeCampaignStore{},
		retailers: &fakeRetailerStore{},
		employees: &fakeEmployeeStore{},
		entries:   newFakeEntryStore(),
		publisher: &fakePublisher{},
	}
	f.engine = assignment.NewEngine(f.campaigns, f.retailers, f.employees, f.entries, f.publisher)
	return f
}

func (f *testFixture) addCampaign(id, name string, active bool) *models.Campaign {
	campaign := &models.Campaign{ID: id, Name: name, IsActive: active}
	f.campaigns.campaigns = append(f.campaigns.campaigns, campaign)
	return campaign
}

func (f *testFixture) addRetailer(id, code string) *models.Retailer {
	retailer := &models.Retailer{ID: id, UniqueCode: code, ShopName: "Shop " + code}
	f.retailers.retailers = append(f.retailers.retailers, retailer)
	return retailer
}

func (f *testFixture) addEmployee(id, code string) *models.Employee {
	employee := &models.Employee{ID: id, EmployeeCode: code, Name: "Employee " + code}
	f.employees.employees = append(f.employees.employees, employee)
	return employee
}
