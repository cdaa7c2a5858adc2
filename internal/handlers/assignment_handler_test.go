package handlers

import (
	"testing"

	"github.com/brandreach/campaign-crm-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestEntitiesRetailers(t *testing.T) {
	entityType, ids, err := requestEntities(&models.AssignRequest{
		CampaignID:  "c1",
		RetailerIDs: []string{"r1", "r2"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntityRetailer, entityType)
	assert.Equal(t, []string{"r1", "r2"}, ids)
}

func TestRequestEntitiesEmployees(t *testing.T) {
	entityType, ids, err := requestEntities(&models.AssignRequest{
		CampaignID:  "c1",
		EmployeeIDs: []string{"e1"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntityEmployee, entityType)
	assert.Equal(t, []string{"e1"}, ids)
}

func TestRequestEntitiesRejectsBothLists(t *testing.T) {
	_, _, err := requestEntities(&models.AssignRequest{
		CampaignID:  "c1",
		RetailerIDs: []string{"r1"},
		EmployeeIDs: []string{"e1"},
	})
	assert.Error(t, err)
}

func TestRequestEntitiesRejectsEmptyRequest(t *testing.T) {
	_, _, err := requestEntities(&models.AssignRequest{CampaignID: "c1"})
	assert.Error(t, err)
}
