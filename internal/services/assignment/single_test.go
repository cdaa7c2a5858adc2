package assignment_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/services/assignment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignManyAssignsAllNewRetailers(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)
	f.addRetailer("r1", "RT-001")
	f.addRetailer("r2", "RT-002")
	f.addRetailer("r3", "RT-003")

	response, err := f.engine.AssignMany(context.Background(), "c1", models.EntityRetailer, []string{"r1", "r2", "r3"})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2", "r3"}, response.Assigned)
	assert.Empty(t, response.Skipped)
	assert.Equal(t, "3 retailers assigned", response.Message)
	assert.Equal(t, 3, f.publisher.count())
}

func TestAssignManySkipsAlreadyAssigned(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)
	for i, id := range []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"} {
		f.addRetailer(id, fmt.Sprintf("RT-%03d", i+1))
	}
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5"} {
		f.entries.seedRetailerEntry("c1", id, models.StatusPending)
	}

	response, err := f.engine.AssignMany(context.Background(), "c1", models.EntityRetailer,
		[]string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"})
	require.NoError(t, err)

	assert.Equal(t, []string{"r6", "r7", "r8"}, response.Assigned)
	require.Len(t, response.Skipped, 5)
	for _, skipped := range response.Skipped {
		assert.Equal(t, "already pending", skipped.Reason)
	}
	assert.Equal(t, "3 retailers assigned, 5 skipped (already assigned)", response.Message)
}

func TestAssignManyUnknownCampaign(t *testing.T) {
	f := newFixture()
	f.addRetailer("r1", "RT-001")

	response, err := f.engine.AssignMany(context.Background(), "missing", models.EntityRetailer, []string{"r1"})
	require.Error(t, err)
	assert.Nil(t, response)

	var notFound *assignment.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, assignment.ReasonCampaignNotFound, notFound.Reason)
}

func TestAssignManyUnknownEntitySkipsRowOnly(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)
	f.addRetailer("r1", "RT-001")

	response, err := f.engine.AssignMany(context.Background(), "c1", models.EntityRetailer, []string{"ghost", "r1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1"}, response.Assigned)
	require.Len(t, response.Skipped, 1)
	assert.Equal(t, "ghost", response.Skipped[0].ID)
	assert.Equal(t, assignment.ReasonRetailerNotFound, response.Skipped[0].Reason)
}

func TestAssignManyStatusSpecificConflicts(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)
	f.addRetailer("r1", "RT-001")
	f.addRetailer("r2", "RT-002")
	f.addRetailer("r3", "RT-003")
	f.entries.seedRetailerEntry("c1", "r1", models.StatusPending)
	f.entries.seedRetailerEntry("c1", "r2", models.StatusAccepted)
	f.entries.seedRetailerEntry("c1", "r3", models.StatusRejected)

	response, err := f.engine.AssignMany(context.Background(), "c1", models.EntityRetailer, []string{"r1", "r2", "r3"})
	require.NoError(t, err)

	require.Len(t, response.Skipped, 3)
	assert.Equal(t, "already pending", response.Skipped[0].Reason)
	assert.Equal(t, "already accepted", response.Skipped[1].Reason)
	assert.Equal(t, "already rejected", response.Skipped[2].Reason)
	assert.Equal(t, "0 retailers assigned, 3 skipped (already assigned)", response.Message)
}

func TestAssignManyEmployees(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Monsoon Drive", true)
	f.addEmployee("e1", "EMP-017")

	response, err := f.engine.AssignMany(context.Background(), "c1", models.EntityEmployee, []string{"e1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"e1"}, response.Assigned)
	assert.Equal(t, "1 employee assigned", response.Message)

	entry, err := f.entries.GetEmployeeEntry("c1", "e1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.False(t, entry.AssignedAt.IsZero())
}

func TestAssignManyInactiveCampaignSkipsAll(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Expired Push", false)
	f.addRetailer("r1", "RT-001")

	response, err := f.engine.AssignMany(context.Background(), "c1", models.EntityRetailer, []string{"r1"})
	require.NoError(t, err)

	assert.Empty(t, response.Assigned)
	require.Len(t, response.Skipped, 1)
	assert.Equal(t, assignment.ReasonCampaignInactive, response.Skipped[0].Reason)
}
