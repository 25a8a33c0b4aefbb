package alerts

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datep(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestBuildSeverityMapping(t *testing.T) {
	asOf := date(2024, 12, 12)
	batches := []irrigation.Batch{
		{ID: "a", BatchName: "Tomatoes", FieldName: "North", CurrentStatus: entities.StatusHealthy,
			LastIrrigation: datep(2024, 12, 8), FrequencyDays: 3}, // 1 day overdue
		{ID: "b", BatchName: "Wheat", FieldName: "South", CurrentStatus: entities.StatusHealthy,
			LastIrrigation: datep(2024, 12, 1), FrequencyDays: 7}, // 4 days overdue
		{ID: "c", BatchName: "Cucumbers", FieldName: "East", CurrentStatus: entities.StatusHealthy,
			LastIrrigation: nil, FrequencyDays: 2}, // never irrigated
	}

	out, err := Build(batches, asOf, nil, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, out, 3)

	bySev := map[string][]Alert{}
	for _, a := range out {
		bySev[a.Severity] = append(bySev[a.Severity], a)
	}

	// Tier "overdue" surfaces as alert severity "warning".
	require.Len(t, bySev[SeverityWarning], 1)
	assert.Equal(t, "a", bySev[SeverityWarning][0].PlantBatchID)
	assert.Equal(t, "Tomatoes in North is 1 days overdue for irrigation", bySev[SeverityWarning][0].Message)
	assert.Equal(t, 1, bySev[SeverityWarning][0].DaysOverdue)

	require.Len(t, bySev[SeverityCritical], 2)
	msgs := []string{bySev[SeverityCritical][0].Message, bySev[SeverityCritical][1].Message}
	assert.Contains(t, msgs, "Wheat in South is 4 days overdue for irrigation")
	assert.Contains(t, msgs, "Cucumbers in East has never been irrigated")
}

func TestBuildStatusAlerts(t *testing.T) {
	asOf := date(2024, 12, 12)
	batches := []irrigation.Batch{
		{ID: "a", BatchName: "Tomatoes", FieldName: "North", CurrentStatus: entities.StatusAtRisk,
			LastIrrigation: datep(2024, 12, 11), FrequencyDays: 3},
		{ID: "b", BatchName: "Wheat", FieldName: "South", CurrentStatus: entities.StatusDiseased,
			LastIrrigation: datep(2024, 12, 11), FrequencyDays: 3},
		{ID: "c", BatchName: "Peppers", FieldName: "East", CurrentStatus: entities.StatusHealthy,
			LastIrrigation: datep(2024, 12, 11), FrequencyDays: 3},
		{ID: "d", BatchName: "Apples", FieldName: "West", CurrentStatus: entities.StatusHarvested,
			LastIrrigation: datep(2024, 12, 11), FrequencyDays: 3},
	}

	out, err := Build(batches, asOf, nil, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Critical severity sorts ahead of warning.
	assert.Equal(t, "b", out[0].PlantBatchID)
	assert.Equal(t, SeverityCritical, out[0].Severity)
	assert.Equal(t, "Wheat in South has status: diseased", out[0].Message)
	assert.Equal(t, entities.StatusDiseased, out[0].Status)

	assert.Equal(t, "a", out[1].PlantBatchID)
	assert.Equal(t, SeverityWarning, out[1].Severity)
	assert.Equal(t, "Tomatoes in North has status: at_risk", out[1].Message)
}

func TestBuildStableOrderWithinSeverity(t *testing.T) {
	asOf := date(2024, 12, 12)
	// Two critical irrigation alerts plus a critical status alert: the
	// irrigation pass runs first, each pass keeps input order.
	batches := []irrigation.Batch{
		{ID: "a", BatchName: "A", FieldName: "F", CurrentStatus: entities.StatusHealthy,
			LastIrrigation: nil, FrequencyDays: 2},
		{ID: "b", BatchName: "B", FieldName: "F", CurrentStatus: entities.StatusCritical,
			LastIrrigation: datep(2024, 12, 11), FrequencyDays: 3},
		{ID: "c", BatchName: "C", FieldName: "F", CurrentStatus: entities.StatusHealthy,
			LastIrrigation: datep(2024, 12, 1), FrequencyDays: 7},
	}

	out, err := Build(batches, asOf, nil, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"a", "c", "b"}, []string{out[0].PlantBatchID, out[1].PlantBatchID, out[2].PlantBatchID})
	for _, a := range out {
		assert.Equal(t, SeverityCritical, a.Severity)
	}
}

func TestBuildTruncatesAfterSorting(t *testing.T) {
	asOf := date(2024, 12, 12)
	var batches []irrigation.Batch
	// 25 warning-level alerts followed by one critical: the critical batch
	// must survive truncation even though it comes last in the input.
	for i := 0; i < 25; i++ {
		batches = append(batches, irrigation.Batch{
			ID: fmt.Sprintf("w%d", i), BatchName: "W", FieldName: "F",
			CurrentStatus:  entities.StatusHealthy,
			LastIrrigation: datep(2024, 12, 10), FrequencyDays: 1, // 1 day overdue
		})
	}
	batches = append(batches, irrigation.Batch{
		ID: "crit", BatchName: "C", FieldName: "F",
		CurrentStatus:  entities.StatusHealthy,
		LastIrrigation: nil, FrequencyDays: 2,
	})

	out, err := Build(batches, asOf, nil, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, out, DefaultLimit)
	assert.Equal(t, "crit", out[0].PlantBatchID)
	assert.Equal(t, SeverityCritical, out[0].Severity)
}

func TestBuildInvalidFrequencyPropagates(t *testing.T) {
	_, err := Build([]irrigation.Batch{{ID: "a", FrequencyDays: 0}}, date(2024, 12, 12), nil, DefaultLimit)
	var vErr *irrigation.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestBuildCustomProblemStatuses(t *testing.T) {
	asOf := date(2024, 12, 12)
	batches := []irrigation.Batch{
		{ID: "a", BatchName: "A", FieldName: "F", CurrentStatus: entities.StatusHarvested,
			LastIrrigation: datep(2024, 12, 11), FrequencyDays: 3},
	}
	out, err := Build(batches, asOf, map[string]bool{entities.StatusHarvested: true}, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "status", out[0].Type)
	assert.Equal(t, SeverityWarning, out[0].Severity)
}
