package alerts

import (
	"fmt"
	"sort"
	"time"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
)

// Alert severities. "info" is unused by the current policy but part of the
// ordering contract.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// DefaultLimit is the dashboard feed cap. Truncation happens after the
// full computation.
const DefaultLimit = 20

var severityRank = map[string]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeverityInfo:     2,
}

type Alert struct {
	Type         string `json:"type"`
	Severity     string `json:"severity"`
	Message      string `json:"message"`
	PlantBatchID string `json:"plant_batch_id"`
	BatchName    string `json:"batch_name"`
	FieldName    string `json:"field_name"`
	DaysOverdue  int    `json:"days_overdue,omitempty"`
	Status       string `json:"status,omitempty"`
}

// DefaultProblemStatuses are the batch statuses that raise a status alert.
func DefaultProblemStatuses() map[string]bool {
	return map[string]bool{
		entities.StatusAtRisk:   true,
		entities.StatusCritical: true,
		entities.StatusDiseased: true,
	}
}

// Build produces the alert feed for a set of batches: one irrigation alert
// per past-due or never-irrigated batch, one status alert per batch in a
// problem status. Irrigation tier "overdue" maps to alert severity
// "warning" — the naming mismatch is deliberate and relied upon by
// consumers. Output is stably sorted critical < warning < info and cut to
// limit after the full pass.
func Build(batches []irrigation.Batch, asOf time.Time, problemStatuses map[string]bool, limit int) ([]Alert, error) {
	if problemStatuses == nil {
		problemStatuses = DefaultProblemStatuses()
	}

	var out []Alert
	for _, b := range batches {
		st, err := irrigation.ComputeStatus(b.LastIrrigation, b.FrequencyDays, asOf)
		if err != nil {
			return nil, err
		}
		switch {
		case st.NextDue.Never:
			out = append(out, Alert{
				Type:         "irrigation",
				Severity:     SeverityCritical,
				Message:      fmt.Sprintf("%s in %s has never been irrigated", b.BatchName, b.FieldName),
				PlantBatchID: b.ID,
				BatchName:    b.BatchName,
				FieldName:    b.FieldName,
			})
		case st.DaysOverdue > 0:
			sev := SeverityWarning
			if st.DaysOverdue > 2 {
				sev = SeverityCritical
			}
			out = append(out, Alert{
				Type:         "irrigation",
				Severity:     sev,
				Message:      fmt.Sprintf("%s in %s is %d days overdue for irrigation", b.BatchName, b.FieldName, st.DaysOverdue),
				PlantBatchID: b.ID,
				BatchName:    b.BatchName,
				FieldName:    b.FieldName,
				DaysOverdue:  st.DaysOverdue,
			})
		}
	}

	for _, b := range batches {
		if !problemStatuses[b.CurrentStatus] {
			continue
		}
		sev := SeverityWarning
		if b.CurrentStatus == entities.StatusCritical || b.CurrentStatus == entities.StatusDiseased {
			sev = SeverityCritical
		}
		out = append(out, Alert{
			Type:         "status",
			Severity:     sev,
			Message:      fmt.Sprintf("%s in %s has status: %s", b.BatchName, b.FieldName, b.CurrentStatus),
			PlantBatchID: b.ID,
			BatchName:    b.BatchName,
			FieldName:    b.FieldName,
			Status:       b.CurrentStatus,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return severityRank[out[i].Severity] < severityRank[out[j].Severity]
	})

	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
