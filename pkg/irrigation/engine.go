package irrigation

import (
	"fmt"
	"sort"
	"time"
)

// Irrigation tiers. The exact strings are part of the API contract.
const (
	TierOnTime   = "on_time"
	TierOverdue  = "overdue"
	TierCritical = "critical"
)

// ValidationError reports malformed engine input. Bad input is rejected,
// never clamped or defaulted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DueDate is the next irrigation due date. Never is set for batches that
// were never irrigated: there is no due date to report, and such batches
// outrank every overdue one.
type DueDate struct {
	Never bool       `json:"never"`
	Date  *time.Time `json:"date,omitempty"`
}

// Before reports whether d sorts ahead of other in urgency order.
func (d DueDate) Before(other DueDate) bool {
	if d.Never != other.Never {
		return d.Never
	}
	if d.Never || d.Date == nil || other.Date == nil {
		return false
	}
	return d.Date.Before(*other.Date)
}

type Status struct {
	Tier        string  `json:"status"`
	DaysOverdue int     `json:"days_overdue"`
	NextDue     DueDate `json:"next_due_date"`
}

// Batch is the read-only slice of a plant batch the engine consumes.
type Batch struct {
	ID             string     `json:"id"`
	BatchName      string     `json:"batch_name"`
	FieldName      string     `json:"field_name"`
	CurrentStatus  string     `json:"current_status"`
	LastIrrigation *time.Time `json:"last_irrigation_date,omitempty"`
	FrequencyDays  int        `json:"irrigation_frequency_days"`
}

// midnight truncates t to the start of its calendar day so "days overdue"
// is a whole-day integer, stable within a day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeStatus derives the due date, overdue day count and tier for one
// batch. A nil last date means the batch was never irrigated and is always
// critical with no due date. Otherwise the due date is last + frequency
// days; a not-yet-due batch reports zero days overdue and on_time.
func ComputeStatus(last *time.Time, frequencyDays int, asOf time.Time) (Status, error) {
	if frequencyDays <= 0 {
		return Status{}, &ValidationError{Field: "irrigation_frequency_days", Reason: fmt.Sprintf("must be positive, got %d", frequencyDays)}
	}
	if asOf.IsZero() {
		return Status{}, &ValidationError{Field: "as_of_date", Reason: "must not be zero"}
	}

	if last == nil {
		return Status{Tier: TierCritical, DaysOverdue: 0, NextDue: DueDate{Never: true}}, nil
	}

	next := midnight(*last).AddDate(0, 0, frequencyDays)
	today := midnight(asOf)
	overdue := int(today.Sub(next).Hours() / 24)

	st := Status{NextDue: DueDate{Date: &next}}
	switch {
	case overdue <= 0:
		st.Tier = TierOnTime
		st.DaysOverdue = 0
	case overdue <= 2:
		st.Tier = TierOverdue
		st.DaysOverdue = overdue
	default:
		st.Tier = TierCritical
		st.DaysOverdue = overdue
	}
	return st, nil
}

// OverdueEntry is one batch needing irrigation.
type OverdueEntry struct {
	Batch
	DaysOverdue    int    `json:"days_overdue"`
	Severity       string `json:"severity"`
	NeverIrrigated bool   `json:"never_irrigated"`
}

// ListOverdue filters batches to those past due or never irrigated and
// sorts them most urgent first: never-irrigated batches lead, then
// descending days overdue. Ties keep input order.
func ListOverdue(batches []Batch, asOf time.Time) ([]OverdueEntry, error) {
	var out []OverdueEntry
	for _, b := range batches {
		st, err := ComputeStatus(b.LastIrrigation, b.FrequencyDays, asOf)
		if err != nil {
			return nil, err
		}
		if st.NextDue.Never {
			out = append(out, OverdueEntry{Batch: b, DaysOverdue: 0, Severity: TierCritical, NeverIrrigated: true})
			continue
		}
		if st.DaysOverdue <= 0 {
			continue
		}
		sev := TierOverdue
		if st.DaysOverdue > 2 {
			sev = TierCritical
		}
		out = append(out, OverdueEntry{Batch: b, DaysOverdue: st.DaysOverdue, Severity: sev})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].NeverIrrigated != out[j].NeverIrrigated {
			return out[i].NeverIrrigated
		}
		return out[i].DaysOverdue > out[j].DaysOverdue
	})
	return out, nil
}

type Counts struct {
	Overdue      int `json:"overdue"`
	Critical     int `json:"critical"`
	TotalOverdue int `json:"total_overdue"`
}

// DashboardCounts partitions batches into overdue and critical buckets
// using the same tiering as ListOverdue, so the two can never disagree on
// a batch's classification.
func DashboardCounts(batches []Batch, asOf time.Time) (Counts, error) {
	entries, err := ListOverdue(batches, asOf)
	if err != nil {
		return Counts{}, err
	}
	var c Counts
	for _, e := range entries {
		switch e.Severity {
		case TierOverdue:
			c.Overdue++
		case TierCritical:
			c.Critical++
		}
	}
	c.TotalOverdue = c.Overdue + c.Critical
	return c, nil
}
