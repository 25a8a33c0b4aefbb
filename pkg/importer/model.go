package importer

// Record is one imported farm-log row.
type Record struct {
	Date      string `json:"date"` // YYYY-MM-DD
	FieldName string `json:"field_name"`
	PlantName string `json:"plant_name,omitempty"`
	PlantType string `json:"plant_type,omitempty"`
	EventType string `json:"event_type"` // irrigation | observation | problem | status_change
	Note      string `json:"note,omitempty"`
	Status    string `json:"status,omitempty"`
}

// RecordError ties a failure to the record that caused it.
type RecordError struct {
	RecordIndex int    `json:"record_index"`
	Error       string `json:"error"`
}

type Summary struct {
	ImportJobID       string        `json:"import_job_id"`
	TotalRecords      int           `json:"total_records"`
	SuccessfulRecords int           `json:"successful_records"`
	FailedRecords     int           `json:"failed_records"`
	Errors            []RecordError `json:"errors"`
}
