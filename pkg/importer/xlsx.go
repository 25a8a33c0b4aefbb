package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads import records from the first sheet of a workbook. The
// header row is matched case-insensitively with a few aliases, so exports
// from different tools still load.
func ParseXLSX(r io.Reader) ([]Record, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheets[0])
	}

	norm := func(s string) string {
		s = strings.TrimSpace(strings.ToLower(s))
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cDate := findAny("date", "day")
	cField := findAny("field_name", "field")
	cPlant := findAny("plant_name", "plant", "batch_name", "batch")
	cType := findAny("plant_type", "crop", "crop_type")
	cEvent := findAny("event_type", "event")
	cNote := findAny("note", "notes", "remark")
	cStatus := findAny("status", "new_status")

	if cDate == -1 || cField == -1 || cEvent == -1 {
		return nil, fmt.Errorf("missing required columns (date, field_name, event_type); found headers: %v", rows[0])
	}

	get := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []Record
	for _, row := range rows[1:] {
		rec := Record{
			Date:      get(row, cDate),
			FieldName: get(row, cField),
			PlantName: get(row, cPlant),
			PlantType: get(row, cType),
			EventType: get(row, cEvent),
			Note:      get(row, cNote),
			Status:    get(row, cStatus),
		}
		if rec.Date == "" && rec.FieldName == "" && rec.EventType == "" {
			continue // blank row
		}
		records = append(records, rec)
	}
	return records, nil
}
