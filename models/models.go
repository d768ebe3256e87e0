package models

import "time"

// Wire formats for dates and timestamps
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&MeasurementTemplate{},
		&Measurement{},
		&Order{},
		&OrderItem{},
		&Payment{},
		&Staff{},
		&OrderStaffAssignment{},
		&Sample{},
		&SampleImage{},
	}
}

// FormatTimestamp renders a creation timestamp in the API wire format
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// IsValidDate reports whether s is a calendar date in DateLayout
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
