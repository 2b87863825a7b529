package utils

import (
	"fmt"
	"strings"
	"time"
)

var indonesianShortMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

const DateLayout = "2006-01-02"

// FormatTanggal renders t as "dd Mon yyyy" with Indonesian month names, or "-" when t is nil.
func FormatTanggal(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), indonesianShortMonths[t.Month()-1], t.Year())
}

// ParseTanggal reads a "2006-01-02" date. "", "null" and "undefined" mean no date.
func ParseTanggal(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "null" || value == "undefined" {
		return nil, nil
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("error parsing date %q: %v", value, err)
	}

	return &t, nil
}

// DateInputValue is the value of an <input type="date"> for t.
func DateInputValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
