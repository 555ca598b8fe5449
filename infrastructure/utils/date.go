package utils

import (
	"strings"
	"time"
)

const (
	compactDateLayout = "20060102"
	dateOnlyLayout    = "2006-01-02"
	// Python-style isoformat keeps the numeric offset even for UTC
	isoOffsetLayout = "2006-01-02T15:04:05-07:00"
)

func parseCompactDate(yyyymmdd string) (time.Time, bool) {
	if len(yyyymmdd) != 8 {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(compactDateLayout, yyyymmdd, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CompactDateToISO turns "YYYYMMDD" into a timestamp at UTC midnight, e.g. "2021-06-01T00:00:00+00:00".
func CompactDateToISO(yyyymmdd string) *string {
	t, ok := parseCompactDate(yyyymmdd)
	if !ok {
		return nil
	}
	s := t.Format(isoOffsetLayout)
	return &s
}

// CompactDateToDateOnly turns "YYYYMMDD" into "YYYY-MM-DD".
func CompactDateToDateOnly(yyyymmdd string) *string {
	t, ok := parseCompactDate(yyyymmdd)
	if !ok {
		return nil
	}
	s := t.Format(dateOnlyLayout)
	return &s
}

// ISOTimestampToDateOnly keeps the date part of an ISO-8601 timestamp (everything before "T").
func ISOTimestampToDateOnly(iso *string) *string {
	if iso == nil || *iso == "" {
		return nil
	}
	date, _, _ := strings.Cut(*iso, "T")
	if _, err := time.Parse(dateOnlyLayout, date); err != nil {
		return nil
	}
	return &date
}
