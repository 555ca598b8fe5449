package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/sosodev/duration"
)

// SecondsToClock formats seconds as "H:MM:SS", or "MM:SS" below one hour.
func SecondsToClock(seconds *int64) *string {
	if seconds == nil || *seconds < 0 {
		return nil
	}
	s := *seconds
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60

	var text string
	if h > 0 {
		text = fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	} else {
		text = fmt.Sprintf("%02d:%02d", m, sec)
	}
	return &text
}

// ISODurationToSeconds converts an ISO-8601 duration such as "PT1H2M3S" to whole seconds, rounding down.
// Malformed input yields nil, as do bare "P"/"PT" and calendar (year or month) components,
// which have no fixed length in seconds.
func ISODurationToSeconds(iso string) *int64 {
	iso = strings.TrimSpace(iso)
	if !strings.ContainsAny(iso, "0123456789") {
		return nil
	}
	d, err := duration.Parse(iso)
	if err != nil || d.Negative || d.Years != 0 || d.Months != 0 {
		return nil
	}
	secs := int64(math.Floor(d.ToTimeDuration().Seconds()))
	if secs < 0 {
		return nil
	}
	return &secs
}

// FloatSecondsToInt floors a fractional second count. NaN, infinities and negatives yield nil.
func FloatSecondsToInt(seconds *float64) *int64 {
	if seconds == nil || math.IsNaN(*seconds) || math.IsInf(*seconds, 0) || *seconds < 0 {
		return nil
	}
	secs := int64(math.Floor(*seconds))
	return &secs
}
