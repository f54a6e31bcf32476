package preference

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ordinalRe strips day ordinal suffixes so "May 28th, 2025" parses as "May 28, 2025".
var ordinalRe = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

// dateLayouts are tried in order; the first match wins. Month/day order is
// preferred over day/month for slash dates.
var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"01/02/2006",
	"02/01/2006",
}

// ParseDate resolves a textual calendar date in any of the supported formats.
func ParseDate(s string) (time.Time, error) {
	cleaned := strings.TrimSpace(ordinalRe.ReplaceAllString(s, "$1"))
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// validateDates enforces the future-trip invariant: the start date must be at
// least tomorrow relative to now, and the end date must not precede the start.
func validateDates(p *TripProfile, now time.Time) error {
	if p.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required; please provide a valid start date for your trip", ErrDateValidation)
	}

	tomorrow := now.AddDate(0, 0, 1)
	tomorrow = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(p.StartDate.Year(), p.StartDate.Month(), p.StartDate.Day(), 0, 0, 0, 0, time.UTC)

	if start.Before(tomorrow) {
		return fmt.Errorf("%w: travel dates must be in the future; the start date (%s) is in the past or today, please provide dates starting from %s or later",
			ErrDateValidation, p.StartDate.Format("January 2, 2006"), tomorrow.Format("January 2, 2006"))
	}

	if !p.EndDate.IsZero() {
		end := time.Date(p.EndDate.Year(), p.EndDate.Month(), p.EndDate.Day(), 0, 0, 0, 0, time.UTC)
		if end.Before(start) {
			return fmt.Errorf("%w: end date (%s) must be after start date (%s)",
				ErrDateValidation, p.EndDate.Format("January 2, 2006"), p.StartDate.Format("January 2, 2006"))
		}
	}
	return nil
}
