package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var visitDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validVisitDate reports whether raw is a real YYYY-MM-DD calendar date
// (2024-02-30 is rejected) that is not before today, where "today" is the
// process-local midnight of now.
func validVisitDate(raw string, now time.Time) bool {
	if !visitDateRE.MatchString(raw) {
		return false
	}
	d, err := time.ParseInLocation("2006-01-02", raw, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// parseTicketCount parses raw as a ticket count. The second return is false
// for non-numeric input; range checking is the caller's concern.
func parseTicketCount(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
