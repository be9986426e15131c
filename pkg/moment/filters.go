package moment

import (
	"time"

	"tableflip.dev/momentchen/pkg/notion"
)

// TodayFilter selects moments whose Zeitpunkt falls on the current local
// day, with both bounds expressed in UTC.
func TodayFilter(now time.Time) *notion.Filter {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)
	return notion.And(
		notion.DateOnOrAfter(TimestampProperty, start.UTC().Format(time.RFC3339)),
		notion.DateBefore(TimestampProperty, end.UTC().Format(time.RFC3339)),
	)
}

// ActiveProjectsFilter selects projects currently in progress.
func ActiveProjectsFilter() *notion.Filter {
	return notion.StatusEquals("Status", "In Bearbeitung")
}

// ActiveLifeAreasFilter selects life areas marked active.
func ActiveLifeAreasFilter() *notion.Filter {
	return notion.StatusEquals("Status", "Aktiv")
}
