package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/fieldproof-com/fieldproofgo/internal/models"
)

// TimelineEntry is one merged, human-readable line of the activity narrative
type TimelineEntry struct {
	Description string
	Start       time.Time
	End         time.Time
	Count       int
}

// TimeLabel renders the entry's timestamp, showing a range only when the
// merged events span more than an instant.
func (e TimelineEntry) TimeLabel() string {
	if e.End.After(e.Start) {
		return fmt.Sprintf("%s - %s", formatTime(e.Start), formatClock(e.End))
	}
	return formatTime(e.Start)
}

// eventTemplate controls how one event type merges and reads. A zero window
// collapses every occurrence into a single group regardless of spacing.
type eventTemplate struct {
	window   time.Duration
	singular func(e models.AuditLogEntry) string
	plural   string
}

// meaningfulEvents is the allow-list of event types the narrative shows.
// Everything else stays in the raw audit trail and is dropped here.
var meaningfulEvents = map[string]eventTemplate{
	models.EventJobCreated: {
		window: 10 * time.Minute,
		singular: func(e models.AuditLogEntry) string {
			return fmt.Sprintf("Job created by %s", e.Actor())
		},
		plural: "%d job records created",
	},
	models.EventJobUpdated: {
		window: 10 * time.Minute,
		singular: func(e models.AuditLogEntry) string {
			return fmt.Sprintf("Job details updated by %s", e.Actor())
		},
		plural: "%d job updates",
	},
	models.EventJobStatusChanged: {
		window: 10 * time.Minute,
		singular: func(e models.AuditLogEntry) string {
			if status := e.Metadata.String("status"); status != "" {
				return fmt.Sprintf("Status changed to %s by %s", statusLabel(status), e.Actor())
			}
			return fmt.Sprintf("Job status changed by %s", e.Actor())
		},
		plural: "%d status changes",
	},
	models.EventDocumentUploaded: {
		window: 5 * time.Minute,
		singular: func(e models.AuditLogEntry) string {
			if name := e.Metadata.String("name"); name != "" {
				return fmt.Sprintf("Document uploaded: %s", name)
			}
			return fmt.Sprintf("Document uploaded by %s", e.Actor())
		},
		plural: "%d documents uploaded",
	},
	models.EventMitigationCompleted: {
		window: 10 * time.Minute,
		singular: func(e models.AuditLogEntry) string {
			if title := e.Metadata.String("title"); title != "" {
				return fmt.Sprintf("Control completed: %s", title)
			}
			return fmt.Sprintf("Control completed by %s", e.Actor())
		},
		plural: "%d controls completed",
	},
	models.EventMitigationReopened: {
		window: 10 * time.Minute,
		singular: func(e models.AuditLogEntry) string {
			if title := e.Metadata.String("title"); title != "" {
				return fmt.Sprintf("Control reopened: %s", title)
			}
			return fmt.Sprintf("Control reopened by %s", e.Actor())
		},
		plural: "%d controls reopened",
	},
	models.EventReportGenerated: {
		window: 0,
		singular: func(e models.AuditLogEntry) string {
			return "Compliance report generated"
		},
		plural: "%d compliance reports generated",
	},
}

// SummarizeTimeline reduces an unordered audit trail to a chronological
// narrative. Events outside the allow-list are dropped; bursts of the same
// event type within the type's merge window collapse into a single entry
// that pluralizes its description. No event is ever fabricated, only merged.
func SummarizeTimeline(entries []models.AuditLogEntry) []TimelineEntry {
	byType := make(map[string][]models.AuditLogEntry)
	for _, e := range entries {
		if _, ok := meaningfulEvents[e.EventName]; ok {
			byType[e.EventName] = append(byType[e.EventName], e)
		}
	}

	// Map iteration order is randomized; the narrative must be identical
	// across renders or the output hash drifts.
	names := make([]string, 0, len(byType))
	for name := range byType {
		names = append(names, name)
	}
	sort.Strings(names)

	var result []TimelineEntry
	for _, name := range names {
		events := byType[name]
		tpl := meaningfulEvents[name]
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		})

		// A group is anchored at its first event; the next event starts a
		// new group once it falls outside the window from that anchor.
		start := 0
		for i := 1; i <= len(events); i++ {
			if i < len(events) && withinWindow(events[start], events[i], tpl.window) {
				continue
			}
			result = append(result, renderGroup(events[start:i], tpl))
			start = i
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Start.Equal(result[j].Start) {
			return result[i].Start.Before(result[j].Start)
		}
		return result[i].Description < result[j].Description
	})
	return result
}

func withinWindow(anchor, e models.AuditLogEntry, window time.Duration) bool {
	if window == 0 {
		return true
	}
	return e.CreatedAt.Sub(anchor.CreatedAt) <= window
}

func renderGroup(group []models.AuditLogEntry, tpl eventTemplate) TimelineEntry {
	entry := TimelineEntry{
		Start: group[0].CreatedAt,
		End:   group[len(group)-1].CreatedAt,
		Count: len(group),
	}
	if len(group) == 1 {
		entry.Description = tpl.singular(group[0])
	} else {
		entry.Description = fmt.Sprintf(tpl.plural, len(group))
	}
	return entry
}
