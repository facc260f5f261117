package surface

// NavDest tags a navigation target variant.
type NavDest string

const (
	NavWorkroomTask  NavDest = "workroom_task"
	NavHubQueue      NavDest = "hub_queue"
	NavHub           NavDest = "hub"
	NavCalendarEvent NavDest = "calendar_event"
)

// HubSection is the optional sub-destination of a NavHub target.
type HubSection string

const (
	HubSectionToday    HubSection = "today"
	HubSectionMetrics  HubSection = "metrics"
	HubSectionPriority HubSection = "priority"
)

// KnownHubSection reports whether s is a recognized hub section.
func KnownHubSection(s string) bool {
	switch HubSection(s) {
	case HubSectionToday, HubSectionMetrics, HubSectionPriority:
		return true
	default:
		return false
	}
}

// NavTarget describes where the UI should route the user. Exactly the
// fields required by Dest are populated: TaskID for workroom_task,
// EventID for calendar_event, Section (optionally) for hub.
type NavTarget struct {
	Dest    NavDest    `json:"dest"`
	TaskID  string     `json:"task_id,omitempty"`
	EventID string     `json:"event_id,omitempty"`
	Section HubSection `json:"section,omitempty"`
}
