package surface

// Kind tags a surface envelope and fully determines its payload shape.
type Kind string

const (
	KindWhatNext      Kind = "what_next_v1"
	KindTodaySchedule Kind = "today_schedule_v1"
	KindPriorityList  Kind = "priority_list_v1"
	KindTriageTable   Kind = "triage_table_v1"
	KindContextAdd    Kind = "context_add_v1"
)

// Kinds returns the closed set of supported surface kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindWhatNext,
		KindTodaySchedule,
		KindPriorityList,
		KindTriageTable,
		KindContextAdd,
	}
}

// KnownKind reports whether s is one of the supported kind tags.
func KnownKind(s string) bool {
	switch Kind(s) {
	case KindWhatNext, KindTodaySchedule, KindPriorityList, KindTriageTable, KindContextAdd:
		return true
	default:
		return false
	}
}
