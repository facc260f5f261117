// Package surface defines the closed set of typed surface descriptors the
// rendering layer consumes. Values are built once by the normalizer and
// never mutated afterwards, so callers may compare pointers to detect
// unchanged surfaces across state ticks.
package surface

// Payload is the kind-specific body of a surface envelope. It is a sealed
// tagged variant: exactly one concrete payload type exists per Kind, and
// adding a kind means adding a type and extending every exhaustive switch.
type Payload interface {
	Kind() Kind
}

// Surface is the outer validated envelope handed to the rendering layer.
type Surface struct {
	ID      string  `json:"surface_id"`
	Kind    Kind    `json:"kind"`
	Title   string  `json:"title"`
	Payload Payload `json:"payload"`
}

// PrimaryBlock is the headline section of a what-next surface.
type PrimaryBlock struct {
	Headline         string      `json:"headline"`
	Body             string      `json:"body,omitempty"`
	Target           *NavTarget  `json:"target,omitempty"`
	PrimaryAction    *ActionRef  `json:"primary_action,omitempty"`
	SecondaryActions []ActionRef `json:"secondary_actions,omitempty"`
}

// WhatNextPayload suggests the user's next move.
type WhatNextPayload struct {
	Primary        PrimaryBlock `json:"primary"`
	SecondaryNotes []Note       `json:"secondary_notes,omitempty"`
}

func (WhatNextPayload) Kind() Kind { return KindWhatNext }

// BlockType classifies a schedule block.
type BlockType string

const (
	BlockEvent BlockType = "event"
	BlockFocus BlockType = "focus"
)

// ScheduleBlock is one entry on a today-schedule surface.
type ScheduleBlock struct {
	BlockID  string    `json:"block_id"`
	Type     BlockType `json:"type"`
	Label    string    `json:"label"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	IsLocked bool      `json:"is_locked"`
	EventID  string    `json:"event_id,omitempty"`
	TaskID   string    `json:"task_id,omitempty"`
}

// ScheduleSuggestion previews a schedule change the user may accept.
type ScheduleSuggestion struct {
	PreviewChange string `json:"preview_change"`
	AcceptOp      string `json:"accept_op"`
}

// ScheduleControls carries schedule-wide operation tokens.
type ScheduleControls struct {
	SuggestAlternativesOp string `json:"suggest_alternatives_op,omitempty"`
}

// TodaySchedulePayload lays out the user's day. Blocks is never empty.
type TodaySchedulePayload struct {
	Blocks      []ScheduleBlock      `json:"blocks"`
	Suggestions []ScheduleSuggestion `json:"suggestions,omitempty"`
	Controls    *ScheduleControls    `json:"controls,omitempty"`
}

func (TodaySchedulePayload) Kind() Kind { return KindTodaySchedule }

// PriorityItem is one ranked entry on a priority-list surface.
type PriorityItem struct {
	Rank                float64     `json:"rank"`
	TaskID              string      `json:"task_id"`
	Label               string      `json:"label"`
	Reason              string      `json:"reason,omitempty"`
	TimeEstimateMinutes float64     `json:"time_estimate_minutes,omitempty"`
	NavigateTo          *NavTarget  `json:"navigate_to,omitempty"`
	QuickActions        []OpTrigger `json:"quick_actions,omitempty"`
}

// PriorityListPayload ranks tasks. Items is never empty.
type PriorityListPayload struct {
	Items []PriorityItem `json:"items"`
}

func (PriorityListPayload) Kind() Kind { return KindPriorityList }

// TriageItem is one queue entry awaiting an approve/decline decision.
type TriageItem struct {
	QueueItemID     string `json:"queue_item_id"`
	Source          string `json:"source"`
	Subject         string `json:"subject"`
	ApproveOp       string `json:"approve_op"`
	DeclineOp       string `json:"decline_op"`
	From            string `json:"from,omitempty"`
	ReceivedAt      string `json:"received_at,omitempty"`
	SuggestedAction string `json:"suggested_action,omitempty"`
	SuggestedTaskID string `json:"suggested_task_id,omitempty"`
}

// TriageGroupActions carries bulk operation tokens for a triage group.
type TriageGroupActions struct {
	ApproveAllOp string `json:"approve_all_op,omitempty"`
	DeclineAllOp string `json:"decline_all_op,omitempty"`
}

// TriageGroup holds a non-empty batch of triage items.
type TriageGroup struct {
	GroupID      string              `json:"group_id"`
	Label        string              `json:"label"`
	Summary      string              `json:"summary,omitempty"`
	Items        []TriageItem        `json:"items"`
	GroupActions *TriageGroupActions `json:"group_actions,omitempty"`
}

// TriageTablePayload groups pending queue items. Groups is never empty
// and no group has an empty item list.
type TriageTablePayload struct {
	Groups []TriageGroup `json:"groups"`
}

func (TriageTablePayload) Kind() Kind { return KindTriageTable }

// ContextItem is one piece of addable context.
type ContextItem struct {
	ContextID  string     `json:"context_id"`
	Label      string     `json:"label"`
	SourceType string     `json:"source_type,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	NavigateTo *NavTarget `json:"navigate_to,omitempty"`
	AddOp      string     `json:"add_op,omitempty"`
}

// ContextAddPayload offers context the user can attach. Items is never empty.
type ContextAddPayload struct {
	Headline string        `json:"headline,omitempty"`
	Items    []ContextItem `json:"items"`
}

func (ContextAddPayload) Kind() Kind { return KindContextAdd }
