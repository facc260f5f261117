package normalizer

import (
	"github.com/workroomhq/surfacegate/internal/surface"
)

// parseNavTarget matches a value against the four known navigation
// destinations. An unrecognized destination tag, or a recognized tag with
// its required field missing or mistyped, yields no target.
func parseNavTarget(v any) (*surface.NavTarget, bool) {
	m, ok := asObject(v)
	if !ok {
		return nil, false
	}

	switch surface.NavDest(optString(m, "destination")) {
	case surface.NavWorkroomTask:
		taskID, ok := stringField(m, "taskId")
		if !ok {
			return nil, false
		}
		return &surface.NavTarget{Dest: surface.NavWorkroomTask, TaskID: taskID}, true

	case surface.NavHubQueue:
		return &surface.NavTarget{Dest: surface.NavHubQueue}, true

	case surface.NavHub:
		target := &surface.NavTarget{Dest: surface.NavHub}
		if section := optString(m, "section"); surface.KnownHubSection(section) {
			target.Section = surface.HubSection(section)
		}
		return target, true

	case surface.NavCalendarEvent:
		eventID, ok := stringField(m, "eventId")
		if !ok {
			return nil, false
		}
		return &surface.NavTarget{Dest: surface.NavCalendarEvent, EventID: eventID}, true

	default:
		return nil, false
	}
}

// parseOpTrigger requires label and opToken as non-empty strings. A
// mistyped confirm is dropped, not fatal.
func parseOpTrigger(v any) (*surface.OpTrigger, bool) {
	m, ok := asObject(v)
	if !ok {
		return nil, false
	}

	label, ok := stringField(m, "label")
	if !ok {
		return nil, false
	}
	opToken, ok := stringField(m, "opToken")
	if !ok {
		return nil, false
	}

	trigger := &surface.OpTrigger{Label: label, OpToken: opToken}
	if confirm, ok := boolField(m, "confirm"); ok {
		trigger.Confirm = confirm
	}
	return trigger, true
}

// parseActionRef resolves one action slot. The operation-trigger shape is
// tried first: it is cheaper and more specific, so an object carrying both
// an opToken and navigation-looking fields becomes an operation trigger.
// The navigation shape accepts either a nested navigateTo object or the
// legacy flattened encoding with destination fields directly on the action.
func parseActionRef(v any) (*surface.ActionRef, bool) {
	if trigger, ok := parseOpTrigger(v); ok {
		return &surface.ActionRef{Kind: surface.ActionOpTrigger, Op: trigger}, true
	}

	m, ok := asObject(v)
	if !ok {
		return nil, false
	}
	label, ok := stringField(m, "label")
	if !ok {
		return nil, false
	}

	if target, ok := parseNavTarget(m["navigateTo"]); ok {
		return &surface.ActionRef{
			Kind: surface.ActionNavigate,
			Nav:  &surface.NavAction{Label: label, Target: *target},
		}, true
	}
	if target, ok := parseNavTarget(m); ok {
		return &surface.ActionRef{
			Kind: surface.ActionNavigate,
			Nav:  &surface.NavAction{Label: label, Target: *target},
		}, true
	}

	return nil, false
}

// parseNotes keeps only notes with a string text. An empty surviving list
// is reported as nil: an explicitly empty notes list carries nothing worth
// rendering and must not be distinguishable from an absent one.
func parseNotes(v any) []surface.Note {
	items, ok := asArray(v)
	if !ok {
		return nil
	}

	var notes []surface.Note
	for _, item := range items {
		m, ok := asObject(item)
		if !ok {
			continue
		}
		text, ok := stringField(m, "text")
		if !ok {
			continue
		}
		notes = append(notes, surface.Note{Text: text, Icon: optString(m, "icon")})
	}
	return notes
}
