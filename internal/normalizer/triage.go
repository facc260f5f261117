package normalizer

import (
	"fmt"

	"github.com/workroomhq/surfacegate/internal/errors"
	"github.com/workroomhq/surfacegate/internal/surface"
)

func parseTriageTable(v any) (surface.Payload, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("triage_table payload: %w", errors.ErrInvalidPayload)
	}

	rawGroups, ok := arrayField(m, "groups")
	if !ok {
		return nil, fmt.Errorf("triage_table groups: %w", errors.ErrInvalidPayload)
	}

	var groups []surface.TriageGroup
	for _, rawGroup := range rawGroups {
		if group, ok := parseTriageGroup(rawGroup); ok {
			groups = append(groups, group)
		}
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("triage_table groups: %w", errors.ErrEmptyAfterFilter)
	}

	return surface.TriageTablePayload{Groups: groups}, nil
}

func parseTriageGroup(v any) (surface.TriageGroup, bool) {
	m, ok := asObject(v)
	if !ok {
		return surface.TriageGroup{}, false
	}

	groupID, ok := stringField(m, "groupId")
	if !ok {
		return surface.TriageGroup{}, false
	}
	label, ok := stringField(m, "label")
	if !ok {
		return surface.TriageGroup{}, false
	}
	rawItems, ok := arrayField(m, "items")
	if !ok {
		return surface.TriageGroup{}, false
	}

	var items []surface.TriageItem
	for _, rawItem := range rawItems {
		if item, ok := parseTriageItem(rawItem); ok {
			items = append(items, item)
		}
	}
	// A group that lost every item is dropped whole, not kept as a shell.
	if len(items) == 0 {
		return surface.TriageGroup{}, false
	}

	group := surface.TriageGroup{
		GroupID: groupID,
		Label:   label,
		Summary: optString(m, "summary"),
		Items:   items,
	}

	if rawActions, ok := objectField(m, "groupActions"); ok {
		actions := surface.TriageGroupActions{
			ApproveAllOp: optString(rawActions, "approveAllOp"),
			DeclineAllOp: optString(rawActions, "declineAllOp"),
		}
		if actions.ApproveAllOp != "" || actions.DeclineAllOp != "" {
			group.GroupActions = &actions
		}
	}

	return group, true
}

func parseTriageItem(v any) (surface.TriageItem, bool) {
	m, ok := asObject(v)
	if !ok {
		return surface.TriageItem{}, false
	}

	queueItemID, ok := stringField(m, "queueItemId")
	if !ok {
		return surface.TriageItem{}, false
	}
	source, ok := stringField(m, "source")
	if !ok {
		return surface.TriageItem{}, false
	}
	subject, ok := stringField(m, "subject")
	if !ok {
		return surface.TriageItem{}, false
	}
	approveOp, ok := stringField(m, "approveOp")
	if !ok {
		return surface.TriageItem{}, false
	}
	declineOp, ok := stringField(m, "declineOp")
	if !ok {
		return surface.TriageItem{}, false
	}

	item := surface.TriageItem{
		QueueItemID:     queueItemID,
		Source:          source,
		Subject:         subject,
		ApproveOp:       approveOp,
		DeclineOp:       declineOp,
		From:            optString(m, "from"),
		ReceivedAt:      optString(m, "receivedAt"),
		SuggestedAction: optString(m, "suggestedAction"),
	}
	if suggested, ok := objectField(m, "suggestedTask"); ok {
		item.SuggestedTaskID = optString(suggested, "taskId")
	}
	return item, true
}
