package normalizer

import (
	"fmt"

	"github.com/workroomhq/surfacegate/internal/errors"
	"github.com/workroomhq/surfacegate/internal/surface"
)

func parsePriorityList(v any) (surface.Payload, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("priority_list payload: %w", errors.ErrInvalidPayload)
	}

	rawItems, ok := arrayField(m, "items")
	if !ok {
		return nil, fmt.Errorf("priority_list items: %w", errors.ErrInvalidPayload)
	}

	var items []surface.PriorityItem
	for _, rawItem := range rawItems {
		if item, ok := parsePriorityItem(rawItem); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("priority_list items: %w", errors.ErrEmptyAfterFilter)
	}

	return surface.PriorityListPayload{Items: items}, nil
}

func parsePriorityItem(v any) (surface.PriorityItem, bool) {
	m, ok := asObject(v)
	if !ok {
		return surface.PriorityItem{}, false
	}

	rank, ok := numberField(m, "rank")
	if !ok {
		return surface.PriorityItem{}, false
	}
	taskID, ok := stringField(m, "taskId")
	if !ok {
		return surface.PriorityItem{}, false
	}
	label, ok := stringField(m, "label")
	if !ok {
		return surface.PriorityItem{}, false
	}

	item := surface.PriorityItem{
		Rank:   rank,
		TaskID: taskID,
		Label:  label,
		Reason: optString(m, "reason"),
	}
	if estimate, ok := numberField(m, "timeEstimateMinutes"); ok {
		item.TimeEstimateMinutes = estimate
	}
	if target, ok := parseNavTarget(m["navigateTo"]); ok {
		item.NavigateTo = target
	}
	if rawActions, ok := arrayField(m, "quickActions"); ok {
		for _, rawAction := range rawActions {
			if trigger, ok := parseOpTrigger(rawAction); ok {
				item.QuickActions = append(item.QuickActions, *trigger)
			}
		}
	}
	return item, true
}
