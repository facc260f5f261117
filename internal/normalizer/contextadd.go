package normalizer

import (
	"fmt"

	"github.com/workroomhq/surfacegate/internal/errors"
	"github.com/workroomhq/surfacegate/internal/surface"
)

func parseContextAdd(v any) (surface.Payload, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("context_add payload: %w", errors.ErrInvalidPayload)
	}

	rawItems, ok := arrayField(m, "items")
	if !ok {
		return nil, fmt.Errorf("context_add items: %w", errors.ErrInvalidPayload)
	}

	var items []surface.ContextItem
	for _, rawItem := range rawItems {
		if item, ok := parseContextItem(rawItem); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("context_add items: %w", errors.ErrEmptyAfterFilter)
	}

	return surface.ContextAddPayload{
		Headline: optString(m, "headline"),
		Items:    items,
	}, nil
}

func parseContextItem(v any) (surface.ContextItem, bool) {
	m, ok := asObject(v)
	if !ok {
		return surface.ContextItem{}, false
	}

	contextID, ok := stringField(m, "contextId")
	if !ok {
		return surface.ContextItem{}, false
	}
	label, ok := stringField(m, "label")
	if !ok {
		return surface.ContextItem{}, false
	}

	item := surface.ContextItem{
		ContextID:  contextID,
		Label:      label,
		SourceType: optString(m, "sourceType"),
		Summary:    optString(m, "summary"),
		AddOp:      optString(m, "addOp"),
	}
	if target, ok := parseNavTarget(m["navigateTo"]); ok {
		item.NavigateTo = target
	}
	return item, true
}
