package normalizer

import (
	"fmt"

	"github.com/workroomhq/surfacegate/internal/errors"
	"github.com/workroomhq/surfacegate/internal/surface"
)

func parseWhatNext(v any) (surface.Payload, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("what_next payload: %w", errors.ErrInvalidPayload)
	}

	primaryRaw, ok := objectField(m, "primary")
	if !ok {
		return nil, fmt.Errorf("what_next primary: %w", errors.ErrInvalidPayload)
	}
	headline, ok := stringField(primaryRaw, "headline")
	if !ok {
		return nil, fmt.Errorf("what_next headline: %w", errors.ErrInvalidPayload)
	}

	primary := surface.PrimaryBlock{
		Headline: headline,
		Body:     optString(primaryRaw, "body"),
	}

	// An unparseable target degrades the block instead of failing it.
	if target, ok := parseNavTarget(primaryRaw["target"]); ok {
		primary.Target = target
	}
	if action, ok := parseActionRef(primaryRaw["primaryAction"]); ok {
		primary.PrimaryAction = action
	}
	if rawActions, ok := arrayField(primaryRaw, "secondaryActions"); ok {
		for _, rawAction := range rawActions {
			if action, ok := parseActionRef(rawAction); ok {
				primary.SecondaryActions = append(primary.SecondaryActions, *action)
			}
		}
	}

	return surface.WhatNextPayload{
		Primary:        primary,
		SecondaryNotes: parseNotes(m["secondaryNotes"]),
	}, nil
}
