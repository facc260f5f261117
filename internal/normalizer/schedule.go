package normalizer

import (
	"fmt"

	"github.com/workroomhq/surfacegate/internal/errors"
	"github.com/workroomhq/surfacegate/internal/surface"
)

func parseTodaySchedule(v any) (surface.Payload, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("today_schedule payload: %w", errors.ErrInvalidPayload)
	}

	rawBlocks, ok := arrayField(m, "blocks")
	if !ok {
		return nil, fmt.Errorf("today_schedule blocks: %w", errors.ErrInvalidPayload)
	}

	var blocks []surface.ScheduleBlock
	for _, rawBlock := range rawBlocks {
		if block, ok := parseScheduleBlock(rawBlock); ok {
			blocks = append(blocks, block)
		}
	}
	// A schedule surface with no blocks is meaningless and must not render.
	if len(blocks) == 0 {
		return nil, fmt.Errorf("today_schedule blocks: %w", errors.ErrEmptyAfterFilter)
	}

	payload := surface.TodaySchedulePayload{Blocks: blocks}

	if rawSuggestions, ok := arrayField(m, "suggestions"); ok {
		for _, rawSuggestion := range rawSuggestions {
			sm, ok := asObject(rawSuggestion)
			if !ok {
				continue
			}
			preview, ok := stringField(sm, "previewChange")
			if !ok {
				continue
			}
			acceptOp, ok := stringField(sm, "acceptOp")
			if !ok {
				continue
			}
			payload.Suggestions = append(payload.Suggestions, surface.ScheduleSuggestion{
				PreviewChange: preview,
				AcceptOp:      acceptOp,
			})
		}
	}

	if controls, ok := objectField(m, "controls"); ok {
		if op, ok := stringField(controls, "suggestAlternativesOp"); ok {
			payload.Controls = &surface.ScheduleControls{SuggestAlternativesOp: op}
		}
	}

	return payload, nil
}

func parseScheduleBlock(v any) (surface.ScheduleBlock, bool) {
	m, ok := asObject(v)
	if !ok {
		return surface.ScheduleBlock{}, false
	}

	blockID, ok := stringField(m, "blockId")
	if !ok {
		return surface.ScheduleBlock{}, false
	}
	blockType := optString(m, "type")
	if blockType != string(surface.BlockEvent) && blockType != string(surface.BlockFocus) {
		return surface.ScheduleBlock{}, false
	}
	label, ok := stringField(m, "label")
	if !ok {
		return surface.ScheduleBlock{}, false
	}
	start, ok := stringField(m, "start")
	if !ok {
		return surface.ScheduleBlock{}, false
	}
	end, ok := stringField(m, "end")
	if !ok {
		return surface.ScheduleBlock{}, false
	}
	isLocked, ok := boolField(m, "isLocked")
	if !ok {
		return surface.ScheduleBlock{}, false
	}

	return surface.ScheduleBlock{
		BlockID:  blockID,
		Type:     surface.BlockType(blockType),
		Label:    label,
		Start:    start,
		End:      end,
		IsLocked: isLocked,
		EventID:  optString(m, "eventId"),
		TaskID:   optString(m, "taskId"),
	}, true
}
