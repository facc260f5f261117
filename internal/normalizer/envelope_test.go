package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workroomhq/surfacegate/internal/errors"
	"github.com/workroomhq/surfacegate/internal/surface"
)

func decodeRecord(t *testing.T, raw string) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	return record
}

func envelope(kind string, payload map[string]any) map[string]any {
	return map[string]any{
		"surface_id": "s-1",
		"kind":       kind,
		"title":      "t",
		"payload":    payload,
	}
}

func TestNormalizeEnvelope_RejectsBadEnvelopes(t *testing.T) {
	cases := []struct {
		name   string
		record any
		want   error
	}{
		{"nil", nil, errors.ErrNotObject},
		{"string", "surface", errors.ErrNotObject},
		{"missing id", map[string]any{"kind": "what_next_v1", "title": "t"}, errors.ErrMissingSurfaceID},
		{"empty id", map[string]any{"surface_id": "", "kind": "what_next_v1", "title": "t"}, errors.ErrMissingSurfaceID},
		{"unknown kind", envelope("chart_v1", map[string]any{}), errors.ErrUnknownKind},
		{"missing title", map[string]any{"surface_id": "s-1", "kind": "what_next_v1"}, errors.ErrMissingTitle},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, err := NormalizeEnvelope(tc.record)
			assert.Nil(t, normalized)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNormalizeEnvelope_WhatNextMinimal(t *testing.T) {
	record := decodeRecord(t, `{
		"surface_id": "s-1", "kind": "what_next_v1", "title": "t",
		"payload": {"primary": {"headline": "h"}}
	}`)

	normalized, err := NormalizeEnvelope(record)
	require.NoError(t, err)
	assert.Equal(t, surface.KindWhatNext, normalized.Kind)

	payload, ok := normalized.Payload.(surface.WhatNextPayload)
	require.True(t, ok)
	assert.Equal(t, "h", payload.Primary.Headline)
	assert.Nil(t, payload.SecondaryNotes)
}

func TestNormalizeEnvelope_WhatNextDegradesFragments(t *testing.T) {
	record := decodeRecord(t, `{
		"surface_id": "s-1", "kind": "what_next_v1", "title": "t",
		"payload": {
			"primary": {
				"headline": "h",
				"body": "b",
				"target": {"destination": "nowhere"},
				"primaryAction": {"label": "Go", "navigateTo": {"destination": "hub_queue"}},
				"secondaryActions": [
					{"label": "Approve", "opToken": "op-1"},
					{"label": "broken"}
				]
			},
			"secondaryNotes": [{"text": "note"}, {"icon": "no-text"}]
		}
	}`)

	normalized, err := NormalizeEnvelope(record)
	require.NoError(t, err)

	payload := normalized.Payload.(surface.WhatNextPayload)
	assert.Nil(t, payload.Primary.Target, "unparseable target degrades, never fails the block")
	require.NotNil(t, payload.Primary.PrimaryAction)
	assert.Equal(t, surface.ActionNavigate, payload.Primary.PrimaryAction.Kind)
	require.Len(t, payload.Primary.SecondaryActions, 1)
	assert.Equal(t, "op-1", payload.Primary.SecondaryActions[0].Op.OpToken)
	require.Len(t, payload.SecondaryNotes, 1)
	assert.Equal(t, "note", payload.SecondaryNotes[0].Text)
}

func TestNormalizeEnvelope_WhatNextMissingHeadline(t *testing.T) {
	_, err := NormalizeEnvelope(envelope("what_next_v1", map[string]any{
		"primary": map[string]any{"body": "b"},
	}))
	assert.ErrorIs(t, err, errors.ErrInvalidPayload)
}

func TestNormalizeEnvelope_TodayScheduleMinimal(t *testing.T) {
	record := decodeRecord(t, `{
		"surface_id": "s-2", "kind": "today_schedule_v1", "title": "today",
		"payload": {
			"blocks": [
				{"blockId": "b1", "type": "focus", "label": "Deep work",
				 "start": "09:00", "end": "10:30", "isLocked": false, "taskId": "t-1"}
			],
			"suggestions": [
				{"previewChange": "move lunch", "acceptOp": "op-accept"},
				{"previewChange": "broken"}
			],
			"controls": {"suggestAlternativesOp": "op-alt"}
		}
	}`)

	normalized, err := NormalizeEnvelope(record)
	require.NoError(t, err)

	payload := normalized.Payload.(surface.TodaySchedulePayload)
	require.Len(t, payload.Blocks, 1)
	assert.Equal(t, surface.BlockFocus, payload.Blocks[0].Type)
	assert.Equal(t, "t-1", payload.Blocks[0].TaskID)
	require.Len(t, payload.Suggestions, 1)
	assert.Equal(t, "op-accept", payload.Suggestions[0].AcceptOp)
	require.NotNil(t, payload.Controls)
	assert.Equal(t, "op-alt", payload.Controls.SuggestAlternativesOp)
}

func TestNormalizeEnvelope_TodayScheduleDropsBadBlocks(t *testing.T) {
	record := decodeRecord(t, `{
		"surface_id": "s-2", "kind": "today_schedule_v1", "title": "today",
		"payload": {"blocks": [
			{"blockId": "b1", "type": "meeting", "label": "l", "start": "09:00", "end": "10:00", "isLocked": true},
			{"blockId": "b2", "type": "event", "label": "l", "start": "09:00", "end": "10:00", "isLocked": "yes"},
			{"blockId": "b3", "type": "event", "label": "l", "start": "09:00", "end": "10:00", "isLocked": true}
		]}
	}`)

	normalized, err := NormalizeEnvelope(record)
	require.NoError(t, err)

	payload := normalized.Payload.(surface.TodaySchedulePayload)
	require.Len(t, payload.Blocks, 1)
	assert.Equal(t, "b3", payload.Blocks[0].BlockID)
}

func TestNormalizeEnvelope_TodayScheduleEmptyBlocksRejects(t *testing.T) {
	_, err := NormalizeEnvelope(envelope("today_schedule_v1", map[string]any{
		"blocks": []any{map[string]any{"blockId": "b1"}},
	}))
	assert.ErrorIs(t, err, errors.ErrEmptyAfterFilter)

	_, err = NormalizeEnvelope(envelope("today_schedule_v1", map[string]any{}))
	assert.ErrorIs(t, err, errors.ErrInvalidPayload)
}

func TestNormalizeEnvelope_PriorityListFiltersItems(t *testing.T) {
	record := decodeRecord(t, `{
		"surface_id": "s-3", "kind": "priority_list_v1", "title": "priorities",
		"payload": {"items": [
			{"rank": 1, "taskId": "t-1", "label": "Ship it",
			 "reason": "due", "timeEstimateMinutes": 30,
			 "navigateTo": {"destination": "workroom_task", "taskId": "t-1"},
			 "quickActions": [{"label": "Done", "opToken": "op-done"}, {"label": "nope"}]},
			{"rank": 2, "label": "missing taskId"}
		]}
	}`)

	normalized, err := NormalizeEnvelope(record)
	require.NoError(t, err)

	payload := normalized.Payload.(surface.PriorityListPayload)
	require.Len(t, payload.Items, 1)
	item := payload.Items[0]
	assert.Equal(t, float64(1), item.Rank)
	assert.Equal(t, float64(30), item.TimeEstimateMinutes)
	require.NotNil(t, item.NavigateTo)
	require.Len(t, item.QuickActions, 1)
	assert.Equal(t, "op-done", item.QuickActions[0].OpToken)
}

func TestNormalizeEnvelope_PriorityListEmptyRejects(t *testing.T) {
	_, err := NormalizeEnvelope(envelope("priority_list_v1", map[string]any{
		"items": []any{map[string]any{"rank": "first", "taskId": "t-1", "label": "l"}},
	}))
	assert.ErrorIs(t, err, errors.ErrEmptyAfterFilter)
}

func TestNormalizeEnvelope_TriageTableDropsEmptyGroups(t *testing.T) {
	record := decodeRecord(t, `{
		"surface_id": "s-4", "kind": "triage_table_v1", "title": "triage",
		"payload": {"groups": [
			{"groupId": "g1", "label": "Email", "summary": "inbox",
			 "items": [
				{"queueItemId": "q1", "source": "email", "subject": "Invoice",
				 "approveOp": "op-a", "declineOp": "op-d",
				 "from": "ana", "suggestedTask": {"taskId": "t-9"}},
				{"queueItemId": "q2", "source": "email", "subject": "broken"}
			 ],
			 "groupActions": {"approveAllOp": "op-all"}},
			{"groupId": "g2", "label": "Slack",
			 "items": [{"queueItemId": "q3", "source": "slack", "subject": "no ops"}]}
		]}
	}`)

	normalized, err := NormalizeEnvelope(record)
	require.NoError(t, err)

	payload := normalized.Payload.(surface.TriageTablePayload)
	require.Len(t, payload.Groups, 1, "a group with zero valid items is dropped whole")
	group := payload.Groups[0]
	assert.Equal(t, "g1", group.GroupID)
	require.Len(t, group.Items, 1)
	assert.Equal(t, "t-9", group.Items[0].SuggestedTaskID)
	require.NotNil(t, group.GroupActions)
	assert.Equal(t, "op-all", group.GroupActions.ApproveAllOp)
	assert.Empty(t, group.GroupActions.DeclineAllOp)
}

func TestNormalizeEnvelope_TriageTableAllGroupsEmptyRejects(t *testing.T) {
	_, err := NormalizeEnvelope(envelope("triage_table_v1", map[string]any{
		"groups": []any{map[string]any{"groupId": "g1", "label": "l", "items": []any{}}},
	}))
	assert.ErrorIs(t, err, errors.ErrEmptyAfterFilter)
}

func TestNormalizeEnvelope_ContextAddMinimal(t *testing.T) {
	record := decodeRecord(t, `{
		"surface_id": "s-5", "kind": "context_add_v1", "title": "context",
		"payload": {
			"headline": "Recent docs",
			"items": [
				{"contextId": "c1", "label": "Q3 notes", "sourceType": "doc",
				 "navigateTo": {"destination": "hub", "section": "today"}, "addOp": "op-add"},
				{"label": "no id"}
			]
		}
	}`)

	normalized, err := NormalizeEnvelope(record)
	require.NoError(t, err)

	payload := normalized.Payload.(surface.ContextAddPayload)
	assert.Equal(t, "Recent docs", payload.Headline)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "op-add", payload.Items[0].AddOp)
	require.NotNil(t, payload.Items[0].NavigateTo)
	assert.Equal(t, surface.HubSectionToday, payload.Items[0].NavigateTo.Section)
}

func TestNormalizeEnvelope_ContextAddEmptyRejects(t *testing.T) {
	_, err := NormalizeEnvelope(envelope("context_add_v1", map[string]any{"items": []any{}}))
	assert.ErrorIs(t, err, errors.ErrEmptyAfterFilter)
}
