package surface

import "testing"

func TestKnownKind(t *testing.T) {
	for _, kind := range Kinds() {
		if !KnownKind(string(kind)) {
			t.Fatalf("kind %q should be known", kind)
		}
	}

	for _, s := range []string{"", "what_next", "what_next_v2", "chart_v1"} {
		if KnownKind(s) {
			t.Fatalf("kind %q should not be known", s)
		}
	}
}

func TestPayloadKindTags(t *testing.T) {
	cases := map[Kind]Payload{
		KindWhatNext:      WhatNextPayload{},
		KindTodaySchedule: TodaySchedulePayload{},
		KindPriorityList:  PriorityListPayload{},
		KindTriageTable:   TriageTablePayload{},
		KindContextAdd:    ContextAddPayload{},
	}
	if len(cases) != len(Kinds()) {
		t.Fatalf("payload variants (%d) out of sync with kinds (%d)", len(cases), len(Kinds()))
	}
	for kind, payload := range cases {
		if payload.Kind() != kind {
			t.Fatalf("payload for %q reports %q", kind, payload.Kind())
		}
	}
}
