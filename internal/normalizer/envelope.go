// Package normalizer converts untyped messages from the upstream assistant
// into the closed set of typed surfaces in internal/surface. Input is
// treated as hostile: every field is checked before use, invalid fragments
// are dropped in place, and a record that cannot be made whole is rejected
// rather than partially emitted. Nothing in this package panics on any
// input.
package normalizer

import (
	"fmt"

	"github.com/workroomhq/surfacegate/internal/errors"
	"github.com/workroomhq/surfacegate/internal/surface"
)

// NormalizeEnvelope validates one raw record. The envelope fields are
// checked before any kind-specific work runs; a recognized kind then
// dispatches to its variant validator. A validator failure rejects the
// whole envelope.
func NormalizeEnvelope(v any) (*surface.Surface, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, errors.ErrNotObject
	}

	id, ok := stringField(m, "surface_id")
	if !ok {
		return nil, errors.ErrMissingSurfaceID
	}
	kind := optString(m, "kind")
	if !surface.KnownKind(kind) {
		return nil, fmt.Errorf("kind %q: %w", kind, errors.ErrUnknownKind)
	}
	title, ok := stringField(m, "title")
	if !ok {
		return nil, errors.ErrMissingTitle
	}

	payload, err := parsePayload(surface.Kind(kind), m["payload"])
	if err != nil {
		return nil, err
	}

	return &surface.Surface{
		ID:      id,
		Kind:    surface.Kind(kind),
		Title:   title,
		Payload: payload,
	}, nil
}

// parsePayload dispatches on the kind tag. The switch is exhaustive over
// surface.Kind: a new kind does not validate until a case is added here.
func parsePayload(kind surface.Kind, v any) (surface.Payload, error) {
	switch kind {
	case surface.KindWhatNext:
		return parseWhatNext(v)
	case surface.KindTodaySchedule:
		return parseTodaySchedule(v)
	case surface.KindPriorityList:
		return parsePriorityList(v)
	case surface.KindTriageTable:
		return parseTriageTable(v)
	case surface.KindContextAdd:
		return parseContextAdd(v)
	default:
		return nil, fmt.Errorf("kind %q: %w", kind, errors.ErrUnknownKind)
	}
}
