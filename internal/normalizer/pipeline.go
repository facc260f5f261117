package normalizer

import (
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/workroomhq/surfacegate/internal/surface"
	"github.com/workroomhq/surfacegate/internal/surfcache"
)

// Pipeline is the only entry point render code should use. It runs the
// envelope normalizer over a raw batch, memoizing results through the
// cache so an unchanged (surface_id, payload) pair yields the same
// pointer on every tick.
type Pipeline struct {
	cache *surfcache.Cache
	log   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCache swaps the backing cache, e.g. a per-session instance.
func WithCache(cache *surfcache.Cache) Option {
	return func(p *Pipeline) { p.cache = cache }
}

// WithLogger routes rejection diagnostics to a specific logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// NewPipeline builds a pipeline with a default-capacity cache and the
// process-default logger.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		cache: surfcache.New(surfcache.DefaultCapacity),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Normalize validates a raw batch into ordered typed surfaces. Non-array
// input yields an empty result. Rejections are reported as warnings on
// the diagnostic channel only; this function returns for every input and
// never raises. Rejected records are never cached, so a malformed record
// reproduces the same rejection on replay.
func (p *Pipeline) Normalize(raw any) []*surface.Surface {
	items, ok := raw.([]any)
	if !ok {
		return []*surface.Surface{}
	}

	runID := ulid.Make().String()
	out := make([]*surface.Surface, 0, len(items))

	for i, item := range items {
		record, ok := asObject(item)
		if !ok {
			p.log.Warn("surface skipped: not an object", "run_id", runID, "index", i)
			continue
		}

		surfaceID := optString(record, "surface_id")
		contentHash := ""
		if surfaceID != "" {
			contentHash = surfcache.ContentHash(record["payload"])
			if cached := p.cache.Get(surfaceID, contentHash); cached != nil {
				out = append(out, cached)
				continue
			}
		}

		normalized, err := NormalizeEnvelope(record)
		if err != nil {
			p.log.Warn("surface skipped: invalid schema",
				"run_id", runID, "index", i, "surface_id", surfaceID, "error", err)
			continue
		}

		out = append(out, normalized)
		// Id-less records cannot be deduplicated meaningfully, so they
		// are re-normalized every pass instead of cached.
		if surfaceID != "" {
			p.cache.Put(surfaceID, contentHash, normalized)
		}
	}

	return out
}

// ClearCache forces full re-validation on the next pass.
func (p *Pipeline) ClearCache() {
	p.cache.Clear()
}
