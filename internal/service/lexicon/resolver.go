package lexicon

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/moe-backend/internal/domain"
	"github.com/heartmarshall/moe-backend/internal/provider"
)

// Default per-tier timeouts.
const (
	DefaultDictionaryTimeout = 8 * time.Second
	DefaultAITimeout         = 10 * time.Second
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

type entryGenerator interface {
	Generate(ctx context.Context, word string) domain.WordDetails
}

// Resolver turns a word into WordDetails by trying each source in order.
type Resolver struct {
	dict        dictionaryProvider
	ai          entryGenerator
	dictTimeout time.Duration
	aiTimeout   time.Duration
	log         *slog.Logger
}

// Timeouts bounds each resolution tier. Zero values use the defaults.
type Timeouts struct {
	Dictionary time.Duration
	AI         time.Duration
}

// NewResolver creates a Resolver. Either source may be nil, in which case
// that tier is skipped.
func NewResolver(logger *slog.Logger, dict dictionaryProvider, ai entryGenerator, timeouts Timeouts) *Resolver {
	if timeouts.Dictionary <= 0 {
		timeouts.Dictionary = DefaultDictionaryTimeout
	}
	if timeouts.AI <= 0 {
		timeouts.AI = DefaultAITimeout
	}
	return &Resolver{
		dict:        dict,
		ai:          ai,
		dictTimeout: timeouts.Dictionary,
		aiTimeout:   timeouts.AI,
		log:         logger.With("service", "lexicon"),
	}
}

type tier struct {
	name    string
	timeout time.Duration
	fetch   func(ctx context.Context, word string) (domain.WordDetails, bool)
}

func (r *Resolver) tiers() []tier {
	var tiers []tier
	if r.dict != nil {
		tiers = append(tiers, tier{name: "dictionary", timeout: r.dictTimeout, fetch: r.lookupDictionary})
	}
	if r.ai != nil {
		tiers = append(tiers, tier{name: "ai", timeout: r.aiTimeout, fetch: r.generateAI})
	}
	return tiers
}

// Resolve returns the first complete record produced by the dictionary tier,
// then the AI tier. word must already be trimmed and lowercased.
// Returns ErrWordNotFound when every tier came back empty.
func (r *Resolver) Resolve(ctx context.Context, word string) (domain.WordDetails, error) {
	for _, t := range r.tiers() {
		details, ok := r.runTier(ctx, t, word)
		if !ok {
			continue
		}
		if err := details.Validate(); err != nil {
			r.log.WarnContext(ctx, "tier produced incomplete record",
				slog.String("tier", t.name),
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			continue
		}
		r.log.DebugContext(ctx, "word resolved",
			slog.String("tier", t.name),
			slog.String("word", word),
			slog.String("source", string(details.Source)),
		)
		return details, nil
	}

	return domain.WordDetails{}, ErrWordNotFound
}

func (r *Resolver) runTier(ctx context.Context, t tier, word string) (domain.WordDetails, bool) {
	tctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.fetch(tctx, word)
}

func (r *Resolver) generateAI(ctx context.Context, word string) (domain.WordDetails, bool) {
	return r.ai.Generate(ctx, word), true
}
