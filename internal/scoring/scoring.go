// Package scoring ranks catalog careers against a user profile.
//
// The heuristic is intentionally simple and has two known weaknesses that are
// kept for compatibility:
//   - every career receives the same interest boost (the number of interests),
//     whatever the interests are;
//   - only the first space-delimited token of a required skill is matched, so
//     "Python / Scala" never matches "Scala".
package scoring

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/profile"
	"github.com/spigell/career-advisor/internal/utils"
)

const (
	// DefaultLatency is the simulated round trip of a suggestion request.
	DefaultLatency = 800 * time.Millisecond

	skillWeight = 2
)

// ScoredCareer is a catalog entry annotated with its relevance to a profile.
type ScoredCareer struct {
	catalog.CareerOption
	Score         int `json:"score"`
	SkillOverlap  int `json:"skill_overlap"`
	InterestBoost int `json:"interest_boost"`
}

// Score ranks every catalog entry for p. Entries are ordered by score, highest
// first; ties keep catalog order. The result always holds the whole catalog.
func Score(p *profile.Profile, c *catalog.Catalog) []ScoredCareer {
	if c == nil {
		return []ScoredCareer{}
	}

	owned := make(map[string]struct{})
	interests := 0
	if p != nil {
		for _, skill := range p.Skills {
			owned[strings.ToLower(skill)] = struct{}{}
		}
		interests = len(p.Interests)
	}

	scored := make([]ScoredCareer, 0, c.Len())
	for _, option := range c.Items {
		overlap := 0
		for _, needed := range option.SkillsNeeded {
			if _, ok := owned[matchKey(needed)]; ok {
				overlap++
			}
		}

		scored = append(scored, ScoredCareer{
			CareerOption:  option,
			Score:         overlap*skillWeight + interests,
			SkillOverlap:  overlap,
			InterestBoost: interests,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// matchKey reduces a required skill to its lower-cased first token.
func matchKey(skill string) string {
	first, _, _ := strings.Cut(skill, " ")
	return strings.ToLower(first)
}

// Explain describes how a score was built, for logs and the detail view.
func Explain(s ScoredCareer) string {
	return fmt.Sprintf("%d matching skill(s) x %d + %d interest(s) = %d",
		s.SkillOverlap, skillWeight, s.InterestBoost, s.Score)
}

// Scorer runs Score behind a simulated latency.
type Scorer struct {
	catalog *catalog.Catalog
	latency time.Duration
	delay   utils.Delay
	logger  *zap.Logger
}

type Option func(*Scorer)

// WithDelay replaces the wait used to simulate latency.
func WithDelay(delay utils.Delay) Option {
	return func(s *Scorer) {
		if delay != nil {
			s.delay = delay
		}
	}
}

func WithLatency(latency time.Duration) Option {
	return func(s *Scorer) {
		if latency >= 0 {
			s.latency = latency
		}
	}
}

func NewScorer(c *catalog.Catalog, logger *zap.Logger, opts ...Option) *Scorer {
	if c == nil {
		c = catalog.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Scorer{
		catalog: c,
		latency: DefaultLatency,
		delay:   utils.WaitFor,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scorer) Catalog() *catalog.Catalog {
	return s.catalog
}

// Suggest waits for the configured latency and then scores p.
// p is copied before waiting, so later edits do not leak into the result.
func (s *Scorer) Suggest(ctx context.Context, p *profile.Profile) ([]ScoredCareer, error) {
	snapshot := p.Clone()

	if err := s.delay(ctx, s.latency); err != nil {
		return nil, fmt.Errorf("waiting for suggestions: %w", err)
	}

	scored := Score(snapshot, s.catalog)

	if len(scored) > 0 {
		s.logger.Debug("scored careers",
			zap.Int("count", len(scored)),
			zap.String("top", scored[0].ID),
			zap.Int("top_score", scored[0].Score),
		)
	}

	return scored, nil
}
