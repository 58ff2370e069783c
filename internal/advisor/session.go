package advisor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/logger"
	"github.com/spigell/career-advisor/internal/profile"
	"github.com/spigell/career-advisor/internal/scoring"
)

// Step is the screen the session is on.
type Step string

const (
	StepOnboard Step = "onboard"
	StepResults Step = "results"

	// ResumeHelperMessage is the acknowledgment shown by the resume helper stub.
	ResumeHelperMessage = "Resume helper is a mock in this prototype"

	noSelection = -1
)

var (
	// ErrUnknownCareer is returned when selecting a career that is not in the current suggestions.
	ErrUnknownCareer = errors.New("career is not among the suggestions")
	// ErrSuperseded is returned by Generate when a newer request started before this one finished.
	// Its result was discarded.
	ErrSuperseded = errors.New("suggestion request superseded by a newer one")
)

// Suggester produces ranked careers for a profile.
type Suggester interface {
	Suggest(ctx context.Context, p *profile.Profile) ([]scoring.ScoredCareer, error)
}

// State is a point-in-time copy of the session used for rendering.
type State struct {
	SessionID   string
	Step        Step
	Loading     bool
	Profile     *profile.Profile
	Suggestions []scoring.ScoredCareer
	// Selected is shown as a detail overlay whatever the step is.
	Selected *scoring.ScoredCareer
}

// Session holds the profile and the view state of one user.
//
// Every Generate call takes a new generation number. Only the result of the
// latest generation is applied, so an earlier slow request can never
// overwrite a newer one.
type Session struct {
	mu sync.Mutex

	id        string
	suggester Suggester
	logger    *zap.Logger

	profile     *profile.Profile
	step        Step
	suggestions []scoring.ScoredCareer
	selected    int

	generation uint64
	loading    bool
}

func New(p *profile.Profile, suggester Suggester, log *zap.Logger) *Session {
	if p == nil {
		p = profile.Default()
	}

	id := uuid.NewString()
	return &Session{
		id:        id,
		suggester: suggester,
		logger:    logger.WithSession(log, id, p.Name),
		profile:   p.Clone(),
		step:      StepOnboard,
		selected:  noSelection,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		SessionID:   s.id,
		Step:        s.step,
		Loading:     s.loading,
		Profile:     s.profile.Clone(),
		Suggestions: slices.Clone(s.suggestions),
	}
	if s.selected != noSelection {
		selected := s.suggestions[s.selected]
		state.Selected = &selected
	}
	return state
}

func (s *Session) Profile() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SetName(name)
}

func (s *Session) SetExperience(level profile.ExperienceLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SetExperience(level)
}

func (s *Session) AddSkill(skill string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.profile.AddSkill(skill)
	if added {
		s.logger.Debug("skill added", zap.String("skill", skill), zap.Int("skills", len(s.profile.Skills)))
	}
	return added
}

func (s *Session) RemoveSkill(skill string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.profile.RemoveSkill(skill)
	if removed > 0 {
		s.logger.Debug("skill removed", zap.String("skill", skill), zap.Int("skills", len(s.profile.Skills)))
	}
	return removed
}

func (s *Session) SetInterests(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SetInterests(raw)
}

// LoadExample fills the profile with the example preset.
func (s *Session) LoadExample() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.ApplyExample()
	s.logger.Debug("example profile loaded")
}

// Generate scores the current profile and moves the session to the results step.
// The profile is copied when the request starts. If another Generate starts
// before this one completes, this result is dropped and ErrSuperseded returned.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	snapshot := s.profile.Clone()
	s.mu.Unlock()

	s.logger.Debug("generating suggestions", zap.Uint64("generation", gen))

	scored, err := s.suggester.Suggest(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("dropping stale suggestions",
			zap.Uint64("generation", gen),
			zap.Uint64("latest", s.generation),
		)
		return ErrSuperseded
	}

	s.loading = false
	if err != nil {
		return fmt.Errorf("generating suggestions: %w", err)
	}

	s.suggestions = scored
	s.selected = noSelection
	s.step = StepResults

	fields := []zap.Field{zap.Int("count", len(scored))}
	if len(scored) > 0 {
		fields = append(fields, zap.String("top", scored[0].ID), zap.Int("top_score", scored[0].Score))
	}
	s.logger.Info("suggestions ready", fields...)

	return nil
}

// Edit returns to the onboarding step. Profile, suggestions and selection are kept.
func (s *Session) Edit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepOnboard
}

// Select opens the detail overlay for the suggestion with the given career id.
func (s *Session) Select(id string) (*scoring.ScoredCareer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.suggestions, func(c scoring.ScoredCareer) bool {
		return c.ID == id
	})
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCareer, id)
	}

	s.selected = idx
	selected := s.suggestions[idx]
	return &selected, nil
}

// ViewRoadmap keeps an existing selection or, when there is none, selects the
// top suggestion. It reports false when there is nothing to show.
func (s *Session) ViewRoadmap() (*scoring.ScoredCareer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == noSelection {
		if len(s.suggestions) == 0 {
			return nil, false
		}
		s.selected = 0
	}

	selected := s.suggestions[s.selected]
	return &selected, true
}

// ResumeHelper is a stub and only acknowledges the request.
func (s *Session) ResumeHelper() string {
	s.logger.Debug("resume helper requested")
	return ResumeHelperMessage
}
