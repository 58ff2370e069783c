package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/profile"
)

func ids(scored []ScoredCareer) []string {
	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.ID)
	}
	return out
}

func scores(scored []ScoredCareer) []int {
	out := make([]int, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Score)
	}
	return out
}

func TestScoreDefaultProfile(t *testing.T) {
	p := &profile.Profile{
		Skills:    []string{"Python", "Data Structures"},
		Interests: []string{"AI", "Web Dev"},
	}

	scored := Score(p, catalog.Default())

	assert.Equal(t, []string{"ml-eng", "data-eng", "frontend-dev", "product-manager"}, ids(scored))
	assert.Equal(t, []int{4, 4, 2, 2}, scores(scored))
	assert.Equal(t, 1, scored[0].SkillOverlap)
	assert.Equal(t, 2, scored[0].InterestBoost)
}

func TestScoreRanksByOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		skills    []string
		interests []string
		ids       []string
		scores    []int
	}{
		{
			name:      "frontend skills win",
			skills:    []string{"javascript", "REACT", "html/css"},
			interests: []string{"Web"},
			ids:       []string{"frontend-dev", "ml-eng", "data-eng", "product-manager"},
			scores:    []int{7, 1, 1, 1},
		},
		{
			name:   "sql counts for ml and data, python too",
			skills: []string{"SQL", "Python"},
			ids:    []string{"ml-eng", "data-eng", "frontend-dev", "product-manager"},
			scores: []int{4, 4, 0, 0},
		},
		{
			name:   "only first token of required skill matches",
			skills: []string{"Scala", "PyTorch", "Cloud"},
			ids:    []string{"data-eng", "ml-eng", "frontend-dev", "product-manager"},
			scores: []int{2, 0, 0, 0},
		},
		{
			name:   "multi word profile skill never matches",
			skills: []string{"Data literacy"},
			ids:    []string{"ml-eng", "data-eng", "frontend-dev", "product-manager"},
			scores: []int{0, 0, 0, 0},
		},
		{
			name:      "interest boost applies to everything",
			interests: []string{"", "", ""},
			ids:       []string{"ml-eng", "data-eng", "frontend-dev", "product-manager"},
			scores:    []int{3, 3, 3, 3},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &profile.Profile{Skills: tt.skills, Interests: tt.interests}
			scored := Score(p, catalog.Default())

			assert.Equal(t, tt.ids, ids(scored))
			assert.Equal(t, tt.scores, scores(scored))
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	p := profile.Example()
	c := catalog.Default()

	first := Score(p, c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(p, c))
	}
}

func TestScoreEdgeCases(t *testing.T) {
	assert.Empty(t, Score(profile.Default(), nil))
	assert.Empty(t, Score(profile.Default(), &catalog.Catalog{}))

	scored := Score(nil, catalog.Default())
	assert.Equal(t, []int{0, 0, 0, 0}, scores(scored))
}

func TestExplain(t *testing.T) {
	s := ScoredCareer{Score: 4, SkillOverlap: 1, InterestBoost: 2}
	assert.Equal(t, "1 matching skill(s) x 2 + 2 interest(s) = 4", Explain(s))
}

func TestScorerSuggestWaitsConfiguredLatency(t *testing.T) {
	var waited time.Duration
	delay := func(_ context.Context, d time.Duration) error {
		waited = d
		return nil
	}

	scorer := NewScorer(nil, zap.NewNop(), WithDelay(delay))
	scored, err := scorer.Suggest(context.Background(), profile.Default())
	require.NoError(t, err)

	assert.Equal(t, DefaultLatency, waited)
	assert.Equal(t, "ml-eng", scored[0].ID)
	assert.Equal(t, 4, scorer.Catalog().Len())
}

func TestScorerSuggestUsesProfileSnapshot(t *testing.T) {
	p := profile.Default()
	// Edits made while the request is pending must not change its result.
	delay := func(context.Context, time.Duration) error {
		p.AddSkill("React")
		p.AddSkill("JavaScript")
		return nil
	}

	scorer := NewScorer(catalog.Default(), nil, WithDelay(delay), WithLatency(time.Second))
	scored, err := scorer.Suggest(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 4, 2, 2}, scores(scored))
	assert.Len(t, p.Skills, 4)
}

func TestScorerSuggestDelayError(t *testing.T) {
	boom := errors.New("cancelled")
	scorer := NewScorer(nil, nil, WithDelay(func(context.Context, time.Duration) error { return boom }))

	_, err := scorer.Suggest(context.Background(), profile.Default())
	require.ErrorIs(t, err, boom)
}
