package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSkill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial []string
		skill   string
		added   bool
		expect  []string
	}{
		{
			name:    "appends new skill to the end",
			initial: []string{"Python"},
			skill:   "SQL",
			added:   true,
			expect:  []string{"Python", "SQL"},
		},
		{
			name:    "ignores exact duplicate",
			initial: []string{"Python", "SQL"},
			skill:   "Python",
			expect:  []string{"Python", "SQL"},
		},
		{
			name:    "duplicates are case sensitive",
			initial: []string{"Python"},
			skill:   "python",
			added:   true,
			expect:  []string{"Python", "python"},
		},
		{
			name:    "ignores empty skill",
			initial: []string{"Python"},
			skill:   "",
			expect:  []string{"Python"},
		},
		{
			name:    "ignores whitespace skill",
			initial: []string{"Python"},
			skill:   "   ",
			expect:  []string{"Python"},
		},
		{
			name:    "trims before adding",
			initial: nil,
			skill:   "  React ",
			added:   true,
			expect:  []string{"React"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &Profile{Skills: append([]string(nil), tt.initial...)}
			assert.Equal(t, tt.added, p.AddSkill(tt.skill))
			assert.Equal(t, tt.expect, p.Skills)
		})
	}
}

func TestAddSkillIsIdempotentForPresentSkills(t *testing.T) {
	p := &Profile{Skills: []string{"Go", "SQL", "Kubernetes"}}
	for _, skill := range []string{"Go", "SQL", "Kubernetes"} {
		p.AddSkill(skill)
	}
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, p.Skills)
}

func TestRemoveThenAddMovesSkillToEnd(t *testing.T) {
	p := &Profile{Skills: []string{"Python", "Data Structures", "SQL"}}

	require.Equal(t, 1, p.RemoveSkill("Python"))
	require.True(t, p.AddSkill("Python"))

	assert.Equal(t, []string{"Data Structures", "SQL", "Python"}, p.Skills)
}

func TestRemoveSkillDropsAllExactMatches(t *testing.T) {
	p := &Profile{Skills: []string{"Go", "go", "Go"}}

	assert.Equal(t, 2, p.RemoveSkill("Go"))
	assert.Equal(t, []string{"go"}, p.Skills)
	assert.Equal(t, 0, p.RemoveSkill("Rust"))
}

func TestSetInterests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		expect []string
	}{
		{name: "keeps trailing empty tokens", raw: "AI, Data ,,", expect: []string{"AI", "Data", "", ""}},
		{name: "single value", raw: "Web Dev", expect: []string{"Web Dev"}},
		{name: "empty input gives one empty token", raw: "", expect: []string{""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Default()
			p.SetInterests(tt.raw)
			assert.Equal(t, tt.expect, p.Interests)
		})
	}
}

func TestSetInterestsTrailingComma(t *testing.T) {
	p := &Profile{}
	p.SetInterests("AI, Data ,")
	assert.Equal(t, []string{"AI", "Data", ""}, p.Interests)
	assert.Equal(t, "AI, Data, ", p.InterestsText())
}

func TestParseExperience(t *testing.T) {
	assert.Equal(t, OneToTwo, ParseExperience(" 1-2 YRS "))
	assert.Equal(t, Student, ParseExperience("student"))
	assert.Equal(t, ExperienceLevel("Principal"), ParseExperience("Principal"))
}

func TestApplyExampleKeepsExperience(t *testing.T) {
	p := Default()
	p.SetExperience(ThreeOrMore)
	p.ApplyExample()

	assert.Equal(t, "Gourav", p.Name)
	assert.Equal(t, []string{"Python", "Data Structures", "SQL"}, p.Skills)
	assert.Equal(t, []string{"AI", "Data"}, p.Interests)
	assert.Equal(t, ThreeOrMore, p.Experience)
}

func TestCloneIsIndependent(t *testing.T) {
	p := Default()
	clone := p.Clone()
	clone.AddSkill("Go")
	clone.SetInterests("Ops")

	assert.Equal(t, []string{"Python", "Data Structures"}, p.Skills)
	assert.Equal(t, []string{"AI", "Web Dev"}, p.Interests)
	assert.Nil(t, (*Profile)(nil).Clone())
}
