package profile

import (
	"slices"
	"strings"
)

// ExperienceLevel is the self-reported seniority of the user.
type ExperienceLevel string

const (
	Student     ExperienceLevel = "Student"
	Intern      ExperienceLevel = "Intern"
	OneToTwo    ExperienceLevel = "1-2 yrs"
	ThreeOrMore ExperienceLevel = "3+ yrs"
)

// ExperienceLevels returns the selectable levels in display order.
func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{Student, Intern, OneToTwo, ThreeOrMore}
}

// ParseExperience maps a label to a level. Labels are compared case-insensitively
// against the known levels; anything else is kept verbatim.
func ParseExperience(label string) ExperienceLevel {
	label = strings.TrimSpace(label)
	for _, level := range ExperienceLevels() {
		if strings.EqualFold(string(level), label) {
			return level
		}
	}
	return ExperienceLevel(label)
}

type Profile struct {
	Name       string          `json:"name" mapstructure:"name"`
	Skills     []string        `json:"skills" mapstructure:"skills"`
	Interests  []string        `json:"interests" mapstructure:"interests"`
	Experience ExperienceLevel `json:"experience" mapstructure:"experience"`
}

// Default returns the profile a new session starts with.
func Default() *Profile {
	return &Profile{
		Skills:     []string{"Python", "Data Structures"},
		Interests:  []string{"AI", "Web Dev"},
		Experience: Student,
	}
}

// Example returns the preset behind "Use Example Profile".
// Experience is not part of the preset.
func Example() *Profile {
	return &Profile{
		Name:      "Gourav",
		Skills:    []string{"Python", "Data Structures", "SQL"},
		Interests: []string{"AI", "Data"},
	}
}

// ApplyExample overwrites name, skills and interests with the example preset.
func (p *Profile) ApplyExample() {
	example := Example()
	p.Name = example.Name
	p.Skills = example.Skills
	p.Interests = example.Interests
}

func (p *Profile) SetName(name string) {
	p.Name = name
}

func (p *Profile) SetExperience(level ExperienceLevel) {
	p.Experience = level
}

// AddSkill appends skill unless it is blank or already present.
// Duplicates are detected by exact, case-sensitive comparison.
func (p *Profile) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" || p.HasSkill(skill) {
		return false
	}

	p.Skills = append(p.Skills, skill)
	return true
}

// RemoveSkill drops every exact match of skill and reports how many were removed.
func (p *Profile) RemoveSkill(skill string) int {
	before := len(p.Skills)
	p.Skills = slices.DeleteFunc(p.Skills, func(s string) bool {
		return s == skill
	})
	return before - len(p.Skills)
}

func (p *Profile) HasSkill(skill string) bool {
	return slices.Contains(p.Skills, skill)
}

// SetInterests replaces the interests with the comma separated tokens of raw.
// Tokens are trimmed but empty ones are kept, so "AI, Data ,," gives ["AI" "Data" ""].
func (p *Profile) SetInterests(raw string) {
	tokens := strings.Split(raw, ",")
	interests := make([]string, 0, len(tokens))
	for _, token := range tokens {
		interests = append(interests, strings.TrimSpace(token))
	}
	p.Interests = interests
}

// InterestsText is the inverse of SetInterests for display.
func (p *Profile) InterestsText() string {
	return strings.Join(p.Interests, ", ")
}

// Clone returns a deep copy so callers can score a profile while it keeps being edited.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		Name:       p.Name,
		Skills:     slices.Clone(p.Skills),
		Interests:  slices.Clone(p.Interests),
		Experience: p.Experience,
	}
}
