package catalog

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// CareerOption is read-only reference data describing one career path.
type CareerOption struct {
	ID           string   `json:"id" mapstructure:"id"`
	Title        string   `json:"title" mapstructure:"title"`
	Summary      string   `json:"summary" mapstructure:"summary"`
	SkillsNeeded []string `json:"skills_needed" mapstructure:"skills-needed"`
	Timeline     string   `json:"timeline" mapstructure:"timeline"`
	Roadmap      []string `json:"roadmap" mapstructure:"roadmap"`
}

type Catalog struct {
	Items []CareerOption
}

var defaultItems = []CareerOption{
	{
		ID:           "ml-eng",
		Title:        "Machine Learning Engineer",
		Summary:      "Build and productionize ML models. Requires Python, ML frameworks, data pipelines.",
		SkillsNeeded: []string{"Python", "Pandas", "TensorFlow / PyTorch", "SQL"},
		Timeline:     "6-12 months",
		Roadmap: []string{
			"Complete ML fundamentals course",
			"Build 3 mini projects (classification, regression, NLP)",
			"Deploy one model as an API",
		},
	},
	{
		ID:           "data-eng",
		Title:        "Data Engineer",
		Summary:      "Design data pipelines, ETL, and scalable storage. Strong engineering and SQL skills.",
		SkillsNeeded: []string{"SQL", "Python / Scala", "ETL", "Cloud (GCP/AWS)"},
		Timeline:     "4-8 months",
		Roadmap: []string{
			"Learn SQL deeply",
			"Work with Airflow or dbt",
			"Build a data pipeline on a cloud provider",
		},
	},
	{
		ID:           "frontend-dev",
		Title:        "Frontend Developer",
		Summary:      "Create user-facing web apps. Requires JS, frameworks, UX thinking.",
		SkillsNeeded: []string{"JavaScript", "React", "HTML/CSS", "Testing"},
		Timeline:     "3-6 months",
		Roadmap: []string{
			"Master JS fundamentals",
			"Build 5 interactive React projects",
			"Learn testing and performance optimization",
		},
	},
	{
		ID:           "product-manager",
		Title:        "Product Manager (AI products)",
		Summary:      "Define product vision and work with engineers. Needs domain knowledge, communication.",
		SkillsNeeded: []string{"Communication", "Data literacy", "Prioritization", "Roadmapping"},
		Timeline:     "6-9 months",
		Roadmap: []string{
			"Learn basics of product management",
			"Take a course on AI product design",
			"Manage a small team project",
		},
	},
}

// Default returns the built-in catalog. Each call returns fresh slices, so
// callers cannot alter the reference data.
func Default() *Catalog {
	items := make([]CareerOption, 0, len(defaultItems))
	for _, item := range defaultItems {
		items = append(items, item.clone())
	}
	return &Catalog{Items: items}
}

// Decode builds a catalog from raw configuration values, as returned by
// viper.Get("catalog"). Every entry needs a unique, non-empty id and a title.
func Decode(raw any) (*Catalog, error) {
	var items []CareerOption
	if err := mapstructure.Decode(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(items))
	for idx, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog entry %d: id is required", idx)
		}
		if strings.TrimSpace(item.Title) == "" {
			return nil, fmt.Errorf("catalog entry %q: title is required", id)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", id)
		}
		seen[id] = struct{}{}
		items[idx].ID = id
	}

	return &Catalog{Items: items}, nil
}

func (c *Catalog) Len() int {
	return len(c.Items)
}

func (c *Catalog) FindByID(id string) *CareerOption {
	for idx := range c.Items {
		if c.Items[idx].ID == id {
			return &c.Items[idx]
		}
	}
	return nil
}

func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (o CareerOption) clone() CareerOption {
	o.SkillsNeeded = append([]string(nil), o.SkillsNeeded...)
	o.Roadmap = append([]string(nil), o.Roadmap...)
	return o
}
