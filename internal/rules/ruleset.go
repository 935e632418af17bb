package rules

import "slices"

// ZoneRule holds the default choices for students with no matching cluster,
// plus the 3rd–5th fallback triple for the zone.
type ZoneRule struct {
	TopTier      string    `yaml:"top_tier"`
	MidTier      string    `yaml:"mid_tier"`
	Cross        string    `yaml:"cross"`
	StableFirst  string    `yaml:"stable_first"`
	StableSecond string    `yaml:"stable_second"`
	Fallback     [3]string `yaml:"fallback"`
}

// ClusterRule holds a cluster's matching keywords and its fixed 1st/2nd
// choices. FallbackZone, when set, replaces the student's own zone for the
// 3rd–5th choices.
type ClusterRule struct {
	Keywords     []string `yaml:"keywords"`
	First        string   `yaml:"first"`
	Second       string   `yaml:"second"`
	FallbackZone Zone     `yaml:"fallback_zone"`
}

// CategoryRule is a rationale sentence and the schools it applies to.
type CategoryRule struct {
	Rationale string   `yaml:"rationale"`
	Members   []string `yaml:"members"`
}

// document is the on-disk shape of a rules file.
type document struct {
	Year             string                    `yaml:"year"`
	TopTierThreshold float64                   `yaml:"top_tier_threshold"`
	GenericProfile   string                    `yaml:"generic_profile"`
	OtherRationale   string                    `yaml:"other_rationale"`
	Schools          []School                  `yaml:"schools"`
	Categories       map[Category]CategoryRule `yaml:"categories"`
	Zones            map[Zone]ZoneRule         `yaml:"zones"`
	Clusters         map[Cluster]ClusterRule   `yaml:"clusters"`
}

// RuleSet is one academic year's recommendation data: the school catalog,
// the choice tables, and the cluster keywords. A RuleSet is never mutated
// after construction and is safe for concurrent use.
type RuleSet struct {
	doc        document
	byID       map[string]*School
	categoryOf map[string]Category
}

func newRuleSet(doc document) *RuleSet {
	rs := &RuleSet{
		doc:        doc,
		byID:       make(map[string]*School, len(doc.Schools)),
		categoryOf: make(map[string]Category),
	}
	for i := range rs.doc.Schools {
		rs.byID[rs.doc.Schools[i].ID] = &rs.doc.Schools[i]
	}
	// Walk lowest priority first so higher-priority membership overwrites.
	ranked := RankedCategories()
	for i := len(ranked) - 1; i >= 0; i-- {
		for _, id := range doc.Categories[ranked[i]].Members {
			rs.categoryOf[id] = ranked[i]
		}
	}
	return rs
}

// Year returns the academic year the rule set was authored for.
func (rs *RuleSet) Year() string { return rs.doc.Year }

// TopTierThreshold is the minimum score for an Explorer to be steered to
// the zone's top-tier school.
func (rs *RuleSet) TopTierThreshold() float64 { return rs.doc.TopTierThreshold }

// School returns a catalog entry by ID.
func (rs *RuleSet) School(id string) (School, bool) {
	s, ok := rs.byID[id]
	if !ok {
		return School{}, false
	}
	out := *s
	out.Profile = slices.Clone(s.Profile)
	return out, true
}

// Schools returns the catalog in authored order.
func (rs *RuleSet) Schools() []School {
	out := make([]School, len(rs.doc.Schools))
	for i, s := range rs.doc.Schools {
		s.Profile = slices.Clone(s.Profile)
		out[i] = s
	}
	return out
}

// Zone returns the rule row for z. The zero ZoneRule is returned for an
// unknown zone, which resolves every slot to empty.
func (rs *RuleSet) Zone(z Zone) ZoneRule {
	return rs.doc.Zones[z]
}

// Cluster returns the rule for c, or false for ClusterNone and unknown tags.
func (rs *RuleSet) Cluster(c Cluster) (ClusterRule, bool) {
	r, ok := rs.doc.Clusters[c]
	if !ok {
		return ClusterRule{}, false
	}
	r.Keywords = slices.Clone(r.Keywords)
	return r, true
}

// Keywords returns the keyword set for c.
func (rs *RuleSet) Keywords(c Cluster) []string {
	return slices.Clone(rs.doc.Clusters[c].Keywords)
}

// CategoryOf returns the highest-priority category whose membership set
// contains id, or CategoryOther.
func (rs *RuleSet) CategoryOf(id string) Category {
	if c, ok := rs.categoryOf[id]; ok {
		return c
	}
	return CategoryOther
}

// Rationale returns the explanation sentence for a category.
func (rs *RuleSet) Rationale(c Category) string {
	if c == CategoryOther {
		return rs.doc.OtherRationale
	}
	return rs.doc.Categories[c].Rationale
}

// GenericProfile is the single descriptive line used for schools that have
// no catalog profile.
func (rs *RuleSet) GenericProfile() string { return rs.doc.GenericProfile }
