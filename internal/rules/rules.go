package rules

import (
	"fmt"
	"strings"
)

// Zone is a student's administrative commuting district.
type Zone string

const (
	ZoneUichang  Zone = "uichang"
	ZoneSeongsan Zone = "seongsan"
	ZoneMasan    Zone = "masan"
	ZoneJinhae   Zone = "jinhae"
)

// AllZones returns all zones in display order.
func AllZones() []Zone {
	return []Zone{ZoneUichang, ZoneSeongsan, ZoneMasan, ZoneJinhae}
}

// Label returns the Korean district name for a zone.
func (z Zone) Label() string {
	switch z {
	case ZoneUichang:
		return "의창"
	case ZoneSeongsan:
		return "성산"
	case ZoneMasan:
		return "마산"
	case ZoneJinhae:
		return "진해"
	default:
		return string(z)
	}
}

// ParseZone accepts either the Korean label or the English key, case-insensitive.
func ParseZone(s string) (Zone, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, z := range AllZones() {
		if v == string(z) || v == z.Label() {
			return z, nil
		}
	}
	return "", fmt.Errorf("unknown zone %q", s)
}

// Cluster is a residential feeder grouping inferred from a middle-school name.
type Cluster string

const (
	ClusterNone         Cluster = "none"
	ClusterNorth        Cluster = "north"
	ClusterMasanCore    Cluster = "masan_core"
	ClusterUichangCore  Cluster = "uichang_core"
	ClusterSeongsanCore Cluster = "seongsan_core"
	ClusterJinhaeCore   Cluster = "jinhae_core"
)

// AllClusters returns the matchable clusters in keyword-matching priority
// order. ClusterNone is not included.
func AllClusters() []Cluster {
	return []Cluster{
		ClusterNorth,
		ClusterMasanCore,
		ClusterUichangCore,
		ClusterSeongsanCore,
		ClusterJinhaeCore,
	}
}

// Label returns the human-readable cluster name used in summaries.
func (c Cluster) Label() string {
	switch c {
	case ClusterNone:
		return "일반 통학구역 (general zone)"
	case ClusterNorth:
		return "북면·동읍권"
	case ClusterMasanCore:
		return "마산 핵심권"
	case ClusterUichangCore:
		return "의창 핵심권"
	case ClusterSeongsanCore:
		return "성산 핵심권"
	case ClusterJinhaeCore:
		return "진해 핵심권"
	default:
		return string(c)
	}
}

// Restriction is a school's admission gender restriction.
type Restriction string

const (
	RestrictionCoed      Restriction = "coed"
	RestrictionBoysOnly  Restriction = "boys"
	RestrictionGirlsOnly Restriction = "girls"
)

// Label returns the Korean label for a restriction.
func (r Restriction) Label() string {
	switch r {
	case RestrictionBoysOnly:
		return "남학교"
	case RestrictionGirlsOnly:
		return "여학교"
	default:
		return "남녀공학"
	}
}

// Category is a rationale category used for explanations. Categories are
// descriptive, not binding cutoffs.
type Category string

const (
	CategoryTop      Category = "top"
	CategoryBalanced Category = "balanced"
	CategorySafe     Category = "safe"
	CategoryOther    Category = "other"
)

// RankedCategories returns the membership-checked categories in lookup
// priority order. CategoryOther is the implicit catch-all.
func RankedCategories() []Category {
	return []Category{CategoryTop, CategoryBalanced, CategorySafe}
}

// School is a catalog entry.
type School struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Restriction Restriction `json:"restriction" yaml:"restriction"`
	Profile     []string    `json:"profile,omitempty" yaml:"profile"`
}

