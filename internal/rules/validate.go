package rules

import (
	"fmt"
	"strings"
)

// validateDocument performs the cross-reference checks the schema cannot
// express. Returns a combined error describing all problems found, or nil.
func validateDocument(doc document) error {
	var errs []string

	ids := make(map[string]bool, len(doc.Schools))
	for _, s := range doc.Schools {
		if ids[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate school ID: %q", s.ID))
		}
		ids[s.ID] = true
	}

	// Empty references are allowed: they resolve to an empty slot.
	ref := func(where, id string) {
		if id != "" && !ids[id] {
			errs = append(errs, fmt.Sprintf("%s references unknown school %q", where, id))
		}
	}

	for _, z := range AllZones() {
		zr, ok := doc.Zones[z]
		if !ok {
			errs = append(errs, fmt.Sprintf("zone %q has no rule", z))
			continue
		}
		prefix := fmt.Sprintf("zone %q", z)
		ref(prefix+" top_tier", zr.TopTier)
		ref(prefix+" mid_tier", zr.MidTier)
		ref(prefix+" cross", zr.Cross)
		ref(prefix+" stable_first", zr.StableFirst)
		ref(prefix+" stable_second", zr.StableSecond)
		for i, id := range zr.Fallback {
			ref(fmt.Sprintf("%s fallback[%d]", prefix, i), id)
		}
	}

	for _, c := range AllClusters() {
		cr, ok := doc.Clusters[c]
		if !ok {
			errs = append(errs, fmt.Sprintf("cluster %q has no rule", c))
			continue
		}
		prefix := fmt.Sprintf("cluster %q", c)
		ref(prefix+" first", cr.First)
		ref(prefix+" second", cr.Second)
		for _, kw := range cr.Keywords {
			if strings.TrimSpace(kw) == "" {
				errs = append(errs, fmt.Sprintf("%s has a blank keyword", prefix))
			}
		}
		if cr.FallbackZone != "" {
			if _, ok := doc.Zones[cr.FallbackZone]; !ok {
				errs = append(errs, fmt.Sprintf("%s fallback_zone %q is not a known zone", prefix, cr.FallbackZone))
			}
		}
	}

	for _, cat := range RankedCategories() {
		for _, id := range doc.Categories[cat].Members {
			ref(fmt.Sprintf("category %q", cat), id)
		}
	}

	if doc.TopTierThreshold <= 0 || doc.TopTierThreshold > 100 {
		errs = append(errs, fmt.Sprintf("top_tier_threshold must be in (0, 100], got %g", doc.TopTierThreshold))
	}

	if len(errs) > 0 {
		return fmt.Errorf("rules validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
