package recommend

import "github.com/abhisek/jimang/internal/rules"

// genderFilter is the outcome of filterByGender.
type genderFilter struct {
	ids      []string
	removed  bool
	fellBack bool
}

// filterByGender drops schools the student cannot attend. Schools missing
// from the catalog are treated as coed. If every school would be dropped,
// the unfiltered list is returned and fellBack is set.
func filterByGender(rs *rules.RuleSet, ids []string, g Gender) genderFilter {
	excluded := g.excluded()
	if excluded == rules.RestrictionCoed {
		return genderFilter{ids: truncate(ids)}
	}

	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := rs.School(id); ok && s.Restriction == excluded {
			continue
		}
		kept = append(kept, id)
	}

	switch {
	case len(kept) == len(ids):
		return genderFilter{ids: truncate(ids)}
	case len(kept) == 0:
		return genderFilter{ids: truncate(ids), fellBack: true}
	default:
		return genderFilter{ids: truncate(kept), removed: true}
	}
}

func truncate(ids []string) []string {
	if len(ids) > MaxChoices {
		return ids[:MaxChoices]
	}
	return ids
}
