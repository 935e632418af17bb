package recommend

import "github.com/abhisek/jimang/internal/rules"

// baseFirstChoice is the 1st choice for a student outside every cluster.
func baseFirstChoice(rs *rules.RuleSet, d Disposition, score float64, z rules.Zone) string {
	zr := rs.Zone(z)
	switch d {
	case DispositionExplorer:
		if score >= rs.TopTierThreshold() {
			return zr.TopTier
		}
		return zr.MidTier
	case DispositionStable:
		return zr.StableFirst
	case DispositionChallenger:
		return zr.TopTier
	}
	return ""
}

// baseSecondChoice is the 2nd choice for a student outside every cluster.
// It does not depend on score.
func baseSecondChoice(rs *rules.RuleSet, d Disposition, z rules.Zone) string {
	zr := rs.Zone(z)
	switch d {
	case DispositionExplorer, DispositionChallenger:
		return zr.Cross
	case DispositionStable:
		return zr.StableSecond
	}
	return ""
}

// fallbackChoices returns the 3rd–5th choices. A cluster with a fallback
// zone overrides the student's own zone.
func fallbackChoices(rs *rules.RuleSet, c rules.Cluster, z rules.Zone) [3]string {
	if cr, ok := rs.Cluster(c); ok && cr.FallbackZone != "" {
		z = cr.FallbackZone
	}
	return rs.Zone(z).Fallback
}

// candidates resolves all five slots in priority order. Unresolvable slots
// are empty strings.
func candidates(rs *rules.RuleSet, p StudentProfile, c rules.Cluster) []string {
	var first, second string
	if cr, ok := rs.Cluster(c); ok {
		first, second = cr.First, cr.Second
	} else {
		first = baseFirstChoice(rs, p.Disposition, p.Score, p.Zone)
		second = baseSecondChoice(rs, p.Disposition, p.Zone)
	}
	rest := fallbackChoices(rs, c, p.Zone)
	return []string{first, second, rest[0], rest[1], rest[2]}
}
