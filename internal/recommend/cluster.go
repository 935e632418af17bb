package recommend

import (
	"strings"

	"github.com/abhisek/jimang/internal/rules"
)

// DetectCluster classifies a middle-school name into a residential cluster.
// Keyword sets are tried in rules.AllClusters order; the first set with any
// keyword contained in the name wins. Blank names resolve to ClusterNone.
func DetectCluster(middleSchool string, rs *rules.RuleSet) rules.Cluster {
	ms := strings.TrimSpace(middleSchool)
	if ms == "" {
		return rules.ClusterNone
	}
	for _, c := range rules.AllClusters() {
		for _, kw := range rs.Keywords(c) {
			if strings.Contains(ms, kw) {
				return c
			}
		}
	}
	return rules.ClusterNone
}
