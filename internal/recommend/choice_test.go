package recommend

import (
	"testing"

	"github.com/abhisek/jimang/internal/rules"
	"github.com/google/go-cmp/cmp"
)

func TestBaseFirstChoice(t *testing.T) {
	rs := rules.MustDefault()
	tests := []struct {
		d     Disposition
		score float64
		zone  rules.Zone
		want  string
	}{
		// Explorer: >=90 and >=85 collapse to the top tier.
		{DispositionExplorer, 95, rules.ZoneUichang, "changwon-jungang"},
		{DispositionExplorer, 87, rules.ZoneUichang, "changwon-jungang"},
		{DispositionExplorer, 85, rules.ZoneSeongsan, "changwon-nam"},
		{DispositionExplorer, 84.9, rules.ZoneUichang, "sapa"},
		{DispositionExplorer, 60, rules.ZoneSeongsan, "sapa"},
		{DispositionExplorer, 92, rules.ZoneMasan, "masan"},
		{DispositionExplorer, 50, rules.ZoneMasan, "masan"},
		{DispositionExplorer, 40, rules.ZoneJinhae, "jinhae"},

		{DispositionStable, 99, rules.ZoneUichang, "sapa"},
		{DispositionStable, 10, rules.ZoneSeongsan, "sapa"},
		{DispositionStable, 90, rules.ZoneMasan, "munseong"},
		{DispositionStable, 90, rules.ZoneJinhae, "jinhae"},

		// Challenger: top tier regardless of score.
		{DispositionChallenger, 10, rules.ZoneUichang, "changwon-jungang"},
		{DispositionChallenger, 70, rules.ZoneSeongsan, "changwon-nam"},
		{DispositionChallenger, 70, rules.ZoneMasan, "masan"},
		{DispositionChallenger, 70, rules.ZoneJinhae, "jinhae"},

		{Disposition("unknown"), 90, rules.ZoneUichang, ""},
		{DispositionExplorer, 90, rules.Zone("busan"), ""},
	}
	for _, tt := range tests {
		got := baseFirstChoice(rs, tt.d, tt.score, tt.zone)
		if got != tt.want {
			t.Errorf("baseFirstChoice(%s, %.1f, %s) = %q, want %q", tt.d, tt.score, tt.zone, got, tt.want)
		}
	}
}

func TestBaseSecondChoice(t *testing.T) {
	rs := rules.MustDefault()
	tests := []struct {
		d    Disposition
		zone rules.Zone
		want string
	}{
		{DispositionExplorer, rules.ZoneUichang, "changwon-nam"},
		{DispositionExplorer, rules.ZoneSeongsan, "changwon-jungang"},
		{DispositionExplorer, rules.ZoneMasan, "changwon-jungang"},
		{DispositionExplorer, rules.ZoneJinhae, "jinhae-yongwon"},
		{DispositionChallenger, rules.ZoneUichang, "changwon-nam"},
		{DispositionChallenger, rules.ZoneMasan, "changwon-jungang"},
		{DispositionStable, rules.ZoneUichang, "munseong"},
		{DispositionStable, rules.ZoneSeongsan, "munseong"},
		{DispositionStable, rules.ZoneMasan, "sapa"},
		{DispositionStable, rules.ZoneJinhae, "jinhae-yongwon"},
		{Disposition("unknown"), rules.ZoneMasan, ""},
	}
	for _, tt := range tests {
		got := baseSecondChoice(rs, tt.d, tt.zone)
		if got != tt.want {
			t.Errorf("baseSecondChoice(%s, %s) = %q, want %q", tt.d, tt.zone, got, tt.want)
		}
	}
}

func TestFallbackChoices(t *testing.T) {
	rs := rules.MustDefault()
	tests := []struct {
		name    string
		cluster rules.Cluster
		zone    rules.Zone
		want    [3]string
	}{
		{"uichang", rules.ClusterNone, rules.ZoneUichang, [3]string{"sapa", "munseong", "sinwol"}},
		{"seongsan", rules.ClusterSeongsanCore, rules.ZoneSeongsan, [3]string{"sapa", "munseong", "sinwol"}},
		{"masan", rules.ClusterNone, rules.ZoneMasan, [3]string{"munseong", "sapa", "masan-girls"}},
		{"jinhae repeats top", rules.ClusterNone, rules.ZoneJinhae, [3]string{"jinhae", "jinhae-yongwon", "jinhae"}},
		{"north overrides jinhae", rules.ClusterNorth, rules.ZoneJinhae, [3]string{"sapa", "munseong", "sinwol"}},
		{"north overrides masan", rules.ClusterNorth, rules.ZoneMasan, [3]string{"sapa", "munseong", "sinwol"}},
		{"other clusters keep zone", rules.ClusterMasanCore, rules.ZoneUichang, [3]string{"sapa", "munseong", "sinwol"}},
		{"unknown zone", rules.ClusterNone, rules.Zone("busan"), [3]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, fallbackChoices(rs, tt.cluster, tt.zone)); diff != "" {
				t.Errorf("fallbackChoices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCandidates_ClusterOverridesZoneDefaults(t *testing.T) {
	rs := rules.MustDefault()
	tests := []struct {
		cluster rules.Cluster
		first   string
		second  string
	}{
		{rules.ClusterNorth, "bongnim", "munseong"},
		{rules.ClusterMasanCore, "masan", "masan-girls"},
		{rules.ClusterUichangCore, "changwon-jungang", "sapa"},
		{rules.ClusterSeongsanCore, "changwon-nam", "myeongji-girls"},
		{rules.ClusterJinhaeCore, "jinhae", "jinhae-yongwon"},
	}
	// A Stable student in Masan would get munseong/sapa without a cluster.
	p := StudentProfile{Disposition: DispositionStable, Score: 50, Zone: rules.ZoneMasan}
	for _, tt := range tests {
		got := candidates(rs, p, tt.cluster)
		if got[0] != tt.first || got[1] != tt.second {
			t.Errorf("cluster %s: got %q/%q, want %q/%q", tt.cluster, got[0], got[1], tt.first, tt.second)
		}
	}
}
