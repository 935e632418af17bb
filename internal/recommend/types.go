package recommend

import (
	"fmt"
	"strings"

	"github.com/abhisek/jimang/internal/rules"
)

// MaxChoices is the number of choice slots on the application form.
const MaxChoices = 5

// Disposition is a student's self-reported academic risk appetite.
type Disposition string

const (
	DispositionExplorer   Disposition = "explorer"   // Score-driven ambition
	DispositionStable     Disposition = "stable"     // Conservative
	DispositionChallenger Disposition = "challenger" // Aspirational regardless of score
)

// AllDispositions returns all dispositions in display order.
func AllDispositions() []Disposition {
	return []Disposition{DispositionExplorer, DispositionStable, DispositionChallenger}
}

// Label returns the Korean label for a disposition.
func (d Disposition) Label() string {
	switch d {
	case DispositionExplorer:
		return "탐구형"
	case DispositionStable:
		return "안정형"
	case DispositionChallenger:
		return "도전형"
	default:
		return string(d)
	}
}

// ParseDisposition accepts the Korean label or the English key.
func ParseDisposition(s string) (Disposition, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, d := range AllDispositions() {
		if v == string(d) || v == d.Label() {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown disposition %q", s)
}

// Gender is the student's gender as it bears on single-sex schools.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

// Label returns the Korean label for a gender.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "남"
	case GenderFemale:
		return "여"
	default:
		return "미지정"
	}
}

// excluded returns the restriction this gender cannot attend, or
// RestrictionCoed when nothing is excluded.
func (g Gender) excluded() rules.Restriction {
	switch g {
	case GenderMale:
		return rules.RestrictionGirlsOnly
	case GenderFemale:
		return rules.RestrictionBoysOnly
	default:
		return rules.RestrictionCoed
	}
}

// ParseGender accepts 남/여, male/female, m/f; blank means unspecified.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified", "none", "미지정":
		return GenderUnspecified, nil
	case "male", "m", "남", "남자":
		return GenderMale, nil
	case "female", "f", "여", "여자":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

// StudentProfile is the validated input to a recommendation.
type StudentProfile struct {
	Name         string
	MiddleSchool string
	Disposition  Disposition
	Score        float64 // 0–100 grade average
	Zone         rules.Zone
	Gender       Gender
}

// Result is an ordered recommendation. Rationales and Profiles are
// index-aligned with Schools.
type Result struct {
	Student    StudentProfile
	Cluster    rules.Cluster
	Schools    []rules.School
	Rationales []string
	Profiles   [][]string
	Summary    string

	GenderFiltered bool // At least one school was removed for gender
	GenderFallback bool // Filtering would have emptied the list; unfiltered list kept
}

// Empty reports whether no school could be recommended.
func (r Result) Empty() bool { return len(r.Schools) == 0 }
