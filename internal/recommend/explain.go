package recommend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/jimang/internal/rules"
)

// NoMatchMessage is shown when no school could be recommended.
const NoMatchMessage = "조건에 맞는 추천 조합이 없습니다."

// explanation is the per-school output of explain.
type explanation struct {
	schools    []rules.School
	rationales []string
	profiles   [][]string
}

// explain looks up the catalog entry, rationale sentence, and profile for
// each recommended school.
func explain(rs *rules.RuleSet, ids []string) explanation {
	ex := explanation{
		schools:    make([]rules.School, 0, len(ids)),
		rationales: make([]string, 0, len(ids)),
		profiles:   make([][]string, 0, len(ids)),
	}
	for _, id := range ids {
		s, ok := rs.School(id)
		if !ok {
			s = rules.School{ID: id, Name: id, Restriction: rules.RestrictionCoed}
		}
		profile := slices.Clone(s.Profile)
		if len(profile) == 0 {
			profile = []string{rs.GenericProfile()}
		}
		ex.schools = append(ex.schools, s)
		ex.rationales = append(ex.rationales, rs.Rationale(rs.CategoryOf(id)))
		ex.profiles = append(ex.profiles, profile)
	}
	return ex
}

// summarize builds the one-paragraph summary shown above the choice list.
func summarize(p StudentProfile, c rules.Cluster, gf genderFilter) string {
	var b strings.Builder

	if name := strings.TrimSpace(p.Name); name != "" {
		fmt.Fprintf(&b, "%s 학생: ", name)
	}

	ms := strings.TrimSpace(p.MiddleSchool)
	if ms == "" {
		ms = "중학교 미입력"
	}
	fmt.Fprintf(&b, "%s (%s) · %s 통학구역 · %s · 내신 %.1f점 기준 추천입니다.",
		ms, c.Label(), p.Zone.Label(), p.Disposition.Label(), p.Score)

	switch {
	case gf.removed:
		fmt.Fprintf(&b, " 성별(%s) 조건에 따라 지원할 수 없는 학교를 제외했습니다.", p.Gender.Label())
	case gf.fellBack:
		fmt.Fprintf(&b, " 성별(%s) 조건을 적용하면 추천 가능한 학교가 없어 제외 없이 표시합니다.", p.Gender.Label())
	}

	if len(gf.ids) == 0 {
		b.WriteString(" ")
		b.WriteString(NoMatchMessage)
	}
	return b.String()
}
