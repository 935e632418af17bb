// Package render writes recommendation results as styled text or JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/jimang/internal/batch"
	"github.com/abhisek/jimang/internal/recommend"
	"github.com/abhisek/jimang/internal/ui/theme"
	"github.com/goccy/go-json"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Result writes a single recommendation.
func Result(w io.Writer, f Format, res recommend.Result) error {
	if f == FormatJSON {
		return writeJSON(w, newResultView(res))
	}
	_, err := io.WriteString(w, text(res))
	return err
}

// Outcomes writes batch outcomes in input order.
func Outcomes(w io.Writer, f Format, outs []batch.Outcome) error {
	if f == FormatJSON {
		views := make([]outcomeView, len(outs))
		for i, o := range outs {
			views[i] = outcomeView{Line: o.Line}
			if o.Err != nil {
				views[i].Error = o.Err.Error()
				continue
			}
			rv := newResultView(*o.Result)
			views[i].Result = &rv
		}
		return writeJSON(w, views)
	}

	var b strings.Builder
	for i, o := range outs {
		if i > 0 {
			b.WriteString("\n")
		}
		if o.Err != nil {
			fmt.Fprintf(&b, "%s\n", theme.Warning.Render(fmt.Sprintf("line %d: %v", o.Line, o.Err)))
			continue
		}
		b.WriteString(text(*o.Result))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func text(res recommend.Result) string {
	var b strings.Builder

	title := "추천 지망 결과"
	if res.Student.Name != "" {
		title = fmt.Sprintf("%s 학생 추천 지망 결과", res.Student.Name)
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Summary.Render(res.Summary))
	b.WriteString("\n")

	if res.Empty() {
		b.WriteString(theme.Warning.Render(recommend.NoMatchMessage))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range res.Schools {
		fmt.Fprintf(&b, "%s %s %s\n",
			theme.Rank.Render(fmt.Sprintf("%d지망", i+1)),
			theme.SchoolName.Render(s.Name),
			theme.Tag.Render("["+s.Restriction.Label()+"]"),
		)
		fmt.Fprintf(&b, "    %s\n", theme.Rationale.Render(res.Rationales[i]))
		for _, line := range res.Profiles[i] {
			fmt.Fprintf(&b, "%s\n", theme.ProfileLine.Render("· "+line))
		}
	}
	b.WriteString(theme.Hint.Render("※ 실제 배정은 교육청 배정 기준 및 해당 연도 통계에 따라 달라질 수 있습니다."))
	b.WriteString("\n")
	return b.String()
}

type choiceView struct {
	Rank        int      `json:"rank"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Restriction string   `json:"restriction"`
	Rationale   string   `json:"rationale"`
	Profile     []string `json:"profile"`
}

type resultView struct {
	Name           string       `json:"name,omitempty"`
	MiddleSchool   string       `json:"middle_school,omitempty"`
	Disposition    string       `json:"disposition"`
	Score          float64      `json:"score"`
	Zone           string       `json:"zone"`
	Gender         string       `json:"gender,omitempty"`
	Cluster        string       `json:"cluster"`
	Choices        []choiceView `json:"choices"`
	Summary        string       `json:"summary"`
	GenderFiltered bool         `json:"gender_filtered"`
	GenderFallback bool         `json:"gender_fallback"`
}

type outcomeView struct {
	Line   int         `json:"line"`
	Result *resultView `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func newResultView(res recommend.Result) resultView {
	v := resultView{
		Name:           res.Student.Name,
		MiddleSchool:   res.Student.MiddleSchool,
		Disposition:    string(res.Student.Disposition),
		Score:          res.Student.Score,
		Zone:           string(res.Student.Zone),
		Gender:         string(res.Student.Gender),
		Cluster:        string(res.Cluster),
		Choices:        make([]choiceView, len(res.Schools)),
		Summary:        res.Summary,
		GenderFiltered: res.GenderFiltered,
		GenderFallback: res.GenderFallback,
	}
	for i, s := range res.Schools {
		v.Choices[i] = choiceView{
			Rank:        i + 1,
			ID:          s.ID,
			Name:        s.Name,
			Restriction: string(s.Restriction),
			Rationale:   res.Rationales[i],
			Profile:     res.Profiles[i],
		}
	}
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
