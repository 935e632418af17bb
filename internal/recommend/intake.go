package recommend

import (
	"strconv"
	"strings"

	"github.com/abhisek/jimang/internal/rules"
	"github.com/abhisek/jimang/internal/validation"
)

// ProfileRequest is an unparsed profile as collected from a form, flags, or
// a CSV row.
type ProfileRequest struct {
	Name         string  `json:"name" validate:"max=64"`
	MiddleSchool string  `json:"middle_school" validate:"max=64"`
	Disposition  string  `json:"disposition" validate:"required"`
	Score        float64 `json:"score" validate:"gte=0,lte=100"`
	Zone         string  `json:"zone" validate:"required"`
	Gender       string  `json:"gender"`
}

// ParseScore parses a score field. Blank is rejected.
func ParseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ErrInvalidProfile{Field: "score", Value: s, Err: err}
	}
	return v, nil
}

// ParseProfile validates req and converts it to a StudentProfile.
func ParseProfile(req ProfileRequest) (StudentProfile, error) {
	if err := validation.Struct(req); err != nil {
		return StudentProfile{}, &ErrInvalidProfile{Err: err}
	}

	d, err := ParseDisposition(req.Disposition)
	if err != nil {
		return StudentProfile{}, &ErrInvalidProfile{Field: "disposition", Value: req.Disposition, Err: err}
	}
	z, err := rules.ParseZone(req.Zone)
	if err != nil {
		return StudentProfile{}, &ErrInvalidProfile{Field: "zone", Value: req.Zone, Err: err}
	}
	g, err := ParseGender(req.Gender)
	if err != nil {
		return StudentProfile{}, &ErrInvalidProfile{Field: "gender", Value: req.Gender, Err: err}
	}

	return StudentProfile{
		Name:         strings.TrimSpace(req.Name),
		MiddleSchool: strings.TrimSpace(req.MiddleSchool),
		Disposition:  d,
		Score:        req.Score,
		Zone:         z,
		Gender:       g,
	}, nil
}
