package rules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedRulesValidate(t *testing.T) {
	rs, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "2026", rs.Year())
	assert.Equal(t, 85.0, rs.TopTierThreshold())
	assert.Len(t, rs.Schools(), 11)
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	a := MustDefault()
	b := MustDefault()
	if a != b {
		t.Error("Default should decode the embedded rules once")
	}
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse("bad", []byte("schools: [unterminated"))
	require.Error(t, err)
	var invErr *ErrInvalidRules
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, "bad", invErr.Source)
}

func TestParse_RejectsSchemaViolation(t *testing.T) {
	doc := strings.Replace(string(defaultYAML), "restriction: boys", "restriction: mixed", 1)
	_, err := Parse("restriction", []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParse_RejectsMissingZone(t *testing.T) {
	doc := strings.Replace(string(defaultYAML), "  jinhae:\n    top_tier", "  busan:\n    top_tier", 1)
	_, err := Parse("zone", []byte(doc))
	require.Error(t, err)
}

func TestParse_RejectsUnknownSchoolReference(t *testing.T) {
	doc := strings.Replace(string(defaultYAML), "first: bongnim", "first: nowhere", 1)
	_, err := Parse("dangling", []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cluster "north" first references unknown school "nowhere"`)
}

func TestParse_RejectsEmptyDocument(t *testing.T) {
	_, err := Parse("empty", nil)
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	doc := strings.Replace(string(defaultYAML), `year: "2026"`, `year: "2027"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	rs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2027", rs.Year())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateDocument_CollectsAllProblems(t *testing.T) {
	doc := document{
		TopTierThreshold: 0,
		Schools: []School{
			{ID: "a", Name: "A", Restriction: RestrictionCoed},
			{ID: "a", Name: "A again", Restriction: RestrictionCoed},
		},
		Zones:    map[Zone]ZoneRule{},
		Clusters: map[Cluster]ClusterRule{},
	}
	err := validateDocument(doc)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"duplicate school ID", `zone "uichang" has no rule`, `cluster "north" has no rule`, "top_tier_threshold"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %q, got: %v", want, msg)
		}
	}
}
