package recommend

import (
	"testing"

	"github.com/abhisek/jimang/internal/rules"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	rs, err := rules.Default()
	if err != nil {
		t.Fatalf("load default rules: %v", err)
	}
	return New(rs)
}

func schoolIDs(schools []rules.School) []string {
	ids := make([]string, len(schools))
	for i, s := range schools {
		ids[i] = s.ID
	}
	return ids
}
