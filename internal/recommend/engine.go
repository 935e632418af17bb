package recommend

import (
	"sync"

	"github.com/abhisek/jimang/internal/rules"
	"go.uber.org/zap"
)

// Engine produces school recommendations from a fixed rule set. An Engine
// holds no mutable state; Recommend is safe for concurrent use.
type Engine struct {
	rules *rules.RuleSet
	log   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Engine over rs.
func New(rs *rules.RuleSet, opts ...Option) *Engine {
	e := &Engine{rules: rs, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the rule set the engine was built with.
func (e *Engine) Rules() *rules.RuleSet { return e.rules }

// Recommend resolves up to five ordered, distinct choices for p and
// explains each one.
func (e *Engine) Recommend(p StudentProfile) Result {
	cluster := DetectCluster(p.MiddleSchool, e.rules)
	slots := candidates(e.rules, p, cluster)
	unique := dedupe(slots)
	gf := filterByGender(e.rules, unique, p.Gender)
	ex := explain(e.rules, gf.ids)

	if ce := e.log.Check(zap.DebugLevel, "recommendation resolved"); ce != nil {
		ce.Write(
			zap.String("cluster", string(cluster)),
			zap.Strings("slots", slots),
			zap.Strings("choices", gf.ids),
			zap.Bool("gender_filtered", gf.removed),
		)
	}
	if gf.fellBack {
		e.log.Debug("gender filter would empty the list, keeping unfiltered choices",
			zap.String("gender", string(p.Gender)),
			zap.Strings("choices", gf.ids),
		)
	}

	return Result{
		Student:        p,
		Cluster:        cluster,
		Schools:        ex.schools,
		Rationales:     ex.rationales,
		Profiles:       ex.profiles,
		Summary:        summarize(p, cluster, gf),
		GenderFiltered: gf.removed,
		GenderFallback: gf.fellBack,
	}
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return New(rules.MustDefault())
})

// Recommend runs the default engine over the embedded rule set.
func Recommend(name, middleSchool string, d Disposition, score float64, z rules.Zone, g Gender) Result {
	return defaultEngine().Recommend(StudentProfile{
		Name:         name,
		MiddleSchool: middleSchool,
		Disposition:  d,
		Score:        score,
		Zone:         z,
		Gender:       g,
	})
}
