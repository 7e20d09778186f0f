// Package engine composes the calculators into the single inbound contract:
// one (date, hour, gender?, location?) input deterministically mapped to one
// Result. The engine is synchronous and holds no mutable state beyond the
// term-table cache, so calls are safely parallelizable.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"saju/internal/calendar"
	"saju/internal/cycle"
	"saju/internal/datetime"
	"saju/internal/fortune"
	"saju/internal/location"
	"saju/internal/pillars"
	"saju/internal/tengod"
)

// Gender of the subject. Only the luck-cycle direction depends on it.
type Gender string

const (
	Male    Gender = "M"
	Female  Gender = "F"
	Unknown Gender = ""
)

// Engine is the four-pillars calculation engine. Construct with New; the
// zero value is not usable.
type Engine struct {
	processor *datetime.Processor
	calc      *pillars.Calculator
	matrix    *tengod.Matrix
	spirits   *fortune.Calculator
	log       *zap.Logger
}

// Option configures engine construction.
type Option func(*builder)

type builder struct {
	resolver  *location.Resolver
	provider  calendar.LunarProvider
	terms     *calendar.TermTable
	overrides pillars.Overrides
	procOpts  datetime.Options
	log       *zap.Logger
}

// WithLogger injects a logger; the default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *builder) { b.log = log }
}

// WithResolver replaces the builtin city resolver.
func WithResolver(r *location.Resolver) Option {
	return func(b *builder) { b.resolver = r }
}

// WithProvider replaces the production lunar provider. Tests use this to
// exercise the degraded paths.
func WithProvider(p calendar.LunarProvider) Option {
	return func(b *builder) { b.provider = p }
}

// WithOverrides installs a month-pillar override table.
func WithOverrides(o pillars.Overrides) Option {
	return func(b *builder) { b.overrides = o }
}

// WithProcessorOptions replaces the datetime defaults.
func WithProcessorOptions(opts datetime.Options) Option {
	return func(b *builder) { b.procOpts = opts }
}

// New builds an engine. All collaborators default to their production
// implementations; the term cache is shared between the provider and the
// pillar calculators.
func New(opts ...Option) *Engine {
	b := &builder{
		procOpts: datetime.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	if b.resolver == nil {
		b.resolver = location.NewResolver()
	}
	if b.provider == nil {
		prod := calendar.NewProvider()
		b.provider = prod
		b.terms = prod.Terms()
	}
	if b.terms == nil {
		b.terms = calendar.NewTermTable()
	}
	if b.overrides == nil {
		b.overrides = pillars.ProductionOverrides()
	}

	return &Engine{
		processor: datetime.NewProcessor(b.provider, b.resolver, b.procOpts, b.log),
		calc:      pillars.New(b.terms, b.overrides, b.log),
		matrix:    tengod.NewMatrix(),
		spirits:   fortune.NewCalculator(nil),
		log:       b.log,
	}
}

// CalcOption configures one calculation.
type CalcOption func(*calcInput)

type calcInput struct {
	gender Gender
	place  string
	coords *location.Place
}

// WithGender sets the subject's gender.
func WithGender(g Gender) CalcOption {
	return func(c *calcInput) { c.gender = g }
}

// WithLocation names the birth city for local-time correction.
func WithLocation(name string) CalcOption {
	return func(c *calcInput) { c.place = name }
}

// WithCoordinates supplies explicit coordinates instead of a city name.
func WithCoordinates(p location.Place) CalcOption {
	return func(c *calcInput) { c.coords = &p }
}

// Calculate derives the full result for a birth moment. Invalid input never
// errors: it degrades per the documented policy and flags the result. The
// returned error is reserved for misuse of an unconstructed engine.
func (e *Engine) Calculate(birthDate time.Time, birthHour int, opts ...CalcOption) (*Result, error) {
	if e == nil || e.processor == nil {
		return nil, ErrNotConstructed
	}
	var in calcInput
	for _, opt := range opts {
		opt(&in)
	}

	var processed datetime.Processed
	if in.coords != nil {
		processed = e.processor.ProcessAt(birthDate, birthHour, *in.coords)
	} else {
		processed = e.processor.Process(birthDate, birthHour, in.place)
	}

	year, yearApprox := e.calc.Year(processed.Effective)
	month, monthApprox := e.calc.Month(processed.Effective, processed.Term)
	day := e.calc.Day(processed.Effective)
	hour := e.calc.Hour(day, processed.Hour)

	fp := cycle.FourPillars{Year: year, Month: month, Day: day, Hour: hour}
	stages := fortune.Stages(day.Stem, fp)
	spirits := e.spirits.Spirits(fp)

	details := [4]PillarDetail{}
	positions := [4]struct {
		name   string
		pillar cycle.Pillar
	}{
		{"year", year}, {"month", month}, {"day", day}, {"hour", hour},
	}
	for i, p := range positions {
		branchGod, hiddenGods := tengod.BranchGods(day.Stem, p.pillar.Branch)
		details[i] = PillarDetail{
			Position:   p.name,
			Pillar:     p.pillar,
			StemGod:    e.matrix.Stem(day.Stem, p.pillar.Stem),
			BranchGod:  branchGod,
			HiddenGods: hiddenGods,
			Stage:      stages[i],
			Spirit:     spirits[i],
		}
	}

	res := &Result{
		ID:          uuid.NewString(),
		FourPillars: fp,
		Pillars:     details,
		Lunar:       processed.Lunar,
		Profile:     profileOf(fp),
		Processed:   processed,
		Gender:      in.gender,
		LuckForward: luckForward(in.gender, year.Stem),
		Degraded:    processed.Degraded,
		Approximate: processed.Approximate || yearApprox || monthApprox,
	}

	e.log.Debug("calculation complete",
		zap.String("id", res.ID),
		zap.String("pillars", fp.String()),
		zap.Bool("degraded", res.Degraded),
		zap.Bool("approximate", res.Approximate))
	return res, nil
}

// UpdateOptions replaces the processor defaults between calls.
func (e *Engine) UpdateOptions(opts datetime.Options) {
	e.processor.UpdateOptions(opts)
}

// luckForward is the luck-cycle direction: yang-year males and yin-year
// females run forward.
func luckForward(g Gender, yearStem cycle.Stem) bool {
	switch g {
	case Male:
		return yearStem.Polarity() == cycle.Yang
	case Female:
		return yearStem.Polarity() == cycle.Yin
	default:
		return true
	}
}
