// Package datetime normalizes birth input: it validates the raw date,
// applies the longitude-based local-time correction, and consults the lunar
// provider, in that order. Lunar day boundaries depend on true local time,
// so the correction must land before any calendar lookup.
package datetime

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"saju/internal/calendar"
	"saju/internal/location"
)

// Processed is the normalized form of one birth input. It is built once per
// calculation and never mutated afterwards.
type Processed struct {
	Original time.Time
	Adjusted time.Time // after local-time correction
	// Effective is the calendar day all pillar math operates on. It differs
	// from Adjusted's day only for the 23:00-23:59 late rat hour, which
	// belongs to the day containing the following midnight.
	Effective time.Time
	Hour      int // corrected clock hour 0-23

	CorrectionMinutes int
	Location          *location.Place

	Lunar *calendar.LunarDate
	Term  *calendar.TermPeriod

	Degraded    bool   // input was invalid and replaced
	Approximate bool   // provider could not resolve lunar/term data
	InputError  string // human-readable reason for Degraded
}

// Options controls processing defaults. Held per Processor instance; no
// package-level state.
type Options struct {
	UseLocalTime bool
	// Now supplies the fallback timestamp for invalid input. Tests pin it.
	Now func() time.Time
}

// DefaultOptions enables local-time correction.
func DefaultOptions() Options {
	return Options{UseLocalTime: true, Now: time.Now}
}

// Processor turns raw birth input into a Processed value.
type Processor struct {
	provider calendar.LunarProvider
	resolver *location.Resolver
	opts     Options
	log      *zap.Logger
}

// NewProcessor wires a processor with its collaborators. A nil logger is
// replaced with a nop logger.
func NewProcessor(provider calendar.LunarProvider, resolver *location.Resolver, opts Options, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Processor{provider: provider, resolver: resolver, opts: opts, log: log}
}

// UpdateOptions replaces the instance defaults for subsequent calls.
func (p *Processor) UpdateOptions(opts Options) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	p.opts = opts
}

// Process normalizes date+hour. place may be a city name or empty; explicit
// coordinates go through ProcessAt. Invalid input never returns an error:
// it degrades to now() and flags the result.
func (p *Processor) Process(date time.Time, hour int, place string) Processed {
	var loc *location.Place
	if place != "" && p.resolver != nil {
		if resolved, ok := p.resolver.Resolve(place); ok {
			loc = &resolved
		} else {
			p.log.Warn("unresolvable location, skipping local-time correction",
				zap.String("place", place))
		}
	}
	return p.process(date, hour, loc)
}

// ProcessAt is Process with explicit coordinates.
func (p *Processor) ProcessAt(date time.Time, hour int, place location.Place) Processed {
	return p.process(date, hour, &place)
}

func (p *Processor) process(date time.Time, hour int, loc *location.Place) Processed {
	out := Processed{Original: date, Location: loc}

	if date.IsZero() {
		now := p.opts.Now()
		out.Degraded = true
		out.InputError = "invalid birth date, substituted current time"
		out.Original = now
		date = now
		hour = now.Hour()
		p.log.Warn("invalid birth date", zap.Time("substituted", now))
	}
	if hour < 0 || hour > 23 {
		out.Degraded = true
		out.InputError = fmt.Sprintf("birth hour %d out of range, clamped", hour)
		if hour < 0 {
			hour = 0
		} else {
			hour = 23
		}
	}

	// Pin the clock to the stated hour, then correct for longitude.
	adjusted := time.Date(date.Year(), date.Month(), date.Day(), hour, date.Minute(), 0, 0, time.UTC)
	if p.opts.UseLocalTime && loc != nil {
		out.CorrectionMinutes = loc.CorrectionMinutes()
		adjusted = adjusted.Add(time.Duration(out.CorrectionMinutes) * time.Minute)
	}
	out.Adjusted = adjusted
	out.Hour = adjusted.Hour()

	// Late rat hour: 23:xx belongs to the day that contains the coming
	// midnight, for every pillar.
	effective := time.Date(adjusted.Year(), adjusted.Month(), adjusted.Day(), 0, 0, 0, 0, time.UTC)
	if adjusted.Hour() == 23 {
		effective = effective.AddDate(0, 0, 1)
	}
	out.Effective = effective

	if p.provider != nil {
		out.Lunar = p.provider.LunarDateOf(effective)
		out.Term = p.provider.TermPeriodOf(effective)
	}
	if out.Lunar == nil || out.Term == nil {
		out.Approximate = true
		p.log.Warn("lunar provider could not resolve input, result approximate",
			zap.Time("effective", effective),
			zap.Bool("lunar", out.Lunar != nil),
			zap.Bool("term", out.Term != nil))
	}
	return out
}
