package calendar

import "time"

// LunarProvider supplies lunar dates and solar-term periods for a local
// timestamp. A nil return means the provider cannot resolve the input; the
// engine then degrades to its approximate path instead of failing.
//
// There is exactly one production implementation (Provider). Tests may
// substitute their own to exercise the degraded paths.
type LunarProvider interface {
	LunarDateOf(t time.Time) *LunarDate
	TermPeriodOf(t time.Time) *TermPeriod
}

// Provider is the production LunarProvider, backed by the in-repo term
// table and lunar month tables. The zero value is not usable; construct
// with NewProvider.
type Provider struct {
	terms *TermTable
}

// NewProvider returns a Provider with its own term cache.
func NewProvider() *Provider {
	return &Provider{terms: NewTermTable()}
}

// Terms exposes the underlying term table, shared with the pillar
// calculators so the per-year cache is computed once.
func (p *Provider) Terms() *TermTable { return p.terms }

// LunarDateOf implements LunarProvider.
func (p *Provider) LunarDateOf(t time.Time) *LunarDate {
	return solarToLunar(t)
}

// TermPeriodOf implements LunarProvider.
func (p *Provider) TermPeriodOf(t time.Time) *TermPeriod {
	period, ok := p.terms.PeriodOf(t)
	if !ok {
		return nil
	}
	return &period
}
