package pillars

import (
	"time"

	"go.uber.org/zap"

	"saju/internal/calendar"
	"saju/internal/cycle"
)

// monthStemOffset gives the stem index of a year's first solar-term period
// (the January 小寒 period), keyed by the stem of the Gregorian year the
// term day falls in: 甲/己→1, 乙/庚→3, 丙/辛→5, 丁/壬→7, 戊/癸→9.
// Subsequent periods advance the stem by one per period.
var monthStemOffset = [cycle.NumStems]int{1, 3, 5, 7, 9, 1, 3, 5, 7, 9}

// monthBranchOf maps a term period index to its month branch:
// period 0 (小寒) → 丑, 1 (立春) → 寅, ..., 11 (大雪) → 子.
func monthBranchOf(periodIdx int) cycle.Branch {
	return cycle.Branch((periodIdx + 1) % cycle.NumBranches)
}

// Month derives the month pillar. Layered in priority order:
//
//  1. the versioned override table, consulted first;
//  2. the provider-resolved solar-term period (the normal case);
//  3. the Gregorian month as an approximate period index, flagged, when no
//     term period is available.
//
// The Gregorian calendar month is never used as a period proxy outside the
// flagged fallback: it is wrong for every date within days of a term
// boundary.
//
// approximate reports whether the fallback path produced the pillar.
func (c *Calculator) Month(effective time.Time, term *calendar.TermPeriod) (cycle.Pillar, bool) {
	if p, ok := c.overrides.Lookup(effective); ok {
		c.log.Info("month pillar from override table",
			zap.Time("date", effective), zap.String("pillar", p.String()))
		return p, false
	}

	if term == nil {
		// Approximate period from the Gregorian month. January maps to the
		// minor-cold period of the same year, which is right for most of
		// the month.
		idx := int(effective.Month()) - 1
		c.log.Warn("no term period, approximating month pillar from calendar month",
			zap.Time("date", effective), zap.Int("period", idx))
		return c.monthPillar(idx, effective.Year()), true
	}
	return c.monthPillar(term.Index, term.Year), false
}

// monthPillar combines a period index with the Gregorian year the governing
// term day falls in. A January date before 小寒 is governed by the previous
// December's 大雪 period, so termYear may be effective.Year()-1; the caller
// supplies the right one.
func (c *Calculator) monthPillar(periodIdx, termYear int) cycle.Pillar {
	offset := monthStemOffset[YearStemOf(termYear)]
	stem := cycle.Stem((offset + periodIdx) % cycle.NumStems)
	return cycle.Pillar{Stem: stem, Branch: monthBranchOf(periodIdx)}
}
