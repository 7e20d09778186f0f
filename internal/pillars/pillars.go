// Package pillars derives the four sexagenary pillars from a processed
// birth moment. Year, day and hour are closed-form cycle arithmetic; the
// month pillar depends on solar-term period resolution and is the one
// calculator with a degraded fallback path.
package pillars

import (
	"time"

	"go.uber.org/zap"

	"saju/internal/calendar"
	"saju/internal/cycle"
)

// ReferenceYear anchors the year cycle: 1984 was 甲子, position 0.
const ReferenceYear = 1984

// dayEpochOffset maps Julian day numbers onto the 60-cycle:
// (JDN + 49) mod 60. Fixed by the convention that 1970-01-01 was 辛巳.
const dayEpochOffset = 49

// Calculator computes pillars. Construct with New; the term table is shared
// with the calendar provider so its per-year cache is built once.
type Calculator struct {
	terms     *calendar.TermTable
	overrides Overrides
	log       *zap.Logger
}

// New wires a calculator. overrides may be nil; a nil logger becomes a nop.
func New(terms *calendar.TermTable, overrides Overrides, log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{terms: terms, overrides: overrides, log: log}
}

// yearIndex is the cycle position of a Gregorian year.
func yearIndex(year int) int {
	return cycle.Mod(year-ReferenceYear, cycle.CycleLen)
}

// YearStemOf returns the stem of a Gregorian year under the 1984=甲子 anchor,
// ignoring the spring boundary. Month stem derivation keys off this.
func YearStemOf(year int) cycle.Stem {
	return cycle.Stem(yearIndex(year) % cycle.NumStems)
}

// Year derives the year pillar of the effective date. The year boundary is
// the 立春 day, not Jan 1: dates before it use the previous Gregorian year.
// approximate is true when the term table cannot cover the date and a fixed
// Feb 4 boundary was assumed.
func (c *Calculator) Year(effective time.Time) (cycle.Pillar, bool) {
	year := effective.Year()
	approximate := false

	spring, ok := c.terms.SpringDay(year)
	if !ok {
		// Out of table range: 立春 falls on Feb 3-5; assume the 4th.
		spring = time.Date(year, time.February, 4, 0, 0, 0, 0, time.UTC)
		approximate = true
		c.log.Warn("term table unavailable for year pillar, assuming Feb 4 boundary",
			zap.Int("year", year))
	}
	if effective.Before(spring) {
		year--
	}
	return cycle.PillarAt(yearIndex(year)), approximate
}

// Day derives the day pillar: a continuous day count modulo 60 keyed off
// the Julian day number of the effective (locally corrected) date. Any two
// dates 60 days apart share a pillar; no month or lunar structure involved.
func (c *Calculator) Day(effective time.Time) cycle.Pillar {
	jdn := calendar.JulianDayNumber(effective.Year(), effective.Month(), effective.Day())
	return cycle.PillarAt(cycle.Mod(jdn+dayEpochOffset, cycle.CycleLen))
}

// hourStemStart maps each day stem to the stem of its 子 slot:
// 甲/己→甲, 乙/庚→丙, 丙/辛→戊, 丁/壬→庚, 戊/癸→壬.
var hourStemStart = [cycle.NumStems]cycle.Stem{
	cycle.Gap, cycle.Byeong, cycle.Mu, cycle.Gyeong, cycle.Im,
	cycle.Gap, cycle.Byeong, cycle.Mu, cycle.Gyeong, cycle.Im,
}

// Hour derives the hour pillar from the day pillar and the corrected clock
// hour. The day pillar passed in must already belong to the day containing
// midnight (the processor's effective-day rule guarantees this for 23:xx).
func (c *Calculator) Hour(day cycle.Pillar, hour int) cycle.Pillar {
	slot := ((hour + 1) / 2) % cycle.NumBranches
	stem := (int(hourStemStart[day.Stem]) + slot) % cycle.NumStems
	return cycle.Pillar{Stem: cycle.Stem(stem), Branch: cycle.Branch(slot)}
}
