package calendar

import (
	"sync"
	"time"
)

// TermPeriod identifies which of the 12 major solar terms governs a date.
// Index 0 is the minor-cold (小寒) period, index 11 the major-snow (大雪)
// period. Year and Day locate the governing term's own calendar day, which
// may fall in the December of the previous Gregorian year.
type TermPeriod struct {
	Name  string
	Index int
	Year  int       // Gregorian year the term day falls in
	Day   time.Time // midnight of the term day
}

// majorTermNames are the 12 month-governing terms in period order.
var majorTermNames = [12]string{
	"小寒", "立春", "驚蟄", "清明", "立夏", "芒種",
	"小暑", "立秋", "白露", "寒露", "立冬", "大雪",
}

// TermName returns the name of the major term at period index 0-11.
func TermName(periodIdx int) string { return majorTermNames[periodIdx] }

// termMonths maps period index to the Gregorian month the term falls in.
var termMonths = [12]time.Month{
	time.January, time.February, time.March, time.April,
	time.May, time.June, time.July, time.August,
	time.September, time.October, time.November, time.December,
}

// Century coefficients for the day-of-month approximation
// day = floor(y*0.2422 + C) - leapDays. Valid 1901-2000 and 2001-2099.
var termC20 = [12]float64{
	6.11, 4.6295, 6.3826, 5.59, 6.318, 6.5,
	7.928, 8.35, 8.44, 9.098, 8.218, 7.9,
}
var termC21 = [12]float64{
	5.4055, 3.87, 5.63, 4.81, 5.52, 5.678,
	7.108, 7.5, 7.646, 8.318, 7.438, 7.18,
}

// termExceptions patches the years where the approximation drifts by a day.
// Keyed by year then period index; value is the day delta.
var termExceptions = map[int]map[int]int{
	1984: {1: +1}, // 立春 Feb 4, formula yields Feb 3
	2000: {1: +1}, // 立春 Feb 4, formula yields Feb 3
	2019: {0: -1}, // 小寒 Jan 5, formula yields Jan 6
}

// Supported year range of the term table.
const (
	MinTermYear = 1901
	MaxTermYear = 2099
)

// termDayOfMonth returns the day of month of term periodIdx in Gregorian
// year, or 0 if the year is outside the supported range.
func termDayOfMonth(year, periodIdx int) int {
	if year < MinTermYear || year > MaxTermYear {
		return 0
	}
	var y int
	var c float64
	if year <= 2000 {
		y = year - 1900
		c = termC20[periodIdx]
	} else {
		y = year - 2000
		c = termC21[periodIdx]
	}
	leap := y / 4
	if periodIdx == 0 {
		// The January term counts leap days up to the previous year.
		leap = (y - 1) / 4
	}
	day := int(float64(y)*0.2422+c) - leap
	if fixes, ok := termExceptions[year]; ok {
		day += fixes[periodIdx]
	}
	return day
}

// TermDays is the full set of 12 major-term days of one Gregorian year.
type TermDays [12]time.Time

// TermTable computes and memoizes major-term days per Gregorian year.
// The cache is populate-once-read-many and safe for concurrent use.
// Construct with NewTermTable; there is no package-level instance.
type TermTable struct {
	mu    sync.RWMutex
	years map[int]TermDays
}

// NewTermTable returns an empty term table.
func NewTermTable() *TermTable {
	return &TermTable{years: make(map[int]TermDays)}
}

// Year returns the 12 major-term days of the given Gregorian year.
// ok is false outside the supported range.
func (t *TermTable) Year(year int) (TermDays, bool) {
	if year < MinTermYear || year > MaxTermYear {
		return TermDays{}, false
	}
	t.mu.RLock()
	ty, hit := t.years[year]
	t.mu.RUnlock()
	if hit {
		return ty, true
	}

	for i := 0; i < 12; i++ {
		ty[i] = time.Date(year, termMonths[i], termDayOfMonth(year, i), 0, 0, 0, 0, time.UTC)
	}
	t.mu.Lock()
	t.years[year] = ty
	t.mu.Unlock()
	return ty, true
}

// SpringDay returns midnight of the 立春 day of the given year.
// ok is false outside the supported range.
func (t *TermTable) SpringDay(year int) (time.Time, bool) {
	ty, ok := t.Year(year)
	if !ok {
		return time.Time{}, false
	}
	return ty[1], true
}

// PeriodOf classifies a date into its governing major-term period: the
// latest term whose day is on or before the date. Term boundaries are
// resolved at day granularity, with the term day itself belonging to the
// new period (post-transition tie-break). ok is false outside the
// supported range.
func (t *TermTable) PeriodOf(date time.Time) (TermPeriod, bool) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	for _, year := range []int{y, y - 1} {
		ty, ok := t.Year(year)
		if !ok {
			return TermPeriod{}, false
		}
		for i := 11; i >= 0; i-- {
			if !ty[i].After(day) {
				return TermPeriod{
					Name:  majorTermNames[i],
					Index: i,
					Year:  year,
					Day:   ty[i],
				}, true
			}
		}
	}
	return TermPeriod{}, false
}
