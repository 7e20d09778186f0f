package engine

import (
	"saju/internal/calendar"
	"saju/internal/cycle"
	"saju/internal/datetime"
	"saju/internal/fortune"
	"saju/internal/tengod"
)

// PillarDetail decorates one pillar with its derived classifications.
type PillarDetail struct {
	Position   string // year, month, day, hour
	Pillar     cycle.Pillar
	StemGod    tengod.God
	BranchGod  tengod.God
	HiddenGods []tengod.HiddenGod
	Stage      fortune.Stage
	Spirit     fortune.Spirit
}

// ElementProfile summarizes the element distribution of the eight
// characters. Main is the most frequent element, with the day-stem element
// winning ties; Secondary the next most frequent; YinYang the day stem's
// polarity.
type ElementProfile struct {
	Counts    [5]int
	Main      cycle.Element
	Secondary cycle.Element
	YinYang   cycle.Polarity
}

// Result is the assembled output of one calculation.
type Result struct {
	ID          string
	FourPillars cycle.FourPillars
	Pillars     [4]PillarDetail
	Lunar       *calendar.LunarDate
	Profile     ElementProfile
	Processed   datetime.Processed
	Gender      Gender
	LuckForward bool
	Degraded    bool
	Approximate bool
}

// profileOf tallies elements over the four stems and four branches.
func profileOf(fp cycle.FourPillars) ElementProfile {
	var p ElementProfile
	for _, pillar := range []cycle.Pillar{fp.Year, fp.Month, fp.Day, fp.Hour} {
		p.Counts[pillar.Stem.Element()]++
		p.Counts[pillar.Branch.Element()]++
	}

	dayElem := fp.Day.Stem.Element()
	p.Main = dayElem
	for e := cycle.Wood; e <= cycle.Water; e++ {
		if p.Counts[e] > p.Counts[p.Main] {
			p.Main = e
		}
	}
	// Secondary: best of the rest, cycle order breaking ties.
	first := true
	for e := cycle.Wood; e <= cycle.Water; e++ {
		if e == p.Main {
			continue
		}
		if first || p.Counts[e] > p.Counts[p.Secondary] {
			p.Secondary = e
			first = false
		}
	}
	p.YinYang = fp.Day.Stem.Polarity()
	return p
}
