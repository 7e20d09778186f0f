package fortune

import "saju/internal/cycle"

// Spirit is one of the twelve spirit labels.
type Spirit int

const (
	Geopsal  Spirit = iota // 劫殺
	Jaesal                 // 災殺
	Cheonsal               // 天殺
	Jisal                  // 地殺
	Yeonsal                // 年殺
	Wolsal                 // 月殺
	Mangsin                // 亡神
	Jangseong              // 將星
	Banan                  // 攀鞍
	Yeongma                // 驛馬
	Yukhae                 // 六害
	Hwagae                 // 華蓋
)

var spiritNames = [12]string{
	"劫殺", "災殺", "天殺", "地殺", "年殺", "月殺",
	"亡神", "將星", "攀鞍", "驛馬", "六害", "華蓋",
}
var spiritKorean = [12]string{
	"겁살", "재살", "천살", "지살", "연살", "월살",
	"망신", "장성", "반안", "역마", "육해", "화개",
}

func (s Spirit) String() string { return spiritNames[s] }

// Korean returns the Korean reading of the spirit.
func (s Spirit) Korean() string { return spiritKorean[s] }

// Position identifies which of the four pillars a rule is judging.
type Position int

const (
	PosYear Position = iota
	PosMonth
	PosDay
	PosHour
)

// cycleSpirit is the base twelve-spirit rotation: the position of the
// branch in the cycle starting at the reference branch's trine base.
func cycleSpirit(ref, branch cycle.Branch) Spirit {
	return Spirit(cycle.Mod(int(branch)-int(ref.TrineStart()), cycle.NumBranches))
}

// Rule is one step of the spirit determination. Rules are evaluated in
// order over the whole list; the last rule that matches wins. Keeping the
// list explicit makes each pillar's determination testable rule by rule.
type Rule struct {
	Name  string
	Apply func(fp cycle.FourPillars, pos Position, branch cycle.Branch) (Spirit, bool)
}

// DefaultRules is the production rule list, in priority order (lowest
// first). Year and month pillars are judged against the year branch's
// trine; day and hour pillars against the day branch's trine; the two
// pairwise relation rules override the base cycle.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "base cycle from year branch",
			Apply: func(fp cycle.FourPillars, pos Position, branch cycle.Branch) (Spirit, bool) {
				return cycleSpirit(fp.Year.Branch, branch), true
			},
		},
		{
			Name: "day-branch cycle for day and hour pillars",
			Apply: func(fp cycle.FourPillars, pos Position, branch cycle.Branch) (Spirit, bool) {
				if pos != PosDay && pos != PosHour {
					return 0, false
				}
				return cycleSpirit(fp.Day.Branch, branch), true
			},
		},
		{
			Name: "six-harm against the day branch",
			Apply: func(fp cycle.FourPillars, pos Position, branch cycle.Branch) (Spirit, bool) {
				if pos == PosDay || !branch.HarmsWith(fp.Day.Branch) {
					return 0, false
				}
				return Yukhae, true
			},
		},
		{
			Name: "clash against the year branch",
			Apply: func(fp cycle.FourPillars, pos Position, branch cycle.Branch) (Spirit, bool) {
				if pos == PosYear || !branch.ClashesWith(fp.Year.Branch) {
					return 0, false
				}
				return Jaesal, true
			},
		},
	}
}

// Calculator evaluates a fixed rule list. Construct with NewCalculator.
type Calculator struct {
	rules []Rule
}

// NewCalculator uses the given rule list, or DefaultRules when nil.
func NewCalculator(rules []Rule) *Calculator {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Calculator{rules: rules}
}

// SpiritOf runs the rule list for one pillar; the last matching rule wins.
func (c *Calculator) SpiritOf(fp cycle.FourPillars, pos Position) Spirit {
	branch := [4]cycle.Branch{
		fp.Year.Branch, fp.Month.Branch, fp.Day.Branch, fp.Hour.Branch,
	}[pos]

	var out Spirit
	for _, r := range c.rules {
		if s, ok := r.Apply(fp, pos, branch); ok {
			out = s
		}
	}
	return out
}

// Spirits evaluates all four pillar positions.
func (c *Calculator) Spirits(fp cycle.FourPillars) [4]Spirit {
	return [4]Spirit{
		c.SpiritOf(fp, PosYear),
		c.SpiritOf(fp, PosMonth),
		c.SpiritOf(fp, PosDay),
		c.SpiritOf(fp, PosHour),
	}
}
