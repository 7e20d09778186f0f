// Package tengod classifies the five-element relationship between the day
// stem ("self") and any other stem or branch into one of the ten god labels.
//
// Relation is the single source of truth. The precomputed matrix is
// generated from it at construction and checked against it by a standing
// property test; no second hand-written table exists.
package tengod

import (
	"saju/internal/cycle"
)

// God is one of the ten relational labels.
type God int

const (
	Bigyeon   God = iota // 比肩: same element, same polarity
	Geopjae              // 劫財: same element, opposite polarity
	Siksin               // 食神: self generates target, same polarity
	Sanggwan             // 傷官: self generates target, opposite polarity
	Pyeonjae             // 偏財: self controls target, same polarity
	Jeongjae             // 正財: self controls target, opposite polarity
	Pyeongwan            // 偏官: target controls self, same polarity
	Jeonggwan            // 正官: target controls self, opposite polarity
	Pyeonin              // 偏印: target generates self, same polarity
	Jeongin              // 正印: target generates self, opposite polarity
)

var godNames = [10]string{
	"比肩", "劫財", "食神", "傷官", "偏財",
	"正財", "偏官", "正官", "偏印", "正印",
}
var godKorean = [10]string{
	"비견", "겁재", "식신", "상관", "편재",
	"정재", "편관", "정관", "편인", "정인",
}

func (g God) String() string { return godNames[g] }

// Korean returns the Korean reading of the label.
func (g God) Korean() string { return godKorean[g] }

// Relation classifies the target's element and polarity against the self
// stem. Pure function over the generation/control cycle; the five branches
// below are the complete decision table.
func Relation(self cycle.Stem, targetElem cycle.Element, targetPol cycle.Polarity) God {
	selfElem := self.Element()
	same := self.Polarity() == targetPol

	switch {
	case selfElem == targetElem:
		if same {
			return Bigyeon
		}
		return Geopjae
	case selfElem.Generates(targetElem):
		if same {
			return Siksin
		}
		return Sanggwan
	case selfElem.Controls(targetElem):
		if same {
			return Pyeonjae
		}
		return Jeongjae
	case targetElem.Controls(selfElem):
		if same {
			return Pyeongwan
		}
		return Jeonggwan
	default: // target generates self
		if same {
			return Pyeonin
		}
		return Jeongin
	}
}

// StemGod labels a target stem against the self stem.
func StemGod(self, target cycle.Stem) God {
	return Relation(self, target.Element(), target.Polarity())
}

// BranchGod labels a branch by its own element and polarity.
func BranchGod(self cycle.Stem, target cycle.Branch) God {
	return Relation(self, target.Element(), target.Polarity())
}

// HiddenGod pairs a branch's concealed stem with its label.
type HiddenGod struct {
	Stem cycle.Stem
	God  God
}

// BranchGods returns the branch's primary label together with the label of
// each of its 1-3 hidden stems, computed from the hidden stem's own element
// and polarity.
func BranchGods(self cycle.Stem, target cycle.Branch) (God, []HiddenGod) {
	hidden := target.HiddenStems()
	out := make([]HiddenGod, len(hidden))
	for i, hs := range hidden {
		out[i] = HiddenGod{Stem: hs, God: StemGod(self, hs)}
	}
	return BranchGod(self, target), out
}

// Matrix is the 10x12 stem-by-branch lookup generated from Relation.
// Constructed once, read-only afterwards.
type Matrix struct {
	byBranch [cycle.NumStems][cycle.NumBranches]God
	byStem   [cycle.NumStems][cycle.NumStems]God
}

// NewMatrix generates the lookup tables from the rule function.
func NewMatrix() *Matrix {
	m := &Matrix{}
	for _, s := range cycle.Stems {
		for _, b := range cycle.Branches {
			m.byBranch[s][b] = BranchGod(s, b)
		}
		for _, t := range cycle.Stems {
			m.byStem[s][t] = StemGod(s, t)
		}
	}
	return m
}

// Branch returns the precomputed label for a stem-branch pair.
func (m *Matrix) Branch(self cycle.Stem, target cycle.Branch) God {
	return m.byBranch[self][target]
}

// Stem returns the precomputed label for a stem-stem pair.
func (m *Matrix) Stem(self, target cycle.Stem) God {
	return m.byStem[self][target]
}
