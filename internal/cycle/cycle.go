// Package cycle provides the sexagenary-cycle primitives: the 10 heavenly
// stems, the 12 earthly branches, their element and polarity attributes, and
// the 60 valid stem-branch pairs used to label years, months, days and hours.
//
// Everything in this package is a fixed constant table. Nothing here does I/O
// or holds mutable state; all lookups are safe for concurrent use.
package cycle

import "fmt"

// Element is one of the five elements of the generation/control cycle.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementNames = [5]string{"木", "火", "土", "金", "水"}
var elementKorean = [5]string{"목", "화", "토", "금", "수"}

func (e Element) String() string { return elementNames[e] }

// Korean returns the Korean reading of the element.
func (e Element) Korean() string { return elementKorean[e] }

// Generates reports whether e produces the target element
// (wood feeds fire, fire makes earth, and so on around the cycle).
func (e Element) Generates(target Element) bool {
	return (e+1)%5 == target
}

// Controls reports whether e overcomes the target element
// (wood parts earth, earth dams water, ...).
func (e Element) Controls(target Element) bool {
	return (e+2)%5 == target
}

// Polarity is the yin/yang attribute of a stem or branch.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "陽"
	}
	return "陰"
}

// Stem is one of the 10 heavenly stems, 0 (甲) through 9 (癸).
type Stem int

const (
	Gap   Stem = iota // 甲
	Eul               // 乙
	Byeong            // 丙
	Jeong             // 丁
	Mu                // 戊
	Gi                // 己
	Gyeong            // 庚
	Sin               // 辛
	Im                // 壬
	Gye               // 癸
)

// NumStems and NumBranches are the cycle moduli.
const (
	NumStems    = 10
	NumBranches = 12
	CycleLen    = 60
)

var stemNames = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var stemKorean = [NumStems]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

// Stems holds 甲..癸 in cycle order.
var Stems = [NumStems]Stem{Gap, Eul, Byeong, Jeong, Mu, Gi, Gyeong, Sin, Im, Gye}

func (s Stem) Valid() bool    { return s >= 0 && s < NumStems }
func (s Stem) String() string { return stemNames[s] }

// Korean returns the Korean reading of the stem.
func (s Stem) Korean() string { return stemKorean[s] }

// Element returns the stem's fixed element: 甲乙 wood, 丙丁 fire,
// 戊己 earth, 庚辛 metal, 壬癸 water.
func (s Stem) Element() Element { return Element(s / 2) }

// Polarity follows index parity: even stems are yang.
func (s Stem) Polarity() Polarity { return Polarity(s % 2) }

// Branch is one of the 12 earthly branches, 0 (子) through 11 (亥).
type Branch int

const (
	Ja   Branch = iota // 子
	Chuk               // 丑
	In                 // 寅
	Myo                // 卯
	Jin                // 辰
	Sa                 // 巳
	O                  // 午
	Mi                 // 未
	Shin               // 申
	Yu                 // 酉
	Sul                // 戌
	Hae                // 亥
)

var branchNames = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
var branchKorean = [NumBranches]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

// branchElements is fixed by tradition, not derivable from the index.
var branchElements = [NumBranches]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// Branches holds 子..亥 in cycle order.
var Branches = [NumBranches]Branch{Ja, Chuk, In, Myo, Jin, Sa, O, Mi, Shin, Yu, Sul, Hae}

func (b Branch) Valid() bool    { return b >= 0 && b < NumBranches }
func (b Branch) String() string { return branchNames[b] }

// Korean returns the Korean reading of the branch.
func (b Branch) Korean() string { return branchKorean[b] }

func (b Branch) Element() Element { return branchElements[b] }

// Polarity follows index parity: even branches are yang.
func (b Branch) Polarity() Polarity { return Polarity(b % 2) }

// hiddenStems lists each branch's concealed stems, principal stem first.
var hiddenStems = [NumBranches][]Stem{
	Ja:   {Gye},
	Chuk: {Gi, Gye, Sin},
	In:   {Gap, Byeong, Mu},
	Myo:  {Eul},
	Jin:  {Mu, Eul, Gye},
	Sa:   {Byeong, Gyeong, Mu},
	O:    {Jeong, Gi},
	Mi:   {Gi, Jeong, Eul},
	Shin: {Gyeong, Im, Mu},
	Yu:   {Sin},
	Sul:  {Mu, Sin, Jeong},
	Hae:  {Im, Gap},
}

// HiddenStems returns the branch's 1-3 concealed stems, principal first.
// The returned slice is a copy; callers may keep it.
func (b Branch) HiddenStems() []Stem {
	src := hiddenStems[b]
	out := make([]Stem, len(src))
	copy(out, src)
	return out
}

// Opposite returns the branch's clash partner (子午, 丑未, ...).
func (b Branch) Opposite() Branch { return (b + 6) % NumBranches }

// sixHarm maps each branch to its six-harm partner.
var sixHarm = [NumBranches]Branch{
	Ja: Mi, Chuk: O, In: Sa, Myo: Jin, Jin: Myo, Sa: In,
	O: Chuk, Mi: Ja, Shin: Hae, Yu: Sul, Sul: Yu, Hae: Shin,
}

// HarmsWith reports whether two branches form a six-harm pair.
func (b Branch) HarmsWith(other Branch) bool { return sixHarm[b] == other }

// ClashesWith reports whether two branches form a clash pair.
func (b Branch) ClashesWith(other Branch) bool { return b.Opposite() == other }

// TrineStart returns the base branch of b's trine group, used by the
// twelve-spirit cycle: 申子辰→巳, 寅午戌→亥, 巳酉丑→寅, 亥卯未→申.
func (b Branch) TrineStart() Branch {
	switch b % 4 {
	case 0: // 申子辰
		return Sa
	case 1: // 巳酉丑
		return In
	case 2: // 寅午戌
		return Hae
	default: // 亥卯未
		return Shin
	}
}

// Pillar pairs a stem with a branch. Only the 60 parity-matched pairs are
// valid sexagenary pillars.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// PillarAt returns the pillar at cyclical position n (0 = 甲子). Negative n
// is interpreted modulo 60.
func PillarAt(n int) Pillar {
	n = Mod(n, CycleLen)
	return Pillar{Stem(n % NumStems), Branch(n % NumBranches)}
}

// Valid reports whether the pair respects polarity parity.
func (p Pillar) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid() && int(p.Stem)%2 == int(p.Branch)%2
}

// Index returns the pillar's cyclical position 0..59, or -1 for an invalid
// pair. Inverse of PillarAt.
func (p Pillar) Index() int {
	if !p.Valid() {
		return -1
	}
	n := int(p.Stem)
	for n%NumBranches != int(p.Branch) {
		n += NumStems
	}
	return n % CycleLen
}

func (p Pillar) String() string { return p.Stem.String() + p.Branch.String() }

// Korean returns the Korean reading of the pillar, e.g. "갑자".
func (p Pillar) Korean() string { return p.Stem.Korean() + p.Branch.Korean() }

// FourPillars is the year/month/day/hour pillar set of one birth moment.
type FourPillars struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Hour  Pillar
}

func (fp FourPillars) String() string {
	return fmt.Sprintf("%s %s %s %s", fp.Year, fp.Month, fp.Day, fp.Hour)
}

// Mod is the floored modulo: the result always carries the sign of m.
func Mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
