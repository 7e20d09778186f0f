// Package fortune derives the two per-pillar classifications that ride on
// branch positions: the twelve life stages (長生..養) and the twelve spirits
// (劫殺..華蓋). Both are fixed-table rotations; the spirit side additionally
// runs an ordered rule list so each determination stays auditable.
package fortune

import "saju/internal/cycle"

// Stage is one of the twelve life-cycle stages.
type Stage int

const (
	Jangsaeng Stage = iota // 長生
	Mokyok                 // 沐浴
	Gwandae                // 冠帯
	Imgwan                 // 臨官
	Jewang                 // 帝旺
	Soe                    // 衰
	Byeong                 // 病
	Sa                     // 死
	Myo                    // 墓
	Jeol                   // 絶
	Tae                    // 胎
	Yang                   // 養
)

var stageNames = [12]string{
	"長生", "沐浴", "冠帯", "臨官", "帝旺", "衰",
	"病", "死", "墓", "絶", "胎", "養",
}
var stageKorean = [12]string{
	"장생", "목욕", "관대", "임관", "제왕", "쇠",
	"병", "사", "묘", "절", "태", "양",
}

func (s Stage) String() string { return stageNames[s] }

// Korean returns the Korean reading of the stage.
func (s Stage) Korean() string { return stageKorean[s] }

// yangAnchor is the 長生 branch of each element's yang stem. The cycle runs
// forward from here for yang stems.
var yangAnchor = [5]cycle.Branch{
	cycle.Hae, // wood: 甲 is born at 亥
	cycle.In,  // fire: 丙 at 寅
	cycle.In,  // earth: 戊 shares fire's anchor
	cycle.Sa,  // metal: 庚 at 巳
	cycle.Shin, // water: 壬 at 申
}

// yinAnchor is the 長生 branch of each element's yin stem; the same stage
// sequence runs backward from here (乙→午, 丁/己→酉, 辛→子, 癸→卯).
var yinAnchor = [5]cycle.Branch{
	cycle.O,  // 乙
	cycle.Yu, // 丁
	cycle.Yu, // 己
	cycle.Ja, // 辛
	cycle.Myo, // 癸
}

// StageOf returns the life stage of a branch relative to the day stem:
// the branch's position in the element's stage cycle, rotated to the
// stem's anchor, walked forward for yang stems and backward for yin.
func StageOf(dayStem cycle.Stem, branch cycle.Branch) Stage {
	elem := dayStem.Element()
	if dayStem.Polarity() == cycle.Yang {
		return Stage(cycle.Mod(int(branch)-int(yangAnchor[elem]), cycle.NumBranches))
	}
	return Stage(cycle.Mod(int(yinAnchor[elem])-int(branch), cycle.NumBranches))
}

// Stages returns the stage of each of the four pillars' branches.
func Stages(dayStem cycle.Stem, fp cycle.FourPillars) [4]Stage {
	return [4]Stage{
		StageOf(dayStem, fp.Year.Branch),
		StageOf(dayStem, fp.Month.Branch),
		StageOf(dayStem, fp.Day.Branch),
		StageOf(dayStem, fp.Hour.Branch),
	}
}
