package pillars

import (
	"testing"
	"time"

	"saju/internal/calendar"
	"saju/internal/cycle"
)

func newCalc() *Calculator {
	return New(calendar.NewTermTable(), nil, nil)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYear_SpringBoundary(t *testing.T) {
	c := newCalc()
	tests := []struct {
		date time.Time
		want string
	}{
		{date(2023, time.February, 3), "壬寅"}, // day before 立春
		{date(2023, time.February, 4), "癸卯"}, // 立春 day
		{date(2023, time.December, 31), "癸卯"},
		{date(2024, time.January, 15), "癸卯"}, // next year, before 立春
		{date(1984, time.February, 4), "甲子"}, // anchor year
		{date(1984, time.January, 20), "癸亥"},
		{date(1970, time.January, 1), "己酉"},
	}
	for _, tt := range tests {
		got, approx := c.Year(tt.date)
		if approx {
			t.Errorf("Year(%s) unexpectedly approximate", tt.date.Format("2006-01-02"))
		}
		if got.String() != tt.want {
			t.Errorf("Year(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestYear_OutOfTableRange(t *testing.T) {
	c := newCalc()
	got, approx := c.Year(date(1850, time.June, 1))
	if !approx {
		t.Error("expected approximate flag outside table range")
	}
	// 1850: (1850-1984) mod 60 = 46 -> 庚戌
	if got.String() != "庚戌" {
		t.Errorf("Year(1850) = %s, want 庚戌", got)
	}
}

func TestDay_Epoch(t *testing.T) {
	c := newCalc()
	tests := []struct {
		date time.Time
		want string
	}{
		{date(1970, time.January, 1), "辛巳"}, // regression fixture
		{date(1970, time.March, 2), "辛巳"},   // +60 days, same pillar
		{date(1969, time.December, 31), "庚辰"},
		{date(2023, time.February, 4), "癸巳"},
	}
	for _, tt := range tests {
		if got := c.Day(tt.date); got.String() != tt.want {
			t.Errorf("Day(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestDay_ConsecutiveAdvance(t *testing.T) {
	c := newCalc()
	start := date(2023, time.February, 1)
	prev := c.Day(start)
	for i := 1; i <= 60; i++ {
		cur := c.Day(start.AddDate(0, 0, i))
		if cycle.Mod(cur.Index()-prev.Index(), cycle.CycleLen) != 1 {
			t.Fatalf("day %d: %s -> %s does not advance by 1", i, prev, cur)
		}
		prev = cur
	}
}

func TestHour_SlotTable(t *testing.T) {
	c := newCalc()
	day := cycle.Pillar{Stem: cycle.Sin, Branch: cycle.Sa} // 辛巳

	tests := []struct {
		hour int
		want string
	}{
		{0, "戊子"},  // 辛 day: 子 slot starts at 戊
		{1, "己丑"},
		{2, "己丑"},
		{3, "庚寅"},
		{12, "甲午"},
		{22, "己亥"},
		{23, "戊子"}, // wraps to the 子 slot again
	}
	for _, tt := range tests {
		if got := c.Hour(day, tt.hour); got.String() != tt.want {
			t.Errorf("Hour(辛巳, %d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestHour_AllSlotsValid(t *testing.T) {
	c := newCalc()
	for n := 0; n < cycle.CycleLen; n++ {
		day := cycle.PillarAt(n)
		for hour := 0; hour < 24; hour++ {
			p := c.Hour(day, hour)
			if !p.Valid() {
				t.Errorf("Hour(%s, %d) = %s invalid", day, hour, p)
			}
		}
	}
}

func TestMonth_TermBoundary(t *testing.T) {
	c := newCalc()
	terms := calendar.NewTermTable()

	tests := []struct {
		date time.Time
		want string
	}{
		{date(2023, time.February, 3), "癸丑"}, // minor-cold period
		{date(2023, time.February, 4), "甲寅"}, // 立春 day flips the month
		{date(2023, time.March, 5), "甲寅"},    // day before 驚蟄
		{date(2023, time.March, 6), "乙卯"},    // 驚蟄 day
		{date(1970, time.January, 1), "丙子"},  // before 小寒: December 1969 period
		{date(1970, time.January, 6), "丁丑"},  // 小寒 1970
	}
	for _, tt := range tests {
		term, ok := terms.PeriodOf(tt.date)
		if !ok {
			t.Fatalf("no term period for %s", tt.date.Format("2006-01-02"))
		}
		got, approx := c.Month(tt.date, &term)
		if approx {
			t.Errorf("Month(%s) unexpectedly approximate", tt.date.Format("2006-01-02"))
		}
		if got.String() != tt.want {
			t.Errorf("Month(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestMonth_ApproximateFallback(t *testing.T) {
	c := newCalc()
	got, approx := c.Month(date(2023, time.June, 15), nil)
	if !approx {
		t.Error("nil term should flag the result approximate")
	}
	// June -> period 5 (芒種), 2023 year stem 癸 -> offset 9,
	// stem (9+5) mod 10 = 戊, branch 午.
	if got.String() != "戊午" {
		t.Errorf("approximate Month = %s, want 戊午", got)
	}
}

func TestMonth_OverrideTakesPriority(t *testing.T) {
	ov := Overrides{
		"2023-02-04": {
			Month:   cycle.Pillar{Stem: cycle.Gye, Branch: cycle.Chuk}, // deliberately not 甲寅
			Version: "test-1",
			Reason:  "exercise the override path",
		},
	}
	c := New(calendar.NewTermTable(), ov, nil)
	terms := calendar.NewTermTable()
	term, _ := terms.PeriodOf(date(2023, time.February, 4))

	got, approx := c.Month(date(2023, time.February, 4), &term)
	if approx {
		t.Error("override result should not be approximate")
	}
	if got.String() != "癸丑" {
		t.Errorf("override ignored: got %s", got)
	}

	// Neighboring date is untouched by the override.
	term2, _ := terms.PeriodOf(date(2023, time.February, 5))
	got, _ = c.Month(date(2023, time.February, 5), &term2)
	if got.String() != "甲寅" {
		t.Errorf("non-override date affected: got %s", got)
	}
}

func TestProductionOverrides_Empty(t *testing.T) {
	if n := len(ProductionOverrides()); n != 0 {
		t.Errorf("shipped override table should be empty, has %d entries", n)
	}
}

func TestYearStemOf(t *testing.T) {
	tests := []struct {
		year int
		want cycle.Stem
	}{
		{1984, cycle.Gap},
		{2023, cycle.Gye},
		{2024, cycle.Gap},
		{1969, cycle.Gi},
		{1970, cycle.Gyeong},
	}
	for _, tt := range tests {
		if got := YearStemOf(tt.year); got != tt.want {
			t.Errorf("YearStemOf(%d) = %s, want %s", tt.year, got, tt.want)
		}
	}
}
