package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTermDays_SpotChecks(t *testing.T) {
	tab := NewTermTable()
	tests := []struct {
		year   int
		period int
		month  time.Month
		day    int
	}{
		{2023, 0, time.January, 5},   // 小寒
		{2023, 1, time.February, 4},  // 立春
		{2023, 2, time.March, 6},     // 驚蟄
		{1970, 0, time.January, 6},   // 小寒
		{1970, 1, time.February, 4},  // 立春
		{1969, 11, time.December, 7}, // 大雪
		{1984, 1, time.February, 4},  // 立春, exception-table year
		{2019, 0, time.January, 5},   // 小寒, exception-table year
		{2000, 1, time.February, 4},  // 立春, exception-table year
	}
	for _, tt := range tests {
		ty, ok := tab.Year(tt.year)
		require.True(t, ok, "year %d in range", tt.year)
		got := ty[tt.period]
		if got.Month() != tt.month || got.Day() != tt.day {
			t.Errorf("term %d of %d = %s, want %s %d",
				tt.period, tt.year, got.Format("Jan 2"), tt.month, tt.day)
		}
	}
}

func TestTermTable_OutOfRange(t *testing.T) {
	tab := NewTermTable()
	if _, ok := tab.Year(1850); ok {
		t.Error("1850 should be out of range")
	}
	if _, ok := tab.PeriodOf(date(2150, time.June, 1)); ok {
		t.Error("2150 should be out of range")
	}
}

func TestPeriodOf_Boundary(t *testing.T) {
	tab := NewTermTable()

	// Day before 立春 2023 still belongs to the minor-cold period.
	p, ok := tab.PeriodOf(date(2023, time.February, 3))
	require.True(t, ok)
	require.Equal(t, 0, p.Index)
	require.Equal(t, "小寒", p.Name)
	require.Equal(t, 2023, p.Year)

	// The term day itself belongs to the new period.
	p, ok = tab.PeriodOf(date(2023, time.February, 4))
	require.True(t, ok)
	require.Equal(t, 1, p.Index)
	require.Equal(t, "立春", p.Name)
}

func TestPeriodOf_JanuaryBeforeMinorCold(t *testing.T) {
	tab := NewTermTable()

	// Jan 1 1970 precedes 小寒 (Jan 6): governed by December 1969's 大雪.
	p, ok := tab.PeriodOf(date(1970, time.January, 1))
	require.True(t, ok)
	require.Equal(t, 11, p.Index)
	require.Equal(t, "大雪", p.Name)
	require.Equal(t, 1969, p.Year)
}

func TestTermTable_CacheIsStable(t *testing.T) {
	tab := NewTermTable()
	a, _ := tab.Year(2023)
	b, _ := tab.Year(2023)
	require.Equal(t, a, b)
}

func TestJulianDayNumber(t *testing.T) {
	tests := []struct {
		y    int
		m    time.Month
		d    int
		want int
	}{
		{1970, time.January, 1, 2440588},
		{2000, time.January, 1, 2451545},
		{1900, time.January, 31, 2415051},
	}
	for _, tt := range tests {
		if got := JulianDayNumber(tt.y, tt.m, tt.d); got != tt.want {
			t.Errorf("JDN(%d-%d-%d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
	}
}

func TestSolarToLunar_NewYear(t *testing.T) {
	p := NewProvider()

	// Lunar new year 2023 fell on Jan 22.
	ld := p.LunarDateOf(date(2023, time.January, 22))
	require.NotNil(t, ld)
	require.Equal(t, LunarDate{Year: 2023, Month: 1, Day: 1}, *ld)

	// Lunar new year 2022 fell on Feb 1.
	ld = p.LunarDateOf(date(2022, time.February, 1))
	require.NotNil(t, ld)
	require.Equal(t, LunarDate{Year: 2022, Month: 1, Day: 1}, *ld)

	// The day before a new year is the last day of the old year.
	ld = p.LunarDateOf(date(2023, time.January, 21))
	require.NotNil(t, ld)
	require.Equal(t, 2022, ld.Year)
	require.Equal(t, 12, ld.Month)
}

func TestSolarToLunar_OutOfRange(t *testing.T) {
	p := NewProvider()
	if ld := p.LunarDateOf(date(1850, time.June, 1)); ld != nil {
		t.Errorf("expected nil for pre-table date, got %+v", ld)
	}
}

func TestLunarYearDays_Plausible(t *testing.T) {
	// Every lunar year is 353-355 days, or 383-385 with a leap month.
	for y := minLunarYear; y <= maxLunarYear; y++ {
		days := lunarYearDays(y)
		if leapMonthOf(y) == 0 {
			if days < 353 || days > 355 {
				t.Errorf("year %d: %d days without leap month", y, days)
			}
		} else {
			if days < 383 || days > 385 {
				t.Errorf("year %d: %d days with leap month", y, days)
			}
		}
	}
}
