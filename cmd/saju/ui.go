package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"saju/internal/calendar"
	"saju/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	pillarStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

func renderResult(res *engine.Result) string {
	var b strings.Builder

	cells := make([]string, 0, 4)
	for i := 3; i >= 0; i-- { // traditional right-to-left order: hour first
		d := res.Pillars[i]
		cell := lipgloss.JoinVertical(lipgloss.Center,
			labelStyle.Render(d.Position),
			d.Pillar.String(),
			d.Pillar.Korean(),
		)
		cells = append(cells, pillarStyle.Render(cell))
	}
	b.WriteString(titleStyle.Render("四柱"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")

	for _, d := range res.Pillars {
		hidden := make([]string, len(d.HiddenGods))
		for i, h := range d.HiddenGods {
			hidden[i] = fmt.Sprintf("%s:%s", h.Stem, h.God)
		}
		fmt.Fprintf(&b, "%-5s %s  %s  %s  %s  %s  [%s]\n",
			d.Position, d.Pillar, d.StemGod, d.BranchGod, d.Stage, d.Spirit,
			strings.Join(hidden, " "))
	}

	if res.Lunar != nil {
		leap := ""
		if res.Lunar.LeapMonth {
			leap = " (leap month)"
		}
		fmt.Fprintf(&b, "\n%s %d-%02d-%02d%s\n",
			labelStyle.Render("lunar"), res.Lunar.Year, res.Lunar.Month, res.Lunar.Day, leap)
	}

	fmt.Fprintf(&b, "%s %s main, %s secondary, %s day master\n",
		labelStyle.Render("elements"),
		res.Profile.Main, res.Profile.Secondary, res.Profile.YinYang)

	if res.Gender != engine.Unknown {
		dir := "forward"
		if !res.LuckForward {
			dir = "reverse"
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("luck cycle"), dir)
	}

	if res.Processed.CorrectionMinutes != 0 {
		fmt.Fprintf(&b, "%s %+d min (%s)\n",
			labelStyle.Render("local time"), res.Processed.CorrectionMinutes,
			res.Processed.Adjusted.Format("2006-01-02 15:04"))
	}

	if res.Degraded {
		fmt.Fprintf(&b, "%s %s\n", warnStyle.Render("degraded:"), res.Processed.InputError)
	}
	if res.Approximate {
		fmt.Fprintf(&b, "%s\n", warnStyle.Render("approximate: lunar/term data unavailable for this date"))
	}
	return b.String()
}

func renderTerms(year int, days calendar.TermDays) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("major solar terms %d", year)))
	b.WriteString("\n")
	for i, day := range days {
		fmt.Fprintf(&b, "%2d  %s  %s\n", i, calendar.TermName(i), day.Format("2006-01-02"))
	}
	return b.String()
}
