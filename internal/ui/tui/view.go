package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/NordCoder/testerdash/internal/domain/result"
	"github.com/NordCoder/testerdash/internal/services/dashboard"
)

const appTitle = "LeanCloud Tester"

func (m Model) View() string {
	var body string
	if m.screen == screenTests {
		body = m.viewTests()
	} else {
		body = m.viewTest()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		"",
		m.clip(body),
		"",
		m.help.View(m.keys),
	)
}

func (m Model) viewHeader() string {
	mode := "all results"
	if m.sess.FailuresOnly() {
		mode = "failures only"
	}
	title := titleStyle.Render(appTitle)
	if m.screen == screenTest {
		title += subtitleStyle.Render("/ " + m.sess.Test())
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", subtitleStyle.Render("["+mode+"]"))
}

func (m Model) viewTests() string {
	if m.sess.TestsLoading() && len(m.sess.Tests()) == 0 {
		return m.loading("Loading tests")
	}
	tests := m.sess.Tests()
	if len(tests) == 0 {
		return mutedStyle.Render("No tests.")
	}
	now := m.now()
	var b strings.Builder
	for i, t := range tests {
		line := fmt.Sprintf("%-32s %s", statusStyle(t.Passed).Render(t.Name),
			mutedStyle.Render("updated "+dashboard.RelativeTime(t.UpdatedAt, now)))
		if i == m.testCursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewTest() string {
	var content string
	switch m.tab {
	case tabResults:
		content = m.viewFeed()
	case tabDowntimes:
		content = m.viewDowntimes()
	case tabRange:
		content = m.viewRange()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), "", content)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := tabResults; t < tabCount; t++ {
		style := tabStyle
		switch {
		case t == m.tab:
			style = activeTabStyle
		case t == tabRange && !m.sess.Range().Available():
			style = disabledTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewFeed() string {
	if m.sess.FeedLoading() && len(m.sess.Feed()) == 0 {
		return m.loading("Loading results")
	}
	if len(m.sess.Feed()) == 0 {
		if m.sess.FailuresOnly() {
			return mutedStyle.Render("No failures.")
		}
		return mutedStyle.Render("No results.")
	}
	return m.scrolled(renderEntries(m.sess.Feed(), m.now()))
}

func (m Model) viewRange() string {
	rng := m.sess.Range()
	b, ok := rng.Bounds()
	if !ok {
		return mutedStyle.Render("Select two results in Downtimes to compare a range.")
	}
	head := subtitleStyle.Render(fmt.Sprintf("Results #%d to #%d", b.Lo, b.Hi))
	if rng.State() == dashboard.RangePending {
		return head + "\n" + m.loading("Loading range")
	}
	if len(rng.Results()) == 0 {
		return head + "\n" + mutedStyle.Render("No results in range.")
	}
	return head + "\n" + m.scrolled(renderEntries(rng.Results(), m.now()))
}

func (m Model) viewDowntimes() string {
	if m.sess.DowntimesLoading() && m.sess.Table().Len() == 0 {
		return m.loading("Loading downtimes")
	}
	rows := m.sess.Table().Rows()
	if len(rows) == 0 {
		return mutedStyle.Render("No downtimes.")
	}
	now := m.now()
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  %-26s %-26s %s", "Start", "End", "Duration")))
	b.WriteByte('\n')
	for i, r := range rows {
		start := m.cell(i, dashboard.StartEndpoint, r.StartChecked, true,
			fmt.Sprintf("#%d %s", r.StartResultID, dashboard.AbsoluteTime(r.StartTime)))

		endLabel := "ongoing"
		if r.EndEnabled {
			endLabel = fmt.Sprintf("#%d %s", *r.EndResultID, dashboard.AbsoluteTime(*r.EndTime))
		}
		end := m.cell(i, dashboard.EndEndpoint, r.EndChecked, r.EndEnabled, endLabel)

		style := failStyle
		if !r.Ongoing() {
			style = mutedStyle
		}
		dur := style.Render(r.Duration(now).Round(time.Second).String())

		marker := "  "
		if i == m.rowCursor {
			marker = "> "
		}
		b.WriteString(marker + start + " " + end + " " + dur + "\n")
	}
	b.WriteString(m.viewSelection())
	return b.String()
}

func (m Model) cell(row int, ep dashboard.Endpoint, checked, enabled bool, label string) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if !enabled {
		box = "   "
	}
	s := fmt.Sprintf("%s %-22s", box, label)
	switch {
	case row == m.rowCursor && ep == m.endpoint:
		return cursorStyle.Render(s)
	case !enabled:
		return mutedStyle.Render(s)
	}
	return s
}

func (m Model) viewSelection() string {
	ids := m.sess.Selection().IDs()
	if len(ids) == 0 {
		return mutedStyle.Render("Select a start and an end result to compare a range.")
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	line := "Selected: " + strings.Join(parts, ", ")
	if b, ok := m.sess.Selection().Bounds(); ok {
		line += fmt.Sprintf("  range #%d to #%d (tab to Range)", b.Lo, b.Hi)
	}
	return subtitleStyle.Render(line)
}

func renderEntries(rs []*result.Result, now time.Time) []string {
	entries := dashboard.RenderFeed(rs, now)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := statusStyle(e.Passed).Render(e.Icon+" "+e.Summary) +
			fmt.Sprintf("  #%d  %s ", e.ID, e.Relative) +
			mutedStyle.Render("("+e.Absolute+")")
		lines = append(lines, line)
		if e.ShowInfo {
			lines = append(lines, infoStyle.Render(e.Info))
		}
	}
	return lines
}

func (m Model) scrolled(lines []string) string {
	off := clamp(m.scroll, len(lines))
	return strings.Join(lines[off:], "\n")
}

// clip keeps the body inside the window, leaving room for header and help.
func (m Model) clip(body string) string {
	if m.height <= 0 {
		return body
	}
	avail := m.height - lipgloss.Height(m.viewHeader()) - lipgloss.Height(m.help.View(m.keys)) - 2
	lines := strings.Split(body, "\n")
	if avail <= 0 || len(lines) <= avail {
		return body
	}
	return strings.Join(lines[:avail], "\n")
}

func (m Model) loading(what string) string {
	return m.spinner.View() + " " + what + "…"
}
