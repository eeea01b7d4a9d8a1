package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msultanalhakim/productivity-dashboard/internal/state"
)

// Dashboard theme (CLI + TUI). Reusable styles and a few emojis.

const (
	IconDash    = "🗂️"
	IconTask    = "📝"
	IconGoal    = "🎯"
	IconNote    = "🗒️"
	IconMoney   = "💰"
	IconIn      = "📈"
	IconOut     = "📉"
	IconDone    = "✅"
	IconPending = "⬜"
	IconLock    = "🔒"
	IconUnlock  = "🔓"
	IconWarn    = "⚠️"
	IconHistory = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

// moodEmoji maps each mood to its dashboard emoji.
var moodEmoji = map[state.Mood]string{
	state.MoodSemangat: "😎",
	state.MoodFokus:    "🧠",
	state.MoodMager:    "😫",
	state.MoodSedih:    "😢",
	state.MoodMarah:    "😡",
}

func MoodEmoji(m state.Mood) string {
	if e, ok := moodEmoji[m]; ok {
		return e
	}
	return "–"
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Checkbox renders the done marker for tasks and goals.
func Checkbox(done bool) string {
	if done {
		return IconDone
	}
	return IconPending
}

// GoalStatusText colors a long-term goal status.
func GoalStatusText(s state.GoalStatus) string {
	switch s {
	case state.GoalCompleted:
		return Good.Render(string(s))
	case state.GoalFailed:
		return Bad.Render(string(s))
	case state.GoalActive:
		return H2.Render(string(s))
	default:
		return Muted.Render(string(s))
	}
}
