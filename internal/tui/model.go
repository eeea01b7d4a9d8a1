package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msultanalhakim/productivity-dashboard/internal/engine"
	"github.com/msultanalhakim/productivity-dashboard/internal/state"
	"github.com/msultanalhakim/productivity-dashboard/internal/ui"
)

// rowKind distinguishes what a selectable row toggles.
type rowKind int

const (
	rowTask rowKind = iota
	rowGoal
)

type boardRow struct {
	kind rowKind
	id   string
	text string
	done bool
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	st   *state.AppState
	rows []boardRow

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	st  *state.AppState
	err error
}

type actedMsg struct {
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Memuat…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.Sync(m.ctx)
		return loadedMsg{st: st, err: err}
	}
}

func (m boardModel) toggleCmd(row boardRow) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch row.kind {
		case rowTask:
			err = m.svc.ToggleTask(m.ctx, row.id)
		case rowGoal:
			err = m.svc.ToggleGoal(m.ctx, row.id)
		}
		return actedMsg{err: err}
	}
}

func (m *boardModel) rebuildRows() {
	m.rows = m.rows[:0]
	if m.st == nil {
		return
	}
	for _, t := range m.st.DailyTasks {
		m.rows = append(m.rows, boardRow{kind: rowTask, id: t.ID, text: t.Text, done: t.Done})
	}
	today := m.svc.Today().Weekday().Name()
	for _, g := range engine.GoalsForDay(m.st.WeeklyGoals, today) {
		m.rows = append(m.rows, boardRow{kind: rowGoal, id: g.ID, text: g.Text, done: g.Done})
	}
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Gagal memuat: " + msg.err.Error()
			return m, nil
		}
		m.st = msg.st
		m.rebuildRows()
		m.lastLog = fmt.Sprintf("Disegarkan %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actedMsg:
		if msg.err != nil {
			m.lastLog = ui.IconWarn + " " + msg.err.Error()
			return m, nil
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Menyegarkan…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter":
			if m.selected >= 0 && m.selected < len(m.rows) {
				return m, m.toggleCmd(m.rows[m.selected])
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	today := m.svc.Today()
	b.WriteString(ui.Heading(ui.IconDash, fmt.Sprintf("Dashboard %s, %s", today.Weekday().Name(), today)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(ui.Muted.Render("Memuat…"))
		b.WriteString("\n")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(ui.Bad.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.st.Mood != state.MoodNone {
		b.WriteString(ui.LabelValue("Mood", ui.MoodEmoji(m.st.Mood)+" "+string(m.st.Mood)))
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(ui.Muted.Render("Tidak ada tugas atau goal untuk hari ini."))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		kindIcon := ui.IconTask
		if row.kind == rowGoal {
			kindIcon = ui.IconGoal
		}
		line := fmt.Sprintf("%s %s %s", ui.Checkbox(row.done), kindIcon, row.text)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("space: toggle · r: refresh · q: quit"))
	b.WriteString("\n")
	return b.String()
}
