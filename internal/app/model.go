// Package app is the interactive topic browser: a read-only bubbletea view
// over the segmentation engine's output. All recomputation happens
// in-process through the memoizing cache; there is no background state.
package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Pluggentipsar/intervju-transkribering/internal/topics"
	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
	"github.com/Pluggentipsar/intervju-transkribering/internal/ui"
)

// PanelFocus tracks which panel has keyboard focus.
type PanelFocus int

const (
	FocusTopics PanelFocus = iota
	FocusTranscript
)

// Model is the root bubbletea model for the topic browser.
type Model struct {
	// Inputs
	segments    []transcript.Segment
	field       transcript.TextField
	sensitivity topics.Sensitivity
	cache       *topics.Cache

	// Engine output
	sections []topics.Section
	selected int

	// UI state
	focused          PanelFocus
	width            int
	height           int
	transcriptScroll int
}

// New creates a browser over the given transcript. The engine runs once up
// front; sensitivity and text-field toggles re-run it through the cache.
func New(segments []transcript.Segment, field transcript.TextField, sensitivity topics.Sensitivity) Model {
	cache, _ := topics.NewCache(16)
	m := Model{
		segments:    segments,
		field:       field,
		sensitivity: sensitivity,
		cache:       cache,
		focused:     FocusTopics,
	}
	m.recompute()
	return m
}

// Init implements tea.Model. The browser has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) recompute() {
	m.sections = m.cache.Sections(m.segments, m.field, m.sensitivity)
	if m.selected >= len(m.sections) {
		m.selected = len(m.sections) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.transcriptScroll = 0
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "tab":
			if m.focused == FocusTopics {
				m.focused = FocusTranscript
			} else {
				m.focused = FocusTopics
			}

		case "j", "down":
			if m.focused == FocusTopics {
				if m.selected < len(m.sections)-1 {
					m.selected++
					m.transcriptScroll = 0
				}
			} else {
				m.transcriptScroll++
			}

		case "k", "up":
			if m.focused == FocusTopics {
				if m.selected > 0 {
					m.selected--
					m.transcriptScroll = 0
				}
			} else if m.transcriptScroll > 0 {
				m.transcriptScroll--
			}

		case "g":
			m.transcriptScroll = 0

		case "G":
			m.transcriptScroll = m.selectedSegmentCount()

		case "1":
			m.sensitivity = topics.SensitivityLow
			m.recompute()
		case "2":
			m.sensitivity = topics.SensitivityMedium
			m.recompute()
		case "3":
			m.sensitivity = topics.SensitivityHigh
			m.recompute()

		case "a":
			if m.field == transcript.FieldOriginal {
				m.field = transcript.FieldAnonymized
			} else {
				m.field = transcript.FieldOriginal
			}
			m.recompute()
		}
	}
	return m, nil
}

func (m Model) selectedSegmentCount() int {
	if m.selected >= len(m.sections) {
		return 0
	}
	return m.sections[m.selected].SegmentCount
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Laddar…"
	}
	if len(m.segments) == 0 {
		return ui.StatusStyle.Render("Transkriptet är tomt.")
	}

	header := m.headerView()
	panelHeight := m.height - 4
	if panelHeight < 3 {
		panelHeight = 3
	}
	panelWidth := (m.width - 6) / 2
	if panelWidth < 20 {
		panelWidth = 20
	}

	topicsPanel := m.panelStyle(FocusTopics).Width(panelWidth).Height(panelHeight).
		Render(m.topicsView(panelWidth, panelHeight))
	transcriptPanel := m.panelStyle(FocusTranscript).Width(panelWidth).Height(panelHeight).
		Render(m.transcriptView(panelWidth, panelHeight))

	body := lipgloss.JoinHorizontal(lipgloss.Top, topicsPanel, transcriptPanel)
	return strings.Join([]string{header, body, m.footerView()}, "\n")
}

func (m Model) panelStyle(panel PanelFocus) lipgloss.Style {
	if m.focused == panel {
		return ui.FocusedPanelStyle
	}
	return ui.PanelStyle
}

func (m Model) headerView() string {
	title := ui.TitleStyle.Render("Ämnen")
	status := ui.StatusStyle.Render(fmt.Sprintf(" %d avsnitt · %d segment · ", len(m.sections), len(m.segments)))
	sens := ui.SensitivityStyle.Render("känslighet: " + string(m.sensitivity))
	field := ""
	if m.field == transcript.FieldAnonymized {
		field = ui.StatusStyle.Render(" · anonymiserad text")
	}
	return title + status + sens + field
}

func (m Model) footerView() string {
	if m.focused == FocusTopics {
		return ui.HelpStyle.Render(helpTopics)
	}
	return ui.HelpStyle.Render(helpTranscript)
}

// topicsView lists the sections with a window that keeps the selection
// visible.
func (m Model) topicsView(width, height int) string {
	if len(m.sections) == 0 {
		return ui.StatusStyle.Render("Inga ämnen hittades.")
	}

	// Each section takes two rows (title line + keyword line).
	visible := height / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.sections) {
		end = len(m.sections)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		sec := m.sections[i]
		line := fmt.Sprintf("%2d  %s–%s  (%d segment)",
			sec.ID+1, formatTime(sec.StartTime), formatTime(sec.EndTime), sec.SegmentCount)
		if i == m.selected {
			b.WriteString(ui.SelectedStyle.Render(truncate(line, width)))
		} else {
			b.WriteString(truncate(line, width))
		}
		b.WriteByte('\n')
		b.WriteString(ui.KeywordStyle.Render(truncate("    "+strings.Join(sec.Keywords, ", "), width)))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// transcriptView shows the segments of the selected section.
func (m Model) transcriptView(width, height int) string {
	if len(m.sections) == 0 {
		return ""
	}
	sec := m.sections[m.selected]

	var lines []string
	for i := sec.StartIndex; i <= sec.EndIndex && i < len(m.segments); i++ {
		seg := m.segments[i]
		plain := "[" + formatTime(seg.StartTime) + "]"
		prefix := ui.TimestampStyle.Render(plain)
		if seg.Speaker != "" {
			plain += " " + seg.Speaker + ":"
			prefix += " " + ui.SpeakerStyle.Render(seg.Speaker+":")
		}
		text := truncate(seg.DisplayText(m.field), width-len([]rune(plain))-1)
		lines = append(lines, prefix+" "+text)
	}

	scroll := m.transcriptScroll
	if scroll > len(lines)-1 {
		scroll = len(lines) - 1
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[scroll:end], "\n")
}

func formatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// truncate clips a rendered line to the panel width, counting runes. ANSI
// sequences from styling are ignored for simplicity; lipgloss clips the
// panel anyway.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return string(runes[:width-1]) + "…"
}
