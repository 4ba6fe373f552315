package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m tuiModel) View() string {
	switch m.state {
	case statePrompts:
		return m.promptsView()
	case stateWriting:
		return m.writingView()
	case stateScoring:
		return fmt.Sprintf("\n  %s Scoring your essay with the AI examiner...\n\n  %s\n",
			m.spinner.View(), dimStyle.Render("This can take up to a minute."))
	case stateResult:
		return m.resultView()
	}
	return ""
}

func (m tuiModel) promptsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("IELTS Writing Practice") + "\n\n")
	b.WriteString("Pick a prompt:\n\n")

	if len(m.prompts) == 0 {
		b.WriteString(dimStyle.Render("  (no prompts loaded; press r to retry)") + "\n")
	}
	for i, p := range m.prompts {
		line := fmt.Sprintf("%s — %s [%s, %d min]", p.Category, p.Title, p.Difficulty, p.TimeLimit)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter: start writing • r: reload • q: quit") + "\n")
	return b.String()
}

func (m tuiModel) writingView() string {
	var b strings.Builder

	if m.selected != nil {
		b.WriteString(titleStyle.Render(m.selected.Title) + "\n")
		b.WriteString(boxStyle.Render(m.selected.Content) + "\n\n")
	}

	minutes, seconds := m.timer.Clock()
	clock := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if m.timer.Remaining() == 0 {
		clock = warnStyle.Render(clock + " time's up")
	} else if !m.timer.Running() {
		clock = dimStyle.Render(clock + " paused")
	}
	saved := "not saved yet"
	if !m.lastSaved.IsZero() {
		saved = "saved at " + m.lastSaved.Format("15:04")
	}
	b.WriteString(fmt.Sprintf("%s  |  %d words  %d chars  %d paragraphs  |  %s\n\n",
		clock, m.stats.WordCount, m.stats.CharCount, m.stats.ParagraphCount, dimStyle.Render(saved)))

	b.WriteString(m.textarea.View() + "\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(dimStyle.Render("ctrl+t: start/pause timer • ctrl+r: reset timer • ctrl+s: save • ctrl+v: get AI score • esc: prompts") + "\n")
	return b.String()
}

func (m tuiModel) resultView() string {
	ev := m.evaluation
	if ev == nil {
		return "No result.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("IELTS Band Score") + "\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("  %.1f / 9  (%s)", ev.Score, scoreLabel(ev.Score))) + "\n\n")
	b.WriteString(fmt.Sprintf("  Task Response:        %.1f\n", ev.TaskResponse))
	b.WriteString(fmt.Sprintf("  Coherence & Cohesion: %.1f\n", ev.CoherenceCohesion))
	b.WriteString(fmt.Sprintf("  Lexical Resource:     %.1f\n", ev.LexicalResource))
	b.WriteString(fmt.Sprintf("  Grammatical Range:    %.1f\n\n", ev.GrammaticalRange))
	b.WriteString(boxStyle.Render(ev.Feedback) + "\n\n")

	if len(ev.Strengths) > 0 {
		b.WriteString("Strengths:\n")
		for _, s := range ev.Strengths {
			b.WriteString("  + " + s + "\n")
		}
	}
	if len(ev.Improvements) > 0 {
		b.WriteString("Areas for improvement:\n")
		for _, s := range ev.Improvements {
			b.WriteString("  - " + s + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render("b: back to essay • q: quit") + "\n")
	return b.String()
}

func scoreLabel(score float64) string {
	switch {
	case score >= 8.5:
		return "Excellent"
	case score >= 7:
		return "Good"
	case score >= 5.5:
		return "Competent"
	case score >= 4:
		return "Limited"
	default:
		return "Needs Improvement"
	}
}
