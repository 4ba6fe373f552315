package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fadilmartias/ielts-writer/internal/client"
	"github.com/fadilmartias/ielts-writer/internal/config"
	"github.com/fadilmartias/ielts-writer/internal/editor"
	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/util"
)

type state int

const (
	statePrompts state = iota
	stateWriting
	stateScoring
	stateResult
)

type (
	promptsLoadedMsg []model.Prompt
	scoredMsg        *model.Evaluation
	tickMsg          time.Time
	errMsg           error
)

type essaySavedMsg struct {
	id int
	at time.Time
}

type tuiModel struct {
	cfg   *config.EditorConfig
	api   *client.Client
	saver *editor.AutoSaver

	state    state
	prompts  []model.Prompt
	cursor   int
	selected *model.Prompt

	textarea  textarea.Model
	timer     *editor.Timer
	stats     util.TextStats
	lastSaved time.Time
	essayID   int

	spinner    spinner.Model
	evaluation *model.Evaluation
	err        error
}

func initialModel(cfg *config.EditorConfig, api *client.Client, store editor.DraftStore, draft string) tuiModel {
	ta := textarea.New()
	ta.Placeholder = "Write your essay here..."
	ta.SetValue(draft)
	ta.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := tuiModel{
		cfg:      cfg,
		api:      api,
		state:    statePrompts,
		textarea: ta,
		timer:    editor.NewTimer(cfg.TimerSeconds),
		stats:    util.Stats(draft),
		spinner:  sp,
	}
	m.saver = editor.NewAutoSaver(store, editor.DraftKey, cfg.AutosaveDelay, nil)
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(m.loadPrompts, tickCmd())
}

func (m tuiModel) loadPrompts() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	prompts, err := m.api.ListPrompts(ctx, "")
	if err != nil {
		return errMsg(err)
	}
	return promptsLoadedMsg(prompts)
}

func (m tuiModel) submitEssay() tea.Cmd {
	content := m.textarea.Value()
	prompt := ""
	if m.selected != nil {
		prompt = m.selected.Content
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		evaluation, err := m.api.ValidateEssay(ctx, content, prompt)
		if err != nil {
			return errMsg(err)
		}
		return scoredMsg(evaluation)
	}
}

// saveEssay creates the essay on the first save and patches the same record
// afterwards, keeping content, word count, and elapsed time current.
func (m tuiModel) saveEssay() tea.Cmd {
	content := m.textarea.Value()
	wordCount := util.CountWords(content)
	timeSpent := m.cfg.TimerSeconds - m.timer.Remaining()
	if m.selected != nil {
		timeSpent = m.selected.TimeLimit*60 - m.timer.Remaining()
	}

	if m.essayID != 0 {
		id := m.essayID
		update := model.EssayUpdate{
			Content:   &content,
			WordCount: &wordCount,
			TimeSpent: &timeSpent,
		}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			essay, err := m.api.UpdateEssay(ctx, id, update)
			if err != nil {
				return errMsg(err)
			}
			return essaySavedMsg{id: essay.ID, at: time.Now()}
		}
	}

	insert := model.InsertEssay{
		Title:     "Practice Essay",
		Content:   content,
		WordCount: wordCount,
		TimeSpent: timeSpent,
	}
	if m.selected != nil {
		insert.Title = m.selected.Title
		insert.Prompt = m.selected.Content
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		essay, err := m.api.CreateEssay(ctx, insert)
		if err != nil {
			return errMsg(err)
		}
		return essaySavedMsg{id: essay.ID, at: time.Now()}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.timer.Tick()
		return m, tickCmd()
	case promptsLoadedMsg:
		m.prompts = msg
		m.err = nil
		return m, nil
	case essaySavedMsg:
		m.essayID = msg.id
		m.lastSaved = msg.at
		return m, nil
	case scoredMsg:
		// A response from an older submission can land here after a newer
		// one was issued; last writer wins.
		m.evaluation = msg
		m.state = stateResult
		return m, nil
	case errMsg:
		m.err = msg
		if m.state == stateScoring {
			m.state = stateWriting
		}
		return m, nil
	case spinner.TickMsg:
		if m.state == stateScoring {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateWriting {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case statePrompts:
		switch msg.String() {
		case "ctrl+c", "q":
			m.saver.Stop()
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.prompts)-1 {
				m.cursor++
			}
		case "r":
			return m, m.loadPrompts
		case "enter":
			if m.cursor < len(m.prompts) {
				p := m.prompts[m.cursor]
				m.selected = &p
				m.essayID = 0
				m.timer = editor.NewTimer(p.TimeLimit * 60)
				m.state = stateWriting
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
		return m, nil

	case stateWriting:
		switch msg.String() {
		case "ctrl+c":
			m.saver.Flush()
			m.saver.Stop()
			return m, tea.Quit
		case "esc":
			m.saver.Flush()
			m.textarea.Blur()
			m.state = statePrompts
			return m, nil
		case "ctrl+t":
			if m.timer.Running() {
				m.timer.Pause()
			} else {
				m.timer.Start()
			}
			return m, nil
		case "ctrl+r":
			m.timer.Reset()
			return m, nil
		case "ctrl+s":
			m.saver.Flush()
			return m, m.saveEssay()
		case "ctrl+v":
			m.state = stateScoring
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.submitEssay())
		}

		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		content := m.textarea.Value()
		m.stats = util.Stats(content)
		m.saver.Notify(content)
		if t := m.saver.LastSaved(); !t.IsZero() {
			m.lastSaved = t
		}
		return m, cmd

	case stateScoring:
		if msg.String() == "ctrl+c" {
			m.saver.Stop()
			return m, tea.Quit
		}
		return m, nil

	case stateResult:
		switch msg.String() {
		case "ctrl+c", "q":
			m.saver.Stop()
			return m, tea.Quit
		case "b", "esc":
			m.state = stateWriting
			m.textarea.Focus()
			return m, textarea.Blink
		}
		return m, nil
	}
	return m, nil
}
