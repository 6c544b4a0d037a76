package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llmgate/promptcheck/chat"
	"github.com/llmgate/promptcheck/models"
)

type focus int

const (
	focusInput focus = iota
	focusFeed
)

const inputHeight = 4

// submitResultMsg arrives when the in-flight submission resolves.
type submitResultMsg struct {
	err error
}

type Model struct {
	session  *chat.Session
	ctx      context.Context
	input    textarea.Model
	feed     viewport.Model
	focus    focus
	cursor   int
	lastSeq  uint64
	width    int
	height   int
	status   string
	copyText func(string) error
}

func NewModel(ctx context.Context, session *chat.Session) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.Focus()

	m := Model{
		session:  session,
		ctx:      ctx,
		input:    ta,
		feed:     viewport.New(120, 20),
		width:    120,
		height:   30,
		copyText: clipboard.WriteAll,
	}
	m.resize()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case submitResultMsg:
		if msg.err == nil {
			m.input.Reset()
			m.status = ""
		} else {
			m.status = describeError(msg.err)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "alt+enter", "ctrl+s":
			return m.submit()
		case "tab":
			m.toggleFocus()
			return m, nil
		}

		if m.focus == focusFeed {
			return m.updateFeed(msg)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submit starts a submission unless one is already running; the checker call
// happens in a tea.Cmd so the UI keeps rendering.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := m.input.Value()
	if err := m.session.Begin(input); err != nil {
		if errors.Is(err, chat.ErrSubmitInProgress) {
			m.status = "Still checking the previous prompt..."
		}
		return m, nil
	}

	m.status = ""
	m.refresh()

	session, ctx := m.session, m.ctx
	return m, func() tea.Msg {
		return submitResultMsg{err: session.Complete(ctx)}
	}
}

func (m Model) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.session.Len()

	switch msg.String() {
	case "esc", "q":
		m.toggleFocus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < count-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(0, count-1)
	case "pgup":
		m.feed.HalfViewUp()
		return m, nil
	case "pgdown":
		m.feed.HalfViewDown()
		return m, nil
	case "d", "delete":
		m.session.Delete(m.cursor)
	case "x":
		m.session.Clear()
	case "c":
		m.copySelected(func(message models.Message) string { return message.Content })
	case "e":
		m.copySelected(func(message models.Message) string { return message.Explain })
	}

	m.refresh()
	return m, nil
}

func (m *Model) copySelected(field func(models.Message) string) {
	messages := m.session.Messages()
	if m.cursor < 0 || m.cursor >= len(messages) {
		return
	}
	if err := m.copyText(field(messages[m.cursor])); err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = "Copied to clipboard"
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusFeed
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) resize() {
	m.input.SetWidth(max(10, m.width-2))
	m.feed.Width = m.width
	m.feed.Height = max(3, m.height-inputHeight-4)
}

// refresh re-renders the feed and scrolls to the bottom only when the session
// recorded an append since the last refresh.
func (m *Model) refresh() {
	count := m.session.Len()
	if m.cursor >= count {
		m.cursor = max(0, count-1)
	}

	m.feed.SetContent(m.renderMessages())

	event, ok := m.session.LastEvent()
	if !ok || event.Seq == m.lastSeq {
		return
	}
	m.lastSeq = event.Seq
	if event.Scroll {
		m.cursor = max(0, count-1)
		m.feed.SetContent(m.renderMessages())
		m.feed.GotoBottom()
	}
}

func (m Model) renderMessages() string {
	messages := m.session.Messages()
	if len(messages) == 0 {
		return dimStyle.Render("  No messages yet. Type a prompt and press alt+enter (or ctrl+s) to check it.")
	}

	width := max(20, m.width*4/5)
	var b strings.Builder
	for i, message := range messages {
		var block strings.Builder
		if message.IsUser() {
			block.WriteString(userRoleStyle.Render(" you "))
		} else {
			block.WriteString(assistantRoleStyle.Render(fmt.Sprintf(" option %d ", message.Option)))
		}
		block.WriteString("\n")
		if message.Content != "" {
			block.WriteString(lipgloss.NewStyle().Width(width).Render(message.Content))
			block.WriteString("\n")
		}
		block.WriteString(explainStyle.Width(width).Render(message.Explain))

		style := normalStyle
		if m.focus == focusFeed && i == m.cursor {
			style = selectedStyle
		}
		rendered := style.Render(block.String())
		if !message.IsUser() {
			rendered = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, rendered)
		}
		b.WriteString(rendered)
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Prompt Check"))
	b.WriteString("\n")
	b.WriteString(m.feed.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	left := "Check"
	if m.session.Submitting() {
		left = "Checking..."
	}
	if m.status != "" {
		left += "  " + errorStyle.Render(m.status)
	}
	b.WriteString(statusBarStyle.Width(m.width).Render(left))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))

	return b.String()
}

func (m Model) help() string {
	if m.focus == focusFeed {
		return "↑/↓ select · d delete · x clear all · c copy prompt · e copy explanation · tab/esc input · ctrl+c quit"
	}
	return "alt+enter/ctrl+s check · tab messages · ctrl+c quit"
}

func describeError(err error) string {
	var formatErr *models.FormatError
	if errors.As(err, &formatErr) {
		return formatErr.Reason
	}
	return err.Error()
}
