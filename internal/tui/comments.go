package tui

import (
	"context"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/thread"
	"github.com/Sruthika-k/Bragboard/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commentsModel is the per-shoutout comment panel: the fetched thread, a
// write box with @mention autocomplete, and an inline report prompt.
type commentsModel struct {
	thread *thread.Thread
	log    *logging.Logger

	input       textinput.Model
	suggestions []api.User
	sugIndex    int

	cursor    int // selected comment, for reporting
	reporting bool
	reason    textinput.Model

	loading bool
	posting bool
}

func newCommentsModel(client *api.Client, shoutoutID, mentionLimit int, log *logging.Logger) *commentsModel {
	input := textinput.New()
	input.Placeholder = "write a comment (@ to mention)"
	input.CharLimit = 500
	input.Width = 56
	input.Focus()

	reason := textinput.New()
	reason.Placeholder = "report reason (empty cancels)"
	reason.CharLimit = 200
	reason.Width = 48

	return &commentsModel{
		thread:  thread.New(client, shoutoutID, mentionLimit, log),
		log:     log,
		input:   input,
		reason:  reason,
		loading: true,
	}
}

func (m *commentsModel) Init() tea.Cmd {
	t := m.thread
	return func() tea.Msg {
		t.LoadDirectory(context.Background())
		t.Load(context.Background())
		return commentsLoadedMsg{shoutoutID: t.ShoutoutID()}
	}
}

func (m *commentsModel) postCmd() tea.Cmd {
	t := m.thread
	content := m.input.Value()
	return func() tea.Msg {
		accepted := t.Post(context.Background(), content)
		return commentPostedMsg{shoutoutID: t.ShoutoutID(), accepted: accepted}
	}
}

func (m *commentsModel) reportCmd(commentID int, reason string) tea.Cmd {
	t := m.thread
	return func() tea.Msg {
		t.Report(context.Background(), commentID, reason)
		return nil
	}
}

// wantsKey reports whether the panel consumes the key. Unclaimed keys
// fall through to the page underneath.
func (m *commentsModel) wantsKey(key tea.KeyMsg) bool {
	if m.reporting {
		return true
	}
	switch key.String() {
	case "up", "down":
		return len(m.suggestions) > 0
	case "ctrl+up", "ctrl+down", "ctrl+r", "enter", "tab":
		return true
	case "esc", "q":
		return false
	}
	switch key.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyLeft, tea.KeyRight:
		return true
	}
	return false
}

func (m *commentsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commentsLoadedMsg:
		m.loading = false
		return nil

	case commentPostedMsg:
		m.posting = false
		if msg.accepted {
			// The thread already re-fetched; just clear the write box.
			m.input.SetValue("")
			m.suggestions = nil
		}
		return nil

	case tea.KeyMsg:
		if m.reporting {
			return m.updateReason(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *commentsModel) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up":
		if len(m.suggestions) > 0 && m.sugIndex > 0 {
			m.sugIndex--
		}
		return nil
	case "down":
		if m.sugIndex < len(m.suggestions)-1 {
			m.sugIndex++
		}
		return nil
	case "ctrl+up":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case "ctrl+down":
		if m.cursor < len(m.thread.Items())-1 {
			m.cursor++
		}
		return nil
	case "ctrl+r":
		if m.cursor < len(m.thread.Items()) {
			m.reporting = true
			m.reason.SetValue("")
			m.reason.Focus()
			return textinput.Blink
		}
		return nil
	case "tab", "enter":
		if len(m.suggestions) > 0 {
			picked := m.suggestions[m.sugIndex]
			m.input.SetValue(thread.InsertMention(m.input.Value(), picked.Name))
			m.input.CursorEnd()
			m.suggestions = nil
			m.sugIndex = 0
			return nil
		}
		if key.String() == "enter" && !m.posting {
			m.posting = true
			return m.postCmd()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	m.suggestions = m.thread.Suggestions(m.input.Value())
	if m.sugIndex >= len(m.suggestions) {
		m.sugIndex = 0
	}
	return cmd
}

func (m *commentsModel) updateReason(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.reporting = false
		return nil
	case "enter":
		m.reporting = false
		items := m.thread.Items()
		if m.cursor >= len(items) {
			return nil
		}
		reason := strings.TrimSpace(m.reason.Value())
		if reason == "" {
			return nil
		}
		return m.reportCmd(items[m.cursor].ID, reason)
	}

	var cmd tea.Cmd
	m.reason, cmd = m.reason.Update(key)
	return cmd
}

func (m *commentsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(styles.Muted.Render("Loading comments...") + "\n")
	case m.thread.Err() != nil:
		b.WriteString(styles.ErrorMsg.Render("Failed to load comments") + "\n")
	case len(m.thread.Items()) == 0:
		b.WriteString(styles.Muted.Render("No comments yet.") + "\n")
	default:
		for i, c := range m.thread.Items() {
			author := "Unknown User"
			if c.User != nil {
				author = c.User.Name
			}
			line := styles.Text.Render(author) + ": " + c.Content
			if !c.CreatedAt.IsZero() {
				line += "  " + styles.Muted.Render(c.CreatedAt.Local().Format("Jan 2 15:04"))
			}
			if i == m.cursor {
				line = styles.Primary.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	if m.reporting {
		b.WriteString("Report reason: " + m.reason.View() + "\n")
	} else {
		b.WriteString(m.input.View() + "\n")
		for i, u := range m.suggestions {
			style := styles.Suggestion
			if i == m.sugIndex {
				style = styles.SuggestionActive
			}
			b.WriteString(style.Render("@"+u.Name) + "\n")
		}
	}

	return styles.Overlay.Render(strings.TrimRight(b.String(), "\n"))
}
