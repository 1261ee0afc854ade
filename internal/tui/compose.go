package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/compose"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type composeFocus int

const (
	composeFocusMessage composeFocus = iota
	composeFocusDepartment
	composeFocusImage
	composeFocusRecipients
)

// composeModel is the give-a-shoutout overlay. It is built fresh on
// every open, so the user and department lists are always re-fetched.
type composeModel struct {
	client *api.Client
	log    *logging.Logger

	draft       compose.Draft
	users       []api.User
	departments []string

	message  textarea.Model
	imageURL textinput.Model
	focus    composeFocus

	deptIndex   int // 0 means sender's own department
	recipCursor int

	errText string
	busy    bool
	loaded  bool
}

func newComposeModel(client *api.Client, log *logging.Logger) *composeModel {
	message := textarea.New()
	message.Placeholder = "Who deserves a shoutout, and why?"
	message.CharLimit = 1000
	message.SetWidth(56)
	message.SetHeight(4)
	message.Focus()

	imageURL := textinput.New()
	imageURL.Placeholder = "image URL (optional)"
	imageURL.CharLimit = 300
	imageURL.Width = 56

	return &composeModel{
		client:   client,
		log:      log,
		message:  message,
		imageURL: imageURL,
	}
}

func (m *composeModel) Init() tea.Cmd {
	client := m.client
	log := m.log
	return tea.Batch(textarea.Blink, func() tea.Msg {
		var out composeDataMsg
		if users, err := client.Users(context.Background()); err != nil {
			log.Warn("user list fetch failed", "error", err.Error())
		} else {
			out.users = users
		}
		if departments, err := client.Departments(context.Background()); err != nil {
			log.Warn("department list fetch failed", "error", err.Error())
		} else {
			out.departments = departments
		}
		return out
	})
}

func (m *composeModel) submit() tea.Cmd {
	m.errText = ""
	m.draft.Message = m.message.Value()
	m.draft.ImageURL = strings.TrimSpace(m.imageURL.Value())
	if m.deptIndex > 0 && m.deptIndex <= len(m.departments) {
		m.draft.Department = m.departments[m.deptIndex-1]
	} else {
		m.draft.Department = ""
	}

	if err := m.draft.Validate(); err != nil {
		if errors.Is(err, compose.ErrEmptyMessage) {
			m.errText = "Please write a message."
		} else {
			m.errText = err.Error()
		}
		return nil
	}

	m.busy = true
	client := m.client
	req := m.draft.Request()
	return func() tea.Msg {
		return composeResultMsg{err: client.CreateShoutout(context.Background(), req)}
	}
}

func (m *composeModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case composeDataMsg:
		m.users = msg.users
		m.departments = msg.departments
		m.loaded = true
		return nil

	case composeResultMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = api.ErrorDetail(msg.err, "Failed to post shoutout.")
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *composeModel) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+s":
		if !m.busy {
			return m.submit()
		}
		return nil
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	}

	switch m.focus {
	case composeFocusDepartment:
		switch key.String() {
		case "left", "up":
			if m.deptIndex > 0 {
				m.deptIndex--
			}
			return nil
		case "right", "down":
			if m.deptIndex < len(m.departments) {
				m.deptIndex++
			}
			return nil
		}
		return nil

	case composeFocusRecipients:
		switch key.String() {
		case "up":
			if m.recipCursor > 0 {
				m.recipCursor--
			}
			return nil
		case "down":
			if m.recipCursor < len(m.users)-1 {
				m.recipCursor++
			}
			return nil
		case " ", "enter":
			if m.recipCursor < len(m.users) {
				m.draft.ToggleRecipient(m.users[m.recipCursor].ID)
			}
			return nil
		}
		return nil
	}

	return m.updateFocused(key)
}

func (m *composeModel) cycleFocus(dir int) tea.Cmd {
	m.message.Blur()
	m.imageURL.Blur()

	next := (int(m.focus) + dir + 4) % 4
	m.focus = composeFocus(next)

	switch m.focus {
	case composeFocusMessage:
		m.message.Focus()
		return textarea.Blink
	case composeFocusImage:
		m.imageURL.Focus()
		return textinput.Blink
	}
	return nil
}

func (m *composeModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case composeFocusMessage:
		m.message, cmd = m.message.Update(msg)
	case composeFocusImage:
		m.imageURL, cmd = m.imageURL.Update(msg)
	}
	return cmd
}

func (m *composeModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Give a Shoutout") + "\n\n")

	b.WriteString(m.fieldLabel("Message", composeFocusMessage) + "\n")
	b.WriteString(m.message.View() + "\n\n")

	dept := "my department"
	if m.deptIndex > 0 && m.deptIndex <= len(m.departments) {
		dept = m.departments[m.deptIndex-1]
	}
	b.WriteString(m.fieldLabel("Department", composeFocusDepartment) + " " + styles.Badge.Render(dept) + "\n\n")

	b.WriteString(m.fieldLabel("Image", composeFocusImage) + "\n")
	b.WriteString(m.imageURL.View() + "\n\n")

	b.WriteString(m.fieldLabel("Recipients", composeFocusRecipients) + "\n")
	switch {
	case !m.loaded:
		b.WriteString(styles.Muted.Render("Loading people...") + "\n")
	case len(m.users) == 0:
		b.WriteString(styles.Muted.Render("Nobody to tag yet.") + "\n")
	default:
		for i, u := range m.users {
			mark := "[ ]"
			if m.draft.HasRecipient(u.ID) {
				mark = "[x]"
			}
			line := mark + " " + u.Name
			if u.Department != "" {
				line += " " + styles.Muted.Render("("+u.Department+")")
			}
			if m.focus == composeFocusRecipients && i == m.recipCursor {
				line = styles.Primary.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	if m.errText != "" {
		b.WriteString("\n" + styles.ErrorMsg.Render(m.errText) + "\n")
	}
	if m.busy {
		b.WriteString("\n" + styles.Muted.Render("Posting...") + "\n")
	}

	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("tab")+" next field · "+
			styles.HelpKey.Render("space")+" tag · "+
			styles.HelpKey.Render("ctrl+s")+" post · "+
			styles.HelpKey.Render("esc")+" cancel"))

	return styles.Overlay.Render(b.String())
}

func (m *composeModel) fieldLabel(name string, focus composeFocus) string {
	if m.focus == focus {
		return styles.Primary.Render(name)
	}
	return styles.Subtitle.Render(name)
}
