package tui

import (
	"context"
	"regexp"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/session"
	"github.com/Sruthika-k/Bragboard/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// emailPattern is a light sanity check, not RFC validation; the server has
// the final word.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validEmail reports whether the value looks like an email address.
func validEmail(value string) bool {
	return emailPattern.MatchString(value)
}

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// loginModel is the credential form.
type loginModel struct {
	client *api.Client
	store  *session.Store
	log    *logging.Logger

	email    textinput.Model
	password textinput.Model
	focus    int

	emailErr    string
	passwordErr string
	feedback    string
	feedbackErr bool
	busy        bool
}

func newLoginModel(client *api.Client, store *session.Store, log *logging.Logger) *loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 150
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &loginModel{
		client:   client,
		store:    store,
		log:      log,
		email:    email,
		password: password,
	}
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// submit validates locally, then exchanges credentials.
func (m *loginModel) submit() tea.Cmd {
	m.feedback = ""
	m.emailErr = ""
	m.passwordErr = ""

	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	hasError := false
	if email == "" {
		m.emailErr = "Please enter your email."
		hasError = true
	} else if !validEmail(email) {
		m.emailErr = "Please enter a valid email address."
		hasError = true
	}
	if password == "" {
		m.passwordErr = "Please enter your password."
		hasError = true
	}
	if hasError {
		return nil
	}

	m.busy = true
	client := m.client
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), email, password)
		return loginResultMsg{resp: resp, err: err}
	}
}

func (m *loginModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			m.feedback = api.ErrorDetail(msg.err, "Login failed. Please check credentials or server connection.")
			m.feedbackErr = true
			m.password.SetValue("")
			m.log.Info("login failed")
			return nil
		}
		if err := m.store.Save(msg.resp.AccessToken, msg.resp.TokenType); err != nil {
			m.feedback = "Could not persist the session: " + err.Error()
			m.feedbackErr = true
			return nil
		}
		m.log.Info("login succeeded")
		return navigate(pageDashboard)

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		case "tab", "down":
			m.setFocus((m.focus + 1) % loginFieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + loginFieldCount - 1) % loginFieldCount)
			return nil
		case "ctrl+s":
			return navigate(pageSignup)
		case "esc":
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case loginFieldEmail:
		m.email, cmd = m.email.Update(msg)
		if m.emailErr != "" {
			m.emailErr = ""
		}
	case loginFieldPassword:
		m.password, cmd = m.password.Update(msg)
		if m.passwordErr != "" {
			m.passwordErr = ""
		}
	}
	return cmd
}

func (m *loginModel) setFocus(field int) {
	m.focus = field
	m.email.Blur()
	m.password.Blur()
	switch field {
	case loginFieldEmail:
		m.email.Focus()
	case loginFieldPassword:
		m.password.Focus()
	}
}

func (m *loginModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("BragBoard") + "\n")
	b.WriteString(styles.Subtitle.Render("Sign in to appreciate your teammates") + "\n\n")

	b.WriteString("Email\n" + m.email.View() + "\n")
	if m.emailErr != "" {
		b.WriteString(styles.FieldError.Render(m.emailErr) + "\n")
	}
	b.WriteString("\nPassword\n" + m.password.View() + "\n")
	if m.passwordErr != "" {
		b.WriteString(styles.FieldError.Render(m.passwordErr) + "\n")
	}

	if m.busy {
		b.WriteString("\n" + styles.Muted.Render("Signing in...") + "\n")
	} else if m.feedback != "" {
		style := styles.SuccessMsg
		if m.feedbackErr {
			style = styles.ErrorMsg
		}
		b.WriteString("\n" + style.Render(m.feedback) + "\n")
	}

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("enter") + " sign in · " +
			styles.HelpKey.Render("ctrl+s") + " sign up · " +
			styles.HelpKey.Render("esc") + " quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
