package tui

import (
	"context"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	signupFieldName = iota
	signupFieldEmail
	signupFieldPassword
	signupFieldDepartment
	signupFieldCount
)

// signupModel is the account creation form. Department options come from
// the server when reachable; otherwise the field accepts free text.
type signupModel struct {
	client *api.Client
	log    *logging.Logger

	inputs      [signupFieldCount]textinput.Model
	errs        [signupFieldCount]string
	departments []string
	deptIndex   int // -1 when typing free text
	focus       int

	feedback    string
	feedbackErr bool
	busy        bool
}

func newSignupModel(client *api.Client, log *logging.Logger) *signupModel {
	m := &signupModel{client: client, log: log, deptIndex: -1}

	labels := [signupFieldCount]string{"Full name", "you@example.com", "password", "department"}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.CharLimit = 150
		m.inputs[i] = input
	}
	m.inputs[signupFieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[signupFieldPassword].EchoCharacter = '•'
	m.inputs[signupFieldName].Focus()

	return m
}

func (m *signupModel) Init() tea.Cmd {
	client := m.client
	return tea.Batch(textinput.Blink, func() tea.Msg {
		// Best-effort: signup works without the list, mirroring the form's
		// degradation when the server list is unreachable.
		departments, err := client.Departments(context.Background())
		if err != nil {
			return signupDataMsg{}
		}
		return signupDataMsg{departments: departments}
	})
}

func (m *signupModel) submit() tea.Cmd {
	m.feedback = ""
	for i := range m.errs {
		m.errs[i] = ""
	}

	name := strings.TrimSpace(m.inputs[signupFieldName].Value())
	email := strings.TrimSpace(m.inputs[signupFieldEmail].Value())
	password := m.inputs[signupFieldPassword].Value()
	department := strings.TrimSpace(m.inputs[signupFieldDepartment].Value())

	hasError := false
	if name == "" {
		m.errs[signupFieldName] = "Please enter your name."
		hasError = true
	}
	if email == "" {
		m.errs[signupFieldEmail] = "Please enter your email."
		hasError = true
	} else if !validEmail(email) {
		m.errs[signupFieldEmail] = "Please enter a valid email address."
		hasError = true
	}
	if password == "" {
		m.errs[signupFieldPassword] = "Please enter a password."
		hasError = true
	}
	if department == "" {
		m.errs[signupFieldDepartment] = "Please select a department."
		hasError = true
	}
	if hasError {
		return nil
	}

	m.busy = true
	client := m.client
	return func() tea.Msg {
		resp, err := client.Register(context.Background(), api.RegisterRequest{
			Name:       name,
			Email:      email,
			Password:   password,
			Department: department,
			Role:       api.RoleEmployee,
		})
		return registerResultMsg{resp: resp, err: err}
	}
}

// cycleDepartment steps the department field through the server's list.
func (m *signupModel) cycleDepartment(delta int) {
	if len(m.departments) == 0 {
		return
	}
	m.deptIndex = (m.deptIndex + delta + len(m.departments)) % len(m.departments)
	m.inputs[signupFieldDepartment].SetValue(m.departments[m.deptIndex])
}

func (m *signupModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case signupDataMsg:
		m.departments = msg.departments
		return nil

	case registerResultMsg:
		m.busy = false
		if msg.err != nil {
			m.feedback = api.ErrorDetail(msg.err, "Sign up failed. Please try again.")
			m.feedbackErr = true
			return nil
		}
		m.log.Info("account created", "user_id", msg.resp.UserID)
		m.feedback = msg.resp.Message
		m.feedbackErr = false
		return navigate(pageLogin)

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		case "tab", "down":
			m.setFocus((m.focus + 1) % signupFieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + signupFieldCount - 1) % signupFieldCount)
			return nil
		case "esc":
			return navigate(pageLogin)
		case "left":
			if m.focus == signupFieldDepartment {
				m.cycleDepartment(-1)
				return nil
			}
		case "right":
			if m.focus == signupFieldDepartment {
				m.cycleDepartment(1)
				return nil
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.errs[m.focus] != "" {
		m.errs[m.focus] = ""
	}
	return cmd
}

func (m *signupModel) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[field].Focus()
}

func (m *signupModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Create your BragBoard account") + "\n\n")

	labels := [signupFieldCount]string{"Name", "Email", "Password", "Department"}
	for i, input := range m.inputs {
		b.WriteString(labels[i] + "\n" + input.View() + "\n")
		if i == signupFieldDepartment && len(m.departments) > 0 {
			b.WriteString(styles.Muted.Render("←/→ to pick: "+strings.Join(m.departments, ", ")) + "\n")
		}
		if m.errs[i] != "" {
			b.WriteString(styles.FieldError.Render(m.errs[i]) + "\n")
		}
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString(styles.Muted.Render("Creating account...") + "\n")
	} else if m.feedback != "" {
		style := styles.SuccessMsg
		if m.feedbackErr {
			style = styles.ErrorMsg
		}
		b.WriteString(style.Render(m.feedback) + "\n")
	}

	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("enter") + " sign up · " +
			styles.HelpKey.Render("esc") + " back to login"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
