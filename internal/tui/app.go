// Package tui implements the BragBoard terminal interface: a login and
// signup flow, the shoutout feed with reactions and comments, a compose
// overlay, and the admin console. Pages mirror the routes of the web
// client; a root App model routes between them.
package tui

import (
	"time"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/config"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// page identifies a top-level view.
type page int

const (
	pageLogin page = iota
	pageSignup
	pageDashboard
	pageAdmin
)

// navigateMsg switches the active page.
type navigateMsg struct {
	to page
}

// navigate returns a command that switches pages.
func navigate(to page) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

// App is the root model. It owns the shared dependencies and delegates to
// the active page's model.
type App struct {
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	log    *logging.Logger

	page   page
	width  int
	height int

	login     *loginModel
	signup    *signupModel
	dashboard *dashboardModel
	admin     *adminModel
}

// NewApp builds the root model. A stored, unexpired session skips straight
// to the dashboard; otherwise the login page is shown.
func NewApp(cfg *config.Config, client *api.Client, store *session.Store, log *logging.Logger) *App {
	app := &App{
		cfg:    cfg,
		client: client,
		store:  store,
		log:    log,
		page:   pageLogin,
	}
	if store.Authenticated() && !store.Expired(time.Now()) {
		app.page = pageDashboard
	}
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.enter(a.page)
}

// enter constructs the model for a page and returns its init command.
// Page models are rebuilt on every navigation: view state is ephemeral and
// re-fetched on mount, like the web client's components.
func (a *App) enter(to page) tea.Cmd {
	a.page = to
	switch to {
	case pageLogin:
		a.login = newLoginModel(a.client, a.store, a.log.WithPage("login"))
		return a.login.Init()
	case pageSignup:
		a.signup = newSignupModel(a.client, a.log.WithPage("signup"))
		return a.signup.Init()
	case pageDashboard:
		a.dashboard = newDashboardModel(a.cfg, a.client, a.store, a.log.WithPage("dashboard"))
		a.dashboard.setSize(a.width, a.height)
		return a.dashboard.Init()
	case pageAdmin:
		a.admin = newAdminModel(a.client, a.log.WithPage("admin"))
		a.admin.setSize(a.width, a.height)
		return a.admin.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashboard != nil {
			a.dashboard.setSize(msg.Width, msg.Height)
		}
		if a.admin != nil {
			a.admin.setSize(msg.Width, msg.Height)
		}
		return a, nil

	case navigateMsg:
		return a, a.enter(msg.to)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.page {
	case pageLogin:
		cmd = a.login.Update(msg)
	case pageSignup:
		cmd = a.signup.Update(msg)
	case pageDashboard:
		cmd = a.dashboard.Update(msg)
	case pageAdmin:
		cmd = a.admin.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.page {
	case pageLogin:
		return a.login.View()
	case pageSignup:
		return a.signup.View()
	case pageDashboard:
		return a.dashboard.View()
	case pageAdmin:
		return a.admin.View()
	}
	return ""
}
