package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/admin"
	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/tui/styles"
	"github.com/Sruthika-k/Bragboard/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// adminModel is the moderation page. Entry is gated on the server-side
// role: anyone else is bounced back to the dashboard.
type adminModel struct {
	client  *api.Client
	log     *logging.Logger
	console *admin.Console

	tab     admin.Tab
	cursor  int
	notice  string
	gated   bool
	loading bool
	spin    spinner.Model

	width  int
	height int
}

func newAdminModel(client *api.Client, log *logging.Logger) *adminModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Primary

	return &adminModel{
		client:  client,
		log:     log,
		console: admin.NewConsole(client, log),
		tab:     admin.TabOverview,
		loading: true,
		spin:    spin,
	}
}

func (m *adminModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *adminModel) Init() tea.Cmd {
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		me, err := client.Me(context.Background())
		return adminGateMsg{me: me, err: err}
	})
}

func (m *adminModel) loadTab(tab admin.Tab) tea.Cmd {
	m.loading = true
	m.tab = tab
	m.cursor = 0
	m.notice = ""
	console := m.console
	return func() tea.Msg {
		console.LoadTab(context.Background(), tab)
		return adminTabLoadedMsg{tab: tab}
	}
}

func (m *adminModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return cmd
		}
		return nil

	case adminGateMsg:
		if msg.err != nil || msg.me == nil || msg.me.Role != api.RoleAdmin {
			return navigate(pageDashboard)
		}
		m.gated = true
		return m.loadTab(admin.TabOverview)

	case adminTabLoadedMsg:
		if msg.tab == m.tab {
			m.loading = false
		}
		return nil

	case adminNoticeMsg:
		m.notice = msg.text
		if m.cursor >= m.rowCount() {
			m.cursor = 0
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *adminModel) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "q":
		return tea.Quit
	case "esc", "b":
		return navigate(pageDashboard)
	case "R":
		return m.loadTab(m.tab)
	case "tab", "right":
		return m.loadTab(nextTab(m.tab, 1))
	case "shift+tab", "left":
		return m.loadTab(nextTab(m.tab, -1))
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return nil
	case "d":
		return m.deleteSelected()
	case "x":
		return m.dismissSelected()
	}
	return nil
}

func nextTab(tab admin.Tab, dir int) admin.Tab {
	tabs := admin.Tabs()
	for i, t := range tabs {
		if t == tab {
			return tabs[(i+dir+len(tabs))%len(tabs)]
		}
	}
	return tabs[0]
}

func (m *adminModel) rowCount() int {
	switch m.tab {
	case admin.TabUsers:
		return len(m.console.Users())
	case admin.TabShoutouts:
		return len(m.console.Shoutouts())
	case admin.TabReports:
		return len(m.console.Reports())
	}
	return 0
}

func (m *adminModel) deleteSelected() tea.Cmd {
	if m.tab != admin.TabShoutouts {
		return nil
	}
	items := m.console.Shoutouts()
	if m.cursor >= len(items) {
		return nil
	}
	id := items[m.cursor].ID
	console := m.console
	return func() tea.Msg {
		console.DeleteShoutout(context.Background(), id)
		for _, s := range console.Shoutouts() {
			if s.ID == id {
				return adminNoticeMsg{text: "Delete failed"}
			}
		}
		return adminNoticeMsg{text: fmt.Sprintf("Shoutout #%d deleted", id)}
	}
}

func (m *adminModel) dismissSelected() tea.Cmd {
	if m.tab != admin.TabReports {
		return nil
	}
	items := m.console.Reports()
	if m.cursor >= len(items) {
		return nil
	}
	id := items[m.cursor].ID
	console := m.console
	return func() tea.Msg {
		text, ok := console.DismissReport(context.Background(), id)
		if !ok {
			return adminNoticeMsg{text: "Dismiss failed"}
		}
		return adminNoticeMsg{text: text}
	}
}

func (m *adminModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Navbar.Render(" BragBoard Admin ") + "\n\n")
	b.WriteString(m.viewTabs() + "\n\n")

	switch {
	case !m.gated || m.loading:
		b.WriteString(m.spin.View() + " Loading...\n")
	case m.console.Err() != nil:
		b.WriteString(styles.ErrorMsg.Render("Failed to load admin data") + "\n")
	default:
		b.WriteString(m.viewTab())
	}

	if m.notice != "" {
		b.WriteString("\n" + styles.SuccessMsg.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("tab")+" switch · "+
			styles.HelpKey.Render("↑/↓")+" select · "+
			styles.HelpKey.Render("d")+" delete shoutout · "+
			styles.HelpKey.Render("x")+" dismiss report · "+
			styles.HelpKey.Render("esc")+" back"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *adminModel) viewTabs() string {
	var parts []string
	for _, t := range admin.Tabs() {
		style := styles.TabInactive
		if t == m.tab {
			style = styles.TabActive
		}
		parts = append(parts, style.Render(string(t)))
	}
	return strings.Join(parts, " ")
}

func (m *adminModel) viewTab() string {
	switch m.tab {
	case admin.TabOverview:
		return m.viewOverview()
	case admin.TabUsers:
		return m.viewUsers()
	case admin.TabShoutouts:
		return m.viewShoutouts()
	case admin.TabReports:
		return m.viewReports()
	case admin.TabAnalytics:
		return m.viewAnalytics()
	}
	return ""
}

func (m *adminModel) viewOverview() string {
	a := m.console.Analytics()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Users: %d\n", len(m.console.Users())))
	b.WriteString(fmt.Sprintf("Top contributors tracked: %d\n", len(a.TopContributors)))
	b.WriteString(fmt.Sprintf("Active departments: %d\n", len(a.ActiveDepartments)))
	return b.String()
}

func (m *adminModel) viewUsers() string {
	users := m.console.Users()
	if len(users) == 0 {
		return styles.Muted.Render("No users.") + "\n"
	}
	var b strings.Builder
	for i, u := range users {
		line := fmt.Sprintf("#%-4d %-24s %-28s %-16s %s",
			u.ID, util.TruncateString(u.Name, 24), util.TruncateString(u.Email, 28), u.Department, u.Role)
		b.WriteString(m.row(line, i) + "\n")
	}
	return b.String()
}

func (m *adminModel) viewShoutouts() string {
	items := m.console.Shoutouts()
	if len(items) == 0 {
		return styles.Muted.Render("No shoutouts.") + "\n"
	}
	var b strings.Builder
	for i, s := range items {
		line := fmt.Sprintf("#%-4d %-20s %s",
			s.ID, m.console.UserName(s.SenderID), util.TruncateString(s.Message, 48))
		b.WriteString(m.row(line, i) + "\n")
	}
	return b.String()
}

func (m *adminModel) viewReports() string {
	reports := m.console.Reports()
	if len(reports) == 0 {
		return styles.Muted.Render("No open reports.") + "\n"
	}
	var b strings.Builder
	for i, r := range reports {
		target := "?"
		if r.ShoutoutID != nil {
			target = fmt.Sprintf("shoutout #%d", *r.ShoutoutID)
		} else if r.CommentID != nil {
			target = fmt.Sprintf("comment #%d", *r.CommentID)
		}
		line := fmt.Sprintf("#%-4d %-16s by %-20s %s",
			r.ID, target, m.console.UserName(r.ReportedBy), util.TruncateString(r.Reason, 40))
		b.WriteString(m.row(line, i) + "\n")
	}
	return b.String()
}

func (m *adminModel) viewAnalytics() string {
	a := m.console.Analytics()
	var b strings.Builder

	b.WriteString(styles.Subtitle.Render("Top contributors") + "\n")
	maxUser := admin.MaxUserCount(a.TopContributors)
	for _, c := range a.TopContributors {
		b.WriteString(bar(m.console.UserName(c.UserID), c.Count, maxUser) + "\n")
	}

	b.WriteString("\n" + styles.Subtitle.Render("Most tagged") + "\n")
	maxTagged := admin.MaxUserCount(a.MostTagged)
	for _, c := range a.MostTagged {
		b.WriteString(bar(m.console.UserName(c.UserID), c.Count, maxTagged) + "\n")
	}

	b.WriteString("\n" + styles.Subtitle.Render("Active departments") + "\n")
	maxDept := admin.MaxDepartmentCount(a.ActiveDepartments)
	for _, c := range a.ActiveDepartments {
		b.WriteString(bar(c.Department, c.Count, maxDept) + "\n")
	}

	return b.String()
}

const analyticsBarWidth = 30

func bar(label string, count, max int) string {
	filled := count * analyticsBarWidth / max
	if filled > analyticsBarWidth {
		filled = analyticsBarWidth
	}
	return fmt.Sprintf("%-22s %s %d",
		util.TruncateString(label, 22),
		styles.Bar.Render(strings.Repeat("█", filled)),
		count)
}

func (m *adminModel) row(line string, i int) string {
	if i == m.cursor {
		return styles.Primary.Render("> " + line)
	}
	return "  " + line
}
