package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/config"
	"github.com/Sruthika-k/Bragboard/internal/feed"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/session"
	"github.com/Sruthika-k/Bragboard/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashboardModel is the main page: navbar, feed, filters, the compose
// overlay, and the expanded comment panel.
type dashboardModel struct {
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	log    *logging.Logger

	sync        *feed.Synchronizer
	departments []string
	scopeIndex  int

	cursor  int
	loading bool
	spin    spinner.Model

	filter       feed.Filter
	filterOpen   bool
	filterFocus  int // 0 = sender, 1 = date
	filterSender textinput.Model
	filterDate   textinput.Model

	reportOpen  bool
	reportInput textinput.Model

	comments *commentsModel
	compose  *composeModel
	profile  *api.User

	// me is the identity fallback for the navbar and admin gate when the
	// synchronizer's own fetch never committed (failed or superseded feed
	// load).
	me *api.User

	width  int
	height int
}

func newDashboardModel(cfg *config.Config, client *api.Client, store *session.Store, log *logging.Logger) *dashboardModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Primary

	senderInput := textinput.New()
	senderInput.Placeholder = "sender id"
	senderInput.CharLimit = 10
	senderInput.Width = 12

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.CharLimit = 10
	dateInput.Width = 12

	reportInput := textinput.New()
	reportInput.Placeholder = "report reason (empty cancels)"
	reportInput.CharLimit = 200
	reportInput.Width = 48

	return &dashboardModel{
		cfg:          cfg,
		client:       client,
		store:        store,
		log:          log,
		sync:         feed.NewSynchronizer(client, log),
		spin:         spin,
		filterSender: senderInput,
		filterDate:   dateInput,
		reportInput:  reportInput,
	}
}

func (m *dashboardModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

// scopes returns the selectable department scopes in navbar order.
func (m *dashboardModel) scopes() []string {
	return append([]string{feed.ScopeAll, feed.ScopeMine}, m.departments...)
}

func (m *dashboardModel) scope() string {
	return m.scopes()[m.scopeIndex]
}

func (m *dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadNavbar(), m.loadFeed())
}

// loadNavbar fetches the department list and current-user identity.
// Best-effort on both counts: the navbar still renders without them.
func (m *dashboardModel) loadNavbar() tea.Cmd {
	client := m.client
	log := m.log
	return func() tea.Msg {
		var out navbarLoadedMsg
		departments, err := client.Departments(context.Background())
		if err != nil {
			log.Warn("department list fetch failed", "error", err.Error())
		} else {
			out.departments = departments
		}
		// The synchronizer also fetches identity; this one only feeds the
		// navbar when the feed load lost the race or failed outright.
		if me, err := client.Me(context.Background()); err == nil {
			out.me = me
		}
		return out
	}
}

// loadFeed runs a synchronizer load for the current scope. The
// synchronizer's generation guard decides whether the result commits.
func (m *dashboardModel) loadFeed() tea.Cmd {
	m.loading = true
	scope := m.scope()
	sync := m.sync
	return func() tea.Msg {
		committed := sync.Load(context.Background(), scope)
		return feedLoadedMsg{committed: committed}
	}
}

func (m *dashboardModel) toggleReaction(typ api.ReactionType) tea.Cmd {
	items := m.visibleItems()
	if m.cursor >= len(items) {
		return nil
	}
	id := items[m.cursor].ID
	sync := m.sync
	return func() tea.Msg {
		sync.Toggle(context.Background(), id, typ)
		return reactionToggledMsg{}
	}
}

// reportShoutout fires a report and ignores the outcome, logging failures
// only.
func (m *dashboardModel) reportShoutout(id int, reason string) tea.Cmd {
	client := m.client
	log := m.log
	return func() tea.Msg {
		if err := client.ReportShoutout(context.Background(), id, reason); err != nil {
			log.Debug("best-effort mutation failed", "op", "report shoutout", "error", err.Error())
		}
		return nil
	}
}

// currentUser resolves the signed-in identity, preferring the
// synchronizer's committed snapshot over the navbar's standalone fetch.
func (m *dashboardModel) currentUser() *api.User {
	if me := m.sync.Me(); me != nil {
		return me
	}
	return m.me
}

// lookupProfile resolves a user card from the cached directory, falling
// back to the signed-in identity when the id is our own.
func (m *dashboardModel) lookupProfile(id int) *api.User {
	if u, ok := m.sync.Lookup(id); ok {
		return &u
	}
	if me := m.currentUser(); me != nil && me.ID == id {
		return me
	}
	return nil
}

// visibleItems applies the in-memory sender/date filter to the fetched
// feed. This is display-time narrowing: no network is involved.
func (m *dashboardModel) visibleItems() []api.Shoutout {
	return feed.Apply(m.sync.Items(), m.filter)
}

// applyFilter parses the filter inputs. Bad sender ids fall back to "any
// sender" rather than erroring; this is a narrowing aid, not a form.
func (m *dashboardModel) applyFilter() {
	m.filter = feed.Filter{}
	if v := strings.TrimSpace(m.filterSender.Value()); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			m.filter.SenderID = id
		}
	}
	if v := strings.TrimSpace(m.filterDate.Value()); v != "" {
		m.filter.Date = v
	}
	if m.cursor >= len(m.visibleItems()) {
		m.cursor = 0
	}
}

func (m *dashboardModel) Update(msg tea.Msg) tea.Cmd {
	// Overlays capture input while open.
	if m.compose != nil {
		return m.updateCompose(msg)
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return cmd
		}
		return nil

	case navbarLoadedMsg:
		if msg.departments != nil {
			m.departments = msg.departments
			if m.scopeIndex >= len(m.scopes()) {
				m.scopeIndex = 0
			}
		}
		if msg.me != nil {
			m.me = msg.me
		}
		return nil

	case feedLoadedMsg:
		m.loading = false
		// A superseded load left the snapshot alone, so the cursor still
		// points at the right row.
		if msg.committed && m.cursor >= len(m.visibleItems()) {
			m.cursor = 0
		}
		return nil

	case reactionToggledMsg:
		return nil

	case composeResultMsg:
		// Reached only when the overlay closed itself on success.
		return nil
	}

	if m.comments != nil {
		if cmd, handled := m.updateComments(msg); handled {
			return cmd
		}
	}

	if m.reportOpen {
		return m.updateReport(msg)
	}
	if m.filterOpen {
		return m.updateFilter(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return nil
}

func (m *dashboardModel) handleKey(key tea.KeyMsg) tea.Cmd {
	items := m.visibleItems()

	switch key.String() {
	case "esc":
		m.comments = nil
		m.profile = nil
		return nil
	case "p":
		if m.cursor < len(items) {
			m.profile = m.lookupProfile(items[m.cursor].SenderID)
		}
		return nil
	case "q":
		return tea.Quit
	case "g":
		// Logout clears the persisted session and returns to login.
		if err := m.store.Clear(); err != nil {
			m.log.Warn("session clear failed", "error", err.Error())
		}
		return navigate(pageLogin)
	case "a":
		if me := m.currentUser(); me != nil && me.Role == api.RoleAdmin {
			return navigate(pageAdmin)
		}
		return nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.comments = nil
		return nil
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		m.comments = nil
		return nil
	case "d":
		m.scopeIndex = (m.scopeIndex + 1) % len(m.scopes())
		m.comments = nil
		return m.loadFeed()
	case "D":
		n := len(m.scopes())
		m.scopeIndex = (m.scopeIndex + n - 1) % n
		m.comments = nil
		return m.loadFeed()
	case "R":
		return m.loadFeed()
	case "l":
		return m.toggleReaction(api.ReactionLike)
	case "c":
		return m.toggleReaction(api.ReactionClap)
	case "s":
		return m.toggleReaction(api.ReactionStar)
	case "n":
		m.compose = newComposeModel(m.client, m.log)
		return m.compose.Init()
	case "f":
		m.filterOpen = true
		m.filterFocus = 0
		m.filterSender.Focus()
		m.filterDate.Blur()
		return textinput.Blink
	case "r":
		if m.cursor < len(items) {
			m.reportOpen = true
			m.reportInput.SetValue("")
			m.reportInput.Focus()
			return textinput.Blink
		}
		return nil
	case "enter":
		if m.cursor < len(items) {
			m.comments = newCommentsModel(m.client, items[m.cursor].ID, m.cfg.TUI.MentionLimit, m.log)
			return m.comments.Init()
		}
		return nil
	}
	return nil
}

// updateReport drives the inline report-reason prompt. Empty input aborts
// with no request, matching the original prompt semantics.
func (m *dashboardModel) updateReport(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.reportInput, cmd = m.reportInput.Update(msg)
		return cmd
	}

	switch key.String() {
	case "esc":
		m.reportOpen = false
		return nil
	case "enter":
		m.reportOpen = false
		reason := strings.TrimSpace(m.reportInput.Value())
		if reason == "" {
			return nil
		}
		items := m.visibleItems()
		if m.cursor >= len(items) {
			return nil
		}
		return m.reportShoutout(items[m.cursor].ID, reason)
	}

	var cmd tea.Cmd
	m.reportInput, cmd = m.reportInput.Update(msg)
	return cmd
}

// updateFilter drives the sender/date filter inputs. Every keystroke
// re-applies the predicate in memory; no network request is made.
func (m *dashboardModel) updateFilter(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.filterOpen = false
			m.filterSender.Blur()
			m.filterDate.Blur()
			return nil
		case "enter":
			m.filterOpen = false
			m.filterSender.Blur()
			m.filterDate.Blur()
			m.applyFilter()
			return nil
		case "tab":
			m.filterFocus = 1 - m.filterFocus
			if m.filterFocus == 0 {
				m.filterSender.Focus()
				m.filterDate.Blur()
			} else {
				m.filterDate.Focus()
				m.filterSender.Blur()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	if m.filterFocus == 0 {
		m.filterSender, cmd = m.filterSender.Update(msg)
	} else {
		m.filterDate, cmd = m.filterDate.Update(msg)
	}
	m.applyFilter()
	return cmd
}

// updateComments forwards messages to the open comment panel. Keys the
// panel does not own (navigation, quit) fall through to the dashboard.
func (m *dashboardModel) updateComments(msg tea.Msg) (tea.Cmd, bool) {
	switch msg.(type) {
	case commentsLoadedMsg, commentPostedMsg:
		return m.comments.Update(msg), true
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.comments.wantsKey(key) {
			return m.comments.Update(msg), true
		}
		return nil, false
	}
	return m.comments.Update(msg), true
}

// updateCompose drives the compose overlay while it is open.
func (m *dashboardModel) updateCompose(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case composeResultMsg:
		cmd := m.compose.Update(msg)
		if msg.err == nil {
			// Posted: close the overlay and reload the feed so the new
			// shoutout appears with its server-assigned fields.
			m.compose = nil
			return m.loadFeed()
		}
		return cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.compose = nil
			return nil
		}
	}
	return m.compose.Update(msg)
}

func (m *dashboardModel) View() string {
	if m.compose != nil {
		return m.compose.View()
	}

	var b strings.Builder
	b.WriteString(m.viewNavbar() + "\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " Loading feed...\n")
	case m.sync.Err() != nil:
		b.WriteString(styles.ErrorMsg.Render("Failed to load feed") + "\n")
	default:
		b.WriteString(m.viewFeed())
	}

	if m.filterOpen || !m.filter.Empty() {
		b.WriteString("\n" + m.viewFilter())
	}
	if m.reportOpen {
		b.WriteString("\nReport reason: " + m.reportInput.View())
	}
	if m.profile != nil {
		b.WriteString("\n" + m.viewProfile())
	}

	b.WriteString("\n" + m.viewHelp())
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *dashboardModel) viewNavbar() string {
	left := styles.Navbar.Render(" BragBoard ")
	scope := styles.Badge.Render("dept: " + m.scope())

	who := styles.Muted.Render("not signed in")
	if me := m.currentUser(); me != nil {
		who = me.Name
		if me.Department != "" {
			who += " " + styles.Muted.Render("("+me.Department+")")
		}
		if me.Role == api.RoleAdmin {
			who += " " + styles.Badge.Render("[admin]")
		}
	}
	return left + "  " + scope + "  " + who
}

func (m *dashboardModel) viewFilter() string {
	if m.filterOpen {
		return "Filter sender: " + m.filterSender.View() + "  date: " + m.filterDate.View() +
			styles.Muted.Render("  (tab switches, enter applies, esc closes)")
	}
	var parts []string
	if m.filter.SenderID != 0 {
		parts = append(parts, "sender #"+strconv.Itoa(m.filter.SenderID))
	}
	if m.filter.Date != "" {
		parts = append(parts, "date "+m.filter.Date)
	}
	return styles.Muted.Render("Filtered by " + strings.Join(parts, ", "))
}

func (m *dashboardModel) viewProfile() string {
	u := m.profile
	var b strings.Builder
	b.WriteString(styles.Title.Render(u.Name) + "\n")
	b.WriteString(u.Email + "\n")
	if u.Department != "" {
		b.WriteString("Department: " + u.Department + "\n")
	}
	b.WriteString("Role: " + string(u.Role))
	return styles.Overlay.Render(b.String())
}

func (m *dashboardModel) viewHelp() string {
	keys := []string{
		styles.HelpKey.Render("↑/↓") + " select",
		styles.HelpKey.Render("l/c/s") + " react",
		styles.HelpKey.Render("enter") + " comments",
		styles.HelpKey.Render("n") + " new",
		styles.HelpKey.Render("d") + " dept",
		styles.HelpKey.Render("f") + " filter",
		styles.HelpKey.Render("r") + " report",
		styles.HelpKey.Render("p") + " profile",
		styles.HelpKey.Render("R") + " refresh",
	}
	if me := m.currentUser(); me != nil && me.Role == api.RoleAdmin {
		keys = append(keys, styles.HelpKey.Render("a")+" admin")
	}
	keys = append(keys, styles.HelpKey.Render("g")+" logout", styles.HelpKey.Render("q")+" quit")
	return styles.HelpBar.Render(strings.Join(keys, " · "))
}
