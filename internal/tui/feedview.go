package tui

import (
	"fmt"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/tui/styles"
	"github.com/Sruthika-k/Bragboard/internal/util"
	"github.com/charmbracelet/glamour"
)

func (m *dashboardModel) viewFeed() string {
	items := m.visibleItems()
	if len(items) == 0 {
		if m.filter.Empty() {
			return styles.Muted.Render("No shoutouts yet. Press n to give the first one.") + "\n"
		}
		return styles.Muted.Render("No shoutouts match the current filter.") + "\n"
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(m.viewCard(item, i == m.cursor))
		b.WriteString("\n")
		if i == m.cursor && m.comments != nil {
			b.WriteString(m.comments.View())
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *dashboardModel) viewCard(item api.Shoutout, selected bool) string {
	var b strings.Builder

	sender := m.sync.DisplayName(item.SenderID)
	header := sender + " → " + recipientNames(item.Recipients)
	if item.Department != "" {
		header += "  " + styles.Badge.Render(item.Department)
	}
	if !item.CreatedAt.IsZero() {
		header += "  " + styles.Muted.Render(item.CreatedAt.Local().Format("Jan 2 15:04"))
	}
	// The header mixes styled spans, so plain rune truncation would count
	// escape codes as columns.
	b.WriteString(util.TruncateANSI(header, m.cardWidth()-4) + "\n")

	b.WriteString(m.renderMessage(item.Message))
	if item.ImageURL != "" {
		b.WriteString(styles.Muted.Render("image: "+item.ImageURL) + "\n")
	}

	counts := fmt.Sprintf("👍 %d  👏 %d  ⭐ %d", item.Reactions.Like, item.Reactions.Clap, item.Reactions.Star)
	counts += styles.Muted.Render(fmt.Sprintf("   %d comments", item.CommentsCount))
	b.WriteString(counts)

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(m.cardWidth()).Render(b.String())
}

func (m *dashboardModel) cardWidth() int {
	w := m.cfg.TUI.MessageWidth
	if m.width > 0 && m.width-6 < w {
		w = m.width - 6
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderMessage renders the shoutout body as markdown, falling back to
// the raw text when the renderer cannot be built.
func (m *dashboardModel) renderMessage(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.cardWidth()-4),
	)
	if err != nil {
		return text + "\n"
	}
	out, err := r.Render(text)
	if err != nil {
		return text + "\n"
	}
	return strings.Trim(out, "\n") + "\n"
}

func recipientNames(recipients []api.User) string {
	if len(recipients) == 0 {
		return styles.Muted.Render("everyone")
	}
	names := make([]string, len(recipients))
	for i, u := range recipients {
		names[i] = u.Name
	}
	return strings.Join(names, ", ")
}
