package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jwulff/careconsole/internal/console"
	"github.com/jwulff/careconsole/internal/ui"
)

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + profile(1) + divider(1) + divider(1) + toast(1) + footer(1)
	reserved := 6
	return max(10, m.height-reserved)
}

func (m Model) sidebarWidth() int {
	if !m.console.SidebarOpen() {
		return 0
	}
	if m.width == 0 {
		return 40
	}
	return max(30, m.width*40/100)
}

func (m Model) assistantWidth() int {
	if m.width == 0 {
		return 60
	}
	if !m.console.SidebarOpen() {
		return m.width
	}
	return max(30, m.width-m.sidebarWidth()-1)
}

// transcriptVisibleLines is the transcript panel height minus its header.
func (m Model) transcriptVisibleLines() int {
	return max(1, m.contentHeight()-1)
}

func (m *Model) scrollToBottom() {
	m.transcriptScroll = m.maxTranscriptScroll()
}

func (m Model) maxTranscriptScroll() int {
	total := len(m.transcriptDisplayLines(m.sidebarWidth()))
	visible := m.transcriptVisibleLines()
	if total <= visible {
		return 0
	}
	return total - visible
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderProfileBar())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if _, ok := m.topDialog(); ok {
		sections = append(sections, m.renderDialog())
	} else {
		sections = append(sections, m.renderMainContent())
	}

	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.toastOn {
		sections = append(sections, m.renderToast())
	} else {
		sections = append(sections, "")
	}

	sections = append(sections, m.renderFooter())

	lines := strings.Split(strings.Join(sections, "\n"), "\n")
	for i, l := range lines {
		lines[i] = truncateToWidth(l, m.width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("CUSTOMER CARE ASSISTANT")
	var badge string
	if m.console.Finalized() {
		badge = ui.WrapUpBadgeStyle.Render("○ Wrap-up")
	} else {
		badge = ui.ActiveBadgeStyle.Render("● Call Active")
	}
	return title + "  " + badge
}

func (m Model) renderProfileBar() string {
	p := m.console.Profile()
	left := ui.CustomerNameStyle.Render(p.Name) + ui.DimStyle.Render(" ("+p.State+")") +
		"   " + p.Phone + ui.DimStyle.Render(" · "+p.HearingAid)
	right := ui.DimStyle.Render("Duration: " + console.FormatDuration(m.console.CallDuration()))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left + "  " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderMainContent() string {
	contentH := m.contentHeight()
	assistantW := m.assistantWidth()

	assistant := strings.Split(m.renderAssistantPanel(assistantW, contentH), "\n")
	if !m.console.SidebarOpen() {
		return strings.Join(assistant, "\n")
	}

	transcript := strings.Split(m.renderTranscriptPanel(m.sidebarWidth(), contentH), "\n")
	divider := ui.DividerStyle.Render("│")

	var rows []string
	for i := 0; i < contentH; i++ {
		left := strings.Repeat(" ", assistantW)
		if i < len(assistant) {
			left = padRight(assistant[i], assistantW)
		}
		right := ""
		if i < len(transcript) {
			right = transcript[i]
		}
		rows = append(rows, left+divider+right)
	}
	return strings.Join(rows, "\n")
}

func (m Model) panelTitle(title string, focus PanelFocus) string {
	if m.focusedPanel == focus {
		return ui.PanelTitleActiveStyle.Render(title)
	}
	return ui.PanelTitleStyle.Render(title)
}

func (m Model) renderAssistantPanel(width, height int) string {
	textW := max(10, width-2)
	name := firstName(m.console.Profile().Name)

	var top []string
	top = append(top, ui.AILabelStyle.Render("AI Assistant Ready"))
	intro := "Ask me anything about " + name + "'s profile, call history, or device information to help with this support call."
	for _, l := range wrapText(intro, textW) {
		top = append(top, ui.DimStyle.Render(l))
	}
	top = append(top, "")

	top = append(top, m.panelTitle("Quick Questions:", FocusQuickQuestions))
	top = append(top, m.renderQuickQuestions(textW)...)
	top = append(top, "")

	calls := m.console.RecentCalls()
	top = append(top, m.panelTitle(fmt.Sprintf("Recent Calls (%d)", len(calls)), FocusRecentCalls))
	for i, c := range calls {
		top = append(top, m.renderRecentCall(i, c, width))
	}
	top = append(top, "")
	top = append(top, m.panelTitle("Chat", FocusChat))

	var bottom []string
	if m.console.Pending() > 0 {
		bottom = append(bottom, m.spinner.View()+ui.DimStyle.Render(" AI is typing..."))
	} else {
		bottom = append(bottom, "")
	}
	bottom = append(bottom, m.input.View())
	bottom = append(bottom, ui.WarningButtonStyle.Render("[ctrl+r] Create Code Red")+"  "+
		ui.DangerButtonStyle.Render("[ctrl+e] Complete Call"))

	chatH := height - len(top) - len(bottom)
	lines := top
	if chatH > 0 {
		chat := m.chatDisplayLines(textW)
		if len(chat) > chatH {
			chat = chat[len(chat)-chatH:]
		}
		lines = append(lines, chat...)
		for i := len(chat); i < chatH; i++ {
			lines = append(lines, "")
		}
	}
	lines = append(lines, bottom...)

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for i, l := range lines {
		lines[i] = " " + truncateToWidth(l, width-1)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderQuickQuestions(width int) []string {
	var rows []string
	var row string
	for i, q := range console.QuickQuestions {
		var b string
		if m.focusedPanel == FocusQuickQuestions && i == m.quickIndex {
			b = ui.ButtonActiveStyle.Render(q)
		} else {
			b = ui.ButtonStyle.Render("[" + q + "]")
		}
		if row != "" && lipgloss.Width(row)+1+lipgloss.Width(b) > width {
			rows = append(rows, row)
			row = ""
		}
		if row != "" {
			row += " "
		}
		row += b
	}
	if row != "" {
		rows = append(rows, row)
	}
	return rows
}

func (m Model) renderRecentCall(i int, c console.RecentCall, width int) string {
	var status string
	switch c.Status {
	case console.StatusResolved:
		status = ui.StatusResolvedStyle.Render(string(c.Status))
	case console.StatusFollowUp:
		status = ui.StatusFollowUpStyle.Render(string(c.Status))
	default:
		status = ui.StatusEscalatedStyle.Render(string(c.Status))
	}

	prefix := "  "
	date := c.Date
	if m.focusedPanel == FocusRecentCalls && i == m.recentIndex {
		prefix = ui.SelectedStyle.Render("> ")
		date = ui.SelectedStyle.Render(c.Date)
	}
	line := fmt.Sprintf("%s%s  %s  %s  %s", prefix, date, ui.DimStyle.Render(c.Duration), status, c.Issue)
	return truncateToWidth(line, width-1)
}

func (m Model) chatDisplayLines(width int) []string {
	var out []string
	for _, msg := range m.console.Chat() {
		var label string
		if msg.Type == console.ChatAI {
			label = ui.AILabelStyle.Render("AI")
		} else {
			label = ui.UserLabelStyle.Render("You")
		}
		out = append(out, label+" "+ui.TimestampStyle.Render(msg.Timestamp))
		for _, l := range wrapText(msg.Message, max(10, width-2)) {
			out = append(out, "  "+l)
		}
	}
	return out
}

func (m Model) transcriptDisplayLines(width int) []string {
	textW := max(10, width-4)
	var out []string
	for _, t := range m.console.Transcript() {
		var label string
		if t.Speaker == console.SpeakerCustomer {
			label = ui.CustomerLabelStyle.Render(string(t.Speaker))
		} else {
			label = ui.RepLabelStyle.Render(m.agentName)
		}
		out = append(out, label+" "+ui.TimestampStyle.Render(t.Timestamp))
		for _, l := range wrapText(t.Message, textW) {
			out = append(out, "  "+l)
		}
	}
	return out
}

func (m Model) renderTranscriptPanel(width, height int) string {
	marker := "▾"
	if !m.console.TranscriptOpen() {
		marker = "▸"
	}
	header := m.panelTitle(marker+" LIVE CALL TRANSCRIPT", FocusTranscript)
	if m.transcriptLive {
		header += ui.LiveBadgeStyle.Render(" LIVE")
	} else {
		header += ui.ScrollBadgeStyle.Render(" SCROLL")
	}

	lines := []string{" " + header}

	if !m.console.TranscriptOpen() {
		lines = append(lines, ui.DimStyle.Render("  Collapsed. ctrl+t to expand"))
	} else {
		display := m.transcriptDisplayLines(width)
		contentHeight := height - 1

		start := 0
		if m.transcriptLive {
			if len(display) > contentHeight {
				start = len(display) - contentHeight
			}
		} else {
			start = m.transcriptScroll
		}
		if start < 0 {
			start = 0
		}
		end := start + contentHeight
		if end > len(display) {
			end = len(display)
		}
		for i := start; i < end; i++ {
			lines = append(lines, " "+display[i])
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// renderDialog centres the topmost dialog in the content area. A dialog
// taller than the area scrolls inside a viewport at dialogScroll.
func (m Model) renderDialog() string {
	box := m.dialogBox()
	height := m.contentHeight()
	if lipgloss.Height(box) <= height {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
	}

	vp := viewport.New(m.width, height)
	vp.SetContent(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box))
	vp.SetYOffset(m.dialogScroll)
	return vp.View()
}

func (m Model) maxDialogScroll() int {
	if _, ok := m.topDialog(); !ok {
		return 0
	}
	return max(0, lipgloss.Height(m.dialogBox())-m.contentHeight())
}

func (m Model) dialogBox() string {
	top, _ := m.topDialog()
	width := min(max(40, m.width-6), 100)

	var body string
	style := ui.DialogStyle
	switch {
	case top == console.DialogSummary:
		body = m.renderSummary(width - 6)
	default:
		body = m.renderForm(top)
		if top == console.DialogCodeRed {
			style = ui.CodeRedDialogStyle
		}
	}

	if open := m.console.OpenDialogs(); len(open) > 1 {
		var names []string
		for _, d := range open[:len(open)-1] {
			names = append(names, d.String())
		}
		body += "\n\n" + ui.DimStyle.Render("Also open: "+strings.Join(names, ", "))
	}

	return style.Width(width).Render(body)
}

func (m Model) renderSummary(width int) string {
	s := m.console.Summary()
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render("CALL SUMMARY") + "   " +
		ui.CustomerNameStyle.Render(s.CustomerName) + " " + renderStars(s.Rating) + "\n\n")

	section := func(title string, items ...string) {
		b.WriteString(ui.SectionTitleStyle.Render(title) + "\n")
		for _, it := range items {
			for _, l := range wrapText(it, width-4) {
				b.WriteString("  " + l + "\n")
			}
		}
		b.WriteString("\n")
	}
	bullets := func(items []string) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = "• " + it
		}
		return out
	}

	section("Primary Reason for Call", s.PrimaryReason)
	section("Secondary Reasons", bullets(s.SecondaryReasons)...)
	section("Cases Created", s.CasesCreated...)
	section("Call Summary", s.Summary)
	section("Customer Activities Created", bullets(s.CustomerActivities)...)
	section("Suggestions for Improvement", bullets(s.Improvements)...)

	b.WriteString(ui.FooterKeyStyle.Render("1") + ui.FooterDescStyle.Render(" Create Additional Cases  "))
	b.WriteString(ui.FooterKeyStyle.Render("2") + ui.FooterDescStyle.Render(" Create Additional Customer Activities\n"))
	b.WriteString(ui.FooterKeyStyle.Render("3") + ui.WarningButtonStyle.Render(" Create Code Red  "))
	b.WriteString(ui.FooterKeyStyle.Render("4") + ui.FooterDescStyle.Render(" Send Notes to Partner Provider"))
	return b.String()
}

func (m Model) renderForm(d console.Dialog) string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(strings.ToUpper(d.String())) + "\n\n")
	for i, f := range console.Fields(d) {
		label := "  " + f.Label
		if i == m.fieldIndex {
			label = ui.SelectedStyle.Render("> " + f.Label)
		}
		b.WriteString(label + "\n")
		if i < len(m.fields) {
			b.WriteString("    " + m.fields[i].View() + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStars(rating int) string {
	rating = min(max(rating, 0), 5)
	return ui.StarOnStyle.Render(strings.Repeat("★", rating)) +
		ui.StarOffStyle.Render(strings.Repeat("☆", 5-rating))
}

func (m Model) renderToast() string {
	return ui.ToastStyle.Render("✓ "+m.toast.Title) + ui.DimStyle.Render("  "+m.toast.Body)
}

func footerHint(key, desc string) string {
	return ui.FooterKeyStyle.Render(key) + ui.FooterDescStyle.Render(" "+desc)
}

func (m Model) renderFooter() string {
	var parts []string

	if top, ok := m.topDialog(); ok {
		if top == console.DialogSummary {
			parts = append(parts, footerHint("Enter", "Finalize Call"))
			parts = append(parts, footerHint("1-4", "Actions"))
			parts = append(parts, footerHint("Esc", "Close"))
			if m.maxDialogScroll() > 0 {
				parts = append(parts, footerHint("↑↓", "Scroll"))
			}
		} else {
			parts = append(parts, footerHint("Enter", "Submit"))
			parts = append(parts, footerHint("Tab", "Next field"))
			parts = append(parts, footerHint("Esc", "Cancel"))
		}
		parts = append(parts, footerHint("ctrl+c", "Quit"))
		return strings.Join(parts, "  ")
	}

	parts = append(parts, footerHint("Tab", "Focus"))
	parts = append(parts, footerHint("Enter", "Send/Select"))
	parts = append(parts, footerHint("ctrl+b", "Transcript"))
	parts = append(parts, footerHint("ctrl+t", "Expand"))
	if m.focusedPanel == FocusChat {
		parts = append(parts, footerHint("ctrl+c", "Quit"))
	} else {
		parts = append(parts, footerHint("q", "Quit"))
	}
	return strings.Join(parts, "  ")
}

// Helpers

func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncateToWidth cuts s to width cells, keeping escape sequences intact.
func truncateToWidth(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
