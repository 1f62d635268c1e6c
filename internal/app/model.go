package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/jwulff/careconsole/internal/console"
	"github.com/jwulff/careconsole/internal/logging"
	"github.com/jwulff/careconsole/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// PanelFocus tracks which region of the main screen has keyboard focus.
type PanelFocus int

const (
	FocusChat PanelFocus = iota
	FocusQuickQuestions
	FocusRecentCalls
	FocusTranscript
	focusCount
)

// Options configures the TUI model.
type Options struct {
	Logger    *logging.Logger
	NotifyTTL time.Duration
	AgentName string
}

// Model is the root bubbletea model for the console.
type Model struct {
	console   *console.Console
	log       *logging.Logger
	notifyTTL time.Duration
	agentName string

	input   textinput.Model
	spinner spinner.Model
	typing  bool // spinner tick loop running

	// Main screen
	focusedPanel     PanelFocus
	quickIndex       int
	recentIndex      int
	transcriptScroll int
	transcriptLive   bool

	// Inputs of the topmost form dialog
	fields       []textinput.Model
	fieldIndex   int
	fieldsOwner  console.Dialog
	dialogScroll int // first visible line of a dialog taller than the screen

	toast   console.Notification
	toastOn bool

	width  int
	height int
}

// New creates a Model driving c.
func New(c *console.Console, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.NotifyTTL <= 0 {
		opts.NotifyTTL = 4 * time.Second
	}
	if opts.AgentName == "" {
		opts.AgentName = string(console.SpeakerRep)
	}

	input := textinput.New()
	input.Prompt = "❯ "
	input.CharLimit = 2000
	input.Placeholder = "Ask about " + firstName(c.Profile().Name) + "'s profile, history, or device info..."
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.SpinnerStyle

	return Model{
		console:        c,
		log:            opts.Logger,
		notifyTTL:      opts.NotifyTTL,
		agentName:      opts.AgentName,
		input:          input,
		spinner:        sp,
		focusedPanel:   FocusChat,
		transcriptLive: true,
		fieldsOwner:    -1,
	}
}

// Init starts the call clock and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(clockCmd(), textinput.Blink)
}

// replyCmd fires a ReplyDueMsg once the reply's delay has passed.
func replyCmd(r console.Reply) tea.Cmd {
	return tea.Tick(r.Delay, func(time.Time) tea.Msg {
		return ReplyDueMsg{ID: r.ID}
	})
}

func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg{Time: t}
	})
}

// clearNotificationCmd fires after ttl to hide the toast.
func clearNotificationCmd(id string, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ClearNotificationMsg{ID: id}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.transcriptLive {
			m.scrollToBottom()
		}
		return m, nil

	case ReplyDueMsg:
		if m.console.Deliver(msg.ID) {
			m.log.Debug("assistant reply delivered", "reply_id", msg.ID, "pending", m.console.Pending())
		}
		return m, nil

	case spinner.TickMsg:
		if m.console.Pending() == 0 {
			m.typing = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ClockTickMsg:
		if m.console.Finalized() {
			return m, nil
		}
		return m, clockCmd()

	case ClearNotificationMsg:
		if m.toastOn && m.toast.ID == msg.ID {
			m.toastOn = false
		}
		return m, nil
	}

	// Cursor blink and other input-owned messages go to the focused input.
	var cmd tea.Cmd
	if _, ok := m.topDialog(); ok {
		if m.fieldIndex < len(m.fields) {
			m.fields[m.fieldIndex], cmd = m.fields[m.fieldIndex].Update(msg)
		}
		return m, cmd
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes key presses on the main screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == KeyCtrlC {
		return m.quit()
	}
	if _, ok := m.topDialog(); ok {
		return m.handleDialogKey(msg)
	}

	switch key {
	case KeyToggleSidebar:
		m.console.ToggleSidebar()
		m.log.Debug("sidebar toggled", "open", m.console.SidebarOpen())
		return m, m.fixFocus()

	case KeyToggleAccord:
		m.console.ToggleTranscript()
		m.log.Debug("transcript toggled", "expanded", m.console.TranscriptOpen())
		return m, m.fixFocus()

	case KeyCompleteCall:
		m.console.CompleteCall()
		m.log.Info("call completed, summary opened")
		return m, m.syncDialog()

	case KeyCodeRed:
		m.console.OpenDialog(console.DialogCodeRed)
		return m, m.syncDialog()

	case KeyTab:
		return m, m.cycleFocus(1)

	case KeyShiftTab:
		return m, m.cycleFocus(-1)
	}

	switch m.focusedPanel {
	case FocusChat:
		return m.handleChatKey(msg)

	case FocusQuickQuestions:
		switch key {
		case KeyLeft, KeyH:
			if m.quickIndex > 0 {
				m.quickIndex--
			}
		case KeyRight, KeyL:
			if m.quickIndex < len(console.QuickQuestions)-1 {
				m.quickIndex++
			}
		case KeyEnter:
			label := console.QuickQuestions[m.quickIndex]
			m.log.Debug("quick question", "label", label)
			return m, m.scheduleReply(m.console.ClickQuickQuestion(label))
		case KeyQuit:
			return m.quit()
		}
		return m, nil

	case FocusRecentCalls:
		calls := m.console.RecentCalls()
		switch key {
		case KeyUp, KeyK:
			if m.recentIndex > 0 {
				m.recentIndex--
			}
		case KeyDown, KeyJ:
			if m.recentIndex < len(calls)-1 {
				m.recentIndex++
			}
		case KeyEnter:
			if m.recentIndex < len(calls) {
				call := calls[m.recentIndex]
				m.log.Debug("recent call selected", "call_id", call.ID)
				return m, m.scheduleReply(m.console.SelectRecentCall(call))
			}
		case KeyQuit:
			return m.quit()
		}
		return m, nil

	case FocusTranscript:
		switch key {
		case KeyUp, KeyK:
			m.transcriptLive = false
			if m.transcriptScroll > 0 {
				m.transcriptScroll--
			}
		case KeyDown, KeyJ:
			maxScroll := m.maxTranscriptScroll()
			m.transcriptScroll++
			if m.transcriptScroll >= maxScroll {
				m.transcriptScroll = maxScroll
				m.transcriptLive = true
			}
		case KeyQuit:
			return m.quit()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyEnter {
		reply, ok := m.console.SendMessage(m.input.Value())
		m.input.SetValue(m.console.Input())
		if !ok {
			return m, nil
		}
		m.log.Debug("chat message sent", "reply_id", reply.ID)
		return m, m.scheduleReply(reply)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.console.SetInput(m.input.Value())
	return m, cmd
}

// handleDialogKey routes keys to the topmost open dialog.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top, _ := m.topDialog()
	key := msg.String()

	if key == KeyEsc {
		m.console.CancelDialog(top)
		m.log.Debug("dialog cancelled", "dialog", top.String())
		return m, m.syncDialog()
	}

	switch key {
	case KeyPgUp:
		m.scrollDialog(-m.contentHeight() / 2)
		return m, nil
	case KeyPgDown:
		m.scrollDialog(m.contentHeight() / 2)
		return m, nil
	}

	if top == console.DialogSummary {
		switch key {
		case KeyOpenCase:
			m.console.OpenDialog(console.DialogCase)
		case KeyOpenActivity:
			m.console.OpenDialog(console.DialogActivity)
		case KeyOpenCodeRed:
			m.console.OpenDialog(console.DialogCodeRed)
		case KeyOpenNotes:
			m.console.OpenDialog(console.DialogNotes)
		case KeyEnter, KeyFinalize:
			n := m.console.FinalizeCall()
			m.log.Info("call finalized", "duration", console.FormatDuration(m.console.CallDuration()))
			return m, tea.Batch(m.syncDialog(), m.showNotification(n))
		case KeyUp, KeyK:
			m.scrollDialog(-1)
		case KeyDown, KeyJ:
			m.scrollDialog(1)
		}
		return m, m.syncDialog()
	}

	switch key {
	case KeyEnter:
		n, ok := m.console.Submit(top)
		if !ok {
			return m, nil
		}
		m.log.Info("dialog submitted", "dialog", top.String())
		return m, tea.Batch(m.syncDialog(), m.showNotification(n))

	case KeyTab, KeyDown:
		return m, m.moveField(1)

	case KeyShiftTab, KeyUp:
		return m, m.moveField(-1)
	}

	if m.fieldIndex >= len(m.fields) {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.fieldIndex], cmd = m.fields[m.fieldIndex].Update(msg)
	m.console.SetField(top, console.Fields(top)[m.fieldIndex].Key, m.fields[m.fieldIndex].Value())
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if n := m.console.CancelPending(); n > 0 {
		m.log.Info("cancelled pending replies on quit", "count", n)
	}
	return m, tea.Quit
}

func (m *Model) scheduleReply(r console.Reply) tea.Cmd {
	cmds := []tea.Cmd{replyCmd(r)}
	if !m.typing {
		m.typing = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) showNotification(n console.Notification) tea.Cmd {
	m.toast = n
	m.toastOn = true
	m.log.Info("notification", "title", n.Title, "body", n.Body)
	return clearNotificationCmd(n.ID, m.notifyTTL)
}

// topDialog returns the dialog that receives input, if any is open.
func (m Model) topDialog() (console.Dialog, bool) {
	open := m.console.OpenDialogs()
	if len(open) == 0 {
		return 0, false
	}
	return open[len(open)-1], true
}

// syncDialog rebuilds the field inputs when the topmost dialog changes and
// returns the focused field's blink command.
// Drafts live in the console, so rebuilding never loses typed text.
func (m *Model) syncDialog() tea.Cmd {
	top, ok := m.topDialog()
	if !ok || !console.HasForm(top) {
		if !ok || m.fieldsOwner != -1 {
			m.dialogScroll = 0
		}
		m.fields = nil
		m.fieldsOwner = -1
		if !ok {
			return m.applyInputFocus()
		}
		return nil
	}
	if m.fields != nil && m.fieldsOwner == top {
		return nil
	}

	form := m.console.Form(top)
	fields := console.Fields(top)
	m.fields = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 500
		ti.Placeholder = f.Placeholder
		ti.SetValue(form.Get(f.Key))
		m.fields[i] = ti
	}
	m.fieldsOwner = top
	m.fieldIndex = 0
	m.dialogScroll = 0
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[0].Focus()
}

func (m *Model) moveField(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	m.fields[m.fieldIndex].Blur()
	m.fieldIndex = (m.fieldIndex + delta + len(m.fields)) % len(m.fields)
	return m.fields[m.fieldIndex].Focus()
}

// scrollDialog moves a tall dialog by delta lines, clamped to its content.
func (m *Model) scrollDialog(delta int) {
	m.dialogScroll = min(max(0, m.dialogScroll+delta), m.maxDialogScroll())
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	for i := 0; i < int(focusCount); i++ {
		m.focusedPanel = PanelFocus((int(m.focusedPanel) + delta + int(focusCount)) % int(focusCount))
		if m.focusable(m.focusedPanel) {
			break
		}
	}
	return m.applyInputFocus()
}

// fixFocus moves focus off the transcript once it is hidden.
func (m *Model) fixFocus() tea.Cmd {
	if !m.focusable(m.focusedPanel) {
		m.focusedPanel = FocusChat
	}
	return m.applyInputFocus()
}

func (m Model) focusable(p PanelFocus) bool {
	if p == FocusTranscript {
		return m.console.SidebarOpen() && m.console.TranscriptOpen()
	}
	return true
}

func (m *Model) applyInputFocus() tea.Cmd {
	if m.focusedPanel == FocusChat {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func firstName(name string) string {
	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}
	return name
}
