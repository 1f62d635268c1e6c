package app

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jwulff/careconsole/internal/console"
	"github.com/muesli/termenv"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() Model {
	c := console.New(console.Options{ReplyDelay: 5 * time.Millisecond})
	m := New(c, Options{})
	m.width = 120
	m.height = 40
	return m
}

func applyUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// replyIDs runs cmd (and any batched cmds) and returns the scheduled reply IDs.
func replyIDs(cmd tea.Cmd) []string {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case ReplyDueMsg:
		return []string{msg.ID}
	case tea.BatchMsg:
		var ids []string
		for _, c := range msg {
			ids = append(ids, replyIDs(c)...)
		}
		return ids
	}
	return nil
}

func deliverAll(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	ids := replyIDs(cmd)
	if len(ids) == 0 {
		t.Fatal("expected a scheduled reply")
	}
	for _, id := range ids {
		m, _ = applyUpdate(m, ReplyDueMsg{ID: id})
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := newTestModel()
	if m.focusedPanel != FocusChat {
		t.Error("new model should focus the chat input")
	}
	if !m.transcriptLive {
		t.Error("new model should be in live mode")
	}
	if !m.input.Focused() {
		t.Error("chat input should be focused")
	}
	if _, ok := m.topDialog(); ok {
		t.Error("no dialog should be open")
	}
}

func TestSendMessage(t *testing.T) {
	m := newTestModel()

	m, _ = applyUpdate(m, keyRunes("it keeps disconnecting"))
	if m.console.Input() != "it keeps disconnecting" {
		t.Fatalf("console input = %q", m.console.Input())
	}

	m, cmd := applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.input.Value() != "" {
		t.Errorf("input should clear immediately, got %q", m.input.Value())
	}
	chat := m.console.Chat()
	if len(chat) != 1 || chat[0].Type != console.ChatUser {
		t.Fatalf("chat = %+v, want one user message", chat)
	}
	if !m.typing {
		t.Error("spinner should run while a reply is pending")
	}

	m = deliverAll(t, m, cmd)
	chat = m.console.Chat()
	if len(chat) != 2 || chat[1].Type != console.ChatAI {
		t.Fatalf("chat = %+v, want user then ai", chat)
	}
	if chat[1].Message != console.DefaultAnswer() {
		t.Errorf("reply = %q", chat[1].Message)
	}
}

func TestSendBlankMessageIgnored(t *testing.T) {
	m := newTestModel()
	m, _ = applyUpdate(m, keyRunes("   "))
	m, cmd := applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("blank message should not schedule a reply")
	}
	if len(m.console.Chat()) != 0 {
		t.Errorf("chat = %d messages, want 0", len(m.console.Chat()))
	}
}

func TestQuickQuestionWarranty(t *testing.T) {
	m := newTestModel()

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPanel != FocusQuickQuestions {
		t.Fatalf("focus = %d, want quick questions", m.focusedPanel)
	}
	if m.input.Focused() {
		t.Error("chat input should blur when focus leaves it")
	}
	for i := 0; i < 3; i++ {
		m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if console.QuickQuestions[m.quickIndex] != "Warranty Status" {
		t.Fatalf("selected %q", console.QuickQuestions[m.quickIndex])
	}

	m, cmd := applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.console.Chat()[0].Message; got != "Warranty Status" {
		t.Errorf("user message = %q", got)
	}

	m = deliverAll(t, m, cmd)
	answer := m.console.Chat()[1].Message
	if !strings.Contains(answer, "ACTIVE") || !strings.Contains(answer, "January 15th, 2026") {
		t.Errorf("warranty answer = %q", answer)
	}
}

func TestQuickQuestionBounds(t *testing.T) {
	m := newTestModel()
	m.focusedPanel = FocusQuickQuestions

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.quickIndex != 0 {
		t.Errorf("quickIndex = %d, want 0", m.quickIndex)
	}
	for i := 0; i < 10; i++ {
		m, _ = applyUpdate(m, keyRunes("l"))
	}
	if m.quickIndex != len(console.QuickQuestions)-1 {
		t.Errorf("quickIndex = %d, want last", m.quickIndex)
	}
}

func TestSelectRecentCall(t *testing.T) {
	m := newTestModel()
	m.focusedPanel = FocusRecentCalls

	m, _ = applyUpdate(m, keyRunes("j"))
	m, cmd := applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})

	want := m.console.RecentCalls()[1]
	if !strings.Contains(m.console.Chat()[0].Message, want.ID) {
		t.Errorf("request = %q", m.console.Chat()[0].Message)
	}
	m = deliverAll(t, m, cmd)
	if !strings.Contains(m.console.Chat()[1].Message, want.Issue) {
		t.Errorf("answer = %q", m.console.Chat()[1].Message)
	}
}

func TestToggleSidebar(t *testing.T) {
	m := newTestModel()
	ctrlB := tea.KeyMsg{Type: tea.KeyCtrlB}

	m, _ = applyUpdate(m, ctrlB)
	if m.console.SidebarOpen() {
		t.Error("ctrl+b should hide the transcript panel")
	}
	if m.sidebarWidth() != 0 {
		t.Error("hidden sidebar should take no width")
	}
	m, _ = applyUpdate(m, ctrlB)
	if !m.console.SidebarOpen() {
		t.Error("ctrl+b again should show the transcript panel")
	}
}

func TestFocusSkipsHiddenTranscript(t *testing.T) {
	m := newTestModel()
	m.focusedPanel = FocusTranscript

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.console.TranscriptOpen() {
		t.Fatal("ctrl+t should collapse the transcript")
	}
	if m.focusedPanel != FocusChat {
		t.Errorf("focus should move off a collapsed transcript, got %d", m.focusedPanel)
	}

	for i := 0; i < int(focusCount); i++ {
		m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
		if m.focusedPanel == FocusTranscript {
			t.Fatal("tab should skip the collapsed transcript")
		}
	}
}

func TestTranscriptScroll(t *testing.T) {
	m := newTestModel()
	m.height = 12
	m.focusedPanel = FocusTranscript
	m.scrollToBottom()
	bottom := m.transcriptScroll
	if bottom == 0 {
		t.Fatal("transcript should overflow a short window")
	}

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.transcriptLive {
		t.Error("scrolling up should leave live mode")
	}
	if m.transcriptScroll != bottom-1 {
		t.Errorf("scroll = %d, want %d", m.transcriptScroll, bottom-1)
	}

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	if !m.transcriptLive {
		t.Error("scrolling back to the bottom should resume live mode")
	}
}

func TestCompleteCallSummaryFlow(t *testing.T) {
	m := newTestModel()

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if !m.console.DialogOpen(console.DialogSummary) {
		t.Fatal("ctrl+e should open the call summary")
	}
	if !strings.Contains(m.View(), "CALL SUMMARY") {
		t.Error("view should render the summary dialog")
	}

	// Open a case on top of the summary, type, then cancel.
	m, _ = applyUpdate(m, keyRunes(KeyOpenCase))
	if top, _ := m.topDialog(); top != console.DialogCase {
		t.Fatalf("top dialog = %v, want case", top)
	}
	m, _ = applyUpdate(m, keyRunes("Pairing"))
	if got := m.console.Form(console.DialogCase).Get("subject"); got != "Pairing" {
		t.Errorf("subject = %q", got)
	}
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.console.DialogOpen(console.DialogCase) {
		t.Error("esc should close the case dialog")
	}
	if !m.console.Form(console.DialogCase).Empty() {
		t.Error("cancel should reset the case form")
	}
	if !m.console.DialogOpen(console.DialogSummary) {
		t.Error("summary should stay open under the cancelled dialog")
	}
	if len(m.console.Notifications()) != 0 {
		t.Error("cancel should not notify")
	}

	m, cmd := applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.console.DialogOpen(console.DialogSummary) {
		t.Error("enter should finalize and close the summary")
	}
	if !m.console.Finalized() {
		t.Error("call should be finalized")
	}
	if !m.toastOn || m.toast.Title != "Call Completed" {
		t.Errorf("toast = %+v", m.toast)
	}
	if cmd == nil {
		t.Error("toast should schedule its own removal")
	}
}

func TestFormFieldsAndSubmit(t *testing.T) {
	m := newTestModel()

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if top, _ := m.topDialog(); top != console.DialogCodeRed {
		t.Fatalf("ctrl+r should open code red, top = %v", top)
	}
	if len(m.fields) != len(console.Fields(console.DialogCodeRed)) {
		t.Fatalf("fields = %d", len(m.fields))
	}

	m, _ = applyUpdate(m, keyRunes("Critical"))
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.fieldIndex != 1 {
		t.Fatalf("fieldIndex = %d, want 1", m.fieldIndex)
	}
	m, _ = applyUpdate(m, keyRunes("Device recall"))

	form := m.console.Form(console.DialogCodeRed)
	if form.Get("severity") != "Critical" || form.Get("reason") != "Device recall" {
		t.Errorf("form = %v", form)
	}

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.fieldIndex != 2 {
		t.Errorf("shift+tab should wrap, fieldIndex = %d", m.fieldIndex)
	}

	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.console.DialogOpen(console.DialogCodeRed) {
		t.Error("submit should close the dialog")
	}
	if !m.console.Form(console.DialogCodeRed).Empty() {
		t.Error("submit should reset the form")
	}
	if m.fields != nil {
		t.Error("field inputs should be dropped with the dialog")
	}
	if !strings.Contains(m.toast.Body, "Critical") {
		t.Errorf("toast body = %q", m.toast.Body)
	}
}

func TestClearNotification(t *testing.T) {
	m := newTestModel()
	m.console.OpenDialog(console.DialogNotes)
	m.syncDialog()
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	id := m.toast.ID

	m, _ = applyUpdate(m, ClearNotificationMsg{ID: "stale"})
	if !m.toastOn {
		t.Error("a stale clear should not hide the current toast")
	}
	m, _ = applyUpdate(m, ClearNotificationMsg{ID: id})
	if m.toastOn {
		t.Error("toast should clear")
	}
}

func TestDialogGatesMainKeys(t *testing.T) {
	m := newTestModel()
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if !m.console.SidebarOpen() {
		t.Error("main screen shortcuts should be ignored while a dialog is open")
	}
}

func TestQuitCancelsPending(t *testing.T) {
	m := newTestModel()
	m, _ = applyUpdate(m, keyRunes("hello"))
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.console.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", m.console.Pending())
	}

	m, cmd := applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if m.console.Pending() != 0 {
		t.Error("quit should cancel pending replies")
	}
}

func TestQuitKeyOnlyOutsideChat(t *testing.T) {
	m := newTestModel()
	m, _ = applyUpdate(m, keyRunes("q"))
	if m.console.Input() != "q" {
		t.Errorf("q should type into the chat input, got %q", m.console.Input())
	}

	m.focusedPanel = FocusRecentCalls
	_, cmd := applyUpdate(m, keyRunes("q"))
	if cmd == nil {
		t.Error("q should quit outside the chat input")
	}
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := newTestModel()
	m.typing = true
	m, cmd := applyUpdate(m, m.spinner.Tick())
	if cmd != nil {
		t.Error("spinner should stop ticking with nothing pending")
	}
	if m.typing {
		t.Error("typing flag should reset")
	}
}

func TestClockStopsAfterFinalize(t *testing.T) {
	m := newTestModel()
	_, cmd := applyUpdate(m, ClockTickMsg{Time: time.Now()})
	if cmd == nil {
		t.Error("clock should keep ticking during the call")
	}
	m.console.FinalizeCall()
	_, cmd = applyUpdate(m, ClockTickMsg{Time: time.Now()})
	if cmd != nil {
		t.Error("clock should stop after finalize")
	}
}

func TestViewRendersWithSize(t *testing.T) {
	m := newTestModel()

	view := m.View()
	for _, want := range []string{"CUSTOMER CARE ASSISTANT", "Margaret Davis", "Quick Questions:", "LIVE CALL TRANSCRIPT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryDialogFitsScreen(t *testing.T) {
	for _, size := range []tea.WindowSizeMsg{{Width: 80, Height: 24}, {Width: 100, Height: 30}} {
		m := newTestModel()
		m, _ = applyUpdate(m, size)
		m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlE})

		view := m.View()
		if got := len(strings.Split(view, "\n")); got != size.Height {
			t.Errorf("%dx%d: view has %d lines", size.Width, size.Height, got)
		}
		for _, want := range []string{"CUSTOMER CARE ASSISTANT", "Duration:", "CALL SUMMARY", "Finalize Call", "Esc Close"} {
			if !strings.Contains(view, want) {
				t.Errorf("%dx%d: view missing %q", size.Width, size.Height, want)
			}
		}
		if m.maxDialogScroll() == 0 {
			t.Fatalf("%dx%d: summary should be taller than the content area", size.Width, size.Height)
		}

		for i := 0; i < 10; i++ {
			m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyPgDown})
		}
		if m.dialogScroll != m.maxDialogScroll() {
			t.Errorf("dialogScroll = %d, want clamp at %d", m.dialogScroll, m.maxDialogScroll())
		}
		view = m.View()
		if got := len(strings.Split(view, "\n")); got != size.Height {
			t.Errorf("%dx%d scrolled: view has %d lines", size.Width, size.Height, got)
		}
		if !strings.Contains(view, "Send Notes to Partner Provider") {
			t.Errorf("%dx%d: scrolling down should reveal the action keys", size.Width, size.Height)
		}
		if strings.Contains(view, "CALL SUMMARY") {
			t.Errorf("%dx%d: the title should scroll out of view", size.Width, size.Height)
		}

		m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyUp})
		if m.dialogScroll != m.maxDialogScroll()-1 {
			t.Errorf("up should scroll one line, dialogScroll = %d", m.dialogScroll)
		}
		for i := 0; i < 10; i++ {
			m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyPgUp})
		}
		if m.dialogScroll != 0 || !strings.Contains(m.View(), "CALL SUMMARY") {
			t.Errorf("pgup should return to the top, dialogScroll = %d", m.dialogScroll)
		}
	}
}

func TestDialogScrollResetsForNewDialog(t *testing.T) {
	m := newTestModel()
	m, _ = applyUpdate(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m, _ = applyUpdate(m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.dialogScroll == 0 {
		t.Fatal("pgdown should scroll the summary")
	}

	m, _ = applyUpdate(m, keyRunes(KeyOpenNotes))
	if m.dialogScroll != 0 {
		t.Errorf("a new dialog should start at the top, dialogScroll = %d", m.dialogScroll)
	}
	if got := len(strings.Split(m.View(), "\n")); got != 24 {
		t.Errorf("notes dialog view has %d lines", got)
	}
}

func TestStyledRowsStayInsideColumns(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	for _, size := range []tea.WindowSizeMsg{{Width: 80, Height: 24}, {Width: 100, Height: 30}, {Width: 120, Height: 40}} {
		m := newTestModel()
		m, _ = applyUpdate(m, size)
		m.focusedPanel = FocusRecentCalls
		m.applyInputFocus()

		lines := strings.Split(m.View(), "\n")
		if len(lines) != size.Height {
			t.Errorf("%dx%d: view has %d lines", size.Width, size.Height, len(lines))
		}
		for i, l := range lines {
			if w := lipgloss.Width(l); w > size.Width {
				t.Errorf("%dx%d line %d: width %d", size.Width, size.Height, i, w)
			}
		}

		// Content rows sit between the top divider and the bottom divider.
		for i := 3; i < 3+m.contentHeight(); i++ {
			plain := ansi.Strip(lines[i])
			col := strings.Index(plain, "│")
			if col < 0 {
				t.Errorf("%dx%d row %d: no column divider in %q", size.Width, size.Height, i, plain)
				continue
			}
			if got := lipgloss.Width(plain[:col]); got != m.assistantWidth() {
				t.Errorf("%dx%d row %d: divider at %d, want %d", size.Width, size.Height, i, got, m.assistantWidth())
			}
		}
	}
}

func TestTruncateToWidthKeepsStyling(t *testing.T) {
	if got := truncateToWidth("hello world", 5); got != "hell…" {
		t.Errorf("plain = %q", got)
	}
	if got := truncateToWidth("short", 10); got != "short" {
		t.Errorf("fits = %q", got)
	}

	styled := "\x1b[31mhello\x1b[0m world"
	got := truncateToWidth(styled, 7)
	if w := lipgloss.Width(got); w != 7 {
		t.Errorf("styled width = %d, want 7", w)
	}
	if ansi.Strip(got) != "hello …" {
		t.Errorf("styled text = %q", ansi.Strip(got))
	}
	if !strings.HasPrefix(got, "\x1b[31m") {
		t.Errorf("styling should survive, got %q", got)
	}
}

func TestDialogFieldCursorBlinks(t *testing.T) {
	m := newTestModel()
	m, cmd := applyUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil {
		t.Fatal("focusing the first field should start its cursor blink")
	}

	// The blink message belongs to the focused field, not the chat input.
	m, next := applyUpdate(m, cmd())
	if next == nil {
		t.Error("the focused field should keep blinking")
	}

	_, cmd = applyUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Error("moving to the next field should start its blink")
	}
}

func TestViewWithoutSize(t *testing.T) {
	m := New(console.New(console.Options{}), Options{})
	view := m.View()
	if view != "Initializing..." {
		t.Errorf("view without size = %q, want 'Initializing...'", view)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 10)
	if len(lines) != 2 || lines[0] != "one two" || lines[1] != "three four" {
		t.Errorf("wrapText = %q", lines)
	}
	if got := wrapText("a\n\nb", 10); len(got) != 3 || got[1] != "" {
		t.Errorf("blank paragraphs should survive, got %q", got)
	}
}

func TestRenderStarsClamps(t *testing.T) {
	if got := renderStars(7); strings.Count(got, "★") != 5 {
		t.Errorf("stars = %q", got)
	}
	if got := renderStars(-1); strings.Count(got, "☆") != 5 {
		t.Errorf("stars = %q", got)
	}
}
