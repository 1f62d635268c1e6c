package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultReplyDelay is how long the assistant "thinks" before replying.
const DefaultReplyDelay = time.Second

const timestampLayout = "15:04:05"

// Options configures a Console. Zero values fall back to defaults.
type Options struct {
	ReplyDelay time.Duration
	Transcript []TranscriptMessage
	Now        func() time.Time
}

// Console is the view-model for one call. It is not safe for concurrent use;
// the owning event loop serializes every call.
type Console struct {
	now   func() time.Time
	delay time.Duration

	profile    Profile
	transcript []TranscriptMessage
	recent     []RecentCall
	summary    CallSummary
	openedAt   time.Time
	endedAt    time.Time

	chat    []ChatMessage
	input   string
	pending map[string]string // reply ID -> assistant text

	sidebarOpen    bool
	transcriptOpen bool
	dialogs        [dialogCount]bool
	forms          map[Dialog]Form

	notifications []Notification
}

// New returns a Console loaded with the built-in call data.
func New(opts Options) *Console {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	delay := opts.ReplyDelay
	if delay <= 0 {
		delay = DefaultReplyDelay
	}
	transcript := opts.Transcript
	if len(transcript) == 0 {
		transcript = DefaultTranscript()
	}

	c := &Console{
		now:            now,
		delay:          delay,
		profile:        DefaultProfile(),
		transcript:     transcript,
		recent:         RecentCalls(),
		summary:        DefaultSummary(),
		openedAt:       now(),
		pending:        make(map[string]string),
		sidebarOpen:    true,
		transcriptOpen: true,
		forms:          make(map[Dialog]Form),
	}
	for d := range formFields {
		c.forms[d] = Form{}
	}
	return c
}

// SetInput records the current contents of the chat input.
func (c *Console) SetInput(text string) {
	c.input = text
}

// Input returns the current contents of the chat input.
func (c *Console) Input() string {
	return c.input
}

// SendMessage posts free text to the assistant. Blank text is dropped and
// ok is false. The input is cleared right away, not when the reply lands.
func (c *Console) SendMessage(text string) (reply Reply, ok bool) {
	if strings.TrimSpace(text) == "" {
		return Reply{}, false
	}
	c.appendChat(ChatUser, text)
	c.input = ""
	return c.schedule(DefaultAnswer()), true
}

// ClickQuickQuestion posts a quick-question label and schedules its canned
// answer.
func (c *Console) ClickQuickQuestion(label string) Reply {
	c.appendChat(ChatUser, label)
	return c.schedule(QuickAnswer(label))
}

// SelectRecentCall asks the assistant to load a past call and schedules a
// reply echoing its stored fields.
func (c *Console) SelectRecentCall(call RecentCall) Reply {
	c.appendChat(ChatUser, recentCallRequest(call))
	return c.schedule(recentCallAnswer(call))
}

func (c *Console) schedule(answer string) Reply {
	id := uuid.NewString()
	c.pending[id] = answer
	return Reply{ID: id, Delay: c.delay}
}

// Deliver appends the assistant reply for id. It reports false when the
// reply was already delivered or cancelled.
func (c *Console) Deliver(id string) bool {
	answer, ok := c.pending[id]
	if !ok {
		return false
	}
	delete(c.pending, id)
	c.appendChat(ChatAI, answer)
	return true
}

// Cancel drops a scheduled reply so a late Deliver is a no-op.
func (c *Console) Cancel(id string) {
	delete(c.pending, id)
}

// CancelPending drops every scheduled reply and returns how many there were.
func (c *Console) CancelPending() int {
	n := len(c.pending)
	clear(c.pending)
	return n
}

// Pending returns the number of replies not yet delivered.
func (c *Console) Pending() int {
	return len(c.pending)
}

func (c *Console) appendChat(t ChatType, text string) {
	c.chat = append(c.chat, ChatMessage{
		Type:      t,
		Message:   text,
		Timestamp: c.now().Format(timestampLayout),
	})
}

// CompleteCall opens the call-summary dialog. Pending replies keep running.
func (c *Console) CompleteCall() {
	c.dialogs[DialogSummary] = true
}

// FinalizeCall closes the summary and stops the call clock.
func (c *Console) FinalizeCall() Notification {
	if c.endedAt.IsZero() {
		c.endedAt = c.now()
	}
	c.dialogs[DialogSummary] = false
	return c.notify("Call Completed", "Call summary completed for "+c.summary.CustomerName+".")
}

// CreateCase submits a case draft. Nothing is stored.
func (c *Console) CreateCase(form Form) Notification {
	body := "Case has been created successfully."
	if s := form.Get("subject"); s != "" {
		body = fmt.Sprintf("Case %q has been created successfully.", s)
	}
	return c.finishForm(DialogCase, "Case Created", body)
}

// CreateActivity submits a customer activity draft. Nothing is stored.
func (c *Console) CreateActivity(form Form) Notification {
	body := "Customer activity has been created successfully."
	if t := form.Get("type"); t != "" {
		body = fmt.Sprintf("Customer activity %q has been created successfully.", t)
	}
	return c.finishForm(DialogActivity, "Activity Created", body)
}

// CreateCodeRed submits an escalation draft. Nothing is sent.
func (c *Console) CreateCodeRed(form Form) Notification {
	body := "Code Red has been raised and the escalation team notified."
	if s := form.Get("severity"); s != "" {
		body = fmt.Sprintf("%s Code Red has been raised and the escalation team notified.", s)
	}
	return c.finishForm(DialogCodeRed, "Code Red Created", body)
}

// SendNotes submits notes for a partner provider. Nothing is sent.
func (c *Console) SendNotes(form Form) Notification {
	body := "Notes have been sent to the partner provider."
	if p := form.Get("provider"); p != "" {
		body = fmt.Sprintf("Notes have been sent to %s.", p)
	}
	return c.finishForm(DialogNotes, "Notes Sent", body)
}

func (c *Console) finishForm(d Dialog, title, body string) Notification {
	c.forms[d] = Form{}
	c.dialogs[d] = false
	return c.notify(title, body)
}

func (c *Console) notify(title, body string) Notification {
	n := Notification{
		ID:    uuid.NewString(),
		Title: title,
		Body:  body,
		At:    c.now(),
	}
	c.notifications = append(c.notifications, n)
	return n
}

// Submit runs the action behind a dialog's primary button using its current
// draft. It reports false for dialogs without one.
func (c *Console) Submit(d Dialog) (Notification, bool) {
	switch d {
	case DialogSummary:
		return c.FinalizeCall(), true
	case DialogCase:
		return c.CreateCase(c.Form(d)), true
	case DialogActivity:
		return c.CreateActivity(c.Form(d)), true
	case DialogCodeRed:
		return c.CreateCodeRed(c.Form(d)), true
	case DialogNotes:
		return c.SendNotes(c.Form(d)), true
	default:
		return Notification{}, false
	}
}

// OpenDialog shows d without touching any other dialog.
func (c *Console) OpenDialog(d Dialog) {
	if d >= 0 && d < dialogCount {
		c.dialogs[d] = true
	}
}

// CancelDialog hides d and discards its draft.
func (c *Console) CancelDialog(d Dialog) {
	if d < 0 || d >= dialogCount {
		return
	}
	c.dialogs[d] = false
	if HasForm(d) {
		c.forms[d] = Form{}
	}
}

// DialogOpen reports whether d is visible.
func (c *Console) DialogOpen(d Dialog) bool {
	if d < 0 || d >= dialogCount {
		return false
	}
	return c.dialogs[d]
}

// OpenDialogs returns the visible dialogs in stacking order, bottom first.
func (c *Console) OpenDialogs() []Dialog {
	var open []Dialog
	for _, d := range []Dialog{DialogSummary, DialogNotes, DialogActivity, DialogCase, DialogCodeRed} {
		if c.dialogs[d] {
			open = append(open, d)
		}
	}
	return open
}

// SetField updates one value of a form draft.
func (c *Console) SetField(d Dialog, key, value string) {
	f, ok := c.forms[d]
	if !ok {
		return
	}
	f[key] = value
}

// Form returns a copy of the draft for d.
func (c *Console) Form(d Dialog) Form {
	return c.forms[d].clone()
}

// ToggleSidebar shows or hides the transcript panel.
func (c *Console) ToggleSidebar() {
	c.sidebarOpen = !c.sidebarOpen
}

// SidebarOpen reports whether the transcript panel is visible.
func (c *Console) SidebarOpen() bool {
	return c.sidebarOpen
}

// ToggleTranscript expands or collapses the transcript accordion.
func (c *Console) ToggleTranscript() {
	c.transcriptOpen = !c.transcriptOpen
}

// TranscriptOpen reports whether the transcript accordion is expanded.
func (c *Console) TranscriptOpen() bool {
	return c.transcriptOpen
}

// Chat returns the chat history, oldest first.
func (c *Console) Chat() []ChatMessage {
	return append([]ChatMessage(nil), c.chat...)
}

// Transcript returns the call transcript.
func (c *Console) Transcript() []TranscriptMessage {
	return append([]TranscriptMessage(nil), c.transcript...)
}

// RecentCalls returns the customer's previous calls.
func (c *Console) RecentCalls() []RecentCall {
	return append([]RecentCall(nil), c.recent...)
}

// Summary returns the wrap-up record.
func (c *Console) Summary() CallSummary {
	return c.summary
}

// Profile returns the customer on the call.
func (c *Console) Profile() Profile {
	return c.profile
}

// Notifications returns every notification emitted so far.
func (c *Console) Notifications() []Notification {
	return append([]Notification(nil), c.notifications...)
}

// Finalized reports whether FinalizeCall has run.
func (c *Console) Finalized() bool {
	return !c.endedAt.IsZero()
}

// CallDuration returns how long the call has been running. The clock stops
// once the call is finalized.
func (c *Console) CallDuration() time.Duration {
	end := c.endedAt
	if end.IsZero() {
		end = c.now()
	}
	return c.profile.CallElapsed + end.Sub(c.openedAt)
}

// FormatDuration renders d as m:ss, or h:mm:ss past an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
