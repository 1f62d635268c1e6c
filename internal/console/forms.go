package console

// Dialog identifies an overlay. Each has its own visibility flag; nothing
// stops several being open at once.
type Dialog int

const (
	DialogSummary Dialog = iota
	DialogCase
	DialogActivity
	DialogCodeRed
	DialogNotes
	dialogCount
)

func (d Dialog) String() string {
	switch d {
	case DialogSummary:
		return "Call Summary"
	case DialogCase:
		return "Create Case"
	case DialogActivity:
		return "Create Customer Activity"
	case DialogCodeRed:
		return "Create Code Red"
	case DialogNotes:
		return "Send Notes to Partner Provider"
	}
	return "Unknown"
}

// Field describes one input of a form dialog.
type Field struct {
	Key         string
	Label       string
	Placeholder string
}

// Form is an in-progress dialog draft keyed by Field.Key.
type Form map[string]string

// Get returns the value for key, or "" when unset.
func (f Form) Get(key string) string {
	return f[key]
}

// Empty reports whether every value in the form is blank.
func (f Form) Empty() bool {
	for _, v := range f {
		if v != "" {
			return false
		}
	}
	return true
}

func (f Form) clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

var formFields = map[Dialog][]Field{
	DialogCase: {
		{Key: "subject", Label: "Subject", Placeholder: "Hearing aid pairing"},
		{Key: "category", Label: "Category", Placeholder: "Connectivity"},
		{Key: "priority", Label: "Priority", Placeholder: "Low / Medium / High"},
		{Key: "description", Label: "Description", Placeholder: "What happened on the call"},
	},
	DialogActivity: {
		{Key: "type", Label: "Activity Type", Placeholder: "Follow-up call"},
		{Key: "due", Label: "Due Date", Placeholder: "YYYY-MM-DD"},
		{Key: "notes", Label: "Notes", Placeholder: "Details for the assignee"},
	},
	DialogCodeRed: {
		{Key: "severity", Label: "Severity", Placeholder: "Critical / High"},
		{Key: "reason", Label: "Reason", Placeholder: "Why this needs escalation"},
		{Key: "details", Label: "Details", Placeholder: "Customer impact and next steps"},
	},
	DialogNotes: {
		{Key: "provider", Label: "Partner Provider", Placeholder: "Clinic or audiologist"},
		{Key: "notes", Label: "Notes", Placeholder: "Summary to share"},
	},
}

// Fields returns the inputs of a form dialog, or nil for dialogs without a form.
func Fields(d Dialog) []Field {
	return formFields[d]
}

// HasForm reports whether d collects input.
func HasForm(d Dialog) bool {
	_, ok := formFields[d]
	return ok
}
