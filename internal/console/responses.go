package console

import "fmt"

// QuickQuestions are the labels offered as one-press assistant prompts.
var QuickQuestions = []string{
	"Previous Issues",
	"Device History",
	"Last Call Notes",
	"Warranty Status",
	"Pairing Steps",
}

var quickAnswers = map[string]string{
	"Previous Issues": "Margaret has contacted support 3 times this year: a volume adjustment question " +
		"(June 12, resolved), battery drain on her previous Horizon 5X (May 3, follow-up pending) and a " +
		"delayed replacement order (February 19, escalated).",
	"Device History": "Current device: Horizon 71X, purchased last week. Previous device: Horizon 5X, " +
		"worn for 3 years. Paired phone on file: iPhone 14 running iOS 17.",
	"Last Call Notes": "June 12, 2024 (8:42): customer could not raise volume past level 6 on the Horizon 5X. " +
		"Rep reset the volume profile in the companion app. Customer confirmed the fix before ending the call.",
	"Warranty Status": "Warranty Status: ACTIVE. The Horizon 71X is covered until January 15th, 2026 for " +
		"manufacturing defects, with one loss and damage replacement remaining.",
	"Pairing Steps": "Pairing steps for Horizon 71X with iPhone:\n" +
		"1. Open Settings > Accessibility > Hearing Devices.\n" +
		"2. Open and close the battery doors on both hearing aids to enter pairing mode.\n" +
		"3. Wait for \"Horizon 71X\" to appear under MFi Hearing Devices and tap it.\n" +
		"4. Tap Pair on both prompts, one for each hearing aid.",
}

const fallbackAnswer = "I can help with Margaret's profile, call history, device information and " +
	"troubleshooting steps. Try one of the quick questions or ask about something specific."

const defaultAnswer = "Based on Margaret's profile and this conversation, the Horizon 71X is not showing up " +
	"because it was never paired through Accessibility > Hearing Devices. Walk her through the pairing steps " +
	"and confirm Bluetooth is on."

// QuickAnswer returns the canned reply for a quick-question label, or the
// generic help text when the label is unknown.
func QuickAnswer(label string) string {
	if answer, ok := quickAnswers[label]; ok {
		return answer
	}
	return fallbackAnswer
}

// DefaultAnswer is the reply to free-text chat input. The input is not read.
func DefaultAnswer() string {
	return defaultAnswer
}

func recentCallRequest(call RecentCall) string {
	return fmt.Sprintf("Load details for call %s from %s", call.ID, call.Date)
}

func recentCallAnswer(call RecentCall) string {
	return fmt.Sprintf("Call %s with %s on %s (%s). Status: %s. Issue: %s.",
		call.ID, call.CustomerName, call.Date, call.Duration, call.Status, call.Issue)
}
