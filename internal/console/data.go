package console

import "time"

// DefaultProfile returns the customer on the active call.
func DefaultProfile() Profile {
	return Profile{
		Name:        "Margaret Davis",
		State:       "TX",
		Phone:       "iPhone 14",
		HearingAid:  "Horizon 71X",
		CallElapsed: 2*time.Minute + 35*time.Second,
	}
}

// DefaultTranscript returns the built-in call transcript.
func DefaultTranscript() []TranscriptMessage {
	return []TranscriptMessage{
		{
			Speaker:   SpeakerCustomer,
			Message:   "Hi, I'm having trouble with my hearing aids connecting to my phone.",
			Timestamp: "10:23:15",
		},
		{
			Speaker:   SpeakerCustomer,
			Message:   "I have an iPhone 14. The hearing aids are the Horizon 71X that I got last week.",
			Timestamp: "10:23:28",
		},
		{
			Speaker:   SpeakerRep,
			Message:   "Perfect, I can see your account here. Have you tried putting the hearing aids in pairing mode?",
			Timestamp: "10:23:35",
		},
		{
			Speaker:   SpeakerCustomer,
			Message:   "Yes, I tried that but the phone doesn't seem to detect them.",
			Timestamp: "10:24:02",
		},
		{
			Speaker:   SpeakerRep,
			Message:   "Let me walk you through the process step by step. First, can you go to Settings > Accessibility on your iPhone?",
			Timestamp: "10:24:15",
		},
	}
}

// RecentCalls returns the customer's call history, newest first.
func RecentCalls() []RecentCall {
	return []RecentCall{
		{
			ID:           "CALL-2024-0612",
			CustomerName: "Margaret Davis",
			Date:         "June 12, 2024",
			Duration:     "8:42",
			Status:       StatusResolved,
			Issue:        "Volume adjustment with the previous Horizon 5X",
		},
		{
			ID:           "CALL-2024-0503",
			CustomerName: "Margaret Davis",
			Date:         "May 3, 2024",
			Duration:     "14:10",
			Status:       StatusFollowUp,
			Issue:        "Battery draining within half a day",
		},
		{
			ID:           "CALL-2024-0219",
			CustomerName: "Margaret Davis",
			Date:         "February 19, 2024",
			Duration:     "21:05",
			Status:       StatusEscalated,
			Issue:        "Replacement order delayed past promised date",
		},
	}
}

// DefaultSummary returns the wrap-up record for the active call.
func DefaultSummary() CallSummary {
	return CallSummary{
		CustomerName:     "Margaret Davis",
		Rating:           4,
		PrimaryReason:    "Device Connectivity Issues",
		SecondaryReasons: []string{"Bluetooth Pairing", "iPhone Compatibility"},
		Summary: "Customer experiencing connectivity issues with new Horizon 71X hearing aids and iPhone 14. " +
			"Resolved through step-by-step pairing process and accessibility settings configuration.",
		CasesCreated:       []string{"CASE-2024-0001: Hearing Aid Pairing"},
		CustomerActivities: []string{"Follow-up call scheduled", "User manual emailed"},
		Improvements: []string{
			"Consider proactive pairing instructions for new devices",
			"Update knowledge base with iPhone 14 specific steps",
		},
	}
}
