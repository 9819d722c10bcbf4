package constants

// NATS Subjects
const (
	// Quote lifecycle events consumed by the notification mailer
	SubjectQuoteManualRequested = "quote.manual.requested"
	SubjectQuoteReviewed        = "quote.reviewed"
	SubjectQuoteAccepted        = "quote.accepted"
	SubjectQuoteRejected        = "quote.rejected"
	SubjectQuoteCollected       = "quote.collected"

	// User events
	SubjectUserRegistered = "user.registered"
)
