package valueobjects

// EventKind labels a timeline entry.
type EventKind string

const (
	EventOpening           EventKind = "opening"
	EventUpdated           EventKind = "updated"
	EventStatusChanged     EventKind = "status_changed"
	EventClosed            EventKind = "closed"
	EventReopened          EventKind = "reopened"
	EventAttachmentAdded   EventKind = "attachment_added"
	EventAttachmentRemoved EventKind = "attachment_removed"
	EventComment           EventKind = "comment"
)

var validEventKinds = map[EventKind]bool{
	EventOpening:           true,
	EventUpdated:           true,
	EventStatusChanged:     true,
	EventClosed:            true,
	EventReopened:          true,
	EventAttachmentAdded:   true,
	EventAttachmentRemoved: true,
	EventComment:           true,
}

func (k EventKind) String() string {
	return string(k)
}

func (k EventKind) IsValid() bool {
	return validEventKinds[k]
}

// ClassifyStatusChange picks the event kind for a move between two statuses.
// Any move into a terminal status is a close. Leaving a terminal status for a
// non-terminal one is a reopen.
func ClassifyStatusChange(prevTerminal, newTerminal bool) EventKind {
	switch {
	case newTerminal:
		return EventClosed
	case prevTerminal:
		return EventReopened
	default:
		return EventStatusChanged
	}
}
