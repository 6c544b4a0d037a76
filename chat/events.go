package chat

type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type EventKind string

const (
	EventAppendUser      EventKind = "append_user"
	EventAppendRevisions EventKind = "append_revisions"
	EventDelete          EventKind = "delete"
	EventClear           EventKind = "clear"
)

// Event records one mutation of the message list. Seq increases by one for
// every event of a session. Scroll is set only for appends.
type Event struct {
	Seq    uint64
	Kind   EventKind
	Index  int
	Count  int
	Scroll bool
}

const maxEvents = 100
