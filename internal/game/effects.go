package game

// Effect is an instruction for the host, executed only after the new session state has
// been committed.
type Effect interface {
	effect()
}

// Transfer pays Amount of Denom from the session's funds to To.
type Transfer struct {
	To     string
	Amount uint64
	Denom  string
}

// Notify delivers an event to an external service.
type Notify struct {
	Target     string
	Event      string
	Attributes map[string]string
}

func (Transfer) effect() {}
func (Notify) effect()   {}

// Event names carried by Notify.
const (
	EventConcluded = "session_concluded"
)
