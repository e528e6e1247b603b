package http

// State is a step of serving a single connection. Every connection ends up Closed,
// no matter which path it took.
type State uint8

const (
	AwaitingRead State = iota
	Parsing
	Matching
	Dispatched
	Responding
	Closed
)

var stateNames = [...]string{
	AwaitingRead: "awaiting read",
	Parsing:      "parsing",
	Matching:     "matching",
	Dispatched:   "dispatched",
	Responding:   "responding",
	Closed:       "closed",
}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}
