package assistant

// Branch names the handler a request was dispatched to.
type Branch string

const (
	BranchNone       Branch = "none"
	BranchMath       Branch = "math"
	BranchSearch     Branch = "search"
	BranchGenerative Branch = "generative"
)

// State is a step of the per-request routing machine.
type State int

const (
	StateStart State = iota
	StateClassified
	StateDispatched
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateClassified:
		return "classified"
	case StateDispatched:
		return "dispatched"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// CanTransition reports whether the machine may move from s to next.
// Start may jump straight to Done when classification fails.
func (s State) CanTransition(next State) bool {
	switch s {
	case StateStart:
		return next == StateClassified || next == StateDone
	case StateClassified:
		return next == StateDispatched
	case StateDispatched:
		return next == StateDone
	default:
		return false
	}
}

// Decision is the routing outcome for one request. It is consumed exactly once.
type Decision struct {
	Branch Branch
	Input  string
}

// RespondInput is a single user turn plus the caller-owned history.
type RespondInput struct {
	Message string
	Context []string
}

// RespondOutput carries the reply and the routing diagnostics.
type RespondOutput struct {
	Response   string
	Intent     string
	Confidence float64
	Scores     map[string]float64
	Branch     Branch
	Path       []State
}
