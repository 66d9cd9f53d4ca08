package dataview

// State is the lifecycle of one data-view instance.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ViewState drives Idle -> Loading -> {Ready, Error}; Ready and Error go back
// to Loading on the next request. Each Begin issues a new request token and
// invalidates the previous one, so at most one reload is live per view:
// completions carrying a stale token are discarded without a state change and
// without surfacing an error.
type ViewState struct {
	state State
	token uint64
}

func NewViewState() *ViewState {
	return &ViewState{state: StateIdle}
}

// Begin starts a reload and returns its token.
func (v *ViewState) Begin() uint64 {
	v.token++
	v.state = StateLoading
	return v.token
}

// Complete finishes the reload identified by token. Stale tokens are ignored
// and Complete reports whether the result was applied.
func (v *ViewState) Complete(token uint64, err error) bool {
	if token != v.token {
		return false
	}
	if err != nil {
		v.state = StateError
	} else {
		v.state = StateReady
	}
	return true
}

func (v *ViewState) State() State { return v.state }
