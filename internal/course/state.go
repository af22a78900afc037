package course

// LoadState is the catalog view's fetch progress. Exactly one of Loading,
// Failed or Loaded is active at a time.
type LoadState interface {
	loadState()
}

// Loading is the initial state of an activation.
type Loading struct{}

// Failed is the terminal state after any fetch failure.
type Failed struct {
	Message string
}

// Loaded is the terminal state after a successful fetch. Courses may be empty.
type Loaded struct {
	Courses []Course
}

func (Loading) loadState() {}
func (Failed) loadState()  {}
func (Loaded) loadState()  {}

// Settled reports whether s is terminal for the current activation.
func Settled(s LoadState) bool {
	switch s.(type) {
	case Failed, Loaded:
		return true
	default:
		return false
	}
}

// StateName returns a short label for logging.
func StateName(s LoadState) string {
	switch s.(type) {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Resolve maps the outcome of a fetch to its terminal state.
func Resolve(courses []Course, err error) LoadState {
	if err != nil {
		return Failed{Message: FailureMessage(err)}
	}
	if courses == nil {
		courses = []Course{}
	}
	return Loaded{Courses: courses}
}
