package form

// State is where a form is in its submit cycle.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "success"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// Submission tracks a single form's idle -> submitting -> {success | error}
// cycle. A new Begin discards the previous outcome.
type Submission struct {
	state State
}

func (s *Submission) Begin() {
	s.state = Submitting
}

func (s *Submission) Succeed() {
	s.state = Succeeded
}

func (s *Submission) Fail() {
	s.state = Failed
}

func (s Submission) State() State {
	return s.state
}

// Disabled reports whether the submit control has to be disabled.
func (s Submission) Disabled() bool {
	return s.state == Submitting
}

// Label picks the submit button label for the current state.
func (s Submission) Label(idle, busy string) string {
	if s.state == Submitting {
		return busy
	}
	return idle
}
