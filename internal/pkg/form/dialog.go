package form

type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpen:
		return "open"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Dialog is the pure state of a form dialog:
// Closed -> Open(draft) -> Submitting -> Closed | Open(error).
// Every transition returns a new value and leaves the receiver intact.
type Dialog[D any] struct {
	Phase Phase
	Draft D
	Error string
}

// Open starts over with draft and no error.
func (d Dialog[D]) Open(draft D) Dialog[D] {
	if d.Phase == PhaseSubmitting {
		return d
	}
	return Dialog[D]{Phase: PhaseOpen, Draft: draft}
}

func (d Dialog[D]) Edit(draft D) Dialog[D] {
	if d.Phase != PhaseOpen {
		return d
	}
	d.Draft = draft
	return d
}

// Reject keeps the dialog open with an inline message.
func (d Dialog[D]) Reject(msg string) Dialog[D] {
	if d.Phase == PhaseClosed {
		return d
	}
	d.Phase = PhaseOpen
	d.Error = msg
	return d
}

// BeginSubmit reports false when a submit is not allowed, e.g. one is
// already in flight.
func (d Dialog[D]) BeginSubmit() (Dialog[D], bool) {
	if d.Phase != PhaseOpen {
		return d, false
	}
	d.Phase = PhaseSubmitting
	d.Error = ""
	return d, true
}

// Succeed closes the dialog and discards the draft.
func (d Dialog[D]) Succeed() Dialog[D] {
	if d.Phase != PhaseSubmitting {
		return d
	}
	return Dialog[D]{}
}

// Cancel closes the dialog unless a submit is in flight.
func (d Dialog[D]) Cancel() Dialog[D] {
	if d.Phase == PhaseSubmitting {
		return d
	}
	return Dialog[D]{}
}

func (d Dialog[D]) IsOpen() bool {
	return d.Phase != PhaseClosed
}
