package interpreter

// Completion is how a statement finished. A break travels up the executor
// call chain as BreakRequested until the nearest switch consumes it.
type Completion int

const (
	Completed Completion = iota
	BreakRequested
)

func (c Completion) String() string {
	switch c {
	case Completed:
		return "completed"
	case BreakRequested:
		return "break"
	default:
		return "unknown"
	}
}
