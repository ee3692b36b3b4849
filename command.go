package tuikit

// Cmd is an abstract input command, already decoded from raw input by the
// host framework. Key-to-command mapping policy lives with the host; the
// widgets only see the closed set below.
type Cmd interface{ isCmd() }

// Move moves the cursor by Delta*Step positions. A Step of 0 means 1.
type Move struct {
	Delta int
	Step  int
}

// Scroll moves the cursor by Delta pages, using the widget's configured
// page step (viewport height or an explicit scroll step).
type Scroll struct {
	Delta int
}

// Position names a collection edge for Jump.
type Position uint8

const (
	Begin Position = iota
	End
)

// Jump moves the cursor to a collection edge.
type Jump struct {
	To Position
}

// Toggle flips the entry under the cursor (checkbox widgets).
type Toggle struct{}

// Submit confirms the current value. For the select widget it also opens
// the drop-down when closed.
type Submit struct{}

// Cancel aborts a provisional interaction, restoring the committed value.
type Cancel struct{}

// Type inserts a rune at the cursor (input widgets).
type Type struct {
	Rune rune
}

// Erase deletes one rune: the one before the cursor when Back is true,
// the one under the cursor otherwise (input widgets).
type Erase struct {
	Back bool
}

func (Move) isCmd()   {}
func (Scroll) isCmd() {}
func (Jump) isCmd()   {}
func (Toggle) isCmd() {}
func (Submit) isCmd() {}
func (Cancel) isCmd() {}
func (Type) isCmd()   {}
func (Erase) isCmd()  {}

// Result is what a widget hands back to the host after performing a
// command. Moving past an edge under Clamp, submitting on an empty
// collection or canceling while already closed are not errors; they are
// defined no-ops producing Unchanged.
type Result interface{ isResult() }

// Unchanged reports that the command had no observable effect.
type Unchanged struct{}

// Changed reports that the widget's state changed, carrying the new state.
type Changed struct {
	State State
}

// Submitted reports an explicit confirmation, carrying the confirmed state.
type Submitted struct {
	State State
}

// Batch aggregates the results of a composite widget forwarding one
// command to several children.
type Batch []Result

func (Unchanged) isResult() {}
func (Changed) isResult()   {}
func (Submitted) isResult() {}
func (Batch) isResult()     {}

// State is a widget's externally observable value: nothing, a single
// index, a set of indexes or a text value.
type State interface{ isState() }

// NoState is the state of widgets with nothing to report.
type NoState struct{}

// IndexState is a single selected index (list, table, radio, select).
type IndexState int

// IndexSetState is a sorted set of selected indexes (checkbox).
type IndexSetState []int

// TextState is a scalar text value (input).
type TextState string

func (NoState) isState()       {}
func (IndexState) isState()    {}
func (IndexSetState) isState() {}
func (TextState) isState()     {}
