// Package irq defines the interface a peripheral uses to assert an
// interrupt line (IRQ or NMI) against the interpreter without the two
// being coupled to each other.
// NOTE: the interpreter only polls Raised() between instructions, not
//       mid-instruction, so level vs. edge triggering is entirely the
//       sender's concern.
package irq

// Sender defines the interface for an IRQ or NMI source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// Line is a simple level-triggered Sender a peripheral can flip
// directly, useful for tests and simple collaborators that don't need
// their own Sender implementation.
type Line struct {
	raised bool
}

// Raised implements Sender.
func (l *Line) Raised() bool { return l.raised }

// Set asserts or clears the line.
func (l *Line) Set(v bool) { l.raised = v }
