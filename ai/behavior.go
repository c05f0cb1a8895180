// Package ai contains the behavior trees that drive enemies.
package ai

// Status is the result of ticking a behavior node
type Status int

const (
	Success Status = iota
	Failure
	Running
)

func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case Running:
		return "RUNNING"
	default:
		return "UNKNOWN"
	}
}

// Node is any behavior tree node
type Node interface {
	Tick() Status
}

// Selector succeeds on the first child that succeeds and fails otherwise.
// Children after a success are not ticked.
type Selector struct {
	Children []Node
}

// NewSelector creates a selector over children
func NewSelector(children ...Node) *Selector {
	return &Selector{Children: children}
}

// Tick implements Node
func (s *Selector) Tick() Status {
	for _, child := range s.Children {
		if child.Tick() == Success {
			return Success
		}
	}
	return Failure
}

// Sequence fails on the first child that fails and succeeds otherwise.
type Sequence struct {
	Children []Node
}

// NewSequence creates a sequence over children
func NewSequence(children ...Node) *Sequence {
	return &Sequence{Children: children}
}

// Tick implements Node
func (s *Sequence) Tick() Status {
	for _, child := range s.Children {
		if child.Tick() == Failure {
			return Failure
		}
	}
	return Success
}

// NodeFunc adapts a function to a Node
type NodeFunc func() Status

// Tick implements Node
func (f NodeFunc) Tick() Status { return f() }
