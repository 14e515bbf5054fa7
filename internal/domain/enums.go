package domain

// NodeStatus is the workflow state of a task node.
type NodeStatus string

const (
	StatusTodo       NodeStatus = "TODO"
	StatusInProgress NodeStatus = "IN_PROGRESS"
	StatusDone       NodeStatus = "DONE"
)

// Valid reports whether s is a known node status.
func (s NodeStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// NodeType is the render type of a node or edge. Only TASK exists today.
type NodeType string

const NodeTask NodeType = "TASK"

// Valid reports whether t is a known node type.
func (t NodeType) Valid() bool {
	return t == NodeTask
}
