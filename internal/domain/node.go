package domain

// NodeData holds the user-visible fields of a task node. The nesting matches
// the wire format the graph editor sends and expects back.
type NodeData struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      NodeStatus `json:"status"`
}

// Position is a node's placement on the 2D canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TaskNode is a task entity positioned in 2D space. IDs are unique within a
// project; clients may supply them, the server generates one otherwise.
type TaskNode struct {
	ID        string   `json:"id"`
	Data      NodeData `json:"data"`
	Position  Position `json:"position"`
	Type      NodeType `json:"type"`
	ProjectID string   `json:"-"`
}
