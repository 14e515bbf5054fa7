package domain

// NodeRef identifies a node scheduled for removal.
type NodeRef struct {
	ID string `json:"id"`
}

// EdgeRef identifies an edge scheduled for removal.
type EdgeRef struct {
	ID string `json:"id"`
}

// EdgeInput is the client payload for a new edge. Type and the behavior flags
// are server-assigned on insert.
type EdgeInput struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// ProjectDiff is a structured set of add/update/remove instructions applied
// to a project graph in one edit call. All fields are optional.
type ProjectDiff struct {
	Name          *string     `json:"name,omitempty"`
	NodesToUpdate []TaskNode  `json:"nodesToUpdate,omitempty"`
	NodesToAdd    []TaskNode  `json:"nodesToAdd,omitempty"`
	NodesToRemove []NodeRef   `json:"nodesToRemove,omitempty"`
	EdgesToAdd    []EdgeInput `json:"edgesToAdd,omitempty"`
	EdgesToRemove []EdgeRef   `json:"edgesToRemove,omitempty"`
}

// Empty reports whether the diff carries no instructions at all.
func (d ProjectDiff) Empty() bool {
	return d.Name == nil &&
		len(d.NodesToUpdate) == 0 &&
		len(d.NodesToAdd) == 0 &&
		len(d.NodesToRemove) == 0 &&
		len(d.EdgesToAdd) == 0 &&
		len(d.EdgesToRemove) == 0
}
