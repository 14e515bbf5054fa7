package domain

import "time"

// Project is the top-level owned container of a task graph. Nodes and Edges
// are always populated on reads so clients receive the full aggregate.
type Project struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Nodes     []TaskNode `json:"nodes"`
	Edges     []TaskEdge `json:"edges"`
}
