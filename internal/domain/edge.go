package domain

// TaskEdge is a directed connection between two task nodes of one project.
// At most one edge may connect a given (source, target) pair.
type TaskEdge struct {
	ID            string   `json:"id"`
	Source        string   `json:"source"`
	Target        string   `json:"target"`
	Type          NodeType `json:"type"`
	Animated      bool     `json:"animated"`
	Deletable     bool     `json:"deletable"`
	Reconnectable bool     `json:"reconnectable"`
	ProjectID     string   `json:"-"`
}
