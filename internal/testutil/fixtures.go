package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow/internal/domain"
)

var testEmailCounter atomic.Int64

// User options
type UserOption func(*domain.User)

func WithEmail(email string) UserOption {
	return func(u *domain.User) {
		u.Email = email
	}
}

func WithPhotoURL(url string) UserOption {
	return func(u *domain.User) {
		u.PhotoURL = &url
	}
}

func NewTestUser(displayName string, opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	n := testEmailCounter.Add(1)
	u := &domain.User{
		ID:          uuid.New().String(),
		Email:       fmt.Sprintf("user%d@example.com", n),
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func NewTestProject(name, ownerID string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TaskNode options
type NodeOption func(*domain.TaskNode)

func WithNodeStatus(s domain.NodeStatus) NodeOption {
	return func(n *domain.TaskNode) {
		n.Data.Status = s
	}
}

func WithNodeID(id string) NodeOption {
	return func(n *domain.TaskNode) {
		n.ID = id
	}
}

func WithNodePosition(x, y float64) NodeOption {
	return func(n *domain.TaskNode) {
		n.Position = domain.Position{X: x, Y: y}
	}
}

func NewTestNode(projectID, title string, opts ...NodeOption) *domain.TaskNode {
	n := &domain.TaskNode{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Data: domain.NodeData{
			Title:  title,
			Status: domain.StatusTodo,
		},
		Type: domain.NodeTask,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// TaskEdge options
type EdgeOption func(*domain.TaskEdge)

func WithEdgeID(id string) EdgeOption {
	return func(e *domain.TaskEdge) {
		e.ID = id
	}
}

func NewTestEdge(projectID, source, target string, opts ...EdgeOption) *domain.TaskEdge {
	e := &domain.TaskEdge{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		Source:        source,
		Target:        target,
		Type:          domain.NodeTask,
		Deletable:     true,
		Reconnectable: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
