package domain

import "time"

// User mirrors the identity provider's account. ID equals the provider uid;
// the row is created lazily on first login.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    *string   `json:"photoURL,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
