package application

import (
	"time"

	"github.com/oksasatya/user-directory/internal/domain/entity"
)

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// UserEvent is the JSON message published after every successful mutation.
type UserEvent struct {
	Type        string    `json:"type"`
	UserID      int       `json:"userId"`
	Email       string    `json:"email,omitempty"`
	Name        string    `json:"name,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func NewUserEvent(typ string, u entity.User) UserEvent {
	return UserEvent{
		Type:        typ,
		UserID:      u.ID,
		Email:       u.Email,
		Name:        u.Name,
		DisplayName: u.Profile.DisplayName,
		OccurredAt:  time.Now().UTC(),
	}
}
