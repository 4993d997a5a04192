package model

import "time"

type ID = uint

// Session is one continuous checked-in interval for a volunteer. A nil
// EndedAt means the session is still open.
type Session struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	UserID    string     `json:"userId" db:"user_id"`
	StartedAt time.Time  `json:"startedAt" db:"started_at"`
	EndedAt   *time.Time `json:"endedAt,omitempty" db:"ended_at"`

	DisplayName string `json:"displayName,omitempty" db:"display_name"`
	Email       string `json:"email,omitempty" db:"email"`
}

// Open reports whether the session has not been checked out yet.
func (s Session) Open() bool {
	return s.EndedAt == nil
}
