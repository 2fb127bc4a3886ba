package activity

import (
	"time"

	"github.com/gofrs/uuid"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Activity records a change to a post. It is stored in the post_activities table.
type Activity struct {
	ID         uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID     int64     `gorm:"not null;index"`
	Action     Action    `gorm:"type:varchar(20);not null"` // created, updated, deleted
	Title      string    `gorm:"type:varchar(255);not null"`
	Author     string    `gorm:"type:varchar(255)"`
	OccurredAt time.Time `gorm:"not null;index"`
}

func (Activity) TableName() string { return "post_activities" }

func New(postID int64, action Action, title, author string, at time.Time) *Activity {
	return &Activity{
		ID:         uuid.Must(uuid.NewV4()),
		PostID:     postID,
		Action:     action,
		Title:      title,
		Author:     author,
		OccurredAt: at,
	}
}
