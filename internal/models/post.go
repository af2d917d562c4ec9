package models

import (
	"time"
)

// Post is a single entity for both root posts and replies: a root post has
// ParentID nil, a reply points at another post. Replies is the reverse
// relation and is only populated one level deep on the detail read path.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `json:"date"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Parent    *Post     `gorm:"foreignKey:ParentID" json:"-"`
	Replies   []Post    `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

// IsRoot reports whether the post is a top-level post rather than a reply.
func (p *Post) IsRoot() bool {
	return p.ParentID == nil
}
