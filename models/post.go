package models

import (
	"time"
)

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"column:user_id;not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	User     User      `json:"user" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:NO ACTION"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:NO ACTION"`
}

func (Post) TableName() string {
	return "posts"
}

type PostCreate struct {
	Content string `json:"content" binding:"required"`
}
