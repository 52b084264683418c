package models

import (
	"time"
)

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"postId" gorm:"column:post_id;not null"`
	UserID    uint      `json:"userId" gorm:"column:user_id;not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentCreate struct {
	Content string `json:"content" binding:"required"`
}
