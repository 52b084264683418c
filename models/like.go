package models

import (
	"time"
)

// A user can like a given post at most once; the composite unique index is
// the enforcement, not application logic.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"postId" gorm:"column:post_id;not null;uniqueIndex:idx_likes_post_user"`
	UserID    uint      `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_likes_post_user"`
	LikeCount int       `json:"likeCount" gorm:"column:like_count;default:1"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
