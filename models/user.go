package models

import (
	"time"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	Bio               string    `json:"bio"`
	ProfilePictureURL string    `json:"profilePictureUrl" gorm:"column:profile_picture_url"`
	CreatedAt         time.Time `json:"createdAt"`

	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:NO ACTION"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:NO ACTION"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:NO ACTION"`
}

func (User) TableName() string {
	return "users"
}

type UserRegister struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Bio      string `json:"bio"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
