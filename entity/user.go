package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Fullname     string    `gorm:"size:255;not null;index" json:"fullname"`
	Password     string    `gorm:"size:128;not null" json:"-"`
	Avatar       string    `gorm:"size:512;not null" json:"avatar"`
	CoverImage   string    `gorm:"size:512" json:"cover_image"`
	RefreshToken string    `gorm:"size:512" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the projection returned anywhere a user appears in a
// response. Password and refresh token never leave this package.
type PublicUser struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Fullname   string    `json:"fullname"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"cover_image"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Fullname:   u.Fullname,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// OwnerRef is the short owner projection embedded in videos, comments and
// tweets.
type OwnerRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Fullname string    `json:"fullname"`
	Avatar   string    `json:"avatar"`
}

func (u *User) Ref() OwnerRef {
	return OwnerRef{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		Avatar:   u.Avatar,
	}
}
