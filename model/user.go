package model

import (
	"time"
)

type User struct {
	Id        string    `gorm:"column:id;type:uuid;not null;primaryKey;" json:"id"`
	Email     string    `gorm:"column:email;type:text;not null;uniqueIndex:users_email_key;" json:"email"`
	Password  string    `gorm:"column:password;type:text;not null;" json:"-"`
	Name      string    `gorm:"column:name;type:text;not null;" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

//---------------------------------------
//---------------------------------------

type Profile struct {
	Id        string `gorm:"column:id;type:uuid;not null;primaryKey;" json:"id"`
	Username  string `gorm:"column:username;type:text;not null;uniqueIndex:profiles_username_key;" json:"username"`
	AvatarUrl string `gorm:"column:avatar_url;type:text;" json:"avatarUrl"`
}

func (Profile) TableName() string {
	return "profiles"
}

//---------------------------------------
//---------------------------------------

type CurrentUserRes struct {
	Id       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatarUrl"`
}

type SignupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
