package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Username string    `gorm:"unique;not null"`
	Password string    `gorm:"not null"`
	Posts    []Post    `gorm:"foreignkey:UserID"`
	Comments []Comment `gorm:"foreignkey:UserID"`
}

type Post struct {
	gorm.Model
	Title    string    `gorm:"not null"`
	Body     string    `gorm:"not null"`
	UserID   uint      `gorm:"not null"`
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Text   string `gorm:"not null"`
	PostID uint   `gorm:"not null"`
	UserID uint   `gorm:"not null"`
}
