package models

import "time"

// Публичные представления сущностей — то, что уходит клиенту в JSON.
// Пароль наружу не отдается никогда.

type UserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type PostView struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    uint      `json:"userId"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentView struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
