package models

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	UserName string `json:"userName"`
}

type RegisterData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserName string `json:"userName"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
