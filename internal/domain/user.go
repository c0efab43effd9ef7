package domain

import "time"

// User represents a registered member
type User struct {
	ID           string    `gorm:"column:id;primaryKey;size:50" json:"id"`
	Name         string    `gorm:"column:name;size:100" json:"name"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	Level        int       `gorm:"column:level;default:1" json:"level"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	UserID   string `json:"user_id" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPair access/refresh token response
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Level     int    `json:"level"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Level:     u.Level,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
