package domain

import "time"

// Todo represents a personal to-do item
type Todo struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OwnerID   string     `gorm:"column:owner_id;size:50;index" json:"owner_id"`
	Title     string     `gorm:"column:title;size:255" json:"title"`
	Done      bool       `gorm:"column:done;default:false" json:"done"`
	DueAt     *time.Time `gorm:"column:due_at" json:"due_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Todo) TableName() string { return "todos" }

// CreateTodoRequest represents a to-do creation request
type CreateTodoRequest struct {
	Title string     `json:"title" binding:"required,max=255"`
	DueAt *time.Time `json:"due_at"`
}

// UpdateTodoRequest represents a to-do update request
type UpdateTodoRequest struct {
	Title *string    `json:"title" binding:"omitempty,max=255"`
	Done  *bool      `json:"done"`
	DueAt *time.Time `json:"due_at"`
}
