package domain

import "time"

// Site represents a tenant site
type Site struct {
	ID        string    `gorm:"column:id;primaryKey;size:50" json:"id"`
	Subdomain string    `gorm:"column:subdomain;size:63;uniqueIndex" json:"subdomain"`
	Name      string    `gorm:"column:name;size:100" json:"name"`
	Plan      string    `gorm:"column:plan;size:20;default:free" json:"plan"`
	Active    bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Site) TableName() string { return "sites" }
