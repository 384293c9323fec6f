package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	MemberStatusActive    = "ACTIVE"
	MemberStatusSuspended = "SUSPENDED"
)

type Member struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string     `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Name      string     `gorm:"size:100" json:"name"`
	Role      string     `gorm:"default:'user';not null" json:"role"`
	Status    string     `gorm:"default:'ACTIVE';not null" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (Member) TableName() string {
	return "members"
}
