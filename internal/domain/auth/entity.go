package auth

import "time"

// User is an account on the travel planner. The pricing page is browsable
// anonymously; an account is only required at checkout.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	PlanID       string    `gorm:"column:plan_id" json:"plan_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
