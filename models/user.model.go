package models

import "gorm.io/gorm"

// User roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role     string `json:"role" gorm:"not null"` // teacher or student
}
