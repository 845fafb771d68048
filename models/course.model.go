package models

import "gorm.io/gorm"

// Course represents a learning course owned by a teacher
type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	TeacherID   uint   `json:"teacher_id" gorm:"index;not null"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

// Lesson is a content unit within a course
type Lesson struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
}
