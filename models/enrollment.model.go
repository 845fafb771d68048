package models

import "gorm.io/gorm"

// Enrollment ties a student to a course. A user may enroll in a given
// course at most once.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID uint `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
}
