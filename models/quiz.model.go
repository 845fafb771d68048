package models

import "gorm.io/gorm"

// Quiz is a single multiple-choice question in a course's quiz bank.
// CorrectAnswer is stored as an uppercase letter A-D.
type Quiz struct {
	gorm.Model
	Question      string `json:"question" gorm:"not null"`
	OptionA       string `json:"option_a" gorm:"not null"`
	OptionB       string `json:"option_b" gorm:"not null"`
	OptionC       string `json:"option_c" gorm:"not null"`
	OptionD       string `json:"option_d" gorm:"not null"`
	CorrectAnswer string `json:"-" gorm:"not null"`
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
}
