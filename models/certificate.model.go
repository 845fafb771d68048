package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued when a student's graded quiz attempt first reaches
// the certificate threshold for a course.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	IssuedAt          time.Time `json:"issued_at"`
}
