package models

import "gorm.io/gorm"

// StudentProgress is the per-student per-course progress record, created
// lazily on the first progress-relevant event. QuizScore/QuizTotal hold the
// best graded attempt; CertificateEarned is never reset once true.
type StudentProgress struct {
	gorm.Model
	StudentID         uint `json:"student_id" gorm:"index;not null"`
	CourseID          uint `json:"course_id" gorm:"index;not null"`
	LessonCompleted   bool `json:"lesson_completed" gorm:"default:false"`
	QuizScore         int  `json:"quiz_score" gorm:"default:0"`
	QuizTotal         int  `json:"quiz_total" gorm:"default:0"`
	QuizAttempts      int  `json:"quiz_attempts" gorm:"default:0"`
	CertificateEarned bool `json:"certificate_earned" gorm:"default:false"`
}
