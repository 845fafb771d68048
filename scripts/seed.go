package main

import (
	"lms/config"
	"lms/database"
	"lms/models"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo teacher, student, course and quiz bank for local development.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	teacher := seedUser("Test Teacher", "teacher@test.com", "teacher123", models.RoleTeacher)
	student := seedUser("Test Student", "student@test.com", "student123", models.RoleStudent)

	var course models.Course
	if err := db.Where("title = ? AND teacher_id = ?", "Introduction to Go", teacher.ID).First(&course).Error; err != nil {
		course = models.Course{
			Title:       "Introduction to Go",
			Description: "A demo course with lessons and a five-question quiz.",
			TeacherID:   teacher.ID,
			IsActive:    true,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create demo course: %v", err)
		}

		lessons := []models.Lesson{
			{Title: "Getting Started", Content: "Install the toolchain and write your first program.", CourseID: course.ID},
			{Title: "Types and Functions", Content: "Structs, slices, maps and functions.", CourseID: course.ID},
		}
		if err := db.Create(&lessons).Error; err != nil {
			log.Fatalf("Failed to create demo lessons: %v", err)
		}

		quizzes := []models.Quiz{
			{Question: "Which keyword declares a variable?", OptionA: "var", OptionB: "let", OptionC: "dim", OptionD: "def", CorrectAnswer: "A", CourseID: course.ID},
			{Question: "Which type holds text?", OptionA: "int", OptionB: "string", OptionC: "bool", OptionD: "rune", CorrectAnswer: "B", CourseID: course.ID},
			{Question: "Which builtin appends to a slice?", OptionA: "push", OptionB: "add", OptionC: "append", OptionD: "insert", CorrectAnswer: "C", CourseID: course.ID},
			{Question: "Which keyword starts a goroutine?", OptionA: "spawn", OptionB: "run", OptionC: "async", OptionD: "go", CorrectAnswer: "D", CourseID: course.ID},
			{Question: "Which symbol declares and assigns?", OptionA: ":=", OptionB: "==", OptionC: "->", OptionD: "<-", CorrectAnswer: "A", CourseID: course.ID},
		}
		if err := db.Create(&quizzes).Error; err != nil {
			log.Fatalf("Failed to create demo quizzes: %v", err)
		}
	}

	log.Printf("Seed complete: teacher=%d student=%d course=%d", teacher.ID, student.ID, course.ID)
}

func seedUser(name, email, password, role string) models.User {
	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		return user
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user = models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}
