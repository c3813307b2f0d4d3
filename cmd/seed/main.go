package main

import (
	"context"
	"fmt"
	"time"

	"github.com/azhuravlev/diplomdocs/internal/config"
	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/database"
	"github.com/azhuravlev/diplomdocs/internal/env"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv()
}

// Seeds demo groups, supervisors, students and diploma projects.
func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}
	ctx := context.Background()

	groupsData := []model.Group{
		{Name: "ИВТ-401", Faculty: "Информатика и вычислительная техника", Course: 4},
		{Name: "ПМИ-301", Faculty: "Прикладная математика и информатика", Course: 3},
		{Name: "ИБ-501", Faculty: "Информационная безопасность", Course: 5},
		{Name: "ФИИТ-201", Faculty: "Фундаментальная информатика и ИТ", Course: 2},
	}
	groups := make([]model.Group, 0, len(groupsData))
	for _, g := range groupsData {
		if err := db.WithContext(ctx).Create(&g).Error; err != nil {
			logger.Panic(err)
		}
		groups = append(groups, g)
	}
	logger.Info("Groups created")

	supervisorsData := []model.Supervisor{
		{
			LastName: "Иванов", FirstName: "Иван", Patronymic: "Иванович",
			AcademicDegree: "д.т.н.", Position: "профессор",
			Email: "i.ivanov@university.edu", Phone: "+7 (999) 123-45-67",
		},
		{
			LastName: "Петрова", FirstName: "Мария", Patronymic: "Сергеевна",
			AcademicDegree: "к.т.н.", Position: "доцент",
			Email: "m.petrova@university.edu", Phone: "+7 (999) 234-56-78",
		},
		{
			LastName: "Сидоров", FirstName: "Алексей", Patronymic: "Петрович",
			AcademicDegree: "к.ф.-м.н.", Position: "старший преподаватель",
			Email: "a.sidorov@university.edu", Phone: "+7 (999) 345-67-89",
		},
	}
	supervisors := make([]model.Supervisor, 0, len(supervisorsData))
	for _, s := range supervisorsData {
		if err := db.WithContext(ctx).Create(&s).Error; err != nil {
			logger.Panic(err)
		}
		supervisors = append(supervisors, s)
	}
	logger.Info("Supervisors created")

	firstNames := []string{"Александр", "Мария", "Дмитрий", "Анна", "Сергей", "Екатерина", "Алексей", "Ольга", "Иван", "Наталья"}
	lastNames := []string{"Иванов", "Петров", "Сидоров", "Смирнов", "Кузнецов", "Попов", "Васильев", "Фёдоров", "Морозов", "Волков"}

	students := make([]model.Student, 0, 20)
	for i := 1; i <= 20; i++ {
		patronymic := "Алексеевна"
		if i%2 == 0 {
			patronymic = "Александрович"
		}
		student := model.Student{
			LastName:   lastNames[i%len(lastNames)],
			FirstName:  firstNames[i%len(firstNames)],
			Patronymic: patronymic,
			StudentID:  fmt.Sprintf("STD-2023-%03d", i),
			GroupID:    groups[i%len(groups)].ID,
			Email:      fmt.Sprintf("student%d@university.edu", i),
			Phone:      fmt.Sprintf("+7 (999) %03d-%02d-%02d", 500+i, i, i+10),
		}
		if err := db.WithContext(ctx).Create(&student).Error; err != nil {
			logger.Panic(err)
		}
		students = append(students, student)
	}
	logger.Info("Students created")

	topics := []string{
		"Разработка системы управления учебным процессом",
		"Исследование методов машинного обучения для анализа текста",
		"Создание мобильного приложения для университета",
		"Разработка веб-сервиса для онлайн-обучения",
		"Анализ и проектирование баз данных",
		"Исследование алгоритмов компьютерного зрения",
		"Разработка системы защиты информации",
		"Создание платформы для дистанционного образования",
		"Анализ больших данных в образовании",
		"Разработка интеллектуальной системы тестирования",
	}
	statuses := []constant.DiplomaStatus{
		constant.DiplomaStatusRegistered,
		constant.DiplomaStatusInProgress,
		constant.DiplomaStatusReview,
		constant.DiplomaStatusCompleted,
		constant.DiplomaStatusDefended,
	}

	for i, topic := range topics {
		student := students[i]
		registration := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*10)
		deadline := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*5)

		project := model.DiplomaProject{
			Topic:            topic,
			Description:      fmt.Sprintf("Демо описание дипломной работы студента %s", student.FullName()),
			StudentID:        student.ID,
			SupervisorID:     supervisors[i%len(supervisors)].ID,
			RegistrationDate: &registration,
			Deadline:         &deadline,
			Status:           statuses[i%len(statuses)],
		}
		if err := db.WithContext(ctx).Create(&project).Error; err != nil {
			logger.Panic(err)
		}
	}
	logger.Info("Diploma projects created")

	logger.Info("Demo data is ready")
}
