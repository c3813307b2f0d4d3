package orderdoc

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildRoster(t *testing.T) {
	students := []RosterStudent{
		{
			FullName:           "Иванов Иван Иванович",
			HasProject:         true,
			Topic:              "Разработка информационной системы",
			SupervisorFullName: "Петрова Анна Сергеевна",
			SupervisorDegree:   "к.т.н.",
			SupervisorPosition: "доцент",
		},
		{
			FullName:   "Сидоров Петр Петрович",
			HasProject: false,
		},
		{
			FullName:           "Кузнецова Мария Андреевна",
			HasProject:         true,
			Topic:              "Анализ больших данных",
			SupervisorFullName: "Иванов Сергей Михайлович",
			SupervisorDegree:   "д.т.н.",
			SupervisorPosition: "профессор",
		},
	}

	expected := []RosterRow{
		{
			Index:          1,
			StudentInfo:    "Иванов Иван Иванович\nТема: Разработка информационной системы",
			SupervisorInfo: "Петрова Анна Сергеевна,\nк.т.н.,\nдоцент",
		},
		{
			Index:          2,
			StudentInfo:    "Сидоров Петр Петрович\nТема: не назначена",
			SupervisorInfo: "не назначен",
		},
		{
			Index:          3,
			StudentInfo:    "Кузнецова Мария Андреевна\nТема: Анализ больших данных",
			SupervisorInfo: "Иванов Сергей Михайлович,\nд.т.н.,\nпрофессор",
		},
	}

	got := BuildRoster(students)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("BuildRoster() = %v, expected %v", got, expected)
	}
}

func TestBuildRosterEmpty(t *testing.T) {
	got := BuildRoster(nil)
	if len(got) != 0 {
		t.Errorf("expected no rows, got %v", got)
	}
}

func TestOrderClause1(t *testing.T) {
	info := GroupOrderInfo{
		OrderNumber: "УП-20260305-143052",
		OrderDate:   time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		GroupName:   "ИВТ-401",
		StudyFormRu: "Очная",
		Direction:   "09.03.01 Информатика и вычислительная техника",
	}

	expected := "1. Утвердить темы выпускных квалификационных работ и назначить научных руководителей для студентов группы ИВТ-401 (Очная форма обучения) направления подготовки 09.03.01 Информатика и вычислительная техника:"
	if got := OrderClause1(info); got != expected {
		t.Errorf("OrderClause1() = %q, expected %q", got, expected)
	}
}
