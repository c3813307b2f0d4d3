package orderdoc

import (
	"strings"
	"testing"
	"time"
)

func testStudentOrderData() StudentOrderData {
	return StudentOrderData{
		OrderNumber:        "ДП-2021-0401-20260305",
		StudentName:        "Иванов Иван Иванович",
		StudentTicket:      "2021-0401",
		Topic:              "Разработка информационной системы",
		SupervisorName:     "Петрова Анна Сергеевна",
		SupervisorDegree:   "к.т.н.",
		SupervisorPosition: "доцент",
		RegistrationDate:   time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		Deadline:           time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		CurrentDate:        time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestStudentOrderText(t *testing.T) {
	text := StudentOrderText(testStudentOrderData())

	expectedLines := []string{
		"ПРИКАЗ № ДП-2021-0401-20260305",
		"О закреплении темы дипломной работы",
		"ПРИКАЗЫВАЮ:",
		"1. Закрепить за студентом Иванов Иван Иванович (студ. билет № 2021-0401) тему дипломной работы:",
		"   \"Разработка информационной системы\"",
		"2. Назначить научным руководителем Петрова Анна Сергеевна, к.т.н., доцент.",
		"3. Установить срок сдачи дипломной работы: 1 июня 2026 г..",
		"Тема утверждена: 10 сентября 2025 г..",
	}
	for _, line := range expectedLines {
		if !strings.Contains(text, line) {
			t.Errorf("order text missing %q:\n%s", line, text)
		}
	}
}

func TestStudentOrderMarkdown(t *testing.T) {
	md := StudentOrderMarkdown(testStudentOrderData())

	expected := []string{
		"# ПРИКАЗ № ДП-2021-0401-20260305",
		"**Студент:** Иванов Иван Иванович (№ 2021-0401)",
		"**Тема дипломной работы:** \"Разработка информационной системы\"",
		"*Текст приказа:*",
	}
	for _, s := range expected {
		if !strings.Contains(md, s) {
			t.Errorf("markdown missing %q", s)
		}
	}

	// The literal order text is embedded after the summary
	if !strings.Contains(md, "ПРИКАЗЫВАЮ:") {
		t.Errorf("markdown does not embed the order text")
	}
}

func TestDocumentMarkdown(t *testing.T) {
	md := DocumentMarkdown("DOC-STUDENT-42-20260305-143052", time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), "Первая строка\nВторая строка")

	for _, s := range []string{
		"# Документ № DOC-STUDENT-42-20260305-143052",
		"от 05.03.2026",
		"Первая строка\nВторая строка",
	} {
		if !strings.Contains(md, s) {
			t.Errorf("markdown missing %q:\n%s", s, md)
		}
	}
}
