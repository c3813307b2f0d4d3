package orderdoc

import (
	"fmt"
	"time"
)

// GroupOrderInfo is everything the group order renderers need, already
// flattened from storage.
type GroupOrderInfo struct {
	OrderNumber string
	OrderDate   time.Time
	GroupName   string
	// Localized study form, e.g. "Очная"
	StudyFormRu string
	Direction   string
}

// RosterStudent is one student of the ordered group. Topic and supervisor
// fields stay empty when no diploma project is assigned.
type RosterStudent struct {
	FullName           string
	HasProject         bool
	Topic              string
	SupervisorFullName string
	SupervisorDegree   string
	SupervisorPosition string
}

// RosterRow is a rendered roster table row.
type RosterRow struct {
	Index          int
	StudentInfo    string
	SupervisorInfo string
}

// BuildRoster maps students to table rows, one row per student in input
// order. Students without a project get the fixed unassigned literals.
func BuildRoster(students []RosterStudent) []RosterRow {
	rows := make([]RosterRow, 0, len(students))
	for i, s := range students {
		row := RosterRow{Index: i + 1}
		if s.HasProject {
			row.StudentInfo = fmt.Sprintf("%s\nТема: %s", s.FullName, s.Topic)
			row.SupervisorInfo = fmt.Sprintf("%s,\n%s,\n%s", s.SupervisorFullName, s.SupervisorDegree, s.SupervisorPosition)
		} else {
			row.StudentInfo = fmt.Sprintf("%s\nТема: не назначена", s.FullName)
			row.SupervisorInfo = "не назначен"
		}
		rows = append(rows, row)
	}
	return rows
}

// OrderClause1 is the first clause of the group order body.
func OrderClause1(info GroupOrderInfo) string {
	return fmt.Sprintf(
		"1. Утвердить темы выпускных квалификационных работ и назначить научных руководителей для студентов группы %s (%s форма обучения) направления подготовки %s:",
		info.GroupName, info.StudyFormRu, info.Direction,
	)
}

// OrderClause2 is the fixed control clause.
const OrderClause2 = "2. Контроль за исполнением настоящего приказа возложить на и.о. заведующего кафедрой информационных систем Д.В. Стефановского."
