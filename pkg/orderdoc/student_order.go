package orderdoc

import (
	"fmt"
	"time"
)

// StudentOrderData carries everything the topic assignment order needs.
type StudentOrderData struct {
	OrderNumber        string
	StudentName        string
	StudentTicket      string
	Topic              string
	SupervisorName     string
	SupervisorDegree   string
	SupervisorPosition string
	RegistrationDate   time.Time
	Deadline           time.Time
	CurrentDate        time.Time
}

// StudentOrderText renders the plain text of the topic assignment order.
func StudentOrderText(d StudentOrderData) string {
	return fmt.Sprintf(`ПРИКАЗ № %s
О закреплении темы дипломной работы

На основании решения кафедры и в соответствии с учебным планом,

ПРИКАЗЫВАЮ:

1. Закрепить за студентом %s (студ. билет № %s) тему дипломной работы:
   "%s"

2. Назначить научным руководителем %s, %s, %s.

3. Установить срок сдачи дипломной работы: %s.

Тема утверждена: %s.

Декан факультета:
___________________ /                    /

%s г.
`,
		d.OrderNumber,
		d.StudentName, d.StudentTicket,
		d.Topic,
		d.SupervisorName, d.SupervisorDegree, d.SupervisorPosition,
		FormatRuDateLong(d.Deadline),
		FormatRuDateLong(d.RegistrationDate),
		FormatRuDateLong(d.CurrentDate),
	)
}

// StudentOrderMarkdown renders the markdown export: a summary header followed
// by the literal order text.
func StudentOrderMarkdown(d StudentOrderData) string {
	return fmt.Sprintf(`# ПРИКАЗ № %s
## О закреплении темы дипломной работы

**Студент:** %s (№ %s)

**Тема дипломной работы:** "%s"

**Научный руководитель:** %s, %s, %s

**Дата регистрации темы:** %s

**Срок сдачи:** %s

---
*Текст приказа:*

%s
`,
		d.OrderNumber,
		d.StudentName, d.StudentTicket,
		d.Topic,
		d.SupervisorName, d.SupervisorDegree, d.SupervisorPosition,
		FormatRuDateLong(d.RegistrationDate),
		FormatRuDateLong(d.Deadline),
		StudentOrderText(d),
	)
}
