package orderdoc

import (
	"bytes"
	"testing"
	"time"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
)

func TestSetupOrderPage(t *testing.T) {
	doc := document.New()
	setupOrderPage(doc)

	sectPr := doc.BodySection().X()
	if sectPr.PgSz == nil {
		t.Fatal("expected page size to be set")
	}
	if got := *sectPr.PgSz.WAttr.ST_UnsignedDecimalNumber; got != pageWidthTwips {
		t.Errorf("page width = %d, want %d", got, pageWidthTwips)
	}
	if got := *sectPr.PgSz.HAttr.ST_UnsignedDecimalNumber; got != pageHeightTwips {
		t.Errorf("page height = %d, want %d", got, pageHeightTwips)
	}
	if sectPr.PgSz.OrientAttr != wml.ST_PageOrientationPortrait {
		t.Errorf("orientation = %v, want portrait", sectPr.PgSz.OrientAttr)
	}
	if sectPr.PgMar == nil {
		t.Error("expected page margins to be set")
	}
}

func TestRenderGroupOrderDocx(t *testing.T) {
	info := GroupOrderInfo{
		OrderNumber: "УП-20260305-143052",
		OrderDate:   time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		GroupName:   "ИВТ-401",
		StudyFormRu: "Очная",
		Direction:   "09.03.01 Информатика и вычислительная техника",
	}
	rows := BuildRoster([]RosterStudent{
		{FullName: "Иванов Иван Иванович", HasProject: true, Topic: "Тема", SupervisorFullName: "Петрова Анна Сергеевна", SupervisorDegree: "к.т.н.", SupervisorPosition: "доцент"},
		{FullName: "Сидоров Петр Петрович", HasProject: false},
	})

	var buf bytes.Buffer
	if err := RenderGroupOrderDocx(&buf, info, rows); err != nil {
		t.Fatalf("RenderGroupOrderDocx() error: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("expected non-empty docx output")
	}
	// docx files are zip archives
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("output does not look like a docx archive")
	}
}

func TestRenderStudentOrderDocx(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderStudentOrderDocx(&buf, testStudentOrderData()); err != nil {
		t.Fatalf("RenderStudentOrderDocx() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("output does not look like a docx archive")
	}
}

func TestRenderDocumentDocx(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDocumentDocx(&buf, "DOC-GROUP-7-20260305-143052", "05.03.2026", "Строка 1\n\nСтрока 2"); err != nil {
		t.Fatalf("RenderDocumentDocx() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("output does not look like a docx archive")
	}
}
