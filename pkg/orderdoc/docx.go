package orderdoc

import (
	"fmt"
	"io"
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"
)

const docxFontFamily = "Times New Roman"

func setRunFont(run document.Run, sizePt float64, bold bool) {
	run.Properties().SetFontFamily(docxFontFamily)
	run.Properties().SetSize(measurement.Distance(sizePt) * measurement.Point)
	if bold {
		run.Properties().SetBold(true)
	}
}

// addText writes text into the paragraph, turning \n into line breaks within
// one run.
func addText(para document.Paragraph, text string, sizePt float64, bold bool) {
	run := para.AddRun()
	setRunFont(run, sizePt, bold)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		run.AddText(line)
	}
}

func addCentered(doc *document.Document, text string, sizePt float64, bold bool) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	addText(para, text, sizePt, bold)
}

func addJustified(doc *document.Document, text string, sizePt float64) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcBoth)
	addText(para, text, sizePt, false)
}

// addSpacer inserts an empty paragraph with the given space after, the way
// the printed orders separate their blocks.
func addSpacer(doc *document.Document, afterPt float64) {
	para := doc.AddParagraph()
	para.Properties().Spacing().SetAfter(measurement.Distance(afterPt) * measurement.Point)
}

func setCellText(cell document.Cell, text string, align wml.ST_Jc, sizePt float64) {
	para := cell.AddParagraph()
	if align != wml.ST_JcUnset {
		para.Properties().SetAlignment(align)
	}
	addText(para, text, sizePt, false)
}

func removeTableBorders(table document.Table) {
	borders := table.Properties().Borders()
	borders.SetAll(wml.ST_BorderNone, color.Auto, 0)
}

// A4 portrait in twentieths of a point.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
)

func setupOrderPage(doc *document.Document) {
	section := doc.BodySection()
	size := wml.NewCT_PageSz()
	size.WAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(pageWidthTwips)}
	size.HAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(pageHeightTwips)}
	size.OrientAttr = wml.ST_PageOrientationPortrait
	section.X().PgSz = size
	section.SetPageMargins(
		2*measurement.Centimeter,   // top
		1.5*measurement.Centimeter, // right
		2*measurement.Centimeter,   // bottom
		2.5*measurement.Centimeter, // left
		1.25*measurement.Centimeter,
		1.25*measurement.Centimeter,
		0,
	)
}

// RenderGroupOrderDocx writes the topic assignment order for a whole group
// in the institutional layout: ministry header, date/city/number line,
// ПРИКАЗЫВАЮ clauses, the roster table and the signature blocks.
func RenderGroupOrderDocx(w io.Writer, info GroupOrderInfo, rows []RosterRow) error {
	doc := document.New()
	setupOrderPage(doc)

	addCentered(doc, "Министерство науки и высшего образования Российской Федерации", 14, true)
	addSpacer(doc, 28)

	addCentered(doc, "Федеральное государственное бюджетное образовательное учреждение\nвысшего образования", 14, true)
	addSpacer(doc, 14)
	addCentered(doc, "«Государственный университет управления»", 16, true)
	addSpacer(doc, 28)

	addCentered(doc, "ПРИКАЗ", 16, true)
	addSpacer(doc, 28)

	// Date on the left, city centered, order number on the right
	headTable := doc.AddTable()
	headTable.Properties().SetAlignment(wml.ST_JcTableLeft)
	headRow := headTable.AddRow()
	dateCell := headRow.AddCell()
	dateCell.Properties().SetWidth(2 * measurement.Inch)
	setCellText(dateCell, FormatRuDate(info.OrderDate), wml.ST_JcLeft, 14)
	cityCell := headRow.AddCell()
	cityCell.Properties().SetWidth(3 * measurement.Inch)
	setCellText(cityCell, "г. Москва", wml.ST_JcCenter, 14)
	numberCell := headRow.AddCell()
	numberCell.Properties().SetWidth(2 * measurement.Inch)
	setCellText(numberCell, fmt.Sprintf("№ %s", info.OrderNumber), wml.ST_JcRight, 14)
	addSpacer(doc, 28)

	subjPara := doc.AddParagraph()
	addText(subjPara, "ОБ утверждении тем выпускных\nквалификационных работ и назначении руководителей", 14, true)
	addSpacer(doc, 28)

	ordainPara := doc.AddParagraph()
	addText(ordainPara, "ПРИКАЗЫВАЮ:", 14, true)
	addSpacer(doc, 28)

	addJustified(doc, OrderClause1(info), 14)

	rosterTable := doc.AddTable()
	rosterTable.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 0.5*measurement.Point)
	hdr := rosterTable.AddRow()
	idxHdr := hdr.AddCell()
	idxHdr.Properties().SetWidth(2 * measurement.Centimeter)
	setCellText(idxHdr, "№ п/п", wml.ST_JcUnset, 14)
	studentHdr := hdr.AddCell()
	studentHdr.Properties().SetWidth(10 * measurement.Centimeter)
	setCellText(studentHdr, "ФИО студента, тема ВКР", wml.ST_JcUnset, 14)
	supervisorHdr := hdr.AddCell()
	supervisorHdr.Properties().SetWidth(6 * measurement.Centimeter)
	setCellText(supervisorHdr, "Научный руководитель", wml.ST_JcUnset, 14)

	for _, r := range rows {
		row := rosterTable.AddRow()
		idxCell := row.AddCell()
		idxCell.Properties().SetWidth(2 * measurement.Centimeter)
		setCellText(idxCell, fmt.Sprintf("%d", r.Index), wml.ST_JcUnset, 14)
		studentCell := row.AddCell()
		studentCell.Properties().SetWidth(10 * measurement.Centimeter)
		setCellText(studentCell, r.StudentInfo, wml.ST_JcUnset, 14)
		supervisorCell := row.AddCell()
		supervisorCell.Properties().SetWidth(6 * measurement.Centimeter)
		setCellText(supervisorCell, r.SupervisorInfo, wml.ST_JcUnset, 14)
	}
	addSpacer(doc, 28)

	addJustified(doc, OrderClause2, 14)
	addSpacer(doc, 56)

	addSignatureBlocks(doc)

	if err := doc.Save(w); err != nil {
		return fmt.Errorf("failed to save group order docx: %w", err)
	}
	return nil
}

// Signature blocks at the bottom of the order, borderless tables with the
// fixed institutional signatories.
func addSignatureBlocks(doc *document.Document) {
	signTable := doc.AddTable()
	signTable.Properties().SetAlignment(wml.ST_JcTableLeft)
	removeTableBorders(signTable)

	signRows := [][2]string{
		{"Проректор", ""},
		{"___________________ Д.Ю. Брюханов", ""},
		{"", ""},
		{"Проект приказа вносит:", "Согласовано:"},
		{"И.о. заведующего кафедрой\nинформационных систем", "И.о. директора Института\nинформационных систем"},
		{"___________________ Д.В. Стефановский", "___________________ О.М. Писарева"},
	}
	for _, pair := range signRows {
		row := signTable.AddRow()
		left := row.AddCell()
		left.Properties().SetWidth(9 * measurement.Centimeter)
		setCellText(left, pair[0], wml.ST_JcUnset, 14)
		right := row.AddCell()
		right.Properties().SetWidth(9 * measurement.Centimeter)
		setCellText(right, pair[1], wml.ST_JcUnset, 14)
	}
	addSpacer(doc, 28)

	legalTable := doc.AddTable()
	legalTable.Properties().SetAlignment(wml.ST_JcTableRight)
	removeTableBorders(legalTable)
	for _, line := range []string{"Заместитель директора\nПравового департамента", "___________________ В.В. Андросенко", ""} {
		cell := legalTable.AddRow().AddCell()
		cell.Properties().SetWidth(9 * measurement.Centimeter)
		setCellText(cell, line, wml.ST_JcUnset, 14)
	}
	addSpacer(doc, 28)

	academicTable := doc.AddTable()
	academicTable.Properties().SetAlignment(wml.ST_JcTableRight)
	removeTableBorders(academicTable)
	for _, line := range []string{"Директор Департамента академической политики\nи реализации образовательных программ", "___________________ Н.А. Стракова", ""} {
		cell := academicTable.AddRow().AddCell()
		cell.Properties().SetWidth(9 * measurement.Centimeter)
		setCellText(cell, line, wml.ST_JcUnset, 14)
	}
}

// RenderStudentOrderDocx writes the single student topic assignment order:
// a summary block of bold labels followed by the full order text.
func RenderStudentOrderDocx(w io.Writer, d StudentOrderData) error {
	doc := document.New()
	setupOrderPage(doc)

	addCentered(doc, fmt.Sprintf("ПРИКАЗ № %s", d.OrderNumber), 16, true)
	addCentered(doc, "О закреплении темы дипломной работы", 14, true)
	doc.AddParagraph()

	summary := [][2]string{
		{"Студент: ", fmt.Sprintf("%s (студ. билет № %s)", d.StudentName, d.StudentTicket)},
		{"Тема дипломной работы: ", fmt.Sprintf("\"%s\"", d.Topic)},
		{"Научный руководитель: ", fmt.Sprintf("%s, %s, %s", d.SupervisorName, d.SupervisorDegree, d.SupervisorPosition)},
		{"Дата регистрации темы: ", FormatRuDateLong(d.RegistrationDate)},
		{"Срок сдачи: ", FormatRuDateLong(d.Deadline)},
	}
	for _, pair := range summary {
		para := doc.AddParagraph()
		addText(para, pair[0], 14, true)
		addText(para, pair[1], 14, false)
	}

	doc.AddParagraph()
	para := doc.AddParagraph()
	addText(para, "Текст приказа", 14, true)

	for _, line := range strings.Split(StudentOrderText(d), "\n") {
		linePara := doc.AddParagraph()
		addText(linePara, line, 14, strings.HasPrefix(line, "ПРИКАЗЫВАЮ:"))
	}

	if err := doc.Save(w); err != nil {
		return fmt.Errorf("failed to save student order docx: %w", err)
	}
	return nil
}

// RenderDocumentDocx writes a generated document export: number heading,
// date line and the content, one paragraph per non-empty line.
func RenderDocumentDocx(w io.Writer, number string, dateStr string, content string) error {
	doc := document.New()
	setupOrderPage(doc)

	addCentered(doc, fmt.Sprintf("Документ № %s", number), 16, true)
	addCentered(doc, fmt.Sprintf("от %s", dateStr), 14, false)
	doc.AddParagraph()

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		para := doc.AddParagraph()
		addText(para, line, 14, false)
	}

	if err := doc.Save(w); err != nil {
		return fmt.Errorf("failed to save document docx: %w", err)
	}
	return nil
}
