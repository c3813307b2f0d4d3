package orderdoc

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
)

/*
 * Attention: tdewolff/canvas uses mm as the unit of measurement.
 */

const (
	pdfPageWidthMM  = 210.0
	pdfPageHeightMM = 297.0
	pdfMarginMM     = 18.0
	pdfLineHeightMM = 5.3
	// Lines are clipped instead of wrapped
	pdfMaxLineRunes = 100
	pdfBodyFontPt   = 10.0
	pdfTitleFontPt  = 16.0
)

// PdfRenderer draws document exports as fixed-font line dumps, one page at a
// time, in the preferred font family.
type PdfRenderer struct {
	cfg        *Config
	fontFamily *canvas.FontFamily
}

func NewPdfRenderer(cfg *Config, fontName string) (*PdfRenderer, error) {
	loader, err := NewFontLoader(cfg)
	if err != nil {
		return nil, err
	}

	fontFamily, err := loader.LoadFont(fontName, canvas.FontRegular)
	if err != nil {
		fontFamily, err = loader.LoadFirstFont(canvas.FontRegular)
		if err != nil {
			return nil, fmt.Errorf("failed to load any font: %w", err)
		}
	}

	return &PdfRenderer{cfg: cfg, fontFamily: fontFamily}, nil
}

func clipLine(line string) string {
	runes := []rune(line)
	if len(runes) > pdfMaxLineRunes {
		return string(runes[:pdfMaxLineRunes])
	}
	return line
}

// RenderDocumentPdf writes the export to output: a number/date header on the
// first page, then the content line by line, new page when the current one
// is full.
func (pr *PdfRenderer) RenderDocumentPdf(number string, date time.Time, content string, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create pdf file: %w", err)
	}
	defer f.Close()

	titleFace := pr.fontFamily.Face(pdfTitleFontPt, canvas.Black, canvas.FontBold, canvas.FontNormal)
	bodyFace := pr.fontFamily.Face(pdfBodyFontPt, canvas.Black, canvas.FontRegular, canvas.FontNormal)

	writer := pdf.New(f, pdfPageWidthMM, pdfPageHeightMM, nil)

	page := canvas.New(pdfPageWidthMM, pdfPageHeightMM)
	ctx := canvas.NewContext(page)
	firstPage := true

	y := pdfPageHeightMM - pdfMarginMM
	ctx.DrawText(pdfMarginMM, y, canvas.NewTextLine(titleFace, fmt.Sprintf("Документ № %s", number), canvas.Left))
	y -= 2 * pdfLineHeightMM
	ctx.DrawText(pdfMarginMM, y, canvas.NewTextLine(bodyFace, fmt.Sprintf("от %s", FormatShortDate(date)), canvas.Left))
	y -= 2 * pdfLineHeightMM

	flush := func() {
		if !firstPage {
			writer.NewPage(pdfPageWidthMM, pdfPageHeightMM)
		}
		page.RenderTo(writer)
		firstPage = false
	}

	for _, line := range strings.Split(content, "\n") {
		if y < pdfMarginMM {
			flush()
			page = canvas.New(pdfPageWidthMM, pdfPageHeightMM)
			ctx = canvas.NewContext(page)
			y = pdfPageHeightMM - pdfMarginMM
		}
		if strings.TrimSpace(line) != "" {
			ctx.DrawText(pdfMarginMM, y, canvas.NewTextLine(bodyFace, clipLine(line), canvas.Left))
		}
		y -= pdfLineHeightMM
	}
	flush()

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
