package orderdoc

import (
	"fmt"
	"time"
)

// Genitive month names for Russian date lines in orders.
var ruMonthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatRuDate renders `«d» month Y г.`, e.g. «5» марта 2026 г.
func FormatRuDate(t time.Time) string {
	return fmt.Sprintf("«%d» %s %d г.", t.Day(), ruMonthsGenitive[t.Month()-1], t.Year())
}

// FormatRuDateLong renders `d month Y г.` without the quotation marks,
// used inside order body text.
func FormatRuDateLong(t time.Time) string {
	return fmt.Sprintf("%d %s %d г.", t.Day(), ruMonthsGenitive[t.Month()-1], t.Year())
}

// FormatShortDate renders dd.mm.yyyy.
func FormatShortDate(t time.Time) string {
	return t.Format("02.01.2006")
}
