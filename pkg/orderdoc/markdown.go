package orderdoc

import (
	"fmt"
	"time"
)

// DocumentMarkdown renders the markdown export of a generated document:
// a number/date banner followed by the literal content.
func DocumentMarkdown(number string, date time.Time, content string) string {
	return fmt.Sprintf(`# Документ № %s

от %s

---

%s
`, number, FormatShortDate(date), content)
}
