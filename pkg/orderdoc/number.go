package orderdoc

import (
	"fmt"
	"strings"
	"time"
)

// GroupOrderNumber builds УП-YYYYMMDD-HHMMSS. Two orders created within the
// same second collide, the unique index on order_number rejects the second.
func GroupOrderNumber(now time.Time) string {
	return fmt.Sprintf("УП-%s-%s", now.Format("20060102"), now.Format("150405"))
}

// StudentOrderNumber builds ДП-<ticket>-YYYYMMDD from the student ticket number.
func StudentOrderNumber(studentTicket string, now time.Time) string {
	return fmt.Sprintf("ДП-%s-%s", studentTicket, now.Format("20060102"))
}

// DocumentNumber builds DOC-OBJECTTYPE-OBJECTID-YYYYMMDD-HHMMSS.
func DocumentNumber(objectType, objectID string, now time.Time) string {
	return fmt.Sprintf("DOC-%s-%s-%s", strings.ToUpper(objectType), objectID, now.Format("20060102-150405"))
}
