// time.go
package time

import (
	"strings"
	"time"
)

// ShortDur shortens the string representation of a time.Duration from d.String().
// Used by listeners when reporting elapsed step time.
func ShortDur(d time.Duration) string {
	s := d.String()
	if d == 0 {
		return "0s"
	}
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return s
}
