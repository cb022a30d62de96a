// README: Pluralization and headline formatting for the comparison view.
package comparison

import (
	"fmt"
	"strings"
)

// Pluralize renders "1 hour", "3 hours", "2 buses".
func Pluralize(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralWord(singular))
}

func pluralWord(w string) string {
	switch {
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "sh"), strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "x"):
		return w + "es"
	case strings.HasSuffix(w, "y") && len(w) > 1 && !strings.ContainsRune("aeiou", rune(w[len(w)-2])):
		return w[:len(w)-1] + "ies"
	default:
		return w + "s"
	}
}

func HoursLabel(h int) string {
	return Pluralize(h, "hour")
}

func CapacityLabel(n int) string {
	if n <= 0 {
		return "Capacity unknown"
	}
	return "Up to " + Pluralize(n, "passenger")
}

// NoneFoundMessage is shown in place of an empty bucket, e.g. "No shuttle buses found".
func NoneFoundMessage(c Category) string {
	return "No " + strings.ToLower(c.Label()) + " found"
}

// Headline titles the main shortlist.
func Headline(n int) string {
	switch n {
	case 0:
		return "No matching vehicles"
	case 1:
		return "Top Option"
	default:
		return fmt.Sprintf("Top %d Options", n)
	}
}
