package util

import (
	"fmt"
	"regexp"
	"strings"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

// Signed formats an accidental offset as "+1", "-2" or "0".
func Signed(n int) string {
	if 0 < n {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func SignedList(s []int) string {
	items := make([]string, len(s))
	for i, n := range s {
		items[i] = Signed(n)
	}
	return "[" + strings.Join(items, " ") + "]"
}

// OrDash replaces an empty spelling slot with "-".
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Names drops the empty slots of an accidental-indexed spelling list.
func Names(slots []string) []string {
	result := []string{}
	for _, s := range slots {
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
