/*
Package sanitize provides functions to clean user input before it is logged or displayed.
*/
package sanitize

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxLogLength is the max number of characters a logged value may have.
const MaxLogLength = 512

// Log sanitizes strings created from user input in response to the log4j debacle.
func Log(s string) string {
	if s == "" {
		return "''"
	} else if len(s) > MaxLogLength || strings.Contains(s, "${") {
		return "?"
	}

	spaces := false

	s = strings.Map(func(r rune) rune {
		if r == ' ' {
			spaces = true
			return r
		}

		if unicode.IsPrint(r) {
			return r
		}

		return -1
	}, s)

	if spaces {
		return fmt.Sprintf("'%s'", s)
	}

	return s
}
