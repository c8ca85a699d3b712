package domain

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// Script returns the name of the Unicode script the message is written in,
// or an empty string when none can be detected.
func (a Aarambh) Script() string {
	table := whatlanggo.DetectScript(a.message)
	if table == nil {
		return ""
	}
	for name, t := range unicode.Scripts {
		if t == table {
			return name
		}
	}
	return ""
}
