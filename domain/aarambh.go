package domain

import "github.com/samber/lo"

// DefaultMessage is proclaimed when no message is given at construction.
const DefaultMessage = "ॐ"

// Aarambh holds a single message, fixed at construction.
type Aarambh struct {
	message string
}

// NewAarambh builds an Aarambh from an optional message.
// A nil message falls back to DefaultMessage, an empty one is kept as is.
func NewAarambh(message *string) Aarambh {
	return Aarambh{message: lo.FromPtrOr(message, DefaultMessage)}
}

func (a Aarambh) Proclaim() string {
	return a.message
}
