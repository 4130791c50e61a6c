package contract

import (
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
)

const numberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NumberGenerator produces human-facing contract numbers.
type NumberGenerator interface {
	Next(day time.Time) string
}

// RandomNumbers builds numbers as PREFIX, YYMMDD and six random
// alphanumerics with no separators, e.g. SCL240301I7XA05. Uniqueness is
// enforced by the database and collisions are retried by the caller.
type RandomNumbers struct {
	prefix string
	suffix func() string
}

func NewRandomNumbers(prefix string) (*RandomNumbers, error) {
	idGenerator, err := nanoid.CustomASCII(numberAlphabet, 6)
	if err != nil {
		return nil, err
	}
	return &RandomNumbers{prefix: prefix, suffix: idGenerator}, nil
}

func (n *RandomNumbers) Next(day time.Time) string {
	return fmt.Sprintf("%s%s%s", n.prefix, day.Format("060102"), n.suffix())
}
