package publication

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Kind discriminates the closed set of publication variants. The set is
// fixed; no open-ended extension is supported.
type Kind int

const (
	// UnknownKind catches uninitialized Kind values.
	UnknownKind Kind = iota

	// Book is a publication with an author and an ISBN.
	Book

	// Magazine is a publication with an issue number and a publisher.
	Magazine
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "UNKNOWN",
		Book:        "BOOK",
		Magazine:    "MAGAZINE",
	}
}

func getValidKindStrings() map[Kind]string {
	return map[Kind]string{
		Book:     "BOOK",
		Magazine: "MAGAZINE",
	}
}

// KindFromString parses the wire discriminator ("BOOK" or "MAGAZINE").
// Any other value is rejected.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
		"publication type",
		fmt.Errorf("%q is not a valid publication type", s),
	)
}

// Validate checks that the Kind is one of the declared variants.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"publication type",
			fmt.Errorf("%d is not a valid publication type", k),
		)
	}
	return nil
}

// String returns the wire form of the discriminator. Implements
// fmt.Stringer; safe on invalid values.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}
