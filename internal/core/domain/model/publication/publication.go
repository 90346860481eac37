// Package publication defines the sellable catalog entities embedded by
// value inside an order line: a closed tagged union of Book and Magazine
// sharing a common field set. Publications carry no behavior beyond
// construction-time validation; they are not persisted independently of
// the orders that reference them.
package publication

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

// ErrPublicationIsNotConstructed is returned when a Publication was not
// created through NewBook or NewMagazine.
var ErrPublicationIsNotConstructed = errors.New(
	"Publication must be created via NewBook or NewMagazine",
)

// Publication is an immutable value object representing one order line's
// catalog entity. The variant tag is fixed at construction; variant
// fields of the other kind stay at their zero values.
//
// Invariants:
//   - title is non-empty
//   - price is non-negative
//   - kind is Book or Magazine and never changes
//
// The publish date is an unvalidated date-like string; no calendar
// validation is performed. The id is unique among the lines of an order
// only by caller convention; duplicates are permitted and each line is an
// independent charge.
type Publication struct {
	kind        Kind
	id          string
	title       string
	publishDate string
	price       float64

	// book fields
	author string
	isbn   string

	// magazine fields
	issueNumber int
	publisher   string

	guard guard.ConstructorGuard
}

// NewBook creates the Book variant.
func NewBook(id, title, publishDate string, price float64, author, isbn string) (Publication, error) {
	p := Publication{
		kind:   Book,
		author: author,
		isbn:   isbn,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setCommon(id, title, publishDate),
		p.setPrice(price),
	); err != nil {
		return Publication{}, err
	}

	return p, nil
}

// NewMagazine creates the Magazine variant.
func NewMagazine(id, title, publishDate string, price float64, issueNumber int, publisher string) (Publication, error) {
	p := Publication{
		kind:        Magazine,
		issueNumber: issueNumber,
		publisher:   publisher,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setCommon(id, title, publishDate),
		p.setPrice(price),
	); err != nil {
		return Publication{}, err
	}

	return p, nil
}

// Validate ensures the Publication was built by one of the factories.
func (p Publication) Validate() error {
	return p.guard.Validate(ErrPublicationIsNotConstructed)
}

// Kind returns the variant tag.
func (p Publication) Kind() Kind {
	return p.kind
}

// ID returns the caller-supplied publication identifier.
func (p Publication) ID() string {
	return p.id
}

// Title returns the display title.
func (p Publication) Title() string {
	return p.title
}

// PublishDate returns the date-like publish date string.
func (p Publication) PublishDate() string {
	return p.publishDate
}

// Price returns the line price in the store's single currency unit.
func (p Publication) Price() float64 {
	return p.price
}

// Author returns the author for the Book variant, "" otherwise.
func (p Publication) Author() string {
	return p.author
}

// ISBN returns the ISBN for the Book variant, "" otherwise.
func (p Publication) ISBN() string {
	return p.isbn
}

// IssueNumber returns the issue number for the Magazine variant, 0 otherwise.
func (p Publication) IssueNumber() int {
	return p.issueNumber
}

// Publisher returns the publisher for the Magazine variant, "" otherwise.
func (p Publication) Publisher() string {
	return p.publisher
}

func (p *Publication) setCommon(id, title, publishDate string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	p.id = id
	p.title = title
	p.publishDate = publishDate
	return nil
}

func (p *Publication) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is negative", price),
		)
	}

	p.price = price
	return nil
}
