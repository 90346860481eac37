// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It handles the conversion between the order
// aggregate and its relational representation, with order lines stored as
// a JSONB document alongside the scalar columns.
package orderrepo

import (
	"encoding/json"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/publication"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Order lines are denormalized into a JSONB column; they are
// immutable after creation, so there is nothing to query them by.
type OrderDTO struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	CustomerID string `gorm:"type:varchar(128)"`
	Items      []byte `gorm:"type:jsonb"`
	TotalPrice float64
	Status     int `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the JSONB shape of one order line. Variant fields of the
// other kind are omitted from the document.
type itemDTO struct {
	Kind        string  `json:"kind"`
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	PublishDate string  `json:"publishDate"`
	Price       float64 `json:"price"`

	Author string `json:"author,omitempty"`
	ISBN   string `json:"isbn,omitempty"`

	IssueNumber int    `json:"issueNumber,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	docs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		docs = append(docs, itemDTO{
			Kind:        item.Kind().String(),
			ID:          item.ID(),
			Title:       item.Title(),
			PublishDate: item.PublishDate(),
			Price:       item.Price(),
			Author:      item.Author(),
			ISBN:        item.ISBN(),
			IssueNumber: item.IssueNumber(),
			Publisher:   item.Publisher(),
		})
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID(),
		Items:      raw,
		TotalPrice: aggregate.TotalPrice(),
		Status:     int(aggregate.Status()),
	}, nil
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, keeping the stored total as-is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var docs []itemDTO
	if err = json.Unmarshal(dto.Items, &docs); err != nil {
		return nil, err
	}

	items := make([]publication.Publication, 0, len(docs))
	for _, doc := range docs {
		kind, kindErr := publication.KindFromString(doc.Kind)
		if kindErr != nil {
			return nil, kindErr
		}

		var item publication.Publication
		var itemErr error
		switch kind {
		case publication.Book:
			item, itemErr = publication.NewBook(
				doc.ID, doc.Title, doc.PublishDate, doc.Price, doc.Author, doc.ISBN)
		case publication.Magazine:
			item, itemErr = publication.NewMagazine(
				doc.ID, doc.Title, doc.PublishDate, doc.Price, doc.IssueNumber, doc.Publisher)
		}
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.CustomerID, items, dto.TotalPrice, order.Status(dto.Status))
}
