package http

import (
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/publication"
)

// PublicationDTO is the wire shape of one order line. The Type field
// discriminates the union; variant fields of the other kind are omitted
// from the document.
type PublicationDTO struct {
	Type        string  `json:"type"`
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	PublishDate string  `json:"publishDate"`
	Price       float64 `json:"price"`

	Author string `json:"author,omitempty"`
	ISBN   string `json:"isbn,omitempty"`

	IssueNumber int    `json:"issueNumber,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
}

// OrderDTO is the wire shape of an order in responses.
type OrderDTO struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId"`
	Items      []PublicationDTO `json:"items"`
	TotalPrice float64          `json:"totalPrice"`
	Status     string           `json:"status"`
}

// CreateOrderRequest is the request body for placing an order. Only the
// customer id and items are read; id, total price and status supplied by
// the client are ignored and assigned server-side.
type CreateOrderRequest struct {
	CustomerID string           `json:"customerId"`
	Items      []PublicationDTO `json:"items"`
}

// ErrorResponse is the uniform error body. Code mirrors the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomainPublication converts one wire line to the domain union.
func toDomainPublication(dto PublicationDTO) (publication.Publication, error) {
	kind, err := publication.KindFromString(dto.Type)
	if err != nil {
		return publication.Publication{}, err
	}

	if kind == publication.Book {
		return publication.NewBook(
			dto.ID, dto.Title, dto.PublishDate, dto.Price, dto.Author, dto.ISBN)
	}
	return publication.NewMagazine(
		dto.ID, dto.Title, dto.PublishDate, dto.Price, dto.IssueNumber, dto.Publisher)
}

// toDomainItems converts the request's lines to domain publications.
func toDomainItems(dtos []PublicationDTO) ([]publication.Publication, error) {
	items := make([]publication.Publication, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomainPublication(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// fromDomainOrder converts an order aggregate to its wire shape.
func fromDomainOrder(o *order.Order) OrderDTO {
	items := o.Items()
	dtos := make([]PublicationDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, PublicationDTO{
			Type:        item.Kind().String(),
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

	return OrderDTO{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID(),
		Items:      dtos,
		TotalPrice: o.TotalPrice(),
		Status:     o.Status().String(),
	}
}
