package http

import (
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
)

// CreateOrderRequest is the checkout request body. The buying customer comes
// from the identity headers, the price from the product listing.
type CreateOrderRequest struct {
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	DeliveryAddress string `json:"delivery_address"`
	CustomerPhone   string `json:"customer_phone"`
}

// CreateProductRequest is the vendor listing request body. Price is in minor
// currency units.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the projected order returned by every read endpoint.
// DeliveryAddress and CustomerPhone are null unless the projection disclosed
// them to the requesting viewer.
type OrderResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	UnitPrice       int64     `json:"unit_price"`
	Quantity        int       `json:"quantity"`
	TotalAmount     int64     `json:"total_amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	DeliveryAddress *string   `json:"delivery_address"`
	CustomerPhone   *string   `json:"customer_phone"`
}

func orderResponseFromView(view order.View) OrderResponse {
	response := OrderResponse{
		ID:          view.ID.String(),
		ProductID:   view.ProductID.String(),
		ProductName: view.ProductName,
		UnitPrice:   view.UnitPrice.Amount(),
		Quantity:    view.Quantity,
		TotalAmount: view.Total.Amount(),
		Status:      view.Status.String(),
		CreatedAt:   view.CreatedAt,
	}

	if view.ContactDisclosed {
		address := view.DeliveryAddress
		phone := view.CustomerPhone
		response.DeliveryAddress = &address
		response.CustomerPhone = &phone
	}

	return response
}

// ProductResponse is a vendor's own listing as returned by the catalog
// endpoint. Price is in minor currency units.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

func productResponseFrom(listing *product.Product) ProductResponse {
	return ProductResponse{
		ID:          listing.ID().String(),
		Name:        listing.Name(),
		Description: listing.Description(),
		Price:       listing.Price().Amount(),
		Stock:       listing.Stock(),
		Category:    listing.Category(),
		CreatedAt:   listing.CreatedAt(),
	}
}

func productResponsesFrom(listings []*product.Product) []ProductResponse {
	responses := make([]ProductResponse, len(listings))
	for i, listing := range listings {
		responses[i] = productResponseFrom(listing)
	}
	return responses
}

func orderResponsesFromViews(views []order.View) []OrderResponse {
	responses := make([]OrderResponse, len(views))
	for i, view := range views {
		responses[i] = orderResponseFromView(view)
	}
	return responses
}
