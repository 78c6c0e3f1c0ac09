package http

import (
	"time"

	"solarstore/internal/core/application/usecases/queries"
	"solarstore/internal/core/domain/model/order"
)

type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type cartItemDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type placeOrderRequest struct {
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Address    string        `json:"address"`
	Cart       []cartItemDTO `json:"cart"`
	TotalPrice float64       `json:"totalPrice"`
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

type updateAccountRequest struct {
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
}

type accountResponse struct {
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
}

type orderResponse struct {
	ID          string        `json:"id"`
	OrderNumber string        `json:"orderNumber"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	Cart        []cartItemDTO `json:"cart"`
	TotalPrice  float64       `json:"totalPrice"`
	OrderStatus string        `json:"orderStatus"`
	CreatedAt   time.Time     `json:"createdAt,omitzero"`
	UpdatedAt   time.Time     `json:"updatedAt,omitzero"`
}

type placeOrderResponse struct {
	Message string        `json:"message"`
	Order   orderResponse `json:"order"`
}

type updateOrderStatusResponse struct {
	Message string        `json:"message"`
	Order   orderResponse `json:"order"`
}

type listOrdersResponse struct {
	Orders      []orderResponse `json:"orders"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// orderFromView maps a read-model row, timestamps included.
func orderFromView(view queries.OrderView) orderResponse {
	cart := make([]cartItemDTO, 0, len(view.Items))
	for _, item := range view.Items {
		cart = append(cart, cartItemDTO{
			Name:     item.Name,
			Price:    item.UnitPrice.InexactFloat64(),
			Quantity: item.Quantity,
		})
	}

	return orderResponse{
		ID:          view.ID.String(),
		OrderNumber: view.OrderNumber,
		Name:        view.Name,
		Email:       view.Email,
		Phone:       view.Phone,
		Address:     view.Address,
		Cart:        cart,
		TotalPrice:  view.TotalPrice.InexactFloat64(),
		OrderStatus: view.Status,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

// orderFromAggregate maps a freshly written aggregate. The write model does
// not carry timestamps, so they are omitted from the payload.
func orderFromAggregate(aggregate *order.Order) orderResponse {
	customer := aggregate.Customer()
	items := aggregate.Items()

	cart := make([]cartItemDTO, 0, len(items))
	for _, item := range items {
		cart = append(cart, cartItemDTO{
			Name:     item.Name(),
			Price:    item.UnitPrice().InexactFloat64(),
			Quantity: item.Quantity(),
		})
	}

	return orderResponse{
		ID:          aggregate.ID().String(),
		OrderNumber: aggregate.Number(),
		Name:        customer.Name(),
		Email:       customer.Email(),
		Phone:       customer.Phone(),
		Address:     customer.Address(),
		Cart:        cart,
		TotalPrice:  aggregate.TotalPrice().InexactFloat64(),
		OrderStatus: aggregate.Status().String(),
	}
}
