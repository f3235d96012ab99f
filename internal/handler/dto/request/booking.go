package request

import (
	"time"

	"mechmobile/internal/domain/booking"
	"mechmobile/internal/usecase"
)

type CartLineRequest struct {
	ServiceID string      `json:"serviceId" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,min=1"`
	Options   map[int]int `json:"options,omitempty"`
}

type CreateBookingRequest struct {
	Customer        CustomerInfoRequest `json:"customer" binding:"required"`
	Cart            []CartLineRequest   `json:"cart" binding:"required"`
	Date            string              `json:"date" binding:"required"`
	TimeSlot        string              `json:"timeSlot" binding:"required"`
	ShopSourceParts bool                `json:"shopSourceParts"`
	PaymentRef      string              `json:"paymentRef"`
}

func (r CreateBookingRequest) ToInput(loc *time.Location) (usecase.CreateBookingInput, error) {
	date, err := time.ParseInLocation("2006-01-02", r.Date, loc)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}

	cart := make([]booking.CartLine, 0, len(r.Cart))
	for _, line := range r.Cart {
		cart = append(cart, booking.CartLine{
			ServiceID: line.ServiceID,
			Quantity:  line.Quantity,
			Options:   line.Options,
		})
	}

	return usecase.CreateBookingInput{
		Customer:        r.Customer.toDomain(),
		Cart:            cart,
		Date:            date,
		SlotLabel:       r.TimeSlot,
		ShopSourceParts: r.ShopSourceParts,
		PaymentRef:      r.PaymentRef,
	}, nil
}
