package handler

import (
	"time"

	"github.com/jakkritp/staybooking/internal/core/domain"
)

const dateLayout = "2006-01-02"

type bookingResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	PlaceID       string  `json:"place_id"`
	GuestID       string  `json:"guest_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentSlip   string  `json:"payment_slip,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID.String(),
		RoomID:        b.RoomID.String(),
		PlaceID:       b.PlaceID.String(),
		GuestID:       b.GuestID.String(),
		CheckIn:       b.Stay.CheckIn.Format(dateLayout),
		CheckOut:      b.Stay.CheckOut.Format(dateLayout),
		Nights:        b.Stay.Nights(),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaymentSlip:   b.PaymentSlip,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

type roomResponse struct {
	ID       string  `json:"id"`
	PlaceID  string  `json:"place_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Occupied bool    `json:"occupied"`
}

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		ID:       r.ID.String(),
		PlaceID:  r.PlaceID.String(),
		Name:     r.Name,
		Price:    r.Price,
		Occupied: r.Occupied,
	}
}

func toRoomResponses(rooms []domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	return out
}

type paymentInfoResponse struct {
	PlaceID       string `json:"place_id"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	QRCodeURL     string `json:"qr_code_url,omitempty"`
}

func toPaymentInfoResponse(info *domain.PaymentInfo) paymentInfoResponse {
	return paymentInfoResponse{
		PlaceID:       info.PlaceID.String(),
		BankName:      info.BankName,
		AccountName:   info.AccountName,
		AccountNumber: info.AccountNumber,
		QRCodeURL:     info.QRCodeURL,
	}
}

type placeResponse struct {
	ID           string  `json:"id"`
	HostID       string  `json:"host_id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DefaultPrice float64 `json:"default_price"`
}

func toPlaceResponse(p *domain.Place) placeResponse {
	return placeResponse{
		ID:           p.ID.String(),
		HostID:       p.HostID.String(),
		Title:        p.Title,
		Category:     p.Category,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		DefaultPrice: p.DefaultPrice,
	}
}
