package get_available_slots

import (
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	getAvailableSlots "github.com/Hayzedd-A/appointment-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest конвертирует query параметр date в модель use case
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.AvailableSlots))
	for _, slot := range resp.AvailableSlots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
	}
}
