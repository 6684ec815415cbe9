package request

type CreateBookingRequest struct {
	PickupLocation string `json:"pickupLocation" validate:"required"`
	DropLocation   string `json:"dropLocation" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required"`
	CabType        string `json:"cabType" validate:"required,oneof=mini sedan suv"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
