package entity

type CabType string

const (
	CabTypeMini  CabType = "mini"
	CabTypeSedan CabType = "sedan"
	CabTypeSUV   CabType = "suv"
)

func (c CabType) Valid() bool {
	switch c {
	case CabTypeMini, CabTypeSedan, CabTypeSUV:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusOnTheWay  BookingStatus = "on the way"
	BookingStatusArrived   BookingStatus = "arrived"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusOnTheWay, BookingStatusArrived,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type Booking struct {
	Base           `bson:",inline"`
	BookingCode    string        `bson:"bookingId"`
	PickupLocation string        `bson:"pickupLocation"`
	DropLocation   string        `bson:"dropLocation"`
	Date           string        `bson:"date"`
	Time           string        `bson:"time"`
	CabType        CabType       `bson:"cabType"`
	Status         BookingStatus `bson:"status"`
	Fare           float64       `bson:"fare"`
}
