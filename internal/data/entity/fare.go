package entity

import "fmt"

// Fare table: flat base fare plus a per-mile rate, keyed by cab type.
var (
	baseFares = map[CabType]float64{
		CabTypeMini:  5,
		CabTypeSedan: 8,
		CabTypeSUV:   12,
	}
	ratesPerMile = map[CabType]float64{
		CabTypeMini:  1.5,
		CabTypeSedan: 2,
		CabTypeSUV:   2.5,
	}
)

type FareBreakdown struct {
	BaseFare       float64
	DistanceCharge float64
	Distance       float64
	Total          float64
}

// CalculateFare prices a ride of the given distance in miles.
// The result is computed once at booking time and stored as-is.
func CalculateFare(cabType CabType, distance float64) (*FareBreakdown, error) {
	if !cabType.Valid() {
		return nil, fmt.Errorf("invalid cab type %q", cabType)
	}

	base := baseFares[cabType]
	charge := distance * ratesPerMile[cabType]

	return &FareBreakdown{
		BaseFare:       base,
		DistanceCharge: charge,
		Distance:       distance,
		Total:          base + charge,
	}, nil
}
