package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LakshayPahal/Swift-Cab/internal/data/entity"
	"github.com/LakshayPahal/Swift-Cab/internal/dto/request"
	"github.com/LakshayPahal/Swift-Cab/internal/dto/response"
	"github.com/LakshayPahal/Swift-Cab/pkg/utils"

	"github.com/stretchr/testify/assert"
)

type fixedEstimator struct {
	miles float64
}

func (f fixedEstimator) Estimate(_ context.Context, _, _ string) (float64, error) {
	return f.miles, nil
}

// testServer routes booking API calls to canned envelope responses and counts
// every request it receives.
type testServer struct {
	server   *httptest.Server
	requests atomic.Int64

	list    []*response.BookingResponse
	created *response.BookingResponse
	updated *response.BookingResponse
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		utils.ResponseSuccessList(w, "Bookings fetched successfully", len(ts.list), ts.list)
	})
	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		utils.ResponseCreated(w, "Booking created successfully", ts.created)
	})
	mux.HandleFunc("GET /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		for _, b := range ts.list {
			if b.ID == r.PathValue("id") {
				utils.ResponseSuccess(w, "Booking fetched successfully", b)
				return
			}
		}
		utils.ResponseNotFound(w, "Booking not found")
	})
	mux.HandleFunc("DELETE /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		utils.ResponseSuccess(w, "Booking cancelled successfully", ts.updated)
	})
	mux.HandleFunc("PATCH /api/bookings/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		utils.ResponseSuccess(w, "Booking status updated", ts.updated)
	})

	ts.server = httptest.NewServer(mux)
	t.Cleanup(ts.server.Close)
	return ts
}

func serverBooking(id, code string, status entity.BookingStatus) *response.BookingResponse {
	return &response.BookingResponse{
		ID:             id,
		BookingID:      code,
		PickupLocation: "Central Station",
		DropLocation:   "Airport",
		Date:           "2026-09-01",
		Time:           "14:30",
		CabType:        entity.CabTypeSedan,
		Status:         status,
		Fare:           28,
		CreatedAt:      time.Now().UTC(),
	}
}

func validRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		PickupLocation: "Central Station",
		DropLocation:   "Airport",
		Date:           "2026-09-01",
		Time:           "14:30",
		CabType:        "sedan",
	}
}

func TestStore_FetchAndSnapshot(t *testing.T) {
	ts := newTestServer(t)
	ts.list = []*response.BookingResponse{
		serverBooking("id-2", "SC22222", entity.BookingStatusPending),
		serverBooking("id-1", "SC11111", entity.BookingStatusCompleted),
	}

	store := NewStore(New(ts.server.URL), fixedEstimator{miles: 10})

	err := store.Fetch(context.Background())
	assert.NoError(t, err)

	bookings := store.Bookings()
	assert.Len(t, bookings, 2)
	assert.Equal(t, "SC22222", bookings[0].BookingID)

	assert.NotNil(t, store.ByID("id-1"))
	assert.Nil(t, store.ByID("id-404"))
}

func TestStore_Create_PrependsToCache(t *testing.T) {
	ts := newTestServer(t)
	ts.list = []*response.BookingResponse{
		serverBooking("id-1", "SC11111", entity.BookingStatusPending),
	}
	ts.created = serverBooking("id-2", "SC22222", entity.BookingStatusPending)

	store := NewStore(New(ts.server.URL), fixedEstimator{miles: 10})
	assert.NoError(t, store.Fetch(context.Background()))

	booking, err := store.Create(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Equal(t, "SC22222", booking.BookingID)

	bookings := store.Bookings()
	assert.Len(t, bookings, 2)
	assert.Equal(t, "id-2", bookings[0].ID)
	assert.Equal(t, "id-1", bookings[1].ID)
}

func TestStore_Create_RejectsBadInputWithoutNetwork(t *testing.T) {
	ts := newTestServer(t)
	store := NewStore(New(ts.server.URL), fixedEstimator{miles: 10})

	testCases := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
	}{
		{"missing pickup", func(r *request.CreateBookingRequest) { r.PickupLocation = "" }},
		{"missing drop", func(r *request.CreateBookingRequest) { r.DropLocation = "" }},
		{"bad cab type", func(r *request.CreateBookingRequest) { r.CabType = "limo" }},
		{"malformed date", func(r *request.CreateBookingRequest) { r.Date = "01/09/2026" }},
		{"past date", func(r *request.CreateBookingRequest) { r.Date = "2001-01-01" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			booking, err := store.Create(context.Background(), req)

			assert.Nil(t, booking)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Zero(t, ts.requests.Load())
}

func TestStore_Cancel_SwapsCachedRecord(t *testing.T) {
	ts := newTestServer(t)
	ts.list = []*response.BookingResponse{
		serverBooking("id-1", "SC11111", entity.BookingStatusPending),
	}
	ts.updated = serverBooking("id-1", "SC11111", entity.BookingStatusCancelled)

	store := NewStore(New(ts.server.URL), fixedEstimator{miles: 10})
	assert.NoError(t, store.Fetch(context.Background()))

	booking, err := store.Cancel(context.Background(), "id-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)

	cached := store.ByID("id-1")
	assert.Equal(t, entity.BookingStatusCancelled, cached.Status)
	assert.Len(t, store.Bookings(), 1)
}

func TestStore_SetStatus_SwapsCachedRecord(t *testing.T) {
	ts := newTestServer(t)
	ts.list = []*response.BookingResponse{
		serverBooking("id-1", "SC11111", entity.BookingStatusPending),
	}
	ts.updated = serverBooking("id-1", "SC11111", entity.BookingStatusArrived)

	store := NewStore(New(ts.server.URL), fixedEstimator{miles: 10})
	assert.NoError(t, store.Fetch(context.Background()))

	booking, err := store.SetStatus(context.Background(), "id-1", "arrived")
	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusArrived, booking.Status)
	assert.Equal(t, entity.BookingStatusArrived, store.ByID("id-1").Status)
}

func TestStore_SetStatus_RejectsUnknownStatusWithoutNetwork(t *testing.T) {
	ts := newTestServer(t)
	store := NewStore(New(ts.server.URL), fixedEstimator{miles: 10})

	booking, err := store.SetStatus(context.Background(), "id-1", "teleporting")

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, ts.requests.Load())
}

func TestStore_Get_NotFoundSurfacesAPIError(t *testing.T) {
	ts := newTestServer(t)
	store := NewStore(New(ts.server.URL), fixedEstimator{miles: 10})

	booking, err := store.Get(context.Background(), "id-404")

	assert.Nil(t, booking)
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestStore_EstimateFare(t *testing.T) {
	store := NewStore(New("http://unused"), fixedEstimator{miles: 10})

	estimate, err := store.EstimateFare(context.Background(), "mini", "Central Station", "Airport")
	assert.NoError(t, err)
	assert.Equal(t, "5.00", estimate.BaseFare)
	assert.Equal(t, "15.00", estimate.DistanceCharge)
	assert.Equal(t, "20.00", estimate.TotalFare)
	assert.Equal(t, 10.0, estimate.Distance)
}

func TestStore_EstimateFare_InvalidCabType(t *testing.T) {
	store := NewStore(New("http://unused"), fixedEstimator{miles: 10})

	estimate, err := store.EstimateFare(context.Background(), "limo", "A", "B")
	assert.Nil(t, estimate)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClient_ListBookings_CountMatches(t *testing.T) {
	ts := newTestServer(t)
	ts.list = []*response.BookingResponse{
		serverBooking("id-1", "SC11111", entity.BookingStatusPending),
	}

	api := New(ts.server.URL)
	bookings, err := api.ListBookings(context.Background())

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)

	raw, _ := json.Marshal(bookings[0])
	assert.Contains(t, string(raw), `"bookingId":"SC11111"`)
}
