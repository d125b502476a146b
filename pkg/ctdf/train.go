package ctdf

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSeatCount = errors.New("invalid seat count")

type Train struct {
	ID            int
	DepartureTime time.Time
	Destination   string
	SeatCount     int

	// Only meaningful once platforms have been assigned over the sorted collection
	PlatformNumber int

	bookedSeats []bool
}

// NewTrain creates a train with every seat unbooked and a placeholder platform of 0
func NewTrain(id int, departureTime string, destination string, seatCount int) (*Train, error) {
	parsedTime, err := ParseDepartureTime(departureTime)
	if err != nil {
		return nil, err
	}

	if seatCount <= 0 {
		return nil, fmt.Errorf("%w %d: must be a positive integer", ErrInvalidSeatCount, seatCount)
	}

	return &Train{
		ID:            id,
		DepartureTime: parsedTime,
		Destination:   destination,
		SeatCount:     seatCount,
		bookedSeats:   make([]bool, seatCount),
	}, nil
}

// BookSeat accepts any seat number. Seats outside 1..SeatCount are reported as out of range.
func (t *Train) BookSeat(seatNumber int) SeatBookingOutcome {
	if seatNumber < 1 || seatNumber > len(t.bookedSeats) {
		return SeatBookingOutOfRange
	}

	if t.bookedSeats[seatNumber-1] {
		return SeatBookingAlreadyBooked
	}

	t.bookedSeats[seatNumber-1] = true

	return SeatBookingSuccess
}

// CheckSeatAvailability returns the unbooked seat numbers in ascending order
func (t *Train) CheckSeatAvailability() []int {
	availableSeats := []int{}

	for i, booked := range t.bookedSeats {
		if !booked {
			availableSeats = append(availableSeats, i+1)
		}
	}

	return availableSeats
}

func (t *Train) IsSeatBooked(seatNumber int) bool {
	if seatNumber < 1 || seatNumber > len(t.bookedSeats) {
		return false
	}

	return t.bookedSeats[seatNumber-1]
}

func (t *Train) IsFullyBooked() bool {
	return len(t.CheckSeatAvailability()) == 0
}

func (t *Train) String() string {
	return fmt.Sprintf("Train %d %s to %s", t.ID, FormatDepartureTime(t.DepartureTime), t.Destination)
}
