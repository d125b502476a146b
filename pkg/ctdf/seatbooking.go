package ctdf

import "fmt"

type SeatBookingOutcome string

const (
	SeatBookingSuccess       SeatBookingOutcome = "Success"
	SeatBookingAlreadyBooked SeatBookingOutcome = "AlreadyBooked"
	SeatBookingOutOfRange    SeatBookingOutcome = "OutOfRange"
)

func (o SeatBookingOutcome) String() string {
	return string(o)
}

func (o SeatBookingOutcome) Successful() bool {
	return o == SeatBookingSuccess
}

// Message is the user facing line describing the outcome of booking seatNumber on the train
func (o SeatBookingOutcome) Message(seatNumber int, trainID int) string {
	switch o {
	case SeatBookingSuccess:
		return fmt.Sprintf("Seat %d booked successfully on Train %d", seatNumber, trainID)
	case SeatBookingAlreadyBooked:
		return fmt.Sprintf("Seat %d is already booked on Train %d", seatNumber, trainID)
	default:
		return fmt.Sprintf("Seat %d is not available on Train %d", seatNumber, trainID)
	}
}
