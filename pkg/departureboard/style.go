package departureboard

import (
	"fmt"

	"github.com/travigo/seatbooker/pkg/ctdf"
)

type Style string

const (
	StylePlain   Style = "Plain"
	StyleSuccess Style = "Success"
	StyleFailure Style = "Failure"
)

const ansiReset = "\033[0m"

var ansiColours = map[Style]string{
	StyleSuccess: "\033[92m",
	StyleFailure: "\033[91m",
}

func SeatStyle(status ctdf.SeatStatus) Style {
	if status == ctdf.SeatStatusAvailable {
		return StyleSuccess
	}

	return StyleFailure
}

func OutcomeStyle(outcome ctdf.SeatBookingOutcome) Style {
	if outcome.Successful() {
		return StyleSuccess
	}

	return StyleFailure
}

// Styler decorates text for a terminal. With Colour off text is returned untouched.
type Styler struct {
	Colour bool
}

func (s Styler) Apply(style Style, text string) string {
	colour, ok := ansiColours[style]
	if !s.Colour || !ok {
		return text
	}

	return colour + text + ansiReset
}

// SeatMarker renders a seat number. Booked seats are bracketed when colour is unavailable.
func (s Styler) SeatMarker(seat ctdf.DepartureBoardSeat) string {
	marker := fmt.Sprint(seat.Number)
	if !s.Colour && seat.Status == ctdf.SeatStatusBooked {
		marker = fmt.Sprintf("[%d]", seat.Number)
	}

	return s.Apply(SeatStyle(seat.Status), marker)
}
