package ctdf

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type DepartureBoard struct {
	PlatformNumber int    `groups:"basic" yaml:"platform"`
	ID             int    `groups:"basic" yaml:"train_id"`
	Departure      string `groups:"basic" yaml:"departure_time"`
	Destination    string `groups:"basic" yaml:"destination"`
	SeatCount      int    `groups:"detailed" yaml:"seat_count"`

	Seats          []DepartureBoardSeat `groups:"basic" yaml:"seats"`
	AvailableSeats []int                `groups:"detailed" yaml:"available_seats"`
}

type DepartureBoardSeat struct {
	Number int        `groups:"basic" yaml:"number"`
	Status SeatStatus `groups:"basic" yaml:"status"`
}

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "Available"
	SeatStatusBooked    SeatStatus = "Booked"
)

// GenerateDepartureBoardFromTrains expects the trains to already be sorted with platforms assigned
func GenerateDepartureBoardFromTrains(trains []*Train) []*DepartureBoard {
	departureBoard := make([]*DepartureBoard, 0, len(trains))

	for _, train := range trains {
		record := &DepartureBoard{}
		if err := copier.Copy(record, train); err != nil {
			log.Error().Err(err).Int("train", train.ID).Msg("Failed to copy train into departure board")
			continue
		}

		record.Departure = FormatDepartureTime(train.DepartureTime)
		record.AvailableSeats = train.CheckSeatAvailability()
		record.Seats = make([]DepartureBoardSeat, 0, train.SeatCount)

		for seatNumber := 1; seatNumber <= train.SeatCount; seatNumber++ {
			status := SeatStatusBooked
			if slices.Contains(record.AvailableSeats, seatNumber) {
				status = SeatStatusAvailable
			}

			record.Seats = append(record.Seats, DepartureBoardSeat{Number: seatNumber, Status: status})
		}

		departureBoard = append(departureBoard, record)
	}

	return departureBoard
}
