package ctdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/seatbooker/pkg/ctdf"
)

func TestGenerateDepartureBoardFromTrains(t *testing.T) {
	train, err := ctdf.NewTrain(2, "08:05", "York", 3)
	require.NoError(t, err)
	train.PlatformNumber = 2
	train.BookSeat(2)

	board := ctdf.GenerateDepartureBoardFromTrains([]*ctdf.Train{train})
	require.Len(t, board, 1)

	record := board[0]
	assert.Equal(t, 2, record.ID)
	assert.Equal(t, 2, record.PlatformNumber)
	assert.Equal(t, "08:05", record.Departure)
	assert.Equal(t, "York", record.Destination)
	assert.Equal(t, 3, record.SeatCount)
	assert.Equal(t, []int{1, 3}, record.AvailableSeats)
	assert.Equal(t, []ctdf.DepartureBoardSeat{
		{Number: 1, Status: ctdf.SeatStatusAvailable},
		{Number: 2, Status: ctdf.SeatStatusBooked},
		{Number: 3, Status: ctdf.SeatStatusAvailable},
	}, record.Seats)

	t.Run("should not mutate the train", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, train.CheckSeatAvailability())
		assert.Equal(t, 2, train.PlatformNumber)
	})
}

func TestParseDepartureTime_HourAndMinute(t *testing.T) {
	departureTime, err := ctdf.ParseDepartureTime(" 23:59 ")
	require.NoError(t, err)

	assert.Equal(t, 23, departureTime.Hour())
	assert.Equal(t, 59, departureTime.Minute())
	assert.Equal(t, "23:59", ctdf.FormatDepartureTime(departureTime))
}
