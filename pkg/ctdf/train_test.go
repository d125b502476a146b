package ctdf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/seatbooker/pkg/ctdf"
)

func newTrain(t *testing.T, id int, departureTime string, seats int) *ctdf.Train {
	train, err := ctdf.NewTrain(id, departureTime, "Leeds", seats)
	require.NoError(t, err)

	return train
}

func TestNewTrain(t *testing.T) {
	t.Run("should create train with all seats available and placeholder platform", func(t *testing.T) {
		train := newTrain(t, 7, "09:45", 4)

		assert.Equal(t, 7, train.ID)
		assert.Equal(t, "09:45", ctdf.FormatDepartureTime(train.DepartureTime))
		assert.Equal(t, "Leeds", train.Destination)
		assert.Equal(t, 4, train.SeatCount)
		assert.Equal(t, 0, train.PlatformNumber)
		assert.Equal(t, []int{1, 2, 3, 4}, train.CheckSeatAvailability())
	})

	t.Run("should reject non positive seat counts", func(t *testing.T) {
		for _, seats := range []int{0, -1} {
			train, err := ctdf.NewTrain(1, "09:00", "Leeds", seats)
			assert.ErrorIs(t, err, ctdf.ErrInvalidSeatCount)
			assert.Nil(t, train)
		}
	})

	t.Run("should reject malformed departure times", func(t *testing.T) {
		for _, value := range []string{"", "9am", "25:00", "12:60", "12-30", "12:3"} {
			train, err := ctdf.NewTrain(1, value, "Leeds", 1)
			assert.ErrorIs(t, err, ctdf.ErrInvalidDepartureTime, value)
			assert.Nil(t, train)
		}
	})
}

func TestParseDepartureTime(t *testing.T) {
	t.Run("should accept single digit hours and surrounding whitespace", func(t *testing.T) {
		for value, expected := range map[string]string{"9:05": "09:05", " 23:59 ": "23:59", "00:00": "00:00"} {
			departureTime, err := ctdf.ParseDepartureTime(value)
			require.NoError(t, err, value)
			assert.Equal(t, expected, ctdf.FormatDepartureTime(departureTime))
		}
	})

	t.Run("should require two digit minutes", func(t *testing.T) {
		_, err := ctdf.ParseDepartureTime("12:3")
		assert.ErrorIs(t, err, ctdf.ErrInvalidDepartureTime)
	})
}

func TestTrain_BookSeat(t *testing.T) {
	t.Run("should book a free seat once", func(t *testing.T) {
		train := newTrain(t, 1, "08:00", 5)

		assert.Equal(t, ctdf.SeatBookingSuccess, train.BookSeat(3))
		assert.Equal(t, ctdf.SeatBookingAlreadyBooked, train.BookSeat(3))
		assert.True(t, train.IsSeatBooked(3))
	})

	t.Run("should report seats outside the train as out of range", func(t *testing.T) {
		train := newTrain(t, 1, "08:00", 5)

		for _, seat := range []int{0, 6, -5, math.MaxInt, math.MinInt} {
			assert.Equal(t, ctdf.SeatBookingOutOfRange, train.BookSeat(seat), seat)
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, train.CheckSeatAvailability())
	})

	t.Run("should report fully booked once every seat is taken", func(t *testing.T) {
		train := newTrain(t, 1, "08:00", 2)
		assert.False(t, train.IsFullyBooked())

		train.BookSeat(1)
		train.BookSeat(2)

		assert.True(t, train.IsFullyBooked())
		assert.Empty(t, train.CheckSeatAvailability())
	})
}

func TestTrain_CheckSeatAvailability(t *testing.T) {
	train := newTrain(t, 1, "08:00", 3)
	assert.Equal(t, []int{1, 2, 3}, train.CheckSeatAvailability())

	train.BookSeat(2)

	assert.Equal(t, []int{1, 3}, train.CheckSeatAvailability())
	assert.Equal(t, []int{1, 3}, train.CheckSeatAvailability())
}

func TestTrain_IsSeatBooked(t *testing.T) {
	train := newTrain(t, 1, "08:00", 2)

	assert.False(t, train.IsSeatBooked(0))
	assert.False(t, train.IsSeatBooked(3))
	assert.False(t, train.IsSeatBooked(1))
}

func TestSeatBookingOutcome_Message(t *testing.T) {
	assert.Equal(t, "Seat 3 booked successfully on Train 12", ctdf.SeatBookingSuccess.Message(3, 12))
	assert.Equal(t, "Seat 3 is already booked on Train 12", ctdf.SeatBookingAlreadyBooked.Message(3, 12))
	assert.Equal(t, "Seat 9 is not available on Train 12", ctdf.SeatBookingOutOfRange.Message(9, 12))
	assert.True(t, ctdf.SeatBookingSuccess.Successful())
	assert.False(t, ctdf.SeatBookingOutOfRange.Successful())
}

func TestTrains_FindByID(t *testing.T) {
	first := newTrain(t, 4, "08:00", 1)
	duplicate := newTrain(t, 4, "09:00", 1)
	other := newTrain(t, 5, "10:00", 1)
	trains := ctdf.Trains{first, other, duplicate}

	t.Run("should return the first match for duplicate ids", func(t *testing.T) {
		assert.Same(t, first, trains.FindByID(4))
	})

	t.Run("should return nil when missing", func(t *testing.T) {
		assert.Nil(t, trains.FindByID(99))
		assert.Nil(t, ctdf.Trains{}.FindByID(4))
	})
}
