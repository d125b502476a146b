package timetable

import "github.com/travigo/seatbooker/pkg/ctdf"

// SortByDepartureTime quicksorts the trains in place by departure time using the last
// element of each partition as the pivot. Trains with equal times are not kept in order.
func SortByDepartureTime(trains []*ctdf.Train) {
	quicksort(trains, 0, len(trains)-1)
}

func quicksort(trains []*ctdf.Train, low int, high int) {
	// Recurse into the smaller side and loop over the larger one to keep the stack shallow
	for low < high {
		pivotIndex := partition(trains, low, high)

		if pivotIndex-low < high-pivotIndex {
			quicksort(trains, low, pivotIndex-1)
			low = pivotIndex + 1
		} else {
			quicksort(trains, pivotIndex+1, high)
			high = pivotIndex - 1
		}
	}
}

func partition(trains []*ctdf.Train, low int, high int) int {
	pivot := trains[high].DepartureTime
	i := low - 1

	for j := low; j < high; j++ {
		if !trains[j].DepartureTime.After(pivot) {
			i++
			trains[i], trains[j] = trains[j], trains[i]
		}
	}

	trains[i+1], trains[high] = trains[high], trains[i+1]

	return i + 1
}
