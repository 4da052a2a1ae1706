package set

import "sort"

// Upper bound on the length of a list built by UpdateValues, and on the number
// of indexes in one expression.
const maxIndex = 1 << 20

// UpdateValues returns a copy of list with values assigned at the 1-based
// indexes, pairwise. The list grows as needed, with new elements set to the
// empty string; when an index appears more than once, the last value wins.
//
// If the counts differ or an index is not positive or larger than maxIndex,
// an error is returned and nothing is assigned.
func UpdateValues(list []string, indexes []int, values []string) ([]string, error) {
	if len(indexes) != len(values) {
		return nil, errArgCount
	}
	newLen := len(list)
	for _, index := range indexes {
		if index < 1 || index > maxIndex {
			return nil, BoundsError{index}
		}
		if index > newLen {
			newLen = index
		}
	}
	result := make([]string, newLen)
	copy(result, list)
	for i, index := range indexes {
		result[index-1] = values[i]
	}
	return result, nil
}

// EraseValues returns a copy of list with the elements at the 1-based indexes
// removed. Duplicate indexes count once, and indexes outside the list are
// ignored.
func EraseValues(list []string, indexes []int) []string {
	sorted := append([]int(nil), indexes...)
	sort.Ints(sorted)

	result := append([]string{}, list...)
	// Remove from the back, so that removals don't shift positions that are
	// yet to be removed.
	for i := len(sorted) - 1; i >= 0; i-- {
		index := sorted[i]
		if i < len(sorted)-1 && index == sorted[i+1] {
			continue
		}
		if index >= 1 && index <= len(result) {
			result = append(result[:index-1], result[index:]...)
		}
	}
	return result
}

// CountMissing returns how many of the 1-based indexes don't refer to an
// element of a list with n elements. Duplicates are counted each time.
func CountMissing(indexes []int, n int) int {
	missing := 0
	for _, index := range indexes {
		if index < 1 || index > n {
			missing++
		}
	}
	return missing
}
