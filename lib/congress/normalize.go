package congress

import "time"

// ConvertToNumber normalizes an arbitrary input value into a congress
// number. The input may be a congress number, a calendar year, or nil
// ("now"). The case split is order-sensitive; a value like 200 is too
// large to be a congress number and too small to be a plausible year,
// so it clamps to the current congress.
func ConvertToNumber(numberOrYear *int, now time.Time) int {
	if numberOrYear == nil {
		return CurrentNumber(now)
	}
	v := *numberOrYear

	if v >= now.Year() {
		return CurrentNumber(now)
	}
	if v >= FirstValidYear() {
		numbers := Numbers(v)
		return numbers[len(numbers)-1]
	}

	current := CurrentNumber(now)
	if v > current {
		return current
	}
	if v >= 0 {
		return v
	}
	return 0
}
