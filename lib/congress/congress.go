// Package congress maps congress numbers onto calendar years and back.
// It is the ground truth for all temporal reasoning in this module; the
// scrapers never trust the years reported by the remote datasets.
package congress

import (
	"fmt"
	"time"
)

// the highest congress number the calendar knows about
const MaxNumber = 150

var ErrOutOfRange = fmt.Errorf("congress number out of range")

type span struct {
	start int
	end   int
}

// Congress 0 is the Continental Congress, which spans three years
// instead of two. Every later congress starts the year the previous
// one ends.
var calendar = buildCalendar()

func buildCalendar() []span {
	spans := make([]span, MaxNumber+1)
	spans[0] = span{start: 1786, end: 1789}
	for n := 1; n <= MaxNumber; n++ {
		start := 1789 + (n-1)*2
		spans[n] = span{start: start, end: start + 2}
	}
	return spans
}

// FirstValidYear returns the first year covered by the calendar.
func FirstValidYear() int {
	return calendar[0].start
}

// StartYear returns the year the given congress convened.
func StartYear(number int) (int, error) {
	if number < 0 || number > MaxNumber {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, number)
	}
	return calendar[number].start, nil
}

// EndYear returns the year the given congress adjourned.
func EndYear(number int) (int, error) {
	if number < 0 || number > MaxNumber {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, number)
	}
	return calendar[number].end, nil
}

// Years returns both years of the given congress.
func Years(number int) (start, end int, err error) {
	if number < 0 || number > MaxNumber {
		return 0, 0, fmt.Errorf("%w: %d", ErrOutOfRange, number)
	}
	return calendar[number].start, calendar[number].end, nil
}

// IsValidNumber reports whether the given number names a known congress.
func IsValidNumber(number int) bool {
	return number >= 0 && number <= MaxNumber
}

// Numbers returns every congress whose span contains the given year.
// Spans are inclusive on both ends, so a boundary year (e.g. 1791)
// belongs to two adjacent congresses. Callers that need a single answer
// must decide between the outgoing and incoming congress themselves;
// YearRange and ConvertToNumber prefer the incoming one.
func Numbers(year int) []int {
	var numbers []int
	for n, s := range calendar {
		if s.start <= year && year <= s.end {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// YearRange returns the span of the most recent congress containing the
// given year, resolving the shared boundary year to the later congress.
// ok is false when the year predates the calendar entirely.
func YearRange(year int) (start, end int, ok bool) {
	for n := MaxNumber; n >= 0; n-- {
		s := calendar[n]
		if s.start <= year && year <= s.end {
			return s.start, s.end, true
		}
	}
	return 0, 0, false
}

// CurrentNumber returns the congress in session at the given time.
// Congresses hand over on January 3rd, so during the first two days of
// January the outgoing (lower-numbered) congress is still seated.
func CurrentNumber(now time.Time) int {
	numbers := Numbers(now.Year())
	if len(numbers) == 0 {
		return MaxNumber
	}

	if now.Month() == time.January && now.Day() < 3 {
		return numbers[0]
	}
	return numbers[len(numbers)-1]
}
