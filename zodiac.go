package vdbatch

import (
	"fmt"
	"time"
)

// birthdayLayout is the MM-DD format used by entity records.
const birthdayLayout = "01-02"

// referenceYear anchors month-day birthdays to a concrete date. 2000 is a
// leap year, so Feb 29 birthdays resolve.
const referenceYear = 2000

// zodiacCutoffs lists, for each sign, the last month-day it covers.
// Dates after Dec 21 wrap around to capricorn.
var zodiacCutoffs = []struct {
	month time.Month
	day   int
	sign  string
}{
	{time.January, 19, "capricorn"},
	{time.February, 18, "aquarius"},
	{time.March, 20, "pisces"},
	{time.April, 19, "aries"},
	{time.May, 20, "taurus"},
	{time.June, 20, "gemini"},
	{time.July, 22, "cancer"},
	{time.August, 22, "leo"},
	{time.September, 22, "virgo"},
	{time.October, 22, "libra"},
	{time.November, 21, "scorpio"},
	{time.December, 21, "sagittarius"},
}

// zodiacSign returns the lowercase sign name for a month and day.
func zodiacSign(month time.Month, day int) string {
	for _, c := range zodiacCutoffs {
		if month < c.month || (month == c.month && day <= c.day) {
			return c.sign
		}
	}
	return "capricorn"
}

// signForBirthday derives the zodiac sign from an MM-DD birthday string.
func signForBirthday(birthday string) (string, error) {
	t, err := time.Parse(birthdayLayout, birthday)
	if err != nil {
		return "", fmt.Errorf("parse birthday %q: %w", birthday, err)
	}
	d := time.Date(referenceYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return zodiacSign(d.Month(), d.Day()), nil
}
