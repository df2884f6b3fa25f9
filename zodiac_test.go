package vdbatch

import (
	"testing"
	"time"
)

func TestZodiacSignBoundaries(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 1, "capricorn"},
		{time.January, 19, "capricorn"},
		{time.January, 20, "aquarius"},
		{time.February, 18, "aquarius"},
		{time.February, 19, "pisces"},
		{time.February, 29, "pisces"},
		{time.March, 20, "pisces"},
		{time.March, 21, "aries"},
		{time.April, 19, "aries"},
		{time.April, 20, "taurus"},
		{time.May, 21, "gemini"},
		{time.June, 21, "cancer"},
		{time.July, 23, "leo"},
		{time.August, 23, "virgo"},
		{time.September, 23, "libra"},
		{time.October, 23, "scorpio"},
		{time.November, 22, "sagittarius"},
		{time.December, 21, "sagittarius"},
		{time.December, 22, "capricorn"},
		{time.December, 31, "capricorn"},
	}

	for _, c := range cases {
		if got := zodiacSign(c.month, c.day); got != c.want {
			t.Errorf("%v %d: expected %s, got %s", c.month, c.day, c.want, got)
		}
	}
}

func TestSignForBirthday(t *testing.T) {
	sign, err := signForBirthday("01-27")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sign != "aquarius" {
		t.Errorf("expected aquarius, got %s", sign)
	}
}

func TestSignForBirthdayLeapDay(t *testing.T) {
	sign, err := signForBirthday("02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sign != "pisces" {
		t.Errorf("expected pisces, got %s", sign)
	}
}

func TestSignForBirthdayMalformed(t *testing.T) {
	for _, bad := range []string{"27-01", "January 27", "13-40", ""} {
		if _, err := signForBirthday(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
