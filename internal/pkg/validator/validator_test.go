package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         bool
	}{
		{0, 0, true},
		{23, 59, true},
		{24, 0, false},
		{-1, 30, false},
		{12, 60, false},
		{12, -1, false},
	}
	for _, c := range cases {
		got := IsValidTimeOfDay(c.hour, c.minute)
		if got != c.want {
			t.Errorf("IsValidTimeOfDay(%d, %d) = %v, want %v", c.hour, c.minute, got, c.want)
		}
	}
}

func TestIsValidCardNumber(t *testing.T) {
	valid := []string{"1234", "00012345", "12345678901234567890123456789012"}
	invalid := []string{"", "123", "12a4", "123456789012345678901234567890123", "12 34"}
	for _, number := range valid {
		if !IsValidCardNumber(number) {
			t.Errorf("IsValidCardNumber(%q) = false, want true", number)
		}
	}
	for _, number := range invalid {
		if IsValidCardNumber(number) {
			t.Errorf("IsValidCardNumber(%q) = true, want false", number)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-15"); !ok {
		t.Errorf("IsValidDate(%q) = false, want true", "2024-01-15")
	}
	for _, s := range []string{"2024-13-01", "15-01-2024", "", "2024-01-32"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
