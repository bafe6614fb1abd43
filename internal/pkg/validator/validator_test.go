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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2024-02-29", "1999-12-31"}
	invalid := []string{"2025-13-01", "2025-02-30", "01-01-2025", "2025/01/01", "yesterday", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:00", "18:00", "23:59", "12:30"}
	invalid := []string{"24:00", "09:60", "9:00", "09:5", "0900", "09-00", "-", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "42", "007"}
	invalid := []string{"", "4.2", "-1", "abc", "1e3"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"present", "absent", "late"}
	if !IsInSlice("absent", slice) {
		t.Error("IsInSlice(absent) = false, want true")
	}
	if IsInSlice("leave", slice) {
		t.Error("IsInSlice(leave) = true, want false")
	}
	if IsInSlice("", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
		{Field: "start_time", Message: "start_time must be in HH:mm format"},
	}

	if got := errs.Error(); got != "date: date must be in YYYY-MM-DD format; start_time: start_time must be in HH:mm format" {
		t.Errorf("unexpected Error() output: %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["date"] == "" || m["start_time"] == "" {
		t.Errorf("unexpected ToMap() output: %v", m)
	}
}
