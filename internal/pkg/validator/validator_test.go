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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f2-7b8c-7b4a-8a2b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2024-05"); !ok {
		t.Errorf("IsValidMonth(%q) = false, want true", "2024-05")
	}
	for _, s := range []string{"2024-13", "2024-5-01", "05-2024", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"18:05:00", 1085, true},
		{"24:00", 0, false},
		{"9:30", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.ok && (err != nil || got != c.minutes) {
			t.Errorf("ParseClock(%q) = %d, %v, want %d", c.input, got, err, c.minutes)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseClock(%q) expected error", c.input)
		}
		if IsValidClock(c.input) != c.ok {
			t.Errorf("IsValidClock(%q) = %v, want %v", c.input, !c.ok, c.ok)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "leave_type", Message: "required"},
	}
	got := errs.Error()
	want := "start_date: invalid; leave_type: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "leave_type", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"start_date": "invalid", "leave_type": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestResult(t *testing.T) {
	ok := Accept("fine")
	if !ok.Accepted || ok.ReasonCode != "" {
		t.Errorf("Accept() = %+v", ok)
	}
	bad := Reject("CODE", "nope")
	if bad.Accepted || bad.ReasonCode != "CODE" || bad.Message != "nope" {
		t.Errorf("Reject() = %+v", bad)
	}
}
