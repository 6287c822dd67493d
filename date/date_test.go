package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-09-28", want: New(2024, 9, 28)},
		{in: "2025-7-1", want: New(2025, 7, 1)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	// Add normalizes across month boundaries.
	if got := New(2025, 1, 30).Add(5); got != New(2025, 2, 4) {
		t.Errorf("Add(5) = %v, want 2025-02-04", got)
	}
	if got := New(2025, 3, 3).Add(-7); got != New(2025, 2, 24) {
		t.Errorf("Add(-7) = %v, want 2025-02-24", got)
	}
}

func TestString(t *testing.T) {
	if got := New(2024, 9, 8).String(); got != "2024-09-08" {
		t.Errorf("String() = %q, want %q", got, "2024-09-08")
	}
}
