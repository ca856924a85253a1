package utils

import "testing"

func TestIsValidVIN(t *testing.T) {
	tests := []struct {
		vin  string
		want bool
	}{
		{vin: "ABC-1234", want: true},
		{vin: "XYZ-0001", want: true},
		{vin: "ABC1D23", want: true},
		{vin: "abc-1234", want: false},
		{vin: "AB-1234", want: false},
		{vin: "ABCD-1234", want: false},
		{vin: "ABC-123", want: false},
		{vin: "ABC1234", want: false},
		{vin: "", want: false},
	}

	for _, tt := range tests {
		if got := IsValidVIN(tt.vin); got != tt.want {
			t.Fatalf("IsValidVIN(%q) = %v, want %v", tt.vin, got, tt.want)
		}
	}
}

func TestIsValidMotorcycleYear(t *testing.T) {
	if IsValidMotorcycleYear(1899) {
		t.Fatal("expected 1899 to be invalid")
	}
	if !IsValidMotorcycleYear(1900) {
		t.Fatal("expected 1900 to be valid")
	}
	if !IsValidMotorcycleYear(2023) {
		t.Fatal("expected 2023 to be valid")
	}
	if IsValidMotorcycleYear(2100) {
		t.Fatal("expected a far future year to be invalid")
	}
}
