package models

import (
	"testing"
	"time"
)

func TestRentalPlanDays(t *testing.T) {
	start := time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)

	rental := Rental{StartDate: start, ExpectedEndDate: start.AddDate(0, 0, 15)}
	if got := rental.PlanDays(); got != 15 {
		t.Fatalf("PlanDays() = %d, want 15", got)
	}
}

func TestRentalPlanDaysAcrossDST(t *testing.T) {
	// Local-midnight dates spanning a spring-forward transition cover only
	// 167 elapsed hours; the plan length must still come out as 7 days.
	start := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.FixedZone("EST", -5*3600))
	end := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.FixedZone("EDT", -4*3600))

	rental := Rental{StartDate: start, ExpectedEndDate: end}
	if got := rental.PlanDays(); got != 7 {
		t.Fatalf("PlanDays() = %d, want 7", got)
	}
}

func TestRentalToResponse(t *testing.T) {
	start := time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	rental := Rental{
		ID:              "rental-1",
		UserID:          "user-1",
		MotorcycleID:    "moto-1",
		StartDate:       start,
		ExpectedEndDate: end,
		Status:          RentalStatusActive,
	}

	resp := rental.ToResponse()
	if resp.StartDate != "2030-03-01" || resp.ExpectedEndDate != "2030-03-08" {
		t.Fatalf("unexpected date formatting: %+v", resp)
	}
	if resp.EndDate != nil {
		t.Fatal("active rental must not carry an end date")
	}

	rental.EndDate = &end
	rental.Status = RentalStatusFinished
	resp = rental.ToResponse()
	if resp.EndDate == nil || *resp.EndDate != "2030-03-08" {
		t.Fatalf("finished rental must carry its end date: %+v", resp)
	}
}

func TestUserHasMotorcycleLicense(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		cnhType *string
		want    bool
	}{
		{cnhType: strPtr("A"), want: true},
		{cnhType: strPtr("AB"), want: true},
		{cnhType: strPtr("ab"), want: true},
		{cnhType: strPtr("B"), want: false},
		{cnhType: nil, want: false},
	}

	for _, tt := range tests {
		user := User{CNHType: tt.cnhType}
		if got := user.HasMotorcycleLicense(); got != tt.want {
			t.Fatalf("HasMotorcycleLicense() with %v = %v, want %v", tt.cnhType, got, tt.want)
		}
	}
}
