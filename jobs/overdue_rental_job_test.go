package jobs

import (
	"testing"
	"time"

	"motorent-api/models"
)

type fakeOverdueLister struct {
	overdue []models.Rental
}

func (f *fakeOverdueLister) ListOverdue(asOf time.Time) ([]models.Rental, error) {
	return f.overdue, nil
}

type fakeRenterGetter struct {
	users map[string]*models.User
}

func (f *fakeRenterGetter) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}

type recordingReminderMailer struct {
	sent []string
}

func (m *recordingReminderMailer) SendOverdueReminder(email, name string, rental *models.Rental, daysLate int) error {
	m.sent = append(m.sent, rental.ID)
	return nil
}

func overdueRental(id string) models.Rental {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return models.Rental{
		ID:              id,
		UserID:          "user-1",
		MotorcycleID:    "moto-" + id,
		StartDate:       start,
		ExpectedEndDate: start.AddDate(0, 0, 7),
		Status:          models.RentalStatusActive,
	}
}

func newTestJob(lister *fakeOverdueLister, mailer *recordingReminderMailer) *OverdueRentalJob {
	return &OverdueRentalJob{
		rentals: lister,
		users: &fakeRenterGetter{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Rider One", Email: "one@example.com"},
		}},
		mailer:   mailer,
		notified: make(map[string]bool),
	}
}

func TestOverdueJobRemindsOnce(t *testing.T) {
	lister := &fakeOverdueLister{overdue: []models.Rental{overdueRental("rental-1")}}
	mailer := &recordingReminderMailer{}
	job := newTestJob(lister, mailer)

	job.checkOverdue()
	job.checkOverdue()

	if len(mailer.sent) != 1 {
		t.Fatalf("expected one reminder across repeated sweeps, got %d", len(mailer.sent))
	}
}

func TestOverdueJobPrunesReturnedRentals(t *testing.T) {
	lister := &fakeOverdueLister{overdue: []models.Rental{overdueRental("rental-1"), overdueRental("rental-2")}}
	mailer := &recordingReminderMailer{}
	job := newTestJob(lister, mailer)

	job.checkOverdue()
	if len(job.notified) != 2 {
		t.Fatalf("expected 2 tracked rentals, got %d", len(job.notified))
	}

	// rental-1 is returned between sweeps and must be forgotten.
	lister.overdue = []models.Rental{overdueRental("rental-2")}
	job.checkOverdue()

	if _, tracked := job.notified["rental-1"]; tracked {
		t.Fatal("returned rental should have been pruned from the dedup map")
	}
	if len(job.notified) != 1 {
		t.Fatalf("expected 1 tracked rental after pruning, got %d", len(job.notified))
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 reminders total, got %d", len(mailer.sent))
	}
}
