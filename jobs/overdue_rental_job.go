package jobs

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"motorent-api/models"
	"motorent-api/repositories"
	"motorent-api/services"
	"motorent-api/utils"
)

type overdueRentalLister interface {
	ListOverdue(asOf time.Time) ([]models.Rental, error)
}

type renterGetter interface {
	GetByID(id string) (*models.User, error)
}

type reminderMailer interface {
	SendOverdueReminder(email, name string, rental *models.Rental, daysLate int) error
}

// OverdueRentalJob periodically reminds renters whose active rental has
// passed its expected end date. Purely advisory: the late surcharge itself
// is computed at settlement time, never here.
type OverdueRentalJob struct {
	rentals overdueRentalLister
	users   renterGetter
	mailer  reminderMailer
	ticker  *time.Ticker
	done    chan bool

	mutex    sync.Mutex
	notified map[string]bool
}

func NewOverdueRentalJob(db *gorm.DB, mailer *services.EmailService, interval time.Duration) *OverdueRentalJob {
	return &OverdueRentalJob{
		rentals:  repositories.NewRentalRepository(db),
		users:    repositories.NewUserRepository(db),
		mailer:   mailer,
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
		notified: make(map[string]bool),
	}
}

// Start begins the reminder job
func (j *OverdueRentalJob) Start() {
	log.Println("Overdue rental reminder job started")

	go func() {
		// Run immediately on start
		j.checkOverdue()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.checkOverdue()
			case <-j.done:
				log.Println("Overdue rental reminder job stopped")
				return
			}
		}
	}()
}

// Stop halts the reminder job
func (j *OverdueRentalJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *OverdueRentalJob) checkOverdue() {
	overdue, err := j.rentals.ListOverdue(utils.Today())
	if err != nil {
		log.Printf("Overdue rental check failed: %v", err)
		return
	}

	// Drop entries for rentals no longer overdue (returned since the last
	// sweep) so the dedup map stays bounded by the overdue set.
	j.mutex.Lock()
	still := make(map[string]bool, len(overdue))
	for i := range overdue {
		still[overdue[i].ID] = j.notified[overdue[i].ID]
	}
	j.notified = still
	j.mutex.Unlock()

	for i := range overdue {
		rental := &overdue[i]

		j.mutex.Lock()
		alreadyNotified := j.notified[rental.ID]
		if !alreadyNotified {
			j.notified[rental.ID] = true
		}
		j.mutex.Unlock()

		if alreadyNotified {
			continue
		}

		j.remind(rental)
	}
}

func (j *OverdueRentalJob) remind(rental *models.Rental) {
	user, err := j.users.GetByID(rental.UserID)
	if err != nil || user == nil {
		log.Printf("Could not load user %s for overdue reminder: %v", rental.UserID, err)
		return
	}

	daysLate := utils.DaysBetween(rental.ExpectedEndDate, utils.Today())
	log.Printf("Rental %s is %d day(s) overdue, reminding %s", rental.ID, daysLate, user.Email)

	if err := j.mailer.SendOverdueReminder(user.Email, user.Name, rental, daysLate); err != nil {
		log.Printf("Failed to send overdue reminder: %v", err)
	}
}
