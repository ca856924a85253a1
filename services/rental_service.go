package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motorent-api/apperrors"
	"motorent-api/models"
	"motorent-api/utils"
)

// earlyReturnPenaltyRates maps plan length to the fraction of the unused
// days charged when a rental comes back early. Rates exist only for the 7
// and 15 day plans; longer plans fall through to zero until product defines
// them.
var earlyReturnPenaltyRates = map[int]float64{
	7:  0.20,
	15: 0.40,
}

type RentalStore interface {
	Create(rental *models.Rental) error
	GetByID(id string) (*models.Rental, error)
	HasActiveRental(motorcycleID string) (bool, error)
	Finish(id string, endDate time.Time) (bool, error)
	ListByUser(userID string) ([]models.Rental, error)
	ListByMotorcycle(motorcycleID string) ([]models.Rental, error)
	ListAll() ([]models.Rental, error)
}

type UserStore interface {
	GetByID(id string) (*models.User, error)
}

type MotorcycleStore interface {
	GetByID(id string) (*models.Motorcycle, error)
}

type PlanStore interface {
	GetByDays(days int) (*models.RentalPlan, error)
}

// Mailer delivers transactional mail. Failures are logged, never surfaced:
// mail is a courtesy, not part of the booking or settlement transaction.
type Mailer interface {
	SendRentalConfirmation(email, name string, rental *models.Rental) error
	SendSettlementReceipt(email, name string, result *models.SettlementResult) error
}

type RentalService struct {
	rentals     RentalStore
	users       UserStore
	motorcycles MotorcycleStore
	plans       PlanStore
	mailer      Mailer
	lateFee     float64
}

func NewRentalService(rentals RentalStore, users UserStore, motorcycles MotorcycleStore, plans PlanStore, mailer Mailer, lateFeePerDay float64) *RentalService {
	return &RentalService{
		rentals:     rentals,
		users:       users,
		motorcycles: motorcycles,
		plans:       plans,
		mailer:      mailer,
		lateFee:     lateFeePerDay,
	}
}

// CreateRental validates a booking in a fixed order (first violation wins)
// and persists it as active. The availability check is optimistic; the
// unique index on active rentals per motorcycle is what actually decides
// races, surfacing the loser as MOTORCYCLE_ALREADY_RENTED.
func (s *RentalService) CreateRental(userID, motorcycleID string, planDays int, startDate, expectedEndDate time.Time) (*models.Rental, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.CNHType == nil || *user.CNHType == "" {
		return nil, apperrors.ErrLicenseNotProvided
	}
	if !user.HasMotorcycleLicense() {
		return nil, apperrors.ErrInvalidLicenseType
	}

	motorcycle, err := s.motorcycles.GetByID(motorcycleID)
	if err != nil {
		return nil, err
	}
	if motorcycle == nil {
		return nil, apperrors.ErrMotorcycleNotFound
	}

	rented, err := s.rentals.HasActiveRental(motorcycleID)
	if err != nil {
		return nil, err
	}
	if rented {
		return nil, apperrors.ErrMotorcycleAlreadyRented
	}

	startDate = utils.DateOnly(startDate)
	expectedEndDate = utils.DateOnly(expectedEndDate)

	if startDate.Before(utils.Today()) {
		return nil, apperrors.ErrInvalidStartDate
	}

	plan, err := s.plans.GetByDays(planDays)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperrors.ErrRentalPlanNotFound
	}

	if utils.DaysBetween(startDate, expectedEndDate) != plan.Days {
		return nil, apperrors.ErrPlanDatesMismatch
	}

	rental := &models.Rental{
		ID:              uuid.New().String(),
		UserID:          userID,
		MotorcycleID:    motorcycleID,
		StartDate:       startDate,
		ExpectedEndDate: expectedEndDate,
		Status:          models.RentalStatusActive,
	}

	if err := s.rentals.Create(rental); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMotorcycleAlreadyRented
		}
		return nil, err
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendRentalConfirmation(user.Email, user.Name, rental); err != nil {
				log.Printf("Failed to send rental confirmation email: %v", err)
			}
		}()
	}

	return rental, nil
}

// ReturnRental settles a rental exactly once. The status precondition plus
// the compare-and-swap in the store guarantee a second call fails with
// RENTAL_ALREADY_FINISHED instead of recomputing the charge.
func (s *RentalService) ReturnRental(rentalID, userID string, returnDate time.Time) (*models.SettlementResult, error) {
	rental, err := s.rentals.GetByID(rentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, apperrors.ErrRentalNotFound
	}
	if rental.UserID != userID {
		return nil, apperrors.ErrRentalForbidden
	}
	if rental.Status != models.RentalStatusActive {
		return nil, apperrors.ErrRentalAlreadyFinished
	}

	planDays := rental.PlanDays()
	plan, err := s.plans.GetByDays(planDays)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		// A booked rental always matches a plan; a miss here means the
		// catalog and the rentals table disagree.
		return nil, apperrors.Internal("no rental plan matches the rented duration")
	}

	returnDate = utils.DateOnly(returnDate)
	result := ComputeSettlement(rental, plan, returnDate, s.lateFee)

	finished, err := s.rentals.Finish(rental.ID, returnDate)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, apperrors.ErrRentalAlreadyFinished
	}

	if s.mailer != nil {
		if user, uerr := s.users.GetByID(rental.UserID); uerr == nil && user != nil {
			go func() {
				if err := s.mailer.SendSettlementReceipt(user.Email, user.Name, result); err != nil {
					log.Printf("Failed to send settlement receipt email: %v", err)
				}
			}()
		}
	}

	return result, nil
}

// ComputeSettlement prices a returned rental. Early returns charge the used
// days plus a penalty on the unused ones; late returns charge the full plan
// plus a flat per-day surcharge. All amounts round half-up to cents.
func ComputeSettlement(rental *models.Rental, plan *models.RentalPlan, returnDate time.Time, lateFeePerDay float64) *models.SettlementResult {
	planDays := plan.Days
	pricePerDay := plan.PricePerDay
	baseAmount := float64(planDays) * pricePerDay

	// Stored dates may carry a zone; compare at day granularity only.
	expectedEndDate := utils.DateOnly(rental.ExpectedEndDate)

	usedDays := utils.DaysBetween(rental.StartDate, returnDate)
	if usedDays < 0 {
		usedDays = 0
	}

	var penaltyAmount, extraAmount, totalAmount float64
	switch {
	case returnDate.Before(expectedEndDate):
		unusedDays := planDays - usedDays
		rate := earlyReturnPenaltyRates[planDays]
		penaltyAmount = float64(unusedDays) * pricePerDay * rate
		totalAmount = float64(usedDays)*pricePerDay + penaltyAmount
	case returnDate.After(expectedEndDate):
		extraDays := utils.DaysBetween(expectedEndDate, returnDate)
		extraAmount = float64(extraDays) * lateFeePerDay
		totalAmount = baseAmount + extraAmount
	default:
		totalAmount = baseAmount
	}

	return &models.SettlementResult{
		RentalID:      rental.ID,
		TotalDays:     usedDays,
		BaseAmount:    utils.Round2(baseAmount),
		PenaltyAmount: utils.Round2(penaltyAmount),
		ExtraAmount:   utils.Round2(extraAmount),
		TotalAmount:   utils.Round2(totalAmount),
	}
}

func (s *RentalService) ListRentalsByUser(userID string) ([]models.Rental, error) {
	return s.rentals.ListByUser(userID)
}

// ListRentalsByMotorcycle keeps the legacy contract: an empty result is a
// RENTALS_NOT_FOUND error, not an empty list.
func (s *RentalService) ListRentalsByMotorcycle(motorcycleID string) ([]models.Rental, error) {
	rentals, err := s.rentals.ListByMotorcycle(motorcycleID)
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return nil, apperrors.ErrRentalsNotFound
	}
	return rentals, nil
}

func (s *RentalService) ListAllRentals() ([]models.Rental, error) {
	return s.rentals.ListAll()
}
