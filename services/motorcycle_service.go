package services

import (
	"log"

	"github.com/google/uuid"

	"motorent-api/apperrors"
	"motorent-api/models"
	"motorent-api/utils"
)

type FleetStore interface {
	Create(motorcycle *models.Motorcycle) error
	GetByID(id string) (*models.Motorcycle, error)
	GetByVIN(vin string) (*models.Motorcycle, error)
	UpdateVIN(id, vin string) error
	Delete(motorcycle *models.Motorcycle) error
	ListAll() ([]models.Motorcycle, error)
	ListAvailable() ([]models.Motorcycle, error)
}

// RentalRecordChecker answers whether a motorcycle has ever been rented.
type RentalRecordChecker interface {
	HasAnyRental(motorcycleID string) (bool, error)
}

// EventPublisher announces fleet changes on the event bus.
type EventPublisher interface {
	MotorcycleCreated(motorcycle *models.Motorcycle) error
}

type MotorcycleService struct {
	fleet   FleetStore
	rentals RentalRecordChecker
	events  EventPublisher
}

func NewMotorcycleService(fleet FleetStore, rentals RentalRecordChecker, events EventPublisher) *MotorcycleService {
	return &MotorcycleService{fleet: fleet, rentals: rentals, events: events}
}

func (s *MotorcycleService) validateVIN(vin string) error {
	if !utils.IsValidVIN(vin) {
		return apperrors.ErrInvalidVINFormat
	}
	existing, err := s.fleet.GetByVIN(vin)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrVINAlreadyExists
	}
	return nil
}

func (s *MotorcycleService) RegisterMotorcycle(model string, year int, vin string) (*models.Motorcycle, error) {
	if err := s.validateVIN(vin); err != nil {
		return nil, err
	}
	if !utils.IsValidMotorcycleYear(year) {
		return nil, apperrors.ErrInvalidYear
	}

	motorcycle := &models.Motorcycle{
		ID:    uuid.New().String(),
		VIN:   vin,
		Model: model,
		Year:  year,
	}

	if err := s.fleet.Create(motorcycle); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.MotorcycleCreated(motorcycle); err != nil {
			log.Printf("Failed to publish motorcycle created event: %v", err)
		}
	}

	return motorcycle, nil
}

func (s *MotorcycleService) GetByVIN(vin string) (*models.Motorcycle, error) {
	motorcycle, err := s.fleet.GetByVIN(vin)
	if err != nil {
		return nil, err
	}
	if motorcycle == nil {
		return nil, apperrors.ErrMotorcycleNotFound
	}
	return motorcycle, nil
}

// UpdateVIN is the only mutation allowed on a registered motorcycle.
func (s *MotorcycleService) UpdateVIN(motorcycleID, newVIN string) (*models.Motorcycle, error) {
	motorcycle, err := s.fleet.GetByID(motorcycleID)
	if err != nil {
		return nil, err
	}
	if motorcycle == nil {
		return nil, apperrors.ErrMotorcycleNotFound
	}

	if newVIN == "" {
		return nil, apperrors.ErrVINRequired
	}
	if motorcycle.VIN == newVIN {
		return nil, apperrors.ErrVINNotChanged
	}
	if err := s.validateVIN(newVIN); err != nil {
		return nil, err
	}

	if err := s.fleet.UpdateVIN(motorcycleID, newVIN); err != nil {
		return nil, err
	}
	motorcycle.VIN = newVIN
	return motorcycle, nil
}

func (s *MotorcycleService) ListMotorcycles() ([]models.Motorcycle, error) {
	return s.fleet.ListAll()
}

func (s *MotorcycleService) ListAvailableMotorcycles() ([]models.Motorcycle, error) {
	motorcycles, err := s.fleet.ListAvailable()
	if err != nil {
		return nil, err
	}
	if len(motorcycles) == 0 {
		return nil, apperrors.ErrNoAvailableMotorcycles
	}
	return motorcycles, nil
}

// DeleteMotorcycle removes a motorcycle only when it has zero rental records
// ever, not merely no active one.
func (s *MotorcycleService) DeleteMotorcycle(motorcycleID string) error {
	motorcycle, err := s.fleet.GetByID(motorcycleID)
	if err != nil {
		return err
	}
	if motorcycle == nil {
		return apperrors.ErrMotorcycleNotFound
	}

	hasRentals, err := s.rentals.HasAnyRental(motorcycleID)
	if err != nil {
		return err
	}
	if hasRentals {
		return apperrors.ErrMotorcycleHasRentals
	}

	return s.fleet.Delete(motorcycle)
}
