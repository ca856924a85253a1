package services

import (
	"testing"

	"motorent-api/apperrors"
	"motorent-api/models"
)

type fakeFleetStore struct {
	byID  map[string]*models.Motorcycle
	byVIN map[string]*models.Motorcycle
}

func newFakeFleetStore(motorcycles ...*models.Motorcycle) *fakeFleetStore {
	f := &fakeFleetStore{
		byID:  make(map[string]*models.Motorcycle),
		byVIN: make(map[string]*models.Motorcycle),
	}
	for _, m := range motorcycles {
		f.byID[m.ID] = m
		f.byVIN[m.VIN] = m
	}
	return f
}

func (f *fakeFleetStore) Create(m *models.Motorcycle) error {
	f.byID[m.ID] = m
	f.byVIN[m.VIN] = m
	return nil
}

func (f *fakeFleetStore) GetByID(id string) (*models.Motorcycle, error)   { return f.byID[id], nil }
func (f *fakeFleetStore) GetByVIN(vin string) (*models.Motorcycle, error) { return f.byVIN[vin], nil }

func (f *fakeFleetStore) UpdateVIN(id, vin string) error {
	m := f.byID[id]
	delete(f.byVIN, m.VIN)
	m.VIN = vin
	f.byVIN[vin] = m
	return nil
}

func (f *fakeFleetStore) Delete(m *models.Motorcycle) error {
	delete(f.byID, m.ID)
	delete(f.byVIN, m.VIN)
	return nil
}

func (f *fakeFleetStore) ListAll() ([]models.Motorcycle, error) {
	var out []models.Motorcycle
	for _, m := range f.byID {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeFleetStore) ListAvailable() ([]models.Motorcycle, error) {
	return f.ListAll()
}

type fakeRentalChecker struct {
	withRentals map[string]bool
}

func (f *fakeRentalChecker) HasAnyRental(motorcycleID string) (bool, error) {
	return f.withRentals[motorcycleID], nil
}

type recordingPublisher struct {
	published []*models.Motorcycle
}

func (p *recordingPublisher) MotorcycleCreated(m *models.Motorcycle) error {
	p.published = append(p.published, m)
	return nil
}

func TestRegisterMotorcycle(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		year    int
		vin     string
		wantErr *apperrors.AppError
	}{
		{name: "plate style VIN", model: "CG 160", year: 2023, vin: "ABC-1234"},
		{name: "mercosul style VIN", model: "XRE 300", year: 2024, vin: "ABC1D23"},
		{name: "lowercase VIN rejected", model: "CG 160", year: 2023, vin: "abc-1234", wantErr: apperrors.ErrInvalidVINFormat},
		{name: "malformed VIN rejected", model: "CG 160", year: 2023, vin: "AB-12345", wantErr: apperrors.ErrInvalidVINFormat},
		{name: "year too old", model: "Veterana", year: 1899, vin: "ABC-1234", wantErr: apperrors.ErrInvalidYear},
		{name: "year too far in the future", model: "Conceito", year: 2100, vin: "ABC-1234", wantErr: apperrors.ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewMotorcycleService(newFakeFleetStore(), &fakeRentalChecker{}, nil)

			motorcycle, err := service.RegisterMotorcycle(tt.model, tt.year, tt.vin)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("RegisterMotorcycle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RegisterMotorcycle() unexpected error: %v", err)
			}
			if motorcycle.ID == "" {
				t.Fatal("expected a generated motorcycle ID")
			}
		})
	}
}

func TestRegisterMotorcycleDuplicateVIN(t *testing.T) {
	existing := &models.Motorcycle{ID: "moto-1", VIN: "ABC-1234", Model: "CG 160", Year: 2023}
	service := NewMotorcycleService(newFakeFleetStore(existing), &fakeRentalChecker{}, nil)

	_, err := service.RegisterMotorcycle("XRE 300", 2024, "ABC-1234")
	if err != apperrors.ErrVINAlreadyExists {
		t.Fatalf("RegisterMotorcycle() error = %v, want %v", err, apperrors.ErrVINAlreadyExists)
	}
}

func TestRegisterMotorcyclePublishesEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	service := NewMotorcycleService(newFakeFleetStore(), &fakeRentalChecker{}, publisher)

	motorcycle, err := service.RegisterMotorcycle("XRE 300", 2024, "ABC-1234")
	if err != nil {
		t.Fatalf("RegisterMotorcycle() unexpected error: %v", err)
	}
	if len(publisher.published) != 1 || publisher.published[0].ID != motorcycle.ID {
		t.Fatalf("expected one published event for %s, got %v", motorcycle.ID, publisher.published)
	}
}

func TestUpdateVIN(t *testing.T) {
	existing := &models.Motorcycle{ID: "moto-1", VIN: "ABC-1234", Model: "CG 160", Year: 2023}
	other := &models.Motorcycle{ID: "moto-2", VIN: "XYZ-9876", Model: "XRE 300", Year: 2024}

	tests := []struct {
		name    string
		id      string
		vin     string
		wantErr *apperrors.AppError
	}{
		{name: "valid change", id: "moto-1", vin: "DEF-5678"},
		{name: "unknown motorcycle", id: "ghost", vin: "DEF-5678", wantErr: apperrors.ErrMotorcycleNotFound},
		{name: "missing VIN", id: "moto-1", vin: "", wantErr: apperrors.ErrVINRequired},
		{name: "unchanged VIN", id: "moto-1", vin: "ABC-1234", wantErr: apperrors.ErrVINNotChanged},
		{name: "bad format", id: "moto-1", vin: "not-a-vin", wantErr: apperrors.ErrInvalidVINFormat},
		{name: "VIN taken by another machine", id: "moto-1", vin: "XYZ-9876", wantErr: apperrors.ErrVINAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := *existing
			o := *other
			service := NewMotorcycleService(newFakeFleetStore(&e, &o), &fakeRentalChecker{}, nil)

			updated, err := service.UpdateVIN(tt.id, tt.vin)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("UpdateVIN() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateVIN() unexpected error: %v", err)
			}
			if updated.VIN != tt.vin {
				t.Fatalf("UpdateVIN() VIN = %q, want %q", updated.VIN, tt.vin)
			}
		})
	}
}

func TestDeleteMotorcycle(t *testing.T) {
	t.Run("blocked while rental records exist, even finished ones", func(t *testing.T) {
		existing := &models.Motorcycle{ID: "moto-1", VIN: "ABC-1234", Model: "CG 160", Year: 2023}
		checker := &fakeRentalChecker{withRentals: map[string]bool{"moto-1": true}}
		service := NewMotorcycleService(newFakeFleetStore(existing), checker, nil)

		if err := service.DeleteMotorcycle("moto-1"); err != apperrors.ErrMotorcycleHasRentals {
			t.Fatalf("DeleteMotorcycle() error = %v, want %v", err, apperrors.ErrMotorcycleHasRentals)
		}
	})

	t.Run("allowed with zero rental records", func(t *testing.T) {
		existing := &models.Motorcycle{ID: "moto-1", VIN: "ABC-1234", Model: "CG 160", Year: 2023}
		fleet := newFakeFleetStore(existing)
		service := NewMotorcycleService(fleet, &fakeRentalChecker{}, nil)

		if err := service.DeleteMotorcycle("moto-1"); err != nil {
			t.Fatalf("DeleteMotorcycle() unexpected error: %v", err)
		}
		if _, ok := fleet.byID["moto-1"]; ok {
			t.Fatal("expected motorcycle to be removed")
		}
	})
}

func TestListAvailableMotorcyclesEmpty(t *testing.T) {
	service := NewMotorcycleService(newFakeFleetStore(), &fakeRentalChecker{}, nil)

	if _, err := service.ListAvailableMotorcycles(); err != apperrors.ErrNoAvailableMotorcycles {
		t.Fatalf("ListAvailableMotorcycles() error = %v, want %v", err, apperrors.ErrNoAvailableMotorcycles)
	}
}
