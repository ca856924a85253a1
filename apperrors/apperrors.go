package apperrors

import (
	"errors"
	"net/http"
)

// AppError is a business-rule rejection carrying a machine-readable code and
// the HTTP status class it maps to. Services raise these; controllers pass
// them through verbatim.
type AppError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func New(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

// Internal wraps unexpected server-side inconsistencies (e.g. a missing plan
// for an already-validated duration). Never swallowed, never retried.
func Internal(message string) *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: message, Status: http.StatusInternalServerError}
}

// From extracts the AppError from err, or returns a generic internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred. Please try again later")
}

var (
	ErrUserNotFound       = New("USER_NOT_FOUND", "User not found.", http.StatusNotFound)
	ErrEmailAlreadyExists = New("EMAIL_ALREADY_EXISTS", "A user with this email already exists.", http.StatusConflict)
	ErrLicenseNotProvided = New("LICENSE_NOT_PROVIDED", "A driver license is required to rent a motorcycle.", http.StatusBadRequest)
	ErrInvalidLicenseType = New("INVALID_LICENSE_TYPE", "License category A is required to rent a motorcycle.", http.StatusForbidden)

	ErrMotorcycleNotFound      = New("MOTORCYCLE_NOT_FOUND", "Motorcycle not found.", http.StatusNotFound)
	ErrMotorcycleAlreadyRented = New("MOTORCYCLE_ALREADY_RENTED", "Motorcycle is already rented.", http.StatusConflict)
	ErrMotorcycleHasRentals    = New("MOTORCYCLE_HAS_RENTALS", "Motorcycle cannot be removed because it has rental records.", http.StatusConflict)
	ErrNoAvailableMotorcycles  = New("NO_AVAILABLE_MOTORCYCLES", "There are no available motorcycles at the moment.", http.StatusNotFound)
	ErrVINAlreadyExists        = New("VIN_ALREADY_EXISTS", "A motorcycle with this VIN already exists.", http.StatusConflict)
	ErrInvalidVINFormat        = New("INVALID_VIN_FORMAT", "The VIN format is invalid.", http.StatusBadRequest)
	ErrVINRequired             = New("VIN_REQUIRED", "VIN must be provided to update.", http.StatusBadRequest)
	ErrVINNotChanged           = New("VIN_NOT_CHANGED", "The new VIN is the same as the current VIN.", http.StatusBadRequest)
	ErrInvalidYear             = New("INVALID_YEAR", "The year provided is not valid for a motorcycle.", http.StatusBadRequest)

	ErrRentalPlanNotFound    = New("RENTAL_PLAN_NOT_FOUND", "Rental plan not found.", http.StatusNotFound)
	ErrInvalidStartDate      = New("INVALID_START_DATE", "Start date cannot be in the past.", http.StatusBadRequest)
	ErrPlanDatesMismatch     = New("PLAN_DATES_MISMATCH", "Dates do not match the selected rental plan.", http.StatusBadRequest)
	ErrRentalNotFound        = New("RENTAL_NOT_FOUND", "Rental not found.", http.StatusNotFound)
	ErrRentalForbidden       = New("RENTAL_FORBIDDEN", "Rental does not belong to the requesting user.", http.StatusForbidden)
	ErrRentalAlreadyFinished = New("RENTAL_ALREADY_FINISHED", "Rental has already been returned.", http.StatusConflict)
	ErrRentalsNotFound       = New("RENTALS_NOT_FOUND", "No rentals found for this motorcycle.", http.StatusNotFound)

	ErrInvalidImageFormat = New("INVALID_IMAGE_FORMAT", "Invalid image format. Only PNG and BMP are allowed.", http.StatusNotAcceptable)
)
