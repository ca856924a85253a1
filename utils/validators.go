package utils

import (
	"regexp"
	"time"
)

// Fleet VINs follow the Brazilian plate-style formats ABC-1234 and ABC1D23.
var vinRegex = regexp.MustCompile(`^[A-Z]{3}-\d{4}$|^[A-Z]{3}\d[A-Z]\d{2}$`)

func IsValidVIN(vin string) bool {
	return vinRegex.MatchString(vin)
}

func IsValidMotorcycleYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}
