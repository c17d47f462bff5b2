package dateconv

import (
	"fmt"
	"time"
)

const (
	APILayout     = "2006-01-02" // формат для БД и API
	DisplayLayout = "02/01/2006" // формат мобильного клиента
)

// ToAPIFormat converts dd/mm/yyyy to yyyy-mm-dd.
// Strings that do not parse are returned unchanged.
func ToAPIFormat(s string) string {
	d, err := time.Parse(DisplayLayout, s)
	if err != nil {
		return s
	}
	return d.Format(APILayout)
}

// ToDisplayFormat converts yyyy-mm-dd to dd/mm/yyyy.
// Strings that do not parse are returned unchanged.
func ToDisplayFormat(s string) string {
	d, err := time.Parse(APILayout, s)
	if err != nil {
		return s
	}
	return d.Format(DisplayLayout)
}

// Normalize accepts a date in either layout and returns the API form.
// Unlike the converters it rejects anything that is not a real calendar date.
func Normalize(s string) (string, error) {
	if d, err := time.Parse(APILayout, s); err == nil {
		return d.Format(APILayout), nil
	}
	if d, err := time.Parse(DisplayLayout, s); err == nil {
		return d.Format(APILayout), nil
	}
	return "", fmt.Errorf("invalid date %q, want yyyy-mm-dd or dd/mm/yyyy", s)
}
