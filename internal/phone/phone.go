// Package phone wraps libphonenumber (Go port) behind the boolean contract the entry
// screen needs. Parse errors never leave this package as anything but false.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var ErrEmpty = errors.New("empty phone number")
var ErrNotValidForRegion = errors.New("phone number not valid for region")

// Number is a parsed number that passed the region check.
type Number struct {
	Raw    string
	Region string
	E164   string
}

// Parse parses raw with region as the default country and checks that the result is a
// valid number for that region.
func Parse(raw, region string) (Number, error) {
	if strings.TrimSpace(raw) == "" {
		return Number{}, ErrEmpty
	}
	region = strings.ToUpper(strings.TrimSpace(region))

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return Number{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumberForRegion(num, region) {
		return Number{}, ErrNotValidForRegion
	}
	return Number{
		Raw:    raw,
		Region: region,
		E164:   phonenumbers.Format(num, phonenumbers.E164),
	}, nil
}

type Validator struct{}

func NewValidator() *Validator { return &Validator{} }

func (*Validator) ParseAndValidate(raw, region string) bool {
	_, err := Parse(raw, region)
	return err == nil
}
