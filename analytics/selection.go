package analytics

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/parts-pile/car-sales/dataset"
)

// AllTypes is the vehicle-type option that disables the type filter.
const AllTypes = "All"

// Selection is the user's current filter state.
type Selection struct {
	Brand       string `json:"brand" validate:"required"`
	VehicleType string `json:"type" validate:"required"`
}

var validate = validator.New()

// Normalize fills in defaults: an empty vehicle type means AllTypes and the
// brand is matched in lowercase, as brands are derived.
func (s Selection) Normalize() Selection {
	s.Brand = strings.ToLower(strings.TrimSpace(s.Brand))
	s.VehicleType = strings.TrimSpace(s.VehicleType)
	if s.VehicleType == "" {
		s.VehicleType = AllTypes
	}
	return s
}

// Validate checks the selection against the options offered for ds: the
// brand must be one of the dataset's brands and the type one of its types.
func (s Selection) Validate(ds *dataset.Dataset) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}
	if !contains(Brands(ds), s.Brand) {
		return fmt.Errorf("unknown brand %q", s.Brand)
	}
	if !contains(TypeOptions(ds), s.VehicleType) {
		return fmt.Errorf("unknown vehicle type %q", s.VehicleType)
	}
	return nil
}

// Key identifies the selection in cache keys and ETags.
func (s Selection) Key() string {
	return s.Brand + "|" + s.VehicleType
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
