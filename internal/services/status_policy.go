package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/weekmark/internal/models"
)

// ErrInvalidStatusValue is returned when a weekday carries anything other
// than "yes", "no" or null.
var ErrInvalidStatusValue = errors.New("invalid status value")

func ValidateWeekStatus(status models.WeekStatus) error {
	for _, value := range status.Days() {
		if value == nil {
			continue
		}
		if *value != models.StatusYes && *value != models.StatusNo {
			return fmt.Errorf("%w: %q", ErrInvalidStatusValue, *value)
		}
	}
	return nil
}
