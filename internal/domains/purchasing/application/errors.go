package application

import (
	"errors"
	"fmt"

	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
)

// ErrInvalidInput signals the request violated a purchasing invariant.
var ErrInvalidInput = errors.New("invalid purchase order input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyVendor) ||
		errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
