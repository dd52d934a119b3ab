package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nutri-track/internal/validators"
)

// validate runs v over obj and tags failures with [ErrValidation].
func validate(ctx context.Context, v validators.Validator, obj any, fields ...string) error {
	if err := v.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
