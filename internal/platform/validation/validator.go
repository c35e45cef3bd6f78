package validation

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid marks every failure produced by this package.
var ErrInvalid = errors.New("validation failed")

var std = validator.New(validator.WithRequiredStructEnabled())

func Struct(v any) error {
	return StructCtx(context.Background(), v)
}

func StructCtx(ctx context.Context, v any) error {
	err := std.StructCtx(ctx, v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		item := fe.Field() + " failed " + fe.Tag()
		if fe.Param() != "" {
			item += "=" + fe.Param()
		}
		parts = append(parts, item)
	}

	return errors.Wrapf(ErrInvalid, "%s", strings.Join(parts, "; "))
}
