package port

import (
	"context"

	"github.com/bnema/dumbvim/internal/domain/entity"
)

// FontResolver builds renderable font handles from a family and a size.
type FontResolver interface {
	// Resolve returns the font for family at size, or an error when the
	// family is unknown or the size cannot be rendered.
	Resolve(ctx context.Context, family string, size float64) (entity.Font, error)
}
