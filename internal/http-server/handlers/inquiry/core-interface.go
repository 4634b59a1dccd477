package inquiry

import (
	"context"

	"Bricklix/entity"
)

type Core interface {
	SendInquiry(ctx context.Context, inq entity.Inquiry) error
}
