package lead

import (
	"context"

	"Bricklix/entity"
)

type Core interface {
	CreateLead(ctx context.Context, lead entity.Lead) error
	ListLeads(ctx context.Context, limit, offset int64) ([]entity.LeadRecord, error)
}
