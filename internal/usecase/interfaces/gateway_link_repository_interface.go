package interfaces

import (
	"context"

	"financier/internal/domain/entities"
)

// IGatewayLinkRepository abstracts DynamoDB persistence for GatewayLink.
//
// The billing use case must be able to:
//   - remember the gateway id assigned when a customer/organisation is created
//   - read it back to rehydrate host attributes before later gateway calls

type IGatewayLinkRepository interface {
	Save(ctx context.Context, link entities.GatewayLink) (entities.GatewayLink, error)
	Get(ctx context.Context, owner entities.GatewayLinkOwner, ownerID string) (entities.GatewayLink, error)
	Delete(ctx context.Context, owner entities.GatewayLinkOwner, ownerID string) error
}
