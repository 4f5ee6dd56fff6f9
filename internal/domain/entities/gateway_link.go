package entities

import "time"

// GatewayLinkOwner identifies which kind of host record a link belongs to.
type GatewayLinkOwner string

const (
	GatewayLinkOwnerUser         GatewayLinkOwner = "user"
	GatewayLinkOwnerOrganisation GatewayLinkOwner = "organisation"
)

// GatewayLink persists the gateway-assigned identifier of a host record.
//
// Storage model (DynamoDB):
//   - PK: id ("<owner_type>#<owner_id>")
//
// Attribute is the host attribute name the identifier is exposed under, so the
// record can be rehydrated into User/ConnectAccount attributes.
type GatewayLink struct {
	ID                    string           `json:"id"`
	OwnerType             GatewayLinkOwner `json:"owner_type"`
	OwnerID               string           `json:"owner_id"`
	Attribute             string           `json:"attribute"`
	GatewayID             string           `json:"gateway_id"`
	OrganisationAccountID string           `json:"organisation_account_id,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// GatewayLinkID builds the primary key of a link.
func GatewayLinkID(owner GatewayLinkOwner, ownerID string) string {
	return string(owner) + "#" + ownerID
}
