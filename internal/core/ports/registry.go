package ports

import "context"

// AssetRegistry is the external custodian of the unique assets under auction.
// The engine consults it only to verify ownership at listing time and to move
// the asset to the winner at settlement.
type AssetRegistry interface {
	// OwnerOf returns the identity currently owning the asset.
	OwnerOf(ctx context.Context, assetID string) (string, error)
	// Transfer moves the asset between identities. A refusal must surface as
	// an error so the caller can abort the whole settlement.
	Transfer(ctx context.Context, assetID, from, to string) error
}
