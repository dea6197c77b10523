package profile

import "context"

// Store applies the wizard's final patch to the account document.
// The patch is sparse: only the provided fields are written, the JSONB
// profile is merged rather than replaced.
type Store interface {
	Apply(ctx context.Context, userID string, patch Patch) error
}

// Patch is the assembled profile update.
type Patch struct {
	UserType string
	// Fields is merged into the profile document. Nested role details sit
	// under exactly one of riderDetails, providerDetails, supplierDetails
	// or educationalDetails.
	Fields map[string]any
	// Completed marks the profile as finished; the wizard never re-enters
	// once this is set.
	Completed bool
}
