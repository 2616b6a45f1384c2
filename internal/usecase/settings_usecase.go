package usecase

import (
	"context"

	"gearshop/internal/domain/entity"
)

// SettingsUsecase mirrors the payment-method toggles. The at-least-one-
// channel invariant is enforced optimistically per client before any write
// reaches the gateway; concurrent admins can still race remotely, which is
// an accepted limitation of the non-transactional store.
type SettingsUsecase interface {
	// Fetch performs a one-shot read. An absent record is lazily
	// initialized with both channels enabled.
	Fetch(ctx context.Context) (entity.Settings, error)

	// Update merges the patch and writes the result, rejecting patches
	// that would leave both channels disabled before any gateway call.
	Update(ctx context.Context, patch entity.SettingsPatch) (entity.Settings, error)
}
