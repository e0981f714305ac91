package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabmaster/internal/application/port"
	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/domain/review"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
)

// ReviewPromptUseCase decides when to show the rate-and-review modal and
// records the user's answer. Settings are written through on every change.
type ReviewPromptUseCase struct {
	state   port.StateStore
	storage port.LocalStorage
	policy  review.Policy
	now     Clock
}

// NewReviewPromptUseCase creates a new review prompt use case.
func NewReviewPromptUseCase(
	state port.StateStore,
	storage port.LocalStorage,
	policy review.Policy,
	now Clock,
) *ReviewPromptUseCase {
	return &ReviewPromptUseCase{
		state:   state,
		storage: storage,
		policy:  policy,
		now:     now,
	}
}

// Evaluate records the install time when missing, then opens the modal if
// the policy allows it. A first run never prompts.
func (uc *ReviewPromptUseCase) Evaluate(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)
	now := uc.now()

	settings, recorded := review.EnsureInstallTime(uc.state.State().Settings, now)
	if recorded {
		uc.state.Dispatch(store.SetExtensionInstalledTime{At: now})
		if err := uc.persist(ctx); err != nil {
			return false, err
		}
		log.Debug().Str("installed_at", settings.ExtensionInstalledTime).Msg("install time recorded")
	}

	if !review.ShouldPromptReview(settings, now, uc.policy) {
		return false, nil
	}

	uc.state.Dispatch(store.OpenRateAndReviewModal{})
	uc.state.Dispatch(store.SetLastReviewRequestTime{At: now})
	if err := uc.persist(ctx); err != nil {
		return true, err
	}
	log.Info().Msg("review prompt opened")
	return true, nil
}

// MarkRated stops all future prompts after the user left a review.
func (uc *ReviewPromptUseCase) MarkRated(ctx context.Context) error {
	uc.state.Dispatch(store.SetUserRatedAndReviewed{Value: true})
	uc.state.Dispatch(store.CloseRateAndReviewModal{})
	return uc.persist(ctx)
}

// NeverAskAgain stops all future prompts.
func (uc *ReviewPromptUseCase) NeverAskAgain(ctx context.Context) error {
	uc.state.Dispatch(store.SetNeverAskAgainToRate{Value: true})
	uc.state.Dispatch(store.CloseRateAndReviewModal{})
	return uc.persist(ctx)
}

// Later closes the modal; the cooldown started when it opened.
func (uc *ReviewPromptUseCase) Later(ctx context.Context) error {
	uc.state.Dispatch(store.CloseRateAndReviewModal{})
	return uc.persist(ctx)
}

func (uc *ReviewPromptUseCase) persist(ctx context.Context) error {
	settings := uc.state.State().Settings
	if err := uc.storage.Save(ctx, entity.KeySettingsData, settings); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to save settings")
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
