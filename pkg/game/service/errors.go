package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/ZenRepublic/Clubhouse/pkg/app/errors"
	"github.com/ZenRepublic/Clubhouse/pkg/campaign"
	"github.com/ZenRepublic/Clubhouse/pkg/clubstore"
	"github.com/ZenRepublic/Clubhouse/pkg/energy"
	"github.com/ZenRepublic/Clubhouse/pkg/house"
	"github.com/ZenRepublic/Clubhouse/pkg/identity"
	"github.com/ZenRepublic/Clubhouse/pkg/ledger"
	"github.com/ZenRepublic/Clubhouse/pkg/names"
	"github.com/ZenRepublic/Clubhouse/pkg/player"
)

var (
	authorizationErrors = []error{
		ErrNotProgramAuthority,
		ErrNotProgramAdmin,
		ErrNotHouseAdmin,
		ErrNotCreator,
		ErrOracleMismatch,
		house.ErrNotAdmin,
		ledger.ErrUnauthorized,
	}
	identityErrors = []error{
		identity.ErrUnexpectedProof,
		identity.ErrMissingProof,
		identity.ErrTokenOwnerMismatch,
		identity.ErrOwnerBalanceMismatch,
		identity.ErrMetadataMismatch,
		identity.ErrCollectionMismatch,
		identity.ErrInvalidIdentity,
		player.ErrIdentityMismatch,
	}
	validationErrors = []error{
		ErrInvalidAdmin,
		campaign.ErrInvalidTimeSpan,
		campaign.ErrInvalidConfig,
		player.ErrStakeMismatch,
		names.ErrTooLong,
		names.ErrTooShort,
		names.ErrStartsWithPunctuation,
		names.ErrStartsWithWhitespace,
		names.ErrEndsWithWhitespace,
		names.ErrConsecutiveWhitespace,
		names.ErrInvalidCharacter,
	}
	economicErrors = []error{
		campaign.ErrRewardsUnavailable,
		ledger.ErrInsufficientFunds,
		ErrAmountTooHigh,
		house.ErrTaxTooHigh,
		energy.ErrOutOfEnergy,
	}
	lifecycleErrors = []error{
		player.ErrInGame,
		player.ErrNotInGame,
		player.ErrNoStake,
		player.ErrStakeOutstanding,
		campaign.ErrExpired,
		campaign.ErrActive,
		campaign.ErrGamesInProgress,
		house.ErrInactive,
		house.ErrActiveCampaigns,
		clubstore.ErrAlreadyExists,
	}
)

func match(err error, group []error) (error, bool) {
	for _, target := range group {
		if errors.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}

// classify wraps a domain error in the ServiceError category its rule belongs to.
// Arithmetic and unknown errors surface as internal errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.BadRequestError(err, verrs.Error())
	}
	if errors.Is(err, clubstore.ErrNotFound) {
		return apperrors.ResourceNotFoundError(err, clubstore.ErrNotFound.Error())
	}
	if target, ok := match(err, authorizationErrors); ok {
		return apperrors.ForbiddenError(err, target.Error())
	}
	if target, ok := match(err, identityErrors); ok {
		return apperrors.ForbiddenError(err, target.Error())
	}
	if target, ok := match(err, validationErrors); ok {
		return apperrors.BadRequestError(err, target.Error())
	}
	if target, ok := match(err, economicErrors); ok {
		return apperrors.UnprocessableError(err, target.Error())
	}
	if target, ok := match(err, lifecycleErrors); ok {
		return apperrors.ConflictError(err, target.Error())
	}
	return apperrors.GeneralError(err)
}
