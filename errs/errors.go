package errs

import "github.com/napalu/argue/i18n"

// Parse outcome errors
var (
	ErrHelpRequested    = i18n.NewError(ErrHelpRequestedKey)
	ErrFlagDoesNotExist = i18n.NewError(ErrFlagDoesNotExistKey)
	ErrFlagMissingValue = i18n.NewError(ErrFlagMissingValueKey)
	ErrParseFnFail      = i18n.NewError(ErrParseFnFailKey)
	ErrArgsTooMany      = i18n.NewError(ErrArgsTooManyKey)
	ErrArgsMissingValue = i18n.NewError(ErrArgsMissingValueKey)
	ErrSplitFailed      = i18n.NewError(ErrSplitFailedKey)
)

// Value interpreter errors
var (
	ErrWrongFormat = i18n.NewError(ErrWrongFormatKey)
	ErrOutOfRange  = i18n.NewError(ErrOutOfRangeKey)
)

// Flag table contract violations and configuration errors
var (
	ErrEmptyFlag           = i18n.NewError(ErrEmptyFlagKey)
	ErrFlagAlreadyExists   = i18n.NewError(ErrFlagAlreadyExistsKey)
	ErrShortFlagConflict   = i18n.NewError(ErrShortFlagConflictKey)
	ErrBindNil             = i18n.NewError(ErrBindNilKey)
	ErrShortLongConflict   = i18n.NewError(ErrShortLongConflictKey)
	ErrLanguageUnavailable = i18n.NewError(ErrLanguageUnavailableKey)
	ErrBundleNil           = i18n.NewError(ErrBundleNilKey)
)
