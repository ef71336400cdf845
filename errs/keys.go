// Package errs defines the translatable sentinel errors returned by argue and the translation
// keys they are looked up by.
package errs

const (
	prefixKey = "argue"

	ErrorPrefixKey = prefixKey + ".error"
	HelpPrefixKey  = prefixKey + ".help"
)

// Parse outcome errors
const (
	ErrHelpRequestedKey    = ErrorPrefixKey + ".help_requested"
	ErrFlagDoesNotExistKey = ErrorPrefixKey + ".flag_does_not_exist"
	ErrFlagMissingValueKey = ErrorPrefixKey + ".flag_missing_value"
	ErrParseFnFailKey      = ErrorPrefixKey + ".parse_fn_fail"
	ErrArgsTooManyKey      = ErrorPrefixKey + ".args_too_many"
	ErrArgsMissingValueKey = ErrorPrefixKey + ".args_missing_value"
	ErrSplitFailedKey      = ErrorPrefixKey + ".split_failed"
)

// Value interpreter errors
const (
	ErrWrongFormatKey = ErrorPrefixKey + ".wrong_format"
	ErrOutOfRangeKey  = ErrorPrefixKey + ".out_of_range"
)

// Flag table contract violations and configuration errors
const (
	ErrEmptyFlagKey           = ErrorPrefixKey + ".empty_flag"
	ErrFlagAlreadyExistsKey   = ErrorPrefixKey + ".flag_already_exists"
	ErrShortFlagConflictKey   = ErrorPrefixKey + ".short_flag_conflict"
	ErrBindNilKey             = ErrorPrefixKey + ".bind_nil"
	ErrShortLongConflictKey   = ErrorPrefixKey + ".short_long_conflict"
	ErrLanguageUnavailableKey = ErrorPrefixKey + ".language_unavailable"
	ErrBundleNilKey           = ErrorPrefixKey + ".bundle_nil"
)

// Help text
const (
	HelpUsageKey    = HelpPrefixKey + ".usage"
	HelpArgsKey     = HelpPrefixKey + ".args"
	HelpFlagsKey    = HelpPrefixKey + ".flags"
	HelpHelpFlagKey = HelpPrefixKey + ".help_flag"
)
