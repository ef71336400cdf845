package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up by key
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Translate(t Translator, lang language.Tag) string
}

// MessageProvider returns the raw message stored under key
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider on top of a Bundle's default language
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider with a bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the message for key, falling back to English and then to the key itself
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	if msg, ok := p.bundle.Message(p.bundle.GetDefaultLanguage(), key); ok {
		return msg
	}
	if msg, ok := p.bundle.Message(language.English, key); ok {
		return msg
	}

	return key
}

// TrError is a translatable error. Copies made through WithArgs and Wrap share the sentinel
// of the error they were derived from, which is what errors.Is compares.
//
// Example usage:
//
//	var ErrOutOfRange = NewError("argue.error.out_of_range")
//	err := ErrOutOfRange.WithArgs("300", "int8")
//	errors.Is(err, ErrOutOfRange) // true
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	provider := getDefaultProvider()

	return &TrError{
		sentinel:        errors.New(provider.GetMessage(key)),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message in the provider's language, formatted with args if provided
func (e *TrError) Error() string {
	msg := e.messageProvider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// Translate renders the error through t in lang. Wrapped translatable errors are translated
// as well.
func (e *TrError) Translate(t Translator, lang language.Tag) string {
	msg := t.TL(lang, e.key, e.args...)
	if e.wrapped == nil {
		return msg
	}

	var te TranslatableError
	if errors.As(e.wrapped, &te) {
		return msg + ": " + te.Translate(t, lang)
	}

	return fmt.Sprintf("%s: %v", msg, e.wrapped)
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is by comparing sentinels
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider     MessageProvider
	defaultProviderOnce sync.Once
)

func getDefaultProvider() MessageProvider {
	defaultProviderOnce.Do(func() {
		defaultProvider = NewBundleMessageProvider(Default())
	})

	return defaultProvider
}
