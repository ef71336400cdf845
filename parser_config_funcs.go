package argue

import (
	"io"

	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/i18n"
	"golang.org/x/text/language"
)

// WithDescription sets the program description printed at the top of the help text
func WithDescription(description string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.description = description
	}
}

// WithFlags appends flags to the flag table. The table is validated on every Parse, so
// conflicting definitions are reported there rather than here.
func WithFlags(flags ...Flag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.flags = append(p.flags, flags...)
	}
}

// WithFlag appends a single flag to the flag table
func WithFlag(name, short, description string, bind Binding) ConfigureParserFunc {
	return WithFlags(Flag{Name: name, Short: short, Description: description, Bind: bind})
}

// WithArgs sets the positional argument contract. A nil contract accepts zero or one
// positional argument and omits the ARGS section from the help text.
func WithArgs(args *ArgConfig) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if args == nil {
			p.args = nil
			return
		}
		c := *args
		p.args = &c
	}
}

// WithStdout sets the writer the help text is printed to
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stdout = w
	}
}

// WithStderr sets the writer diagnostics are printed to
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stderr = w
	}
}

// WithBundle replaces the message bundle used for help text and diagnostics. The language is
// reset to the bundle's default language.
func WithBundle(bundle *i18n.Bundle) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if bundle == nil {
			*err = errs.ErrBundleNil
			return
		}
		p.bundle = bundle
		p.lang = bundle.GetDefaultLanguage()
	}
}

// WithLanguage selects the language of help text and diagnostics. The language must be
// present in the current bundle, so WithBundle has to come first when both are used.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if !p.bundle.HasLanguage(lang) {
			*err = errs.ErrLanguageUnavailable.WithArgs(lang.String())
			return
		}
		p.lang = lang
	}
}
