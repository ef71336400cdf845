package argue

import (
	"bytes"
	"testing"

	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewParser_Defaults(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	assert.Empty(t, p.flags)
	assert.Nil(t, p.args)
	assert.Equal(t, i18n.Default(), p.bundle)
	assert.Equal(t, language.English, p.lang)
}

func TestWithFlag(t *testing.T) {
	var a, b int
	p, err := NewParser(
		WithFlags(Flag{Name: "a", Bind: Int(&a)}),
		WithFlag("b", "b", "flag b", Int(&b)),
	)
	require.NoError(t, err)

	require.Len(t, p.flags, 2)
	assert.Equal(t, "a", p.flags[0].Name)
	assert.Equal(t, Flag{Name: "b", Short: "b", Description: "flag b", Bind: p.flags[1].Bind}, p.flags[1])
}

func TestWithArgs(t *testing.T) {
	contract := &ArgConfig{Name: "file", Required: true}
	p, err := NewParser(WithArgs(contract))
	require.NoError(t, err)

	contract.Required = false
	assert.True(t, p.args.Required, "the parser keeps its own copy of the contract")

	p, err = NewParser(WithArgs(contract), WithArgs(nil))
	require.NoError(t, err)
	assert.Nil(t, p.args)
}

func TestWithWriters(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	p, err := NewParser(WithStdout(stdout), WithStderr(stderr))
	require.NoError(t, err)

	_, _ = p.Parse([]string{"prog"})
	_, _ = p.Parse([]string{"prog", "--x"})
	assert.Contains(t, stdout.String(), "USAGE: prog")
	assert.Equal(t, "prog: flag 'x' does not exist\n", stderr.String())
}

func TestWithLanguage(t *testing.T) {
	p, err := NewParser(WithLanguage(language.German))
	require.NoError(t, err)
	assert.Equal(t, language.German, p.lang)

	p, err = NewParser(WithLanguage(language.Japanese))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, errs.ErrLanguageUnavailable)
}

func TestWithBundle(t *testing.T) {
	bundle := i18n.NewEmptyBundle()
	bundle.SetDefaultLanguage(language.French)
	require.NoError(t, bundle.AddLanguage(language.French, map[string]string{
		errs.HelpUsageKey:    "UTILISATION :",
		errs.HelpArgsKey:     "ARGUMENTS :",
		errs.HelpFlagsKey:    "OPTIONS :",
		errs.HelpHelpFlagKey: "Affiche l'aide",
	}))

	stdout := &bytes.Buffer{}
	p, err := NewParser(WithBundle(bundle), WithStdout(stdout))
	require.NoError(t, err)
	assert.Equal(t, language.French, p.lang)

	_, err = p.Parse([]string{"prog"})
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, stdout.String(), "UTILISATION : prog [FLAGS]")
	assert.Contains(t, stdout.String(), "OPTIONS :")

	_, err = NewParser(WithBundle(bundle), WithLanguage(language.German))
	assert.ErrorIs(t, err, errs.ErrLanguageUnavailable, "the language must exist in the selected bundle")

	_, err = NewParser(WithBundle(nil))
	assert.ErrorIs(t, err, errs.ErrBundleNil)
	assert.Equal(t, "Nachrichtenbündel ist nil", errs.ErrBundleNil.Translate(i18n.Default(), language.German))
}
