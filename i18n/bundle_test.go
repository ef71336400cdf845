package i18n

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefault_EmbeddedLocales(t *testing.T) {
	b := Default()
	assert.Equal(t, []language.Tag{language.German, language.English}, b.Languages())
	assert.Equal(t, language.English, b.GetDefaultLanguage())
	assert.Equal(t, "FLAGS:", b.T("argue.help.flags"))
	assert.Equal(t, "AUFRUF:", b.TL(language.German, "argue.help.usage"))
}

func TestBundle_TL(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	tests := []struct {
		name string
		lang language.Tag
		key  string
		args []interface{}
		want string
	}{
		{"english with args", language.English, "argue.error.flag_does_not_exist", []interface{}{"nope"}, "flag 'nope' does not exist"},
		{"german with args", language.German, "argue.error.flag_missing_value", []interface{}{"numi"}, "Flag '--numi' erwartet einen Wert"},
		{"unknown language falls back", language.French, "argue.help.args", nil, "ARGS:"},
		{"unknown key returns key", language.English, "argue.nope", nil, "argue.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.TL(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestBundle_AddLanguage(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A", "b": "B"}))

	err := b.AddLanguage(language.Spanish, map[string]string{"a": "A"})
	assert.ErrorIs(t, err, ErrInvalidTranslations)
	assert.Contains(t, err.Error(), "missing key")
	assert.False(t, b.HasLanguage(language.Spanish))

	err = b.AddLanguage(language.Spanish, map[string]string{"a": "A", "b": "B", "c": "C"})
	assert.ErrorIs(t, err, ErrInvalidTranslations)
	assert.Contains(t, err.Error(), "extra key")

	assert.NoError(t, b.AddLanguage(language.Spanish, map[string]string{"a": "a-es", "b": "b-es"}))
	assert.True(t, b.HasKey(language.Spanish, "a"))
	assert.Equal(t, "a-es", b.TL(language.Spanish, "a"))

	// merging into an existing language skips validation
	assert.NoError(t, b.AddLanguage(language.Spanish, map[string]string{"a": "otra"}))
	assert.Equal(t, "otra", b.TL(language.Spanish, "a"))
	assert.Equal(t, "b-es", b.TL(language.Spanish, "b"))
}

func TestNewBundleWithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"loc/en.json":    {Data: []byte(`{"hello": "hello %s"}`)},
		"loc/fr.json":    {Data: []byte(`{"hello": "bonjour %s"}`)},
		"loc/readme.txt": {Data: []byte("ignored")},
	}

	b, err := NewBundleWithFS(fsys, "loc")
	require.NoError(t, err)
	// key held in a variable: it is a translation key, not a printf format (go vet printf check)
	helloKey := "hello"
	assert.Equal(t, "bonjour Ada", b.TL(language.French, helloKey, "Ada"))

	_, err = NewBundleWithFS(fstest.MapFS{"loc/fr.json": {Data: []byte(`{"hello": "bonjour"}`)}}, "loc")
	assert.True(t, errors.Is(err, ErrDefaultLanguageTranslationsMissing))

	_, err = NewBundleWithFS(fstest.MapFS{"loc/not-a-lang!.json": {Data: []byte(`{}`)}}, "loc")
	assert.ErrorIs(t, err, ErrInvalidLanguage)

	_, err = NewBundleWithFS(fstest.MapFS{"loc/en.json": {Data: []byte(`{`)}}, "loc")
	assert.ErrorIs(t, err, ErrInvalidTranslations)
}

func TestTrError(t *testing.T) {
	base := NewError("argue.error.out_of_range")
	err := base.WithArgs("300", "int8")

	assert.Equal(t, "out of range: '300' does not fit in int8", err.Error())
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, "argue.error.out_of_range", err.Key())
	assert.Equal(t, []interface{}{"300", "int8"}, err.Args())

	other := NewError("argue.error.wrong_format")
	assert.False(t, errors.Is(err, other))

	wrapped := NewError("argue.error.parse_fn_fail").WithArgs("300", "small").Wrap(err)
	assert.True(t, errors.Is(wrapped, base), "errors.Is walks the wrapped chain")
	assert.Equal(t, "invalid value '300' for flag '--small': out of range: '300' does not fit in int8", wrapped.Error())
	assert.Equal(t,
		"ungültiger Wert '300' für Flag '--small': außerhalb des Wertebereichs: '300' passt nicht in int8",
		wrapped.Translate(Default(), language.German))
}
