package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextRejectsControlsExceptTabAndLf(t *testing.T) {
	_, err := NewText("hello\tworld\n")
	assert.NoError(t, err)

	_, err = NewText("bad\x01byte")
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestParamValueRejectsQuoteAndNewline(t *testing.T) {
	_, err := NewParamValue(`has "quote"`)
	assert.ErrorIs(t, err, ErrInvalidChar)

	_, err = NewParamValue("has\nnewline")
	assert.ErrorIs(t, err, ErrInvalidChar)

	v, err := NewParamValue("plain value")
	assert.NoError(t, err)
	assert.Equal(t, "plain value", v.Value())
}

func TestNameRejectsEmptyAndNonAlnumHyphen(t *testing.T) {
	_, err := NewName("")
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = NewName("X_PROP")
	assert.Error(t, err)

	n, err := NewName("X-MY-PROP")
	assert.NoError(t, err)
	assert.True(t, n.IsExtension())

	n2, err := NewName("SUMMARY")
	assert.NoError(t, err)
	assert.False(t, n2.IsExtension())
}

func TestUriRequiresColonAndValidScheme(t *testing.T) {
	_, err := NewUri("no-scheme-here")
	assert.ErrorIs(t, err, ErrMissingColon)

	_, err = NewUri("1bad:rest")
	assert.ErrorIs(t, err, ErrInvalidScheme)

	u, err := NewUri("mailto:jsmith@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme())
}

func TestUidForbidsControlsExceptTab(t *testing.T) {
	_, err := NewUid("")
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = NewUid("has\x02control")
	assert.Error(t, err)

	u, err := NewUid("13235@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "13235@example.com", u.Value())
}
