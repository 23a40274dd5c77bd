package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractionalSecondRange(t *testing.T) {
	_, err := NewFractionalSecond(0)
	assert.Error(t, err)
	_, err = NewFractionalSecond(1_000_000_000)
	assert.Error(t, err)
	f, err := NewFractionalSecond(500_000_000)
	assert.NoError(t, err)
	assert.Equal(t, uint32(500_000_000), f.Nanoseconds())
}

func TestSecondAdmitsLeapSecond(t *testing.T) {
	s, err := NewSecond(60)
	assert.NoError(t, err)
	assert.True(t, s.IsLeap())

	_, err = NewNonLeapSecond(60)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestUtcOffsetRejectsNegativeZeroOnlyAtGrammarLayer(t *testing.T) {
	// UtcOffset itself has no way to distinguish "-00:00" from zero built
	// from Positive; that rejection lives in grammar.UtcOffset, which
	// sees the original sign token. Here we only check field assembly and
	// String() rendering.
	zero, _ := NewNonLeapSecond(0)
	o := NewUtcOffset(Positive, Hour(0), Minute(0), zero)
	assert.Equal(t, "+00:00", o.String())
	assert.True(t, o.IsZero())

	h, _ := NewHour(5)
	m, _ := NewMinute(30)
	o2 := NewUtcOffset(Negative, h, m, zero)
	assert.Equal(t, "-05:30", o2.String())
}

func TestUtcOffsetStringIncludesSecondsWhenNonzero(t *testing.T) {
	h, _ := NewHour(1)
	m, _ := NewMinute(2)
	s, _ := NewNonLeapSecond(3)
	o := NewUtcOffset(Positive, h, m, s)
	assert.Equal(t, "+01:02:03", o.String())
}
