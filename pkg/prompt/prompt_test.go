package prompt

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptFor(t *testing.T, input string, rule Rule) (float64, string, error) {
	t.Helper()
	var out strings.Builder
	p := New(strings.NewReader(input), &out)
	x, err := p.Float("Enter V (Volts): ", rule)
	return x, out.String(), err
}

func TestFloat_ValidFirstTry(t *testing.T) {
	x, out, err := promptFor(t, "240\n", Rule{})
	require.NoError(t, err)
	assert.Equal(t, 240.0, x)
	assert.Equal(t, "Enter V (Volts): ", out)
}

func TestFloat_NonNumericReprompts(t *testing.T) {
	x, out, err := promptFor(t, "abc\n240\n", Rule{})
	require.NoError(t, err)
	assert.Equal(t, 240.0, x)
	assert.Contains(t, out, "Please enter a valid number")
	assert.Equal(t, 2, strings.Count(out, "Enter V (Volts): "), "should have prompted twice")
}

func TestFloat_ZeroDisallowedReprompts(t *testing.T) {
	x, out, err := promptFor(t, "0\n240\n", Rule{})
	require.NoError(t, err)
	assert.Equal(t, 240.0, x)
	assert.Contains(t, out, "Value cannot be zero")
}

func TestFloat_ZeroAllowed(t *testing.T) {
	x, out, err := promptFor(t, "0\n", Rule{AllowZero: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)
	assert.NotContains(t, out, "cannot be zero")
}

func TestFloat_BoundsReprompt(t *testing.T) {
	rule := Between(0, 1)

	x, out, err := promptFor(t, "1.5\n0.9\n", rule)
	require.NoError(t, err)
	assert.Equal(t, 0.9, x)
	assert.Contains(t, out, "Value must be <= 1")

	x, out, err = promptFor(t, "-0.2\n0.9\n", rule)
	require.NoError(t, err)
	assert.Equal(t, 0.9, x)
	assert.Contains(t, out, "Value must be >= 0")
}

func TestFloat_BoundedStillRejectsZero(t *testing.T) {
	// Amps-direction PF: bounded [0,1] and zero disallowed, since PF divides.
	x, out, err := promptFor(t, "0\n0.9\n", Between(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.9, x)
	assert.Contains(t, out, "Value cannot be zero")
}

func TestFloat_QuitTokens(t *testing.T) {
	for _, tok := range []string{"q", "Q", "quit", "QUIT", "exit", " Exit "} {
		_, _, err := promptFor(t, tok+"\n", Rule{})
		assert.ErrorIs(t, err, ErrQuit, "token %q", tok)
	}
}

func TestFloat_EOF(t *testing.T) {
	_, _, err := promptFor(t, "", Rule{})
	assert.ErrorIs(t, err, io.EOF)

	// EOF after a rejected line still surfaces.
	_, _, err = promptFor(t, "abc\n", Rule{})
	assert.ErrorIs(t, err, io.EOF)
}

func TestLine_Trims(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("  1 \n"), &out)
	s, err := p.Line("Choose an option: ")
	require.NoError(t, err)
	assert.Equal(t, "1", s)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit("q"))
	assert.True(t, IsQuit("  QUIT "))
	assert.True(t, IsQuit("Exit"))
	assert.False(t, IsQuit("0"))
	assert.False(t, IsQuit("quite"))
	assert.False(t, IsQuit(""))
}
