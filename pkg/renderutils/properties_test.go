package renderutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "   ", "\n\n"} {
			p := ParseProperties(s)
			assert.Equal(t, 0, p.Len())
			assert.Empty(t, p.Keys())
		}
	})

	t.Run("key value pairs", func(t *testing.T) {
		t.Parallel()
		p := ParseProperties("mark=…\nmax = 12\n# comment\n! other comment\nsize:200x200\nencoding html")
		assert.Equal(t, []string{"mark", "max", "size", "encoding"}, p.Keys())
		assert.Equal(t, "…", p.String("mark", "..."))
		assert.Equal(t, 12, p.Int("max", -1))
		assert.Equal(t, "200x200", p.String("size", ""))
		assert.Equal(t, "html", p.String("encoding", ""))
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		t.Parallel()
		p := ParseProperties("mask=#\nmask=?")
		assert.Equal(t, 1, p.Len())
		assert.Equal(t, "?", p.String("mask", "*"))
	})

	t.Run("no expansion", func(t *testing.T) {
		t.Parallel()
		p := ParseProperties("mark=${missing}")
		v, ok := p.Get("mark")
		require.True(t, ok)
		assert.Equal(t, "${missing}", v)
	})

	t.Run("malformed input is empty", func(t *testing.T) {
		t.Parallel()
		p := ParseProperties("mask=\\u00zz")
		assert.Equal(t, 0, p.Len())
	})

	t.Run("empty key or trailing escape is empty", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"max=3\n=", "max=3\n=x", "max=3\na\\"} {
			p := ParseProperties(s)
			assert.Equal(t, 0, p.Len(), "input %q", s)
			_, ok := p.Get("max")
			assert.False(t, ok)
		}
	})
}

func TestPropertiesAccessors(t *testing.T) {
	t.Parallel()

	p := PropertiesOf("unmasked", "x", "fromStart", "True", "other", "yes", "max", " 7 ")
	assert.Equal(t, 3, p.Int("unmasked", 3))
	assert.Equal(t, 5, p.Int("missing", 5))
	assert.Equal(t, 7, p.Int("max", 0))
	assert.True(t, p.Bool("fromStart", false))
	assert.False(t, p.Bool("other", true))
	assert.True(t, p.Bool("missing", true))
	assert.Equal(t, "def", p.String("missing", "def"))

	keys := p.Keys()
	keys[0] = "changed"
	assert.Equal(t, "unmasked", p.Keys()[0])

	var zero Properties
	_, ok := zero.Get("any")
	assert.False(t, ok)
	assert.Equal(t, 0, zero.Len())
}
