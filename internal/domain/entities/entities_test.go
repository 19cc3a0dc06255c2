package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	assert.True(t, Null().Null)
	assert.Equal(t, "", Null().String())
	assert.True(t, Null().IsBlank())

	v := Text("  ")
	assert.False(t, v.Null)
	assert.True(t, v.IsBlank())
	assert.False(t, Text(" x ").IsBlank())
	assert.Equal(t, " x ", Text(" x ").String())
	assert.False(t, Text("").Null)
}

func TestContentType(t *testing.T) {
	for _, ct := range []ContentType{ContentText, ContentHTML, ContentXML, ContentJSON, ContentJS} {
		assert.Equal(t, ct, ParseContentType(ct.String()))
	}
	assert.Equal(t, ContentHTML, ParseContentType(" HTML "))
	assert.Equal(t, ContentText, ParseContentType("yaml"))
	assert.Equal(t, "text", ContentType(-1).String())
}
