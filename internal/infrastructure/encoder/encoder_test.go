package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"renderkit/internal/domain/entities"
)

func TestContentEncoder(t *testing.T) {
	const in = `Tom & "Jerry" <b>'s</b>`

	tests := []struct {
		ct   entities.ContentType
		want string
	}{
		{entities.ContentText, in},
		{entities.ContentHTML, `Tom &amp; &#34;Jerry&#34; &lt;b&gt;&#39;s&lt;/b&gt;`},
		{entities.ContentXML, `Tom &amp; &quot;Jerry&quot; &lt;b&gt;&apos;s&lt;/b&gt;`},
		{entities.ContentJSON, `Tom & \"Jerry\" <b>'s</b>`},
		{entities.ContentJS, `Tom & \"Jerry\" <b>\'s<\/b>`},
		{entities.ContentType(42), in},
	}
	for _, tt := range tests {
		t.Run(tt.ct.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ContentEncoder{}.Encode(tt.ct, in))
		})
	}
}

func TestContentEncoder_Empty(t *testing.T) {
	for _, ct := range []entities.ContentType{entities.ContentHTML, entities.ContentXML, entities.ContentJSON, entities.ContentJS} {
		assert.Empty(t, ContentEncoder{}.Encode(ct, ""), ct.String())
	}
}
