package xmltree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BuildsTree(t *testing.T) {
	doc := `<?xml version="1.0"?>
<net name="model" version="11">
	<!-- graph -->
	<layers>
		<layer id="0" type="Parameter"/>
		<layer id="1" type="Convolution">text</layer>
	</layers>
</net>`

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "net", root.Name)
	assert.Equal(t, map[string]string{"name": "model", "version": "11"}, root.Attributes)

	children := root.ChildElements()
	require.Len(t, children, 1)
	layers := children[0]
	assert.Equal(t, "layers", layers.Name)

	layerEls := layers.ChildElements()
	require.Len(t, layerEls, 2)
	typ, ok := layerEls[1].Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "Convolution", typ)
	assert.Equal(t, []Node{Text("text")}, layerEls[1].Children)

	var sawComment bool
	for _, c := range root.Children {
		if cm, ok := c.(Comment); ok {
			sawComment = true
			assert.Equal(t, " graph ", string(cm))
		}
	}
	assert.True(t, sawComment, "expected comment child on root")
}

func TestParse_NamespacedNames(t *testing.T) {
	doc := `<ir:net xmlns:ir="urn:ir" xmlns="urn:default"><ir:layer ir:type="Add"/></ir:net>`

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "net", root.Name)
	assert.Empty(t, root.Attributes)

	layer := root.ChildElements()[0]
	assert.Equal(t, "layer", layer.Name)
	v, ok := layer.Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "Add", v)
}

func TestParse_UnboundPrefixMatchesLocalName(t *testing.T) {
	// IR files in the wild use prefixes without declaring them; the prefix
	// is ignored rather than rejected.
	root, err := Parse(strings.NewReader(`<net><ir:layer ir:type="A"/></net>`))
	require.NoError(t, err)

	layer := root.ChildElements()[0]
	assert.Equal(t, "layer", layer.Name)
	v, ok := layer.Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "A", v)
}

func TestParse_DeclaredCharset(t *testing.T) {
	// "Café" in ISO-8859-1.
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><net><layer type=\"Caf\xe9\"/></net>"

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	v, _ := root.ChildElements()[0].Attr("type")
	assert.Equal(t, "Café", v)
}

func TestParse_DeepNesting(t *testing.T) {
	const depth = 5000
	doc := strings.Repeat("<a>", depth) + strings.Repeat("</a>", depth)

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	n := 1
	for el := root; len(el.Children) > 0; el = el.Children[0].(*Element) {
		n++
	}
	assert.Equal(t, depth, n)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"whitespace only", "  \n "},
		{"unclosed tag", "<net><layers><layer type=\"Conv\"/></layers>"},
		{"mismatched end tag", "<net><layers></net></layers>"},
		{"bad attribute", "<net><layer type=Conv/></net>"},
		{"duplicate attribute", "<net><layer type=\"A\" type=\"B\"/></net>"},
		{"duplicate namespaced attribute", "<net xmlns:a=\"urn:x\" xmlns:b=\"urn:x\"><layer a:type=\"A\" b:type=\"B\"/></net>"},
		{"multiple roots", "<a/><b/>"},
		{"text outside root", "<a/>trailing"},
		{"unknown charset", "<?xml version=\"1.0\" encoding=\"x-no-such-charset\"?><a/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, root)
			assert.True(t, errors.Is(err, ErrMalformed), "expected ErrMalformed, got %v", err)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParse_ReadErrorIsNotMalformed(t *testing.T) {
	_, err := Parse(failingReader{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformed))
	assert.Contains(t, err.Error(), "disk on fire")
}
