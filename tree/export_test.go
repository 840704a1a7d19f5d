package tree

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestXML(t *testing.T) {
	re := buildSample(t)
	defer re.Free()

	doc := re.XML()
	out, err := doc.WriteToString()
	assert.NoError(t, err)

	assert.Contains(t, out, `<node label="RE">`)
	assert.Contains(t, out, `<node label="RE&apos;">`)
	assert.Contains(t, out, `<node label="a"/>`)
	assert.Contains(t, out, `<node label="+"/>`)
	assert.Contains(t, out, `<node label="b"/>`)
}

func TestWriteXML(t *testing.T) {
	n := mustNode(t, "a")
	defer n.Free()

	var sb strings.Builder

	assert.NoError(t, n.WriteXML(&sb))
	assert.Contains(t, sb.String(), `<node label="a"/>`)
}

func TestEncodeYAML(t *testing.T) {
	re := buildSample(t)
	defer re.Free()

	var sb strings.Builder

	assert.NoError(t, re.EncodeYAML(&sb))

	out := sb.String()
	assert.Contains(t, out, "label: RE")
	assert.Contains(t, out, "children:")
	assert.Contains(t, out, "label: a")
	assert.Contains(t, out, "label: b")
}

func TestEncodeYAMLLeaf(t *testing.T) {
	n := mustNode(t, "a")
	defer n.Free()

	var sb strings.Builder

	assert.NoError(t, n.EncodeYAML(&sb))

	// A leaf has no children key at all
	assert.Equal(t, "label: a\n", sb.String())
}
