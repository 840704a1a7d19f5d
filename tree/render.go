package tree

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// RenderOptions are options for text rendering
type RenderOptions struct {
	// Marker is repeated in front of each line, once per level.
	Marker string

	// Indent is the number of markers added per level.
	Indent int
}

// defaultRenderOptions returns the options used when none are given
func defaultRenderOptions() RenderOptions {
	return RenderOptions{
		Marker: "-",
		Indent: 1,
	}
}

// Render writes a human-readable dump of the subtree rooted at n, one node
// per line, each line prefixed with depth-many markers. The receiver itself
// is printed with no prefix.
func (n *Node) Render(w io.Writer, options ...RenderOptions) error {
	opts := defaultRenderOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return n.render(w, 0, opts)
}

func (n *Node) render(w io.Writer, depth int, opts RenderOptions) error {
	if n == nil {
		return nil
	}

	_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat(opts.Marker, depth*opts.Indent), n.label)
	if err != nil {
		return err
	}

	for _, child := range n.children {
		if err := child.render(w, depth+1, opts); err != nil {
			return err
		}
	}

	return nil
}

// Dump returns the text rendering of n as a string.
func (n *Node) Dump(options ...RenderOptions) string {
	var sb strings.Builder

	// strings.Builder never fails
	_ = n.Render(&sb, options...)

	return sb.String()
}

// Print renders n to standard output.
func (n *Node) Print(options ...RenderOptions) {
	_ = n.Render(os.Stdout, options...)
}

// Save writes the text rendering of n to the named file.
func (n *Node) Save(path string, options ...RenderOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}
	defer f.Close()

	if err := n.Render(f, options...); err != nil {
		return fmt.Errorf("failed to write dump file %s: %w", path, err)
	}

	return nil
}
