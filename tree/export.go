package tree

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/goccy/go-yaml"
)

// XML builds an XML document for the subtree rooted at n. Every node becomes
// a <node> element with a label attribute, children nested in derivation
// order.
func (n *Node) XML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	n.appendXML(&doc.Element)
	doc.Indent(2)

	return doc
}

func (n *Node) appendXML(parent *etree.Element) {
	if n == nil {
		return
	}

	el := parent.CreateElement("node")
	el.CreateAttr("label", n.label)

	for _, child := range n.children {
		child.appendXML(el)
	}
}

// WriteXML writes the XML document for n to w.
func (n *Node) WriteXML(w io.Writer) error {
	_, err := n.XML().WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write XML dump: %w", err)
	}

	return nil
}

// yamlNode mirrors Node for YAML output
type yamlNode struct {
	Label    string     `yaml:"label"`
	Children []yamlNode `yaml:"children,omitempty"`
}

func (n *Node) toYAML() yamlNode {
	out := yamlNode{Label: n.label}
	for _, child := range n.children {
		out.Children = append(out.Children, child.toYAML())
	}

	return out
}

// EncodeYAML writes a YAML document for the subtree rooted at n to w.
func (n *Node) EncodeYAML(w io.Writer) error {
	data, err := yaml.Marshal(n.toYAML())
	if err != nil {
		return fmt.Errorf("failed to marshal tree to YAML: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write YAML dump: %w", err)
	}

	return nil
}
