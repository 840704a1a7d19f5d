package parser

import (
	"github.com/shibukawa/retree/tree"
)

// EpsilonMarker is the character standing for the grammar's empty
// production. It is a marker in the expression text, not the empty string.
const EpsilonMarker = '#'

// matchLeaf attaches a one-character leaf labeled label to parent and
// advances past the matched character.
func matchLeaf(pos int, parent *tree.Node, label string) (int, bool, error) {
	leaf, err := tree.New(label)
	if err != nil {
		return pos, false, err
	}

	if err := parent.Attach(leaf); err != nil {
		leaf.Free()
		return pos, false, err
	}

	return pos + 1, true, nil
}

// matchEpsilon recognizes the empty-production marker.
func matchEpsilon(expr string, pos int, parent *tree.Node) (int, bool, error) {
	if pos >= len(expr) || expr[pos] != EpsilonMarker {
		return pos, false, nil
	}

	return matchLeaf(pos, parent, string(EpsilonMarker))
}

// matchSymbol recognizes a single alphabet symbol: an ASCII letter, digit or
// underscore.
func matchSymbol(expr string, pos int, parent *tree.Node) (int, bool, error) {
	if pos >= len(expr) || !isSymbol(expr[pos]) {
		return pos, false, nil
	}

	return matchLeaf(pos, parent, string(expr[pos]))
}

func isSymbol(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('A' <= c && c <= 'Z') ||
		('a' <= c && c <= 'z')
}

// matchLParen recognizes an opening parenthesis.
func matchLParen(expr string, pos int, parent *tree.Node) (int, bool, error) {
	if pos >= len(expr) || expr[pos] != '(' {
		return pos, false, nil
	}

	return matchLeaf(pos, parent, "(")
}

// matchRParen recognizes a closing parenthesis.
func matchRParen(expr string, pos int, parent *tree.Node) (int, bool, error) {
	if pos >= len(expr) || expr[pos] != ')' {
		return pos, false, nil
	}

	return matchLeaf(pos, parent, ")")
}

// matchStar recognizes the closure operator.
func matchStar(expr string, pos int, parent *tree.Node) (int, bool, error) {
	if pos >= len(expr) || expr[pos] != '*' {
		return pos, false, nil
	}

	return matchLeaf(pos, parent, "*")
}

// matchPlus recognizes the union operator.
func matchPlus(expr string, pos int, parent *tree.Node) (int, bool, error) {
	if pos >= len(expr) || expr[pos] != '+' {
		return pos, false, nil
	}

	return matchLeaf(pos, parent, "+")
}
