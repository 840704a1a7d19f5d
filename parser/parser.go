// Package parser recognizes a small regular expression grammar by recursive
// descent with backtracking and builds a concrete derivation tree.
//
// The grammar, after left recursion removal ('#' is the empty production):
//
//	RE  ::= # RE' | symbol RE' | ( RE ) RE' | ( RE ) | # | symbol
//	RE' ::= + RE RE' | + RE | * RE' | RE RE' | RE | *
//
// The grammar is ambiguous; disambiguation is the alternative order itself.
// Alternatives are tried top to bottom and the first one that matches in
// full wins (ordered-choice semantics, no further exploration). A failed
// alternative removes exactly the nodes it attached before the next one is
// tried, so a returned tree only ever contains the surviving derivation.
package parser

import (
	"fmt"

	"github.com/shibukawa/retree"
	"github.com/shibukawa/retree/tree"
)

// Node labels for the synthetic root and the two nonterminals.
const (
	RootLabel    = "Root"
	RELabel      = "RE"
	REPrimeLabel = "RE'"
)

// matchFunc recognizes one grammar symbol of expr at pos, attaching the
// nodes it derives to parent. On success it returns the position after the
// match. On mismatch it returns ok=false with the tree and position
// untouched. err reports tree capacity faults only; those abort the parse.
type matchFunc func(expr string, pos int, parent *tree.Node) (next int, ok bool, err error)

// sequence combines steps into a single matchFunc that runs them left to
// right against the same parent. When a later step fails, the children
// attached by the earlier successful steps are released again so the caller
// can try its next alternative from a clean slate.
func sequence(steps ...matchFunc) matchFunc {
	return func(expr string, pos int, parent *tree.Node) (int, bool, error) {
		before := len(parent.Children())
		cur := pos

		for _, step := range steps {
			next, ok, err := step(expr, cur, parent)
			if err != nil {
				return pos, false, err
			}

			if !ok {
				added := len(parent.Children()) - before
				if added > 0 {
					if err := parent.FreeLastChildren(added); err != nil {
						return pos, false, err
					}
				}

				return pos, false, nil
			}

			cur = next
		}

		return cur, true, nil
	}
}

// matchNonterminal attaches a node labeled label to parent, then tries the
// alternatives in order against that node, committing to the first success.
// When every alternative fails the node is detached from parent again and
// the failure is reported with the position unchanged.
func matchNonterminal(label string, alternatives []matchFunc, expr string, pos int, parent *tree.Node) (int, bool, error) {
	node, err := tree.New(label)
	if err != nil {
		return pos, false, err
	}

	// The node must be attached before speculation starts: it is the
	// attachment point for the children each alternative derives.
	if err := parent.Attach(node); err != nil {
		node.Free()
		return pos, false, err
	}

	for _, alternative := range alternatives {
		next, ok, err := alternative(expr, pos, node)
		if err != nil {
			return pos, false, err
		}

		if ok {
			return next, true, nil
		}
	}

	// Detach and release our own node; the caller sees no trace of the
	// attempt.
	if err := parent.FreeLastChildren(1); err != nil {
		return pos, false, err
	}

	return pos, false, nil
}

// matchRE recognizes RE ::= # RE' | symbol RE' | ( RE ) RE' | ( RE ) | # | symbol.
func matchRE(expr string, pos int, parent *tree.Node) (int, bool, error) {
	alternatives := []matchFunc{
		sequence(matchEpsilon, matchREPrime),
		sequence(matchSymbol, matchREPrime),
		sequence(matchLParen, matchRE, matchRParen, matchREPrime),
		sequence(matchLParen, matchRE, matchRParen),
		matchEpsilon,
		matchSymbol,
	}

	return matchNonterminal(RELabel, alternatives, expr, pos, parent)
}

// matchREPrime recognizes RE' ::= + RE RE' | + RE | * RE' | RE RE' | RE | *.
// RE' is the continuation nonterminal introduced by left recursion removal;
// its alternative order prefers longer continuations over a bare trailing
// operator.
func matchREPrime(expr string, pos int, parent *tree.Node) (int, bool, error) {
	alternatives := []matchFunc{
		sequence(matchPlus, matchRE, matchREPrime),
		sequence(matchPlus, matchRE),
		sequence(matchStar, matchREPrime),
		sequence(matchRE, matchREPrime),
		matchRE,
		matchStar,
	}

	return matchNonterminal(REPrimeLabel, alternatives, expr, pos, parent)
}

// Parse recognizes expr as a regular expression and returns its derivation
// tree. The tree is rooted at a synthetic Root node whose single child is
// the top-level RE node. The match is anchored at the start of expr and must
// consume it entirely.
//
// On failure no tree is returned and every speculatively built node has been
// released; the error is retree.ErrNoAlternative or retree.ErrTrailingInput
// for grammar failures, or a tree capacity error.
func Parse(expr string) (*tree.Node, error) {
	root, err := tree.New(RootLabel)
	if err != nil {
		return nil, err
	}

	end, ok, err := matchRE(expr, 0, root)
	if err != nil {
		root.Free()
		return nil, err
	}

	if !ok {
		root.Free()
		return nil, fmt.Errorf("%w: %q", retree.ErrNoAlternative, expr)
	}

	if end != len(expr) {
		// RE legitimately matched a prefix and committed its subtree to
		// root, so the subtree must be released here before rejecting.
		root.FreeAllChildren()
		root.Free()

		return nil, fmt.Errorf("%w: %q consumed %d of %d characters", retree.ErrTrailingInput, expr, end, len(expr))
	}

	return root, nil
}
