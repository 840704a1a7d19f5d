// Package retree builds concrete derivation trees for a small regular
// expression grammar.
//
// The grammar ('#' stands for the empty production):
//
//	RE ::= # | symbol | RE + RE | RE RE | RE * | ( RE )
//
// is parsed by recursive descent after left recursion removal:
//
//	RE  ::= # RE' | symbol RE' | ( RE ) RE' | ( RE ) | # | symbol
//	RE' ::= + RE RE' | + RE | * RE' | RE RE' | RE | *
//
// Alternatives are ordered: the parser commits to the first alternative that
// matches in full (ordered-choice semantics), so the alternative order above
// is the disambiguation policy for this otherwise ambiguous grammar.
//
// The root package holds shared sentinel errors and the tool configuration.
// The tree and parser packages hold the parse-tree model and the recognizer.
package retree
