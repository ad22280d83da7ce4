// Package indent infers the indentation unit a token stream actually uses and
// rewrites it to a configured target unit.
//
// Only indentation is touched: the horizontal run that follows one or more
// line breaks inside whitespace tokens, and the line-start runs inside comment
// tokens. Tokens are never mutated; rewritten tokens are written back into the
// stream at the same index.
//
//	src := indent.Infer(stream, target)
//	res := indent.Fixer{Target: target}.Fix(stream)
package indent
