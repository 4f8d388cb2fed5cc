package jsxlate

import (
	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/printer"
)

// findMessageKeypaths enumerates every node in the document in pre-order and
// filters to message markers, validating string-marker shape along the way.
// The result preserves document order: ancestors before descendants, earlier
// source spans before later ones.
func (c *Config) findMessageKeypaths(root *ast.Node) ([]ast.Keypath, error) {
	var out []ast.Keypath
	for _, kp := range ast.Keypaths(root) {
		n := ast.Get(root, kp)
		if !c.isMarker(n) {
			continue
		}
		if c.isStringMarker(n) {
			if len(n.Arguments) != 1 || !isStringLiteral(n.Arguments[0]) {
				err := inputErrorf(n, "%s(...) must be called with exactly one argument, a string literal: %s",
					c.FunctionMarker, printer.Print(n))
				err.message = n
				return nil, err
			}
		}
		out = append(out, kp)
	}
	return out, nil
}
