package jsxlate

import (
	"fmt"

	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/jsparse"
	"github.com/zbyte64/jsxlate/internal/printer"
)

// ExtractMessages parses src and returns each message's canonical key in
// document pre-order: ancestors before descendants, earlier source spans
// before later ones. Validation failures surface as an *InputError annotated
// with the offending message.
func ExtractMessages(src string, opts ...Option) ([]string, error) {
	cfg := newConfig(opts...)
	doc, err := jsparse.Parse(src, cfg.markers())
	if err != nil {
		return nil, fmt.Errorf("jsxlate: %w", err)
	}
	keypaths, err := cfg.findMessageKeypaths(doc)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(keypaths))
	for _, kp := range keypaths {
		node := ast.Get(doc, kp)
		sanitized, err := cfg.sanitizeMessage(node)
		if err != nil {
			return nil, annotate(err, node, "")
		}
		keys = append(keys, cfg.messageKey(sanitized))
	}
	return keys, nil
}

// TranslateMessages parses src, rewrites every message against the
// translations table, and returns the printed result. A message whose key is
// absent from the table is an input error naming the exact key.
func TranslateMessages(src string, translations map[string]string, opts ...Option) (string, error) {
	cfg := newConfig(opts...)
	doc, err := jsparse.Parse(src, cfg.markers())
	if err != nil {
		return "", fmt.Errorf("jsxlate: %w", err)
	}
	doc, err = cfg.translateDocument(doc, translations)
	if err != nil {
		return "", err
	}
	return printer.Print(doc), nil
}
