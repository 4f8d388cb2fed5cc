// Package jsxlate extracts translatable messages embedded in JSX source,
// projects them into translator-safe text, and reconstitutes human-supplied
// translations back into the original structural context.
//
// # Pipeline
//
// Source marks its messages with two reserved shapes: a call-style marker
// wrapping a single string literal, and an element-style marker wrapping
// markup:
//
//	i18n("Hello, world!")
//	<I18N>Hello, <b>{name}</b>!</I18N>
//
// [ExtractMessages] returns each message's canonical key in document order.
// Sanitizing hides what a translator must not touch: attributes outside a
// component's allow-list are elided behind a designation (a namespace-form
// name like <a:my-link> or the reserved designation attribute), and
// expressions are shown as inert placeholder text. [TranslateMessages] looks
// each key up in a flat translations table, parses the translated text, and
// reconstitutes it: elided attributes and original expression subtrees are
// restored from the original message, while the translator's own structure
// (reordered, rewrapped, or restyled markup) is preserved verbatim.
//
// # Usage
//
//	keys, err := jsxlate.ExtractMessages(src)
//	out, err := jsxlate.TranslateMessages(src, map[string]string{
//		"Hello, world!": "Bonjour, monde!",
//	})
//
// Marker names and the attribute allow-list are configurable through
// [Option] values such as [WithAllowedAttributes].
//
// # Errors
//
// Anything attributable to the source document or a translation (a missing
// designation, a duplicate placeholder, a non-named expression inside
// markup, a missing table entry) surfaces as an [InputError] carrying the
// offending message. [ErrorMessageForError] renders it for humans. The
// pipeline is a pure function of (source, table): single-threaded, no I/O,
// every rewrite producing a new tree that shares untouched structure with
// its input.
package jsxlate
