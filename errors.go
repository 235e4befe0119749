// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

import "fmt"

// Kind identifies the category of an *Error. The escpos, style, raster,
// mdevents and render packages report their own failures as *Error
// values that can be matched against a Kind via errors.As; the
// transport and styleyaml packages also return plain errors.
type Kind uint8

const (
	// KindIo reports a failed write to the byte sink.
	KindIo Kind = iota
	// KindCp437 reports text that cannot be transcoded to CP437.
	KindCp437
	// KindInvalidImageScale reports a scale outside (0, 1].
	KindInvalidImageScale
	// KindInvalidCharMagnification reports a width/height outside [1, 8].
	KindInvalidCharMagnification
	// KindInvalidSpacingParam reports a spacing value greater than 255.
	KindInvalidSpacingParam
	// KindUnsupportedTag reports a Markdown tag with no StyleTag mapping.
	KindUnsupportedTag
	// KindUnexpectedTag reports an End event that doesn't match the open
	// tag stack's top.
	KindUnexpectedTag
	// KindMarkdownEventUnimplemented reports an event kind the Renderer
	// does not handle.
	KindMarkdownEventUnimplemented
	// KindEmptyRenderTree reports Text arriving with an empty tag stack.
	KindEmptyRenderTree
	// KindInvalidRuleTag reports a selector token that isn't a known
	// StyleTag name or "*".
	KindInvalidRuleTag
	// KindDanglingDirectChild reports a selector ending in a bare ">".
	KindDanglingDirectChild
	// KindEmptyRuleString reports an empty selector string.
	KindEmptyRuleString
)

func (k Kind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindCp437:
		return "cp437"
	case KindInvalidImageScale:
		return "invalid_image_scale"
	case KindInvalidCharMagnification:
		return "invalid_char_magnification"
	case KindInvalidSpacingParam:
		return "invalid_spacing_param"
	case KindUnsupportedTag:
		return "unsupported_tag"
	case KindUnexpectedTag:
		return "unexpected_tag"
	case KindMarkdownEventUnimplemented:
		return "markdown_event_unimplemented"
	case KindEmptyRenderTree:
		return "empty_render_tree"
	case KindInvalidRuleTag:
		return "invalid_rule_tag"
	case KindDanglingDirectChild:
		return "dangling_direct_child"
	case KindEmptyRuleString:
		return "empty_rule_string"
	default:
		return "unknown"
	}
}

// Error is the error type this package's fallible operations return.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("escpos: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	if e.Msg != "" {
		return fmt.Sprintf("escpos: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("escpos: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newErr builds an *Error of the given kind with a formatted message.
func newErr(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// wrapErr builds an *Error of the given kind wrapping a lower-level cause.
func wrapErr(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
