// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

import "strings"

// symbolKind tags the variant held by a symbol, the parse stage's
// alphabet (a superset of op that also carries KleenStar).
type symbolKind uint8

const (
	symAlphabet symbolKind = iota
	symAny
	symBegin
	symKleenStar
)

type symbol struct {
	kind symbolKind
	tag  Tag
}

// parseSelector tokenizes a single (comma-free) selector string into the
// symbol sequence §4.3 describes: prefixed with Begin, each token
// preceded by "Any KleenStar" unless it's a direct child (introduced by
// ">"). A trailing dangling ">" is an error.
func parseSelector(s string) ([]symbol, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, newParseErr("empty-rule-string", "selector %q is empty", s)
	}

	out := []symbol{{kind: symBegin}}
	isDirectChild := false

	for i, tok := range fields {
		if tok == ">" {
			if i == len(fields)-1 {
				return nil, newParseErr("dangling-direct-child", "selector %q ends with a dangling '>'", s)
			}
			isDirectChild = true
			continue
		}

		if !isDirectChild {
			out = append(out, symbol{kind: symAny}, symbol{kind: symKleenStar})
		}
		isDirectChild = false

		if tok == "*" {
			out = append(out, symbol{kind: symAny})
			continue
		}

		tag, err := ParseTag(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, symbol{kind: symAlphabet, tag: tag})
	}

	return out, nil
}
