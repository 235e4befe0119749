// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"

	"github.com/kofi-q/escpos-md"
)

func newParseErr(kind string, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch kind {
	case "invalid-rule-tag":
		return &escpos.Error{Kind: escpos.KindInvalidRuleTag, Msg: msg}
	case "dangling-direct-child":
		return &escpos.Error{Kind: escpos.KindDanglingDirectChild, Msg: msg}
	case "empty-rule-string":
		return &escpos.Error{Kind: escpos.KindEmptyRuleString, Msg: msg}
	default:
		return fmt.Errorf("%s", msg)
	}
}
