package styleyaml_test

import (
	"strings"
	"testing"

	escpos "github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/style"
	"github.com/kofi-q/escpos-md/styleyaml"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesBoldAndFontSize(t *testing.T) {
	doc := `
h1:
  bold: true
  font_width: 3
  font_height: 3
`
	sheet, err := styleyaml.Load(strings.NewReader(doc), style.DefaultStyle())
	require.NoError(t, err)

	s := sheet.Get([]style.Tag{style.H1})
	require.True(t, s.Bold)
	require.Equal(t, uint8(3), s.CharMagnification.Width())
	require.Equal(t, uint8(3), s.CharMagnification.Height())
}

func TestLoadInlineDisplaySkipsBlockAttributes(t *testing.T) {
	doc := `
em:
  display: inline
  underline: one_dot
`
	sheet, err := styleyaml.Load(strings.NewReader(doc), style.DefaultStyle())
	require.NoError(t, err)

	s := sheet.Get([]style.Tag{style.P, style.Em})
	require.Equal(t, style.DisplayInline, s.Display)
	require.Equal(t, escpos.UnderlineOneDot, s.Underline)
}

func TestLoadLineSpacingDefaultSentinel(t *testing.T) {
	doc := `
codeblock:
  line_spacing: "default"
"*":
  margin_top: 5
`
	sheet, err := styleyaml.Load(strings.NewReader(doc), style.DefaultStyle())
	require.NoError(t, err)

	s := sheet.Get([]style.Tag{style.Codeblock})
	require.Nil(t, s.LineSpacing)
	require.Equal(t, 5, s.MarginTop)
}

func TestLoadLineSpacingExplicitValue(t *testing.T) {
	doc := `
codeblock:
  line_spacing: "40"
`
	sheet, err := styleyaml.Load(strings.NewReader(doc), style.DefaultStyle())
	require.NoError(t, err)

	s := sheet.Get([]style.Tag{style.Codeblock})
	require.NotNil(t, s.LineSpacing)
	require.Equal(t, 40, *s.LineSpacing)
}

func TestLoadUnknownSelectorTagFails(t *testing.T) {
	doc := `
table:
  bold: true
`
	_, err := styleyaml.Load(strings.NewReader(doc), style.DefaultStyle())
	require.Error(t, err)
}

func TestLoadUnrecognizedEnumValueFails(t *testing.T) {
	doc := `
h1:
  justification: diagonal
`
	_, err := styleyaml.Load(strings.NewReader(doc), style.DefaultStyle())
	require.Error(t, err)
}
