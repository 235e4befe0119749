package style_test

import (
	"testing"

	"github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/style"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, selector string) style.Rule {
	t.Helper()
	rules, err := style.ParseRules(selector)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	return rules[0]
}

func TestRuleMatchesDirectChild(t *testing.T) {
	rule := compile(t, "> a")

	require.True(t, rule.MatchesLoose([]style.Tag{style.A}))
	require.True(t, rule.MatchesExact([]style.Tag{style.A}))

	require.True(t, rule.MatchesLoose([]style.Tag{style.A, style.P}))
	require.False(t, rule.MatchesExact([]style.Tag{style.A, style.P}))

	require.False(t, rule.MatchesLoose([]style.Tag{style.P, style.A}))
	require.False(t, rule.MatchesExact([]style.Tag{style.P, style.A}))
}

func TestRuleMatchesDescendantAndChildMix(t *testing.T) {
	rule := compile(t, "ul > li em")

	require.True(t, rule.MatchesLoose([]style.Tag{style.Ul, style.Li, style.Em}))
	require.True(t, rule.MatchesExact([]style.Tag{style.Ul, style.Li, style.Em}))

	require.True(t, rule.MatchesLoose([]style.Tag{style.Ul, style.Li, style.Em, style.A}))
	require.False(t, rule.MatchesExact([]style.Tag{style.Ul, style.Li, style.Em, style.A}))

	require.True(t, rule.MatchesLoose([]style.Tag{style.P, style.Ul, style.Li, style.Em}))
	require.True(t, rule.MatchesExact([]style.Tag{style.P, style.Ul, style.Li, style.Em}))

	require.False(t, rule.MatchesLoose([]style.Tag{style.P, style.Ul, style.A, style.Em}))
	require.True(t, rule.MatchesExact([]style.Tag{style.P, style.Ul, style.Li, style.A, style.Em}))

	require.False(t, rule.MatchesLoose([]style.Tag{style.P, style.Ul, style.A, style.Li, style.Em}))
	require.True(t, rule.MatchesExact([]style.Tag{style.P, style.Ul, style.Li, style.Em, style.Em}))
}

func TestParseSelectorDanglingDirectChild(t *testing.T) {
	_, err := style.ParseRules("a >")
	require.Error(t, err)
}

func TestParseSelectorUnknownTag(t *testing.T) {
	_, err := style.ParseRules("b")
	require.Error(t, err)

	_, err = style.ParseRules("a b")
	require.Error(t, err)
}

func TestParseRulesRejectsEmptySelector(t *testing.T) {
	_, err := style.ParseRules("")
	require.Error(t, err)

	var escErr *escpos.Error
	require.ErrorAs(t, err, &escErr)
	require.Equal(t, escpos.KindEmptyRuleString, escErr.Kind)
}

func TestParseRulesRejectsEmptyTrailingClause(t *testing.T) {
	_, err := style.ParseRules("p,")
	require.Error(t, err)

	var escErr *escpos.Error
	require.ErrorAs(t, err, &escErr)
	require.Equal(t, escpos.KindEmptyRuleString, escErr.Kind)
}

func TestParseRulesCommaSeparated(t *testing.T) {
	rules, err := style.ParseRules("ul ul, ul ol, ol ol, ol ul")
	require.NoError(t, err)
	require.Len(t, rules, 4)

	stacks := [][]style.Tag{
		{style.Ul, style.Ul},
		{style.Ul, style.Ol},
		{style.Ol, style.Ol},
		{style.Ol, style.Ul},
	}
	for i, rule := range rules {
		require.True(t, rule.MatchesExact(stacks[i]))
	}
	require.False(t, rules[0].MatchesExact([]style.Tag{style.Ul, style.Ol}))
}
