// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

import "strings"

// Rule is a compiled selector: two DFAs over the same NFA, one matching
// loose (the selector applies anywhere in the stack) and one matching
// exact (the selector's terminal coincides with the stack's top).
type Rule struct {
	loose dfa
	exact dfa
}

// compileRule builds a Rule from a single (comma-free) selector string.
func compileRule(selector string) (Rule, error) {
	symbols, err := parseSelector(selector)
	if err != nil {
		return Rule{}, err
	}

	looseNFA, err := nfaFromSymbols(symbols)
	if err != nil {
		return Rule{}, err
	}

	exactNFA := looseNFA
	exactNFA.concat(nfaFromOp(opEndOf()))

	return Rule{
		loose: dfaFromNFA(looseNFA),
		exact: dfaFromNFA(exactNFA),
	}, nil
}

// ParseRules compiles a comma-separated selector string into one Rule
// per comma-delimited clause.
func ParseRules(selector string) ([]Rule, error) {
	clauses := strings.Split(selector, ",")
	rules := make([]Rule, 0, len(clauses))
	for _, clause := range clauses {
		rule, err := compileRule(clause)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// MatchesLoose reports whether the selector applies anywhere in stack.
func (r Rule) MatchesLoose(stack []Tag) bool {
	return matchesDFA(r.loose, stack)
}

// MatchesExact reports whether the selector's terminal coincides with
// stack's top.
func (r Rule) MatchesExact(stack []Tag) bool {
	return matchesDFA(r.exact, stack)
}

func matchesDFA(d dfa, stack []Tag) bool {
	ops := ruleOps(stack)
	state := d.start
	i := 0
	for {
		if d.isAccepting(state) {
			return true
		}
		if i >= len(ops) {
			return false
		}
		next, ok := d.transition(state, ops[i])
		if !ok {
			return false
		}
		state = next
		i++
	}
}

func ruleOps(stack []Tag) []op {
	ops := make([]op, 0, len(stack)+2)
	ops = append(ops, opBeginOf())
	for _, t := range stack {
		ops = append(ops, opOf(t))
	}
	ops = append(ops, opEndOf())
	return ops
}
