// Package rules provides reusable checks for the Predicate combinator.
//
// A Rule is a plain func over a value. Rules compose with All/Any/Not, gate
// behind conditions with When, apply at nested locations via JSON Pointer
// style paths ("/items/0/sku"), and turn into parsers with Check. Location
// rules (At, Compare) fail when the path cannot be walked; refinement rules
// (AtLeastOne, UniqueBy) pass instead, since shape checking belongs to the
// parser the rule is attached to.
package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/dsl"
)

// Rule checks a single property of a value. Rules are pure functions and
// never mutate their input.
type Rule func(punt.Value) bool

// Op is the comparison operator used by Compare.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Check wraps a rule into a parser. The context values end up in the
// PredicateError when the rule rejects.
func Check(r Rule, context ...any) punt.Parser[punt.Value] {
	return dsl.Predicate(r, context...)
}

// ---- location ----

// At applies r to the value under path. A path that cannot be walked fails
// the rule.
func At(path string, r Rule) Rule {
	segs := splitPath(path)
	return func(v punt.Value) bool {
		cur, ok := walk(v, segs)
		if !ok {
			return false
		}
		return r(cur)
	}
}

// Compare evaluates the value under path against want. Eq and Ne compare
// deeply across all kinds; the ordering operators apply to numbers only
// (integer and float compare on the widened value) and fail on anything
// else. An absent path fails.
func Compare(path string, op Op, want punt.Value) Rule {
	segs := splitPath(path)
	return func(v punt.Value) bool {
		cur, ok := walk(v, segs)
		if !ok {
			return false
		}
		return compare(cur, op, want)
	}
}

// ---- combinators ----

// All passes when every rule passes. All() always passes.
func All(rs ...Rule) Rule {
	return func(v punt.Value) bool {
		for _, r := range rs {
			if r != nil && !r(v) {
				return false
			}
		}
		return true
	}
}

// Any passes when at least one rule passes. Any() always fails.
func Any(rs ...Rule) Rule {
	return func(v punt.Value) bool {
		for _, r := range rs {
			if r != nil && r(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts a rule.
func Not(r Rule) Rule {
	return func(v punt.Value) bool { return !r(v) }
}

// When gates rules behind a condition: inputs where cond fails pass
// untouched, inputs where it holds must satisfy every rule.
func When(cond Rule, then ...Rule) Rule {
	all := All(then...)
	return func(v punt.Value) bool {
		if !cond(v) {
			return true
		}
		return all(v)
	}
}

// ---- value checks ----

// NonEmpty passes strings, lists and maps with at least one element.
func NonEmpty() Rule { return MinLen(1) }

// MinLen checks the element count: runes for strings, entries for lists and
// maps. Other kinds fail.
func MinLen(n int) Rule {
	return func(v punt.Value) bool {
		l, ok := lengthOf(v)
		return ok && l >= n
	}
}

// MaxLen mirrors MinLen with an upper bound.
func MaxLen(n int) Rule {
	return func(v punt.Value) bool {
		l, ok := lengthOf(v)
		return ok && l <= n
	}
}

// MatchString passes strings matching the pattern. The pattern must compile;
// a bad pattern panics at construction.
func MatchString(pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return func(v punt.Value) bool {
		s, ok := v.AsString()
		return ok && re.MatchString(s)
	}
}

// ---- collection refinements ----

// AtLeastOne requires the list under path to have at least one element.
// Paths that do not resolve to a list pass.
func AtLeastOne(path string) Rule {
	segs := splitPath(path)
	return func(v punt.Value) bool {
		cur, ok := walk(v, segs)
		if !ok {
			return true
		}
		items, ok := cur.AsList()
		if !ok {
			return true
		}
		return len(items) > 0
	}
}

// UniqueBy requires the elements of the list under collectionPath to carry
// distinct values at keyPath, relative to each element. Distinctness is
// kind-strict, so an integer 1 and a float 1 do not collide. Elements where
// the key cannot be walked are skipped; a path that is not a list passes.
func UniqueBy(collectionPath, keyPath string) Rule {
	cp := splitPath(collectionPath)
	kp := splitPath(keyPath)
	return func(v punt.Value) bool {
		cur, ok := walk(v, cp)
		if !ok {
			return true
		}
		items, ok := cur.AsList()
		if !ok {
			return true
		}
		seen := make(map[string]struct{}, len(items))
		for _, item := range items {
			kv, ok := walk(item, kp)
			if !ok {
				continue
			}
			key := kv.Kind().String() + ":" + kv.String()
			if _, dup := seen[key]; dup {
				return false
			}
			seen[key] = struct{}{}
		}
		return true
	}
}

// ---- helpers ----

func splitPath(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func walk(v punt.Value, segs []string) (punt.Value, bool) {
	cur := v
	for _, seg := range segs {
		switch cur.Kind() {
		case punt.KindMap:
			next, ok := cur.Get(seg)
			if !ok {
				return punt.Value{}, false
			}
			cur = next
		case punt.KindList:
			idx, ok := parseIndex(seg)
			if !ok {
				return punt.Value{}, false
			}
			next, ok := cur.At(idx)
			if !ok {
				return punt.Value{}, false
			}
			cur = next
		default:
			return punt.Value{}, false
		}
	}
	return cur, true
}

func compare(cur punt.Value, op Op, want punt.Value) bool {
	switch op {
	case Eq:
		return cur.Equal(want)
	case Ne:
		return !cur.Equal(want)
	}
	a, ok := cur.Number()
	if !ok {
		return false
	}
	b, ok := want.Number()
	if !ok {
		return false
	}
	switch op {
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	default:
		return false
	}
}

func lengthOf(v punt.Value) (int, bool) {
	if s, ok := v.AsString(); ok {
		return utf8.RuneCountInString(s), true
	}
	switch v.Kind() {
	case punt.KindList, punt.KindMap:
		return v.Len(), true
	default:
		return 0, false
	}
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
