package rules_test

import (
	"errors"
	"testing"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/rules"
)

func order(status string, items ...punt.Value) punt.Value {
	return punt.Map(map[string]punt.Value{
		"status": punt.Str(status),
		"items":  punt.List(items...),
	})
}

func item(sku string, qty int64) punt.Value {
	return punt.Map(map[string]punt.Value{
		"sku": punt.Str(sku),
		"qty": punt.Int(qty),
	})
}

func TestCompare_EqualityAndOrdering(t *testing.T) {
	in := order("active", item("a-1", 2))

	if !rules.Compare("/status", rules.Eq, punt.Str("active"))(in) {
		t.Fatalf("Eq on matching string should pass")
	}
	if rules.Compare("/status", rules.Ne, punt.Str("active"))(in) {
		t.Fatalf("Ne on matching string should fail")
	}
	if !rules.Compare("/items/0/qty", rules.Gt, punt.Int(1))(in) {
		t.Fatalf("Gt over integers should pass")
	}
	if !rules.Compare("/items/0/qty", rules.Le, punt.Float(2.5))(in) {
		t.Fatalf("ordering widens integer against float")
	}
	if rules.Compare("/status", rules.Lt, punt.Str("z"))(in) {
		t.Fatalf("ordering on strings should fail")
	}
	if rules.Compare("/missing", rules.Eq, punt.Null())(in) {
		t.Fatalf("absent path should fail")
	}
}

func TestAt_WalksMapsAndLists(t *testing.T) {
	in := order("active", item("a-1", 2), item("b-2", 1))

	if !rules.At("/items/1/sku", rules.NonEmpty())(in) {
		t.Fatalf("walking a list index into a map should reach the sku")
	}
	if rules.At("/items/9/sku", rules.NonEmpty())(in) {
		t.Fatalf("out-of-range index fails the rule")
	}
	if rules.At("/status/deep", rules.NonEmpty())(in) {
		t.Fatalf("walking through a scalar fails the rule")
	}
}

func TestLengthRules(t *testing.T) {
	if !rules.MinLen(3)(punt.Str("héllo")) {
		t.Fatalf("string length counts runes")
	}
	if rules.MaxLen(4)(punt.Str("héllo")) {
		t.Fatalf("5 runes exceed MaxLen(4)")
	}
	if !rules.NonEmpty()(punt.List(punt.Int(1))) {
		t.Fatalf("non-empty list passes")
	}
	if rules.NonEmpty()(punt.Map(nil)) {
		t.Fatalf("empty map fails NonEmpty")
	}
	if rules.MinLen(0)(punt.Int(3)) {
		t.Fatalf("numbers have no length")
	}
}

func TestMatchString(t *testing.T) {
	sku := rules.MatchString(`^[a-z]+-\d+$`)
	if !sku(punt.Str("a-1")) {
		t.Fatalf("matching string passes")
	}
	if sku(punt.Str("A1")) {
		t.Fatalf("non-matching string fails")
	}
	if sku(punt.Int(1)) {
		t.Fatalf("non-string fails")
	}
}

func TestCombinators(t *testing.T) {
	yes := rules.Rule(func(punt.Value) bool { return true })
	no := rules.Rule(func(punt.Value) bool { return false })
	in := punt.Null()

	if !rules.All(yes, yes)(in) || rules.All(yes, no)(in) {
		t.Fatalf("All requires every rule")
	}
	if !rules.All()(in) {
		t.Fatalf("empty All passes")
	}
	if !rules.Any(no, yes)(in) || rules.Any(no, no)(in) {
		t.Fatalf("Any requires one rule")
	}
	if rules.Any()(in) {
		t.Fatalf("empty Any fails")
	}
	if rules.Not(yes)(in) || !rules.Not(no)(in) {
		t.Fatalf("Not inverts")
	}
}

func TestWhen_GatesRules(t *testing.T) {
	needsItems := rules.When(
		rules.Compare("/status", rules.Eq, punt.Str("active")),
		rules.AtLeastOne("/items"),
	)

	if !needsItems(order("active", item("a-1", 1))) {
		t.Fatalf("active order with items passes")
	}
	if needsItems(order("active")) {
		t.Fatalf("active order without items fails")
	}
	if !needsItems(order("draft")) {
		t.Fatalf("condition not met: rule passes untouched")
	}
}

func TestAtLeastOne_RefinementSemantics(t *testing.T) {
	r := rules.AtLeastOne("/items")
	if !r(order("x", item("a", 1))) {
		t.Fatalf("non-empty list passes")
	}
	if r(order("x")) {
		t.Fatalf("empty list fails")
	}
	if !r(punt.Map(nil)) {
		t.Fatalf("absent path passes, shape checks are the parser's job")
	}
	if !r(punt.Map(map[string]punt.Value{"items": punt.Str("not a list")})) {
		t.Fatalf("non-list passes")
	}
}

func TestUniqueBy(t *testing.T) {
	r := rules.UniqueBy("/items", "/sku")

	if !r(order("x", item("a-1", 1), item("b-2", 1))) {
		t.Fatalf("distinct keys pass")
	}
	if r(order("x", item("a-1", 1), item("a-1", 2))) {
		t.Fatalf("duplicate keys fail")
	}

	mixed := punt.Map(map[string]punt.Value{"items": punt.List(
		punt.Map(map[string]punt.Value{"k": punt.Int(1)}),
		punt.Map(map[string]punt.Value{"k": punt.Float(1)}),
	)})
	if !rules.UniqueBy("/items", "/k")(mixed) {
		t.Fatalf("distinctness is kind-strict: integer 1 and float 1 do not collide")
	}

	missingKey := punt.Map(map[string]punt.Value{"items": punt.List(
		punt.Map(map[string]punt.Value{"other": punt.Int(1)}),
		punt.Map(map[string]punt.Value{"other": punt.Int(1)}),
	)})
	if !r(missingKey) {
		t.Fatalf("elements without the key are skipped")
	}
}

func TestCheck_BridgesIntoParser(t *testing.T) {
	p := rules.Check(rules.UniqueBy("/items", "/sku"), "skus must be unique")

	good := order("x", item("a-1", 1))
	got, err := p.Parse(good)
	if err != nil || !got.Equal(good) {
		t.Fatalf("passing rule returns the input: got %v err=%v", got, err)
	}

	bad := order("x", item("a-1", 1), item("a-1", 2))
	_, err = p.Parse(bad)
	var pe *punt.PredicateError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PredicateError, got %v", err)
	}
	if pe.Context != "skus must be unique" {
		t.Fatalf("context carried: got %v", pe.Context)
	}
	if !pe.Input.Equal(bad) {
		t.Fatalf("input carried: got %v", pe.Input)
	}
}
