package punt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/maartenvanvliet/punt/i18n"
)

// Failure reasons carried by SimpleError (exported consts for IDE completion
// and stable comparison by convention).
const (
	ReasonNotAString    = "not a string"
	ReasonNotAnInteger  = "not an integer"
	ReasonNotAFloat     = "not a float"
	ReasonNotANumber    = "not a number"
	ReasonNotABoolean   = "not a boolean"
	ReasonNotNull       = "not null"
	ReasonNotAList      = "not a list"
	ReasonNotASingleton = "not a singleton"
	ReasonNotAPair      = "not a pair"
	ReasonNotEnumerable = "not enumerable"
	ReasonNotAMap       = "not a map"
)

// Message codes resolved through the i18n package when rendering errors.
const (
	CodeMissingField = "missing_field"
	CodeNotAMap      = "not_a_map"
	CodeNested       = "nested_failure"
	CodePredicate    = "predicate_failure"
	CodeAlternatives = "alternatives"
	CodeCustom       = "custom"
)

// ParseError is the failure channel of Parse: plain, inspectable data, never
// a wrapped panic or exception. The concrete types below form a closed set;
// callers discriminate with a type switch or errors.As.
type ParseError interface {
	error
	parseError()
}

// SimpleError is a bare symbolic reason, one of the Reason* constants.
type SimpleError struct {
	Reason string
}

func (e *SimpleError) Error() string { return e.Reason }
func (e *SimpleError) parseError()   {}

// MissingFieldError reports a required key absent from a map input.
type MissingFieldError struct {
	Field string
	Input Value
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %q in %s", i18n.T(CodeMissingField, nil), e.Field, e.Input)
}
func (e *MissingFieldError) parseError() {}

// NotAMapError reports a field lookup applied to a non-map input.
type NotAMapError struct {
	Input Value
}

func (e *NotAMapError) Error() string {
	return fmt.Sprintf("%s: %s", i18n.T(CodeNotAMap, nil), e.Input)
}
func (e *NotAMapError) parseError() {}

// NestedError wraps a sub-parser failure together with the element that
// triggered it (list, singleton, and pair parsing).
type NestedError struct {
	Element Value
	Err     ParseError
}

func (e *NestedError) Error() string {
	return fmt.Sprintf("%s %s: %s", i18n.T(CodeNested, nil), e.Element, e.Err)
}
func (e *NestedError) parseError() {}

// Unwrap exposes the element failure to errors.As/Is chains.
func (e *NestedError) Unwrap() error { return e.Err }

// PredicateError reports an input rejected by a predicate combinator.
// Context is the optional caller-supplied tag identifying the predicate.
type PredicateError struct {
	Input   Value
	Context any
}

func (e *PredicateError) Error() string {
	if e.Context == nil {
		return fmt.Sprintf("%s: %s", i18n.T(CodePredicate, nil), e.Input)
	}
	return fmt.Sprintf("%s: %s (%v)", i18n.T(CodePredicate, nil), e.Input, e.Context)
}
func (e *PredicateError) parseError() {}

// AlternativesError reports that every alternative rejected the input. Errs
// holds one entry per alternative, in the order the alternatives were given.
type AlternativesError struct {
	Input Value
	Errs  []ParseError
}

// Error summarizes the first few alternative failures.
func (e *AlternativesError) Error() string {
	const maxShown = 3
	msgs := lo.Map(e.Errs, func(sub ParseError, _ int) string { return sub.Error() })
	n := len(msgs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s %s: ", i18n.T(CodeAlternatives, nil), e.Input)
	b.WriteString(strings.Join(msgs[:lim], "; "))
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}
func (e *AlternativesError) parseError() {}

// CustomError carries an arbitrary caller-supplied failure value (Fail,
// failing transforms, constructor errors).
type CustomError struct {
	Reason any
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(CodeCustom, nil), e.Reason)
}
func (e *CustomError) parseError() {}

// AsParseError extracts a ParseError from an error using errors.As
// internally.
func AsParseError(err error) (ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ErrNoGenerator is the panic value raised when Generate is called on a
// parser without a generator. Missing generation is an invalid use of the
// API, not a parse failure, so it never travels the ParseError channel.
var ErrNoGenerator = errors.New("punt: parser has no generator")
