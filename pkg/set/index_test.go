package set

import (
	"testing"

	"github.com/elves/setvar/pkg/tt"
)

var Args = tt.Args

func TestSplitSlice(t *testing.T) {
	tt.Test(t, tt.Fn("SplitSlice", SplitSlice), tt.Table{
		Args("foo").Rets("foo", false),
		Args("foo[1]").Rets("foo", true),
		Args("foo[").Rets("foo", true),
		Args("[1]").Rets("", true),
	})
}

func TestParseIndexes(t *testing.T) {
	tt.Test(t, tt.Fn("ParseIndexes", ParseIndexes), tt.Table{
		// Simple indexes.
		Args("foo[1]", "foo", 0).Rets([]int{1}, nil),
		Args("foo[1 3 2]", "foo", 3).Rets([]int{1, 3, 2}, nil),
		Args("foo[ 2\t1 ]", "foo", 3).Rets([]int{2, 1}, nil),
		Args("foo[1 1]", "foo", 3).Rets([]int{1, 1}, nil),
		Args("foo[+2]", "foo", 3).Rets([]int{2}, nil),
		// Indexes are not checked against the length.
		Args("foo[0 10]", "foo", 3).Rets([]int{0, 10}, nil),

		// Negative indexes count from the end.
		Args("foo[-1]", "foo", 5).Rets([]int{5}, nil),
		Args("foo[-5]", "foo", 5).Rets([]int{1}, nil),
		Args("foo[-6]", "foo", 5).Rets([]int{0}, nil),
		Args("foo[-1]", "foo", 0).Rets([]int{0}, nil),

		// Ranges.
		Args("foo[1..3]", "foo", 5).Rets([]int{1, 2, 3}, nil),
		Args("foo[3..1]", "foo", 5).Rets([]int{3, 2, 1}, nil),
		Args("foo[2..2]", "foo", 5).Rets([]int{2}, nil),
		Args("foo[-2..-1]", "foo", 5).Rets([]int{4, 5}, nil),
		Args("foo[-1..1]", "foo", 3).Rets([]int{3, 2, 1}, nil),
		Args("foo[1..2 5]", "foo", 5).Rets([]int{1, 2, 5}, nil),

		// A range with a missing upper bound keeps its lower bound and ends
		// the expression.
		Args("foo[2..]", "foo", 5).Rets([]int{2}, nil),
		Args("foo[1 2..x 4]", "foo", 5).Rets([]int{1, 2}, nil),

		// Text after the closing bracket is ignored.
		Args("foo[1]bar", "foo", 5).Rets([]int{1}, nil),

		// Errors.
		Args("foo", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: MissingBracket, Name: "foo"}),
		Args("bar[1]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: NameMismatch, Name: "foo", Text: "bar"}),
		Args("fo[1]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: NameMismatch, Name: "foo", Text: "fo"}),
		Args("foo[x]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: InvalidIndex, Name: "foo", Text: "x]"}),
		Args("foo[1x]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: InvalidIndex, Name: "foo", Text: "x]"}),
		Args("foo[1 2", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: InvalidIndex, Name: "foo", Text: ""}),
		Args("foo[1..3x]", "foo", 5).Rets([]int(nil),
			&ParseError{Kind: InvalidIndex, Name: "foo", Text: "x]"}),
		// Ranges too large to expand.
		Args("foo[1..9223372036854775807]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: InvalidIndex, Name: "foo", Text: "1..9223372036854775807]"}),
		Args("foo[2 -9223372036854775807..9223372036854775807]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: InvalidIndex, Name: "foo",
				Text: "-9223372036854775807..9223372036854775807]"}),
		Args("foo[9223372036854775807..1]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: InvalidIndex, Name: "foo", Text: "9223372036854775807..1]"}),
		Args("foo[]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: NoIndex, Name: "foo"}),
		Args("foo[ ]", "foo", 0).Rets([]int(nil),
			&ParseError{Kind: NoIndex, Name: "foo"}),
	})
}

func TestParseError_Error(t *testing.T) {
	tt.Test(t, tt.Fn("Error", (*ParseError).Error), tt.Table{
		Args(&ParseError{Kind: MissingBracket, Name: "foo"}).Rets(
			"The number of variable indexes does not match the number of values"),
		Args(&ParseError{Kind: NameMismatch, Name: "foo", Text: "bar"}).Rets(
			"Multiple variable names specified in single call (foo and bar)"),
		Args(&ParseError{Kind: InvalidIndex, Name: "foo", Text: "x]"}).Rets(
			"Invalid index starting at 'x]'"),
	})
}
