package quote

import (
	"testing"

	"github.com/elves/setvar/pkg/tt"
)

var Args = tt.Args

func TestQuote(t *testing.T) {
	tt.Test(t, tt.Fn("Quote", Quote).ArgsFmt("(%q)"), tt.Table{
		// Empty string is single-quoted.
		Args("").Rets(`''`),

		// Bareword when possible.
		Args("x-y:z@h/d").Rets("x-y:z@h/d"),
		Args("/usr/bin").Rets("/usr/bin"),

		// Single quote when there are special characters but no unprintable
		// characters.
		Args("x$y[]ef'").Rets("'x$y[]ef'''"),
		Args("a b").Rets("'a b'"),

		// Tilde needs quoting only leading the expression.
		Args("~x").Rets("'~x'"),
		Args("x~").Rets("x~"),

		// Double quote when there is unprintable char.
		Args("a\nb").Rets(`"a\nb"`),
		Args("\000\x1b\"\\").Rets(`"\x00\e\"\\"`),
		Args("\u0600").Rets(`"\u0600"`),
		Args("\U000110BD").Rets(`"\U000110bd"`),
		Args("bad\xffUTF-8").Rets(`"bad\xffUTF-8"`),
	})
}

func TestEscape(t *testing.T) {
	tt.Test(t, tt.Fn("Escape", Escape).ArgsFmt("(%q)"), tt.Table{
		Args("").Rets(""),
		Args("plain").Rets("plain"),
		Args("a b").Rets(`a\ b`),
		Args("$HOME/*").Rets(`\$HOME/\*`),
		Args("it's").Rets(`it\'s`),
		Args("a\tb\nc").Rets(`a\tb\nc`),
		Args("\x01").Rets(`\x01`),
		Args("\u0600").Rets(`\u0600`),
		Args("bad\xff").Rets(`bad\xff`),
		Args("héllo").Rets("héllo"),
	})
}
