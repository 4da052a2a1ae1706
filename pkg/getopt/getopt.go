// Package getopt implements a command-line argument parser for builtin
// commands.
//
// It supports short options that can be chained (-xU), long options with
// arguments given after an equal sign or as the next argument, and the "--"
// terminator. Parsing can optionally stop before the first non-option
// argument, so that arguments like "-1" after a variable name are not taken
// as options.
package getopt

import (
	"fmt"
	"strings"

	"github.com/elves/setvar/pkg/errutil"
)

// Config configures the parsing behavior.
type Config uint

const (
	// Stop parsing options after "--".
	StopAfterDoubleDash Config = 1 << iota
	// Stop parsing options before the first non-option argument.
	StopBeforeFirstNonOption

	// Config to replicate the behavior of GNU's getopt_long.
	GNU = StopAfterDoubleDash
	// Config to replicate the behavior of BSD's getopt_long, or GNU's with a
	// leading "+" in the option string.
	BSD = StopAfterDoubleDash | StopBeforeFirstNonOption
)

// Tests whether a configuration has all specified flags set.
func (c Config) has(bits Config) bool { return c&bits == bits }

// OptionSpec is a command-line option.
type OptionSpec struct {
	// Short option. Set to 0 for long-only.
	Short rune
	// Long option. Set to "" for short-only.
	Long string
	// Whether the option takes an argument, and whether it is required.
	Arity Arity
}

// Arity indicates whether an option takes an argument, and whether it is
// required.
type Arity uint

const (
	// The option takes no argument.
	NoArgument Arity = iota
	// The option requires an argument, given directly after a short option
	// (-oarg), after an equal sign (--long=arg), or as the next argument.
	RequiredArgument
	// The option takes an optional argument, given directly after a short
	// option or after an equal sign.
	OptionalArgument
)

// Option represents a parsed option.
type Option struct {
	Spec     *OptionSpec
	Unknown  bool
	Long     bool
	Argument string
}

// String returns the option as it was written, without its argument.
func (opt *Option) String() string {
	if opt.Long {
		return "--" + opt.Spec.Long
	}
	return "-" + string(opt.Spec.Short)
}

// Parse parses an argument list. It returns the parsed options, the non-option
// arguments, and any error. Unknown options are reported as errors, but are
// still included in the returned options.
func Parse(args []string, specs []*OptionSpec, cfg Config) ([]*Option, []string, error) {
	p := parser{specs: specs, cfg: cfg}
	for _, arg := range args {
		p.next(arg)
	}

	var err error
	if p.pending != nil {
		err = fmt.Errorf("missing argument for %s", p.pending)
	}
	for _, opt := range p.opts {
		if opt.Unknown {
			err = errutil.Multi(err, fmt.Errorf("unknown option %s", opt))
		}
	}
	return p.opts, p.nonOptArgs, err
}

type parser struct {
	specs []*OptionSpec
	cfg   Config

	opts       []*Option
	nonOptArgs []string
	// Non-nil only when the last argument was an option with a required
	// argument that has not been seen.
	pending *Option
	// Whether option parsing has stopped.
	stopped bool
}

func (p *parser) next(arg string) {
	switch {
	case p.pending != nil:
		p.pending.Argument = arg
		p.opts = append(p.opts, p.pending)
		p.pending = nil
	case p.stopped:
		p.nonOptArgs = append(p.nonOptArgs, arg)
	case arg == "--" && p.cfg.has(StopAfterDoubleDash):
		p.stopped = true
	case strings.HasPrefix(arg, "--") && arg != "--":
		opt, needArg := parseLong(arg[2:], p.specs)
		p.add(opt, needArg)
	case strings.HasPrefix(arg, "-") && arg != "--" && arg != "-":
		opts, needArg := parseShort(arg[1:], p.specs)
		p.opts = append(p.opts, opts[:len(opts)-1]...)
		p.add(opts[len(opts)-1], needArg)
	default:
		p.nonOptArgs = append(p.nonOptArgs, arg)
		if p.cfg.has(StopBeforeFirstNonOption) {
			p.stopped = true
		}
	}
}

func (p *parser) add(opt *Option, needArg bool) {
	if needArg {
		p.pending = opt
	} else {
		p.opts = append(p.opts, opt)
	}
}

// Parses a chain of short options, without the leading dash. Returns the
// parsed options and whether the last one still needs its argument.
func parseShort(s string, specs []*OptionSpec) ([]*Option, bool) {
	var opts []*Option
	for i, r := range s {
		rest := s[i+len(string(r)):]
		spec := findShort(r, specs)
		if spec == nil {
			// Unknown option; the rest of the chain is its argument.
			opts = append(opts, &Option{
				Spec:    &OptionSpec{r, "", OptionalArgument},
				Unknown: true, Argument: rest})
			return opts, false
		}
		if spec.Arity == NoArgument {
			opts = append(opts, &Option{Spec: spec})
			continue
		}
		opts = append(opts, &Option{Spec: spec, Argument: rest})
		return opts, rest == "" && spec.Arity == RequiredArgument
	}
	return opts, false
}

func findShort(r rune, specs []*OptionSpec) *OptionSpec {
	for _, spec := range specs {
		if r == spec.Short {
			return spec
		}
	}
	return nil
}

// Parses a long option, without the leading dashes. Returns the parsed option
// and whether it still needs its argument.
func parseLong(s string, specs []*OptionSpec) (*Option, bool) {
	name, arg, hasArg := strings.Cut(s, "=")
	for _, spec := range specs {
		if name != spec.Long {
			continue
		}
		if hasArg {
			return &Option{Spec: spec, Long: true, Argument: arg}, false
		}
		return &Option{Spec: spec, Long: true}, spec.Arity == RequiredArgument
	}
	return &Option{
		Spec:    &OptionSpec{0, name, OptionalArgument},
		Unknown: true, Long: true, Argument: arg}, false
}
