package getopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	vSpec    = &OptionSpec{'v', "verbose", NoArgument}
	nSpec    = &OptionSpec{'n', "dry-run", NoArgument}
	fSpec    = &OptionSpec{'f', "file", RequiredArgument}
	iSpec    = &OptionSpec{'i', "in-place", OptionalArgument}
	allSpecs = []*OptionSpec{vSpec, nSpec, fSpec, iSpec}
)

var parseTests = []struct {
	name        string
	args        []string
	cfg         Config
	wantOpts    []*Option
	wantNonOpts []string
	wantErr     string
}{
	{
		name:        "short options chained",
		args:        []string{"-vn", "a"},
		wantOpts:    []*Option{{Spec: vSpec}, {Spec: nSpec}},
		wantNonOpts: []string{"a"},
	},
	{
		name: "required argument in same or next argument",
		args: []string{"-fa", "-f", "b", "--file=c", "--file", "d"},
		wantOpts: []*Option{
			{Spec: fSpec, Argument: "a"}, {Spec: fSpec, Argument: "b"},
			{Spec: fSpec, Long: true, Argument: "c"},
			{Spec: fSpec, Long: true, Argument: "d"}},
	},
	{
		name:     "optional argument",
		args:     []string{"-i", "-i.bak"},
		wantOpts: []*Option{{Spec: iSpec}, {Spec: iSpec, Argument: ".bak"}},
	},
	{
		name:        "GNU config keeps parsing after non-option",
		args:        []string{"a", "-v"},
		cfg:         GNU,
		wantOpts:    []*Option{{Spec: vSpec}},
		wantNonOpts: []string{"a"},
	},
	{
		name:        "BSD config stops before first non-option",
		args:        []string{"-v", "foo[-1]", "-n"},
		cfg:         BSD,
		wantOpts:    []*Option{{Spec: vSpec}},
		wantNonOpts: []string{"foo[-1]", "-n"},
	},
	{
		name:        "double dash",
		args:        []string{"-v", "--", "-n"},
		cfg:         GNU,
		wantOpts:    []*Option{{Spec: vSpec}},
		wantNonOpts: []string{"-n"},
	},
	{
		name:        "lone dash is an argument",
		args:        []string{"-"},
		wantNonOpts: []string{"-"},
	},
	{
		name:     "missing argument",
		args:     []string{"-f"},
		wantErr:  "missing argument for -f",
		wantOpts: nil,
	},
	{
		name: "unknown options",
		args: []string{"-z", "--zzz"},
		wantOpts: []*Option{
			{Spec: &OptionSpec{'z', "", OptionalArgument}, Unknown: true},
			{Spec: &OptionSpec{0, "zzz", OptionalArgument}, Unknown: true, Long: true}},
		wantErr: "multiple errors: unknown option -z; unknown option --zzz",
	},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		t.Run(test.name, func(t *testing.T) {
			opts, nonOpts, err := Parse(test.args, allSpecs, test.cfg)
			if diff := cmp.Diff(test.wantOpts, opts); diff != "" {
				t.Errorf("opts (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.wantNonOpts, nonOpts); diff != "" {
				t.Errorf("non-option args (-want +got):\n%s", diff)
			}
			errMsg := ""
			if err != nil {
				errMsg = err.Error()
			}
			if errMsg != test.wantErr {
				t.Errorf("got error %q, want %q", errMsg, test.wantErr)
			}
		})
	}
}

func TestOptionString(t *testing.T) {
	if s := (&Option{Spec: vSpec}).String(); s != "-v" {
		t.Errorf("got %q, want -v", s)
	}
	if s := (&Option{Spec: vSpec, Long: true}).String(); s != "--verbose" {
		t.Errorf("got %q, want --verbose", s)
	}
}
