package core

import (
	"reflect"
	"strings"

	"github.com/thrawn01/subcommand/errors"
)

// Kind selects the value type an option parses into. It determines both the
// flag type synthesized on the pflag set and the Go parameter type the
// option binds to.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
	Strings
)

type action int

const (
	actStore action = iota
	actStoreTrue
	actStoreFalse
	actStoreConst
	actAppend
	actCount
)

// Option describes a single command-line argument: its name(s), value type,
// default, help text and action. Options are created with Opt and configured
// through the fluent setters; Register copies them, so an Option is
// effectively immutable once a command has been registered with it.
type Option struct {
	long       string // long flag name, without dashes
	short      string // single-character shorthand, without dash
	name       string // destination name: positional name, or the long name
	positional bool
	action     action
	kind       Kind
	def        any
	constVal   any
	help       string
	metavar    string
}

// Opt declares one option. A name with a leading dash is a flag
// ("--count", optionally paired with a one-character shorthand like "-c");
// a bare name declares a positional argument. Declaration order is
// significant: the i-th option of a command binds to the i-th parameter of
// the command method, and positional arguments are consumed in declaration
// order.
func Opt(names ...string) *Option {
	o := &Option{kind: String}
	if len(names) == 0 {
		panic(errors.NewConfiguration("option declared with no name"))
	}
	if len(names) > 2 {
		panic(errors.NewConfiguration("option %q: at most a short and a long flag may be given", names[0]))
	}
	for _, n := range names {
		switch {
		case strings.HasPrefix(n, "--"):
			name := strings.TrimPrefix(n, "--")
			if len(name) < 2 {
				panic(errors.NewConfiguration("long flag %q must be at least two characters", n))
			}
			if o.long != "" {
				panic(errors.NewConfiguration("option %q: duplicate long flag", n))
			}
			o.long = name
		case strings.HasPrefix(n, "-"):
			name := strings.TrimPrefix(n, "-")
			if len(name) != 1 {
				panic(errors.NewConfiguration("short flag %q must be a single character", n))
			}
			if o.short != "" {
				panic(errors.NewConfiguration("option %q: duplicate short flag", n))
			}
			o.short = name
		default:
			if len(names) > 1 {
				panic(errors.NewConfiguration("positional %q cannot have alternate names", n))
			}
			if n == "" {
				panic(errors.NewConfiguration("option declared with empty name"))
			}
			o.name = n
			o.positional = true
		}
	}
	if !o.positional {
		if o.long == "" {
			panic(errors.NewConfiguration("flag -%s requires a long form", o.short))
		}
		o.name = o.long
	}
	return o
}

// Type sets the value kind parsed for a store action. The default is String.
func (o *Option) Type(k Kind) *Option {
	o.kind = k
	return o
}

// Default sets the value used when the option is absent from the command
// line. The default must match the option's Go parameter type.
func (o *Option) Default(v any) *Option {
	o.def = v
	return o
}

// Help sets the per-argument help text shown in the command's help table.
func (o *Option) Help(s string) *Option {
	o.help = s
	return o
}

// Metavar overrides the value placeholder shown in usage and help output.
func (o *Option) Metavar(s string) *Option {
	o.metavar = s
	return o
}

// StoreTrue makes the flag take no value and store true when present.
func (o *Option) StoreTrue() *Option {
	o.action = actStoreTrue
	o.kind = Bool
	return o
}

// StoreFalse makes the flag take no value and store false when present.
func (o *Option) StoreFalse() *Option {
	o.action = actStoreFalse
	o.kind = Bool
	return o
}

// StoreConst makes the flag take no value and store v when present. The
// bound parameter type must match the type of v.
func (o *Option) StoreConst(v any) *Option {
	o.action = actStoreConst
	o.constVal = v
	return o
}

// Append makes the flag repeatable, collecting values into a []string.
func (o *Option) Append() *Option {
	o.action = actAppend
	o.kind = Strings
	return o
}

// Count makes the flag repeatable and valueless, counting occurrences.
func (o *Option) Count() *Option {
	o.action = actCount
	o.kind = Int
	return o
}

// paramType reports the Go type a parsed value of this option has, which is
// also the method parameter type the option must bind to.
func (o *Option) paramType() reflect.Type {
	switch o.action {
	case actStoreTrue, actStoreFalse:
		return reflect.TypeOf(false)
	case actStoreConst:
		if o.constVal == nil {
			panic(errors.NewConfiguration("option %q: StoreConst requires a non-nil value", o.name))
		}
		return reflect.TypeOf(o.constVal)
	case actAppend:
		return reflect.TypeOf([]string(nil))
	case actCount:
		return reflect.TypeOf(int(0))
	}
	switch o.kind {
	case Int:
		return reflect.TypeOf(int(0))
	case Float:
		return reflect.TypeOf(float64(0))
	case Bool:
		return reflect.TypeOf(false)
	case Strings:
		return reflect.TypeOf([]string(nil))
	default:
		return reflect.TypeOf("")
	}
}

// defaultValue returns the declared default, or the zero value of the
// option's parameter type when none was declared.
func (o *Option) defaultValue() any {
	if o.def != nil {
		return o.def
	}
	return reflect.Zero(o.paramType()).Interface()
}

// placeholder is the metavar rendered in usage lines and help tables.
func (o *Option) placeholder() string {
	if o.metavar != "" {
		return o.metavar
	}
	return strings.ToUpper(strings.ReplaceAll(o.name, "-", "_"))
}

// takesValue reports whether the flag consumes a value token.
func (o *Option) takesValue() bool {
	switch o.action {
	case actStoreTrue, actStoreFalse, actStoreConst, actCount:
		return false
	}
	return o.kind != Bool
}

func (o *Option) validate() {
	if o.positional && o.action != actStore {
		panic(errors.NewConfiguration("positional %q: only plain store actions are supported", o.name))
	}
	if o.positional && o.kind == Strings {
		panic(errors.NewConfiguration("positional %q: list values require a repeatable flag", o.name))
	}
	if o.name == "help" || o.short == "h" {
		panic(errors.NewConfiguration("option %q: -h/--help is reserved", o.name))
	}
	if o.def != nil && reflect.TypeOf(o.def) != o.paramType() {
		panic(errors.NewConfiguration("option %q: default %v is not a %s",
			o.name, o.def, o.paramType()))
	}
}
