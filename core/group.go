package core

import (
	"reflect"

	"github.com/thrawn01/subcommand/errors"
	"github.com/thrawn01/subcommand/internal/common"
)

// Commands is the embeddable base for a command group. A user struct embeds
// it and declares group metadata as tags on the embedded field:
//
//	type Tickets struct {
//		subcommand.Commands `name:"tickets" desc:"Ticket management"`
//		Debug bool
//	}
//
// A `name` tag makes the group a named subcommand node; without one the
// group contributes its commands to the flat top-level command set.
type Commands struct {
	name    string
	desc    string
	specs   []*CommandSpec
	globals []*Option
	impl    any
}

func (c *Commands) base() *Commands { return c }

// Group is satisfied by any struct pointer that embeds Commands.
type Group interface{ base() *Commands }

// PreCommander is implemented by groups that need setup before a command
// runs, such as constructing a shared client. PreCommand is invoked after
// all option parsing succeeds and before the selected command method; a
// non-nil error aborts dispatch and propagates out of Parser.Run.
type PreCommander interface{ PreCommand() error }

// CommandSpec bundles one invocable method with its ordered options and
// help text. Specs are built once, by Register, and never mutated after.
type CommandSpec struct {
	Name string // display name: kebab-case of the method name
	Help string // help header shown in the command's -h output

	method reflect.Value
	opts   []*Option
	group  *Commands
}

// Decl is one declaration passed to Register: a command method with its
// options, a no-argument command marker, or a set of group-level options.
type Decl struct {
	method string
	help   string
	opts   []*Option
	global bool
}

// Cmd declares the named method as a command taking the given options, in
// left-to-right parameter order.
func Cmd(method string, opts ...*Option) Decl {
	return Decl{method: method, opts: opts}
}

// NoArgs declares the named method as a command taking no options. Methods
// without a Cmd or NoArgs declaration are invisible to the registry, so
// plain helper methods are never mistaken for commands.
func NoArgs(method string) Decl {
	return Decl{method: method}
}

// Global declares options shared by every command in the group. They are
// parsed before the command token, and the parsed values are assigned to
// the group's same-named exported fields (--debug populates field Debug).
func Global(opts ...*Option) Decl {
	return Decl{global: true, opts: opts}
}

// Help sets the command's help header, shown as the description in its -h
// output. It has no effect on Global declarations.
func (d Decl) Help(s string) Decl {
	d.help = s
	return d
}

var (
	intType = reflect.TypeOf(int(0))
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// Register builds the group's CommandSpecs from the given declarations. It
// is called once, from the group's constructor, and validates every
// declaration against the concrete struct: each declared method must exist
// and accept exactly the parameters described by its options, and each
// group-level option must have a matching exported field. Structural
// mistakes panic with errors.ConfigurationError; nothing is deferred to
// dispatch time. Calling Register again rebuilds the same specs from
// scratch.
func Register(g Group, decls ...Decl) {
	if !common.IsStructPtr(g) {
		panic(errors.NewConfiguration("Register requires a pointer to a struct embedding Commands"))
	}
	b := g.base()
	tags := common.EmbeddedFieldTags(common.GetStructType(g), "Commands", "name", "desc")
	b.name = tags["name"]
	b.desc = tags["desc"]
	b.impl = g
	b.specs = nil
	b.globals = nil

	v := reflect.ValueOf(g)

	// Group-level options first, so command declarations can be checked
	// against them regardless of declaration order.
	for _, d := range decls {
		if !d.global {
			continue
		}
		for _, opt := range d.opts {
			b.addGlobal(v, opt)
		}
	}
	for _, d := range decls {
		if d.global {
			continue
		}
		b.addCommand(v, d)
	}
}

func (c *Commands) addGlobal(v reflect.Value, opt *Option) {
	opt.validate()
	if opt.positional {
		panic(errors.NewConfiguration("group %q: group-level option %q must be a flag", c.name, opt.name))
	}
	for _, g := range c.globals {
		if g.name == opt.name || (opt.short != "" && g.short == opt.short) {
			panic(errors.NewConfiguration("group %q: duplicate group-level option %q", c.name, opt.name))
		}
	}
	field := v.Elem().FieldByName(common.FieldName(opt.name))
	if !field.IsValid() || !field.CanSet() {
		panic(errors.NewConfiguration("group %q: option --%s has no exported field %s to bind to",
			c.name, opt.name, common.FieldName(opt.name)))
	}
	if field.Type() != opt.paramType() {
		panic(errors.NewConfiguration("group %q: field %s is %s, option --%s parses a %s",
			c.name, common.FieldName(opt.name), field.Type(), opt.name, opt.paramType()))
	}
	cp := *opt
	c.globals = append(c.globals, &cp)
}

func (c *Commands) addCommand(v reflect.Value, d Decl) {
	method := v.MethodByName(d.method)
	if !method.IsValid() {
		panic(errors.NewConfiguration("group %q: no method %s", c.name, d.method))
	}
	spec := &CommandSpec{
		Name:   common.KebabCase(d.method),
		Help:   d.help,
		method: method,
		group:  c,
	}
	for _, s := range c.specs {
		if s.Name == spec.Name {
			panic(errors.NewConfiguration("group %q: duplicate command %q", c.name, spec.Name))
		}
	}
	for _, opt := range d.opts {
		opt.validate()
		for _, prev := range spec.opts {
			if prev.name == opt.name || (opt.short != "" && prev.short == opt.short) {
				panic(errors.NewConfiguration("command %q: duplicate option %q", spec.Name, opt.name))
			}
		}
		for _, g := range c.globals {
			if g.name == opt.name || (opt.short != "" && g.short == opt.short) {
				panic(errors.NewConfiguration("command %q: option %q collides with a group-level option",
					spec.Name, opt.name))
			}
		}
		cp := *opt
		spec.opts = append(spec.opts, &cp)
	}
	spec.checkSignature()
	c.specs = append(c.specs, spec)
}

// checkSignature verifies the method accepts exactly the declared options:
// the i-th option binds to the i-th parameter, and the return value must be
// nothing, int, error, or (int, error).
func (s *CommandSpec) checkSignature() {
	mt := s.method.Type()
	if mt.IsVariadic() || mt.NumIn() != len(s.opts) {
		panic(errors.NewConfiguration("command %q: method takes %d parameters, %d options declared",
			s.Name, mt.NumIn(), len(s.opts)))
	}
	for i, opt := range s.opts {
		if mt.In(i) != opt.paramType() {
			panic(errors.NewConfiguration("command %q: parameter %d is %s, option %q parses a %s",
				s.Name, i, mt.In(i), opt.name, opt.paramType()))
		}
	}
	switch mt.NumOut() {
	case 0:
	case 1:
		if mt.Out(0) != intType && mt.Out(0) != errType {
			panic(errors.NewConfiguration("command %q: return type must be int or error, got %s",
				s.Name, mt.Out(0)))
		}
	case 2:
		if mt.Out(0) != intType || mt.Out(1) != errType {
			panic(errors.NewConfiguration("command %q: return types must be (int, error), got (%s, %s)",
				s.Name, mt.Out(0), mt.Out(1)))
		}
	default:
		panic(errors.NewConfiguration("command %q: too many return values", s.Name))
	}
}

func (s *CommandSpec) positionals() []*Option {
	var out []*Option
	for _, o := range s.opts {
		if o.positional {
			out = append(out, o)
		}
	}
	return out
}

func (s *CommandSpec) flagged() []*Option {
	var out []*Option
	for _, o := range s.opts {
		if !o.positional {
			out = append(out, o)
		}
	}
	return out
}

// call invokes the method with the bound arguments and interprets its
// return value: an int becomes the exit code (absent means 0) and a
// non-nil error propagates unchanged to the caller of Run.
func (s *CommandSpec) call(in []reflect.Value) (int, error) {
	out := s.method.Call(in)
	code := 0
	var err error
	for _, o := range out {
		switch o.Type() {
		case intType:
			code = int(o.Int())
		case errType:
			if !o.IsNil() {
				err = o.Interface().(error)
			}
		}
	}
	return code, err
}
