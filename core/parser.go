package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/thrawn01/subcommand/display"
	"github.com/thrawn01/subcommand/errors"
	"github.com/thrawn01/subcommand/internal/common"
)

// boundOption ties a parent-level option to the group whose field receives
// the parsed value.
type boundOption struct {
	opt   *Option
	group *Commands
}

// node is one level of the command resolution tree. The root either holds
// the merged commands of unnamed groups (flat mode) or one child per named
// group (nested mode).
type node struct {
	name     string
	desc     string
	cmds     []*CommandSpec
	children []*node
	globals  []boundOption
}

// Parser resolves command-line tokens against a tree of registered command
// groups and invokes the selected command. Prog, Version, Out and Err may
// be set before the first call to Run; they default to the process name,
// no version flag, os.Stdout and os.Stderr.
type Parser struct {
	Prog    string
	Version string
	Out     io.Writer
	Err     io.Writer

	desc string
	root *node
}

// New builds a Parser from the given groups. If no group carries a `name`
// tag the commands of all groups are merged into one flat command set; if
// every group is named, each becomes one subcommand node. Mixing named and
// unnamed groups, duplicate command or group names, and unregistered
// groups are configuration errors and panic.
func New(groups []Group, desc string) *Parser {
	if len(groups) == 0 {
		panic(errors.NewConfiguration("parser requires at least one command group"))
	}
	named := 0
	for _, g := range groups {
		b := g.base()
		if b.impl == nil {
			panic(errors.NewConfiguration("group %T was never registered", g))
		}
		if b.name != "" {
			named++
		}
	}
	p := &Parser{desc: desc, root: &node{desc: desc}}
	switch named {
	case 0:
		for _, g := range groups {
			p.root.merge(g.base())
		}
	case len(groups):
		for _, g := range groups {
			b := g.base()
			for _, child := range p.root.children {
				if child.name == b.name {
					panic(errors.NewConfiguration("duplicate group name %q", b.name))
				}
			}
			child := &node{name: b.name, desc: b.desc}
			child.merge(b)
			p.root.children = append(p.root.children, child)
		}
	default:
		panic(errors.NewConfiguration("cannot mix named and unnamed command groups"))
	}
	return p
}

// merge adds a group's commands and group-level options to the node,
// preserving registration order.
func (n *node) merge(b *Commands) {
	for _, spec := range b.specs {
		for _, prev := range n.cmds {
			if prev.Name == spec.Name {
				panic(errors.NewConfiguration("duplicate command %q", spec.Name))
			}
		}
		n.cmds = append(n.cmds, spec)
	}
	for _, opt := range b.globals {
		for _, prev := range n.globals {
			if prev.opt.name == opt.name || (opt.short != "" && prev.opt.short == opt.short) {
				panic(errors.NewConfiguration("duplicate group-level option %q", opt.name))
			}
		}
		n.globals = append(n.globals, boundOption{opt: opt, group: b})
	}
}

// selectable returns the names choosable at this node, in registration order.
func (n *node) selectable() []string {
	var names []string
	for _, child := range n.children {
		names = append(names, child.name)
	}
	for _, spec := range n.cmds {
		names = append(names, spec.Name)
	}
	return names
}

// Run resolves argv to a command and invokes it, returning the process exit
// code. A nil argv means the process's own arguments, excluding the program
// name. Usage problems are reported on Err and returned as code 1 (no or
// unknown command) or 2 (argument parse failure) with a nil error. An error
// returned by the command method or a PreCommand hook is not interpreted;
// it propagates to the caller alongside a non-zero code.
func (p *Parser) Run(argv []string) (int, error) {
	if p.Out == nil {
		p.Out = os.Stdout
	}
	if p.Err == nil {
		p.Err = os.Stderr
	}
	if argv == nil {
		argv = os.Args[1:]
	}
	if p.Prog == "" {
		p.Prog = filepath.Base(os.Args[0])
	}

	if common.ArgsIndexOf(argv, "--bash-completion-script") >= 0 {
		p.completionScript()
		return 0, nil
	}
	if i := common.ArgsIndexOf(argv, "--bash-completion"); i >= 0 {
		p.completion(argv[i+1:])
		return 0, nil
	}

	return p.dispatch(p.root, p.Prog, argv)
}

// dispatch parses one tree level: parent options first, then the selector
// token, then recursion into a child node or invocation of a leaf command.
func (p *Parser) dispatch(n *node, progPath string, args []string) (int, error) {
	fs := pflag.NewFlagSet(progPath, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	// Stop at the first non-flag token so group options never leak past
	// the command selector.
	fs.SetInterspersed(false)
	help := fs.BoolP("help", "h", false, "Show this help message and exit")
	var version *bool
	if n == p.root && p.Version != "" {
		version = fs.Bool("version", false, "Show version information and exit")
	}
	for _, bo := range n.globals {
		addFlag(fs, bo.opt)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(p.Err, "Usage: %s <command> [-h]\n", progPath)
		fmt.Fprintln(p.Err, errors.NewUsage(progPath, "%v", err))
		return 2, nil
	}
	if *help {
		fmt.Fprint(p.Out, display.BuildUsage(p.groupHelp(n, progPath)))
		return 0, nil
	}
	if version != nil && *version {
		fmt.Fprintln(p.Out, display.BuildVersion(p.Prog, p.Version))
		return 0, nil
	}

	for _, bo := range n.globals {
		val, err := flagValue(fs, bo.opt)
		if err != nil {
			fmt.Fprintln(p.Err, errors.NewUsage(progPath, "%v", err))
			return 2, nil
		}
		field := reflect.ValueOf(bo.group.impl).Elem().FieldByName(common.FieldName(bo.opt.name))
		field.Set(reflect.ValueOf(val))
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprint(p.Err, display.BuildUsage(p.groupHelp(n, progPath)))
		return 1, nil
	}

	sel := rest[0]
	if len(n.children) > 0 {
		for _, child := range n.children {
			if child.name == sel {
				return p.dispatch(child, progPath+" "+sel, rest[1:])
			}
		}
		return p.unknown(n, progPath, sel), nil
	}
	for _, spec := range n.cmds {
		if spec.Name == sel {
			return p.invoke(spec, rest[1:])
		}
	}
	return p.unknown(n, progPath, sel), nil
}

// unknown reports an unrecognized selector: the node's usage block, plus a
// suggestion when a registered name is a close match.
func (p *Parser) unknown(n *node, progPath, sel string) int {
	fmt.Fprint(p.Err, display.BuildUsage(p.groupHelp(n, progPath)))
	if s := closestMatch(sel, n.selectable()); s != "" {
		fmt.Fprintln(p.Err, errors.NewUnknownCommand(sel, s))
	}
	return 1
}

// invoke parses the remaining tokens with the command's synthesized flag
// set, binds positionals and flag values to the method parameters, runs the
// group's PreCommand hook and finally the method itself.
func (p *Parser) invoke(spec *CommandSpec, args []string) (int, error) {
	fs := pflag.NewFlagSet(spec.Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	help := fs.BoolP("help", "h", false, "Show this help message and exit")
	for _, o := range spec.flagged() {
		addFlag(fs, o)
	}

	if err := fs.Parse(args); err != nil {
		return p.usageError(spec, err), nil
	}
	if *help {
		fmt.Fprint(p.Out, display.BuildCommandHelp(commandModel(spec), display.Width(p.Out)))
		return 0, nil
	}

	positionals := fs.Args()
	posOpts := spec.positionals()
	if len(positionals) < len(posOpts) {
		var missing []string
		for _, o := range posOpts[len(positionals):] {
			missing = append(missing, o.name)
		}
		return p.usageError(spec, fmt.Errorf(
			"the following arguments are required: %s", strings.Join(missing, ", "))), nil
	}
	if len(positionals) > len(posOpts) {
		return p.usageError(spec, fmt.Errorf(
			"unrecognized arguments: %s", strings.Join(positionals[len(posOpts):], " "))), nil
	}

	in := make([]reflect.Value, 0, len(spec.opts))
	next := 0
	for _, o := range spec.opts {
		var val any
		var err error
		if o.positional {
			val, err = coerce(positionals[next], o)
			next++
		} else {
			val, err = flagValue(fs, o)
		}
		if err != nil {
			return p.usageError(spec, err), nil
		}
		in = append(in, reflect.ValueOf(val))
	}

	if pc, ok := spec.group.impl.(PreCommander); ok {
		if err := pc.PreCommand(); err != nil {
			return 1, err
		}
	}
	return spec.call(in)
}

// usageError reports a leaf parse failure: usage line plus message on the
// error stream, exit code 2. The command method never runs.
func (p *Parser) usageError(spec *CommandSpec, err error) int {
	fmt.Fprintln(p.Err, display.CommandUsage(commandModel(spec)))
	fmt.Fprintln(p.Err, errors.NewUsage(spec.Name, "%v", err))
	return 2
}

func (p *Parser) groupHelp(n *node, progPath string) display.Group {
	return display.Group{Prog: progPath, Desc: n.desc, Commands: n.selectable()}
}

// commandModel flattens a CommandSpec into the display view used for its
// usage line and help tables. Optional flags come first in the usage line,
// positionals last, matching the declaration order within each class.
func commandModel(spec *CommandSpec) display.Command {
	c := display.Command{Name: spec.Name, Desc: spec.Help}
	c.Usage = append(c.Usage, "[-h]")
	c.Options = append(c.Options, display.Row{Term: "-h, --help", Help: "Show this help message and exit"})
	for _, o := range spec.flagged() {
		term := "--" + o.long
		if o.short != "" {
			term = "-" + o.short + ", --" + o.long
		}
		tok := "--" + o.long
		if o.short != "" {
			tok = "-" + o.short
		}
		if o.takesValue() {
			term += " " + o.placeholder()
			tok += " " + o.placeholder()
		}
		c.Usage = append(c.Usage, "["+tok+"]")
		c.Options = append(c.Options, display.Row{Term: term, Help: o.help})
	}
	for _, o := range spec.positionals() {
		c.Usage = append(c.Usage, o.name)
		c.Arguments = append(c.Arguments, display.Row{Term: o.name, Help: o.help})
	}
	return c
}

// addFlag synthesizes one pflag flag for the option. Valueless actions are
// registered as bools or counters; their effective value is resolved by
// flagValue after parsing.
func addFlag(fs *pflag.FlagSet, o *Option) {
	switch o.action {
	case actStoreTrue, actStoreFalse, actStoreConst:
		fs.BoolP(o.long, o.short, false, o.help)
	case actAppend:
		def, _ := o.defaultValue().([]string)
		fs.StringArrayP(o.long, o.short, def, o.help)
	case actCount:
		fs.CountP(o.long, o.short, o.help)
	default:
		switch o.kind {
		case Int:
			fs.IntP(o.long, o.short, o.defaultValue().(int), o.help)
		case Float:
			fs.Float64P(o.long, o.short, o.defaultValue().(float64), o.help)
		case Bool:
			fs.BoolP(o.long, o.short, o.defaultValue().(bool), o.help)
		case Strings:
			def, _ := o.defaultValue().([]string)
			fs.StringArrayP(o.long, o.short, def, o.help)
		default:
			fs.StringP(o.long, o.short, o.defaultValue().(string), o.help)
		}
	}
}

// flagValue extracts the typed value for an option from a parsed flag set,
// applying action semantics: store_const substitutes its constant, and
// store_false defaults to true when the flag is absent.
func flagValue(fs *pflag.FlagSet, o *Option) (any, error) {
	switch o.action {
	case actStoreTrue:
		if fs.Changed(o.long) {
			return true, nil
		}
		return o.defaultValue(), nil
	case actStoreFalse:
		if fs.Changed(o.long) {
			return false, nil
		}
		if o.def != nil {
			return o.def, nil
		}
		return true, nil
	case actStoreConst:
		if fs.Changed(o.long) {
			return o.constVal, nil
		}
		return o.defaultValue(), nil
	case actCount:
		n, err := fs.GetCount(o.long)
		if err != nil {
			return nil, err
		}
		if n == 0 && o.def != nil {
			return o.def, nil
		}
		return n, nil
	case actAppend:
		return fs.GetStringArray(o.long)
	}
	switch o.kind {
	case Int:
		return fs.GetInt(o.long)
	case Float:
		return fs.GetFloat64(o.long)
	case Bool:
		return fs.GetBool(o.long)
	case Strings:
		return fs.GetStringArray(o.long)
	default:
		return fs.GetString(o.long)
	}
}

// coerce converts a positional token to the option's declared kind.
func coerce(s string, o *Option) (any, error) {
	switch o.kind {
	case Int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %s: invalid int value: %q", o.name, s)
		}
		return v, nil
	case Float:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %s: invalid float value: %q", o.name, s)
		}
		return v, nil
	case Bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("argument %s: invalid bool value: %q", o.name, s)
		}
		return v, nil
	default:
		return s, nil
	}
}
