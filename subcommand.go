package subcommand

import (
	"github.com/thrawn01/subcommand/core"
	"github.com/thrawn01/subcommand/display"
)

// Register builds a group's command registry from its declarations. It is
// called once, from the group's constructor, and panics with a
// ConfigurationError on any structural mistake: an unknown method, a
// duplicate command or option name, a method signature that does not match
// its declared options, or a group-level option without a matching exported
// field. Nothing is deferred to dispatch time.
//
// Usage:
//
//	type TestCommands struct {
//		subcommand.Commands `desc:"Test Application"`
//	}
//
//	func (c *TestCommands) Hello(name string, count int) int {
//		for range count {
//			fmt.Printf("Hello, %s!\n", name)
//		}
//		return 0
//	}
//
//	func NewTestCommands() *TestCommands {
//		c := &TestCommands{}
//		subcommand.Register(c,
//			subcommand.Cmd("Hello",
//				subcommand.Opt("name").Help("Name to greet"),
//				subcommand.Opt("--count").Type(subcommand.Int).Default(1).Help("Print greeting COUNT times"),
//			).Help("Print a greeting"),
//		)
//		return c
//	}
var Register = core.Register

// New builds a Parser from one or more registered groups. When no group
// carries a `name` tag on its embedded Commands field, every command is
// selectable at the top level; when every group is named, each group
// becomes one subcommand node:
//
//	parser := subcommand.New([]subcommand.Group{NewTickets(), NewQueues()}, "Ticket service CLI")
//	code, err := parser.Run(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Exit(code)
//
// Mixing named and unnamed groups is a configuration error and panics.
var New = core.New

// Opt declares one option for a command or group. A leading dash makes it a
// flag; a bare name makes it positional:
//
//	subcommand.Opt("name")                       // positional string
//	subcommand.Opt("--count").Type(subcommand.Int).Default(1)
//	subcommand.Opt("-d", "--debug").StoreTrue()
//	subcommand.Opt("--tag").Append()             // repeatable, binds []string
var Opt = core.Opt

// Cmd declares a method as a command. The options are listed in
// left-to-right parameter order; the i-th option binds to the i-th method
// parameter. The display name is the kebab-case form of the method name, so
// ReturnNonZero is invoked as return-non-zero.
var Cmd = core.Cmd

// NoArgs declares a method as a command taking no options. The marker is
// required: methods without a declaration are invisible to the registry, so
// plain helpers on the group are never mistaken for commands.
var NoArgs = core.NoArgs

// Global declares group-level options, parsed before the command selector
// and assigned to the group's same-named exported fields:
//
//	type Tickets struct {
//		subcommand.Commands `name:"tickets" desc:"Ticket management"`
//		Debug bool // populated from -d/--debug before any command runs
//	}
//
//	subcommand.Register(t,
//		subcommand.Global(subcommand.Opt("-d", "--debug").StoreTrue().Help("Print debug output")),
//		subcommand.Cmd("Get", subcommand.Opt("tkt-num").Help("Ticket number")),
//	)
var Global = core.Global

// BuildUsage renders the usage block for a parser node; exposed for callers
// that embed the dispatch layer and want to print the same text themselves.
var BuildUsage = display.BuildUsage

// BuildVersion renders the --version banner, e.g. "mytool v1.2.3".
var BuildVersion = display.BuildVersion
