package subcommand

import "github.com/thrawn01/subcommand/core"

// Commands is the embeddable base that turns a struct into a command group.
// Group metadata is declared as tags on the embedded field: a `name` tag
// makes the group one node of a nested subcommand tree, and `desc` provides
// the description shown in its usage block. A group without a `name` tag
// contributes its commands to the flat top-level command set.
//
//	type Tickets struct {
//		subcommand.Commands `name:"tickets" desc:"Ticket management"`
//	}
type Commands = core.Commands

// Group is satisfied by any struct pointer embedding Commands. Parser
// construction accepts a slice of Group.
type Group = core.Group

// Parser resolves command-line tokens against the registered groups and
// invokes the selected command. Prog, Version, Out and Err may be set
// before the first Run call.
type Parser = core.Parser

// Option describes one command-line argument: name(s), value type, default,
// help text and action. Options are built with Opt and its fluent setters
// and are immutable once a command has been registered with them.
type Option = core.Option

// CommandSpec bundles one invocable method with its ordered options and
// help text. One spec exists per declared command.
type CommandSpec = core.CommandSpec

// Decl is a single registration declaration: Cmd, NoArgs or Global.
type Decl = core.Decl

// PreCommander is implemented by groups needing setup before any command
// runs. The hook is invoked after option parsing and before the command
// method; a non-nil error aborts dispatch and propagates out of Run.
type PreCommander = core.PreCommander

// Kind selects the value type an option parses into.
type Kind = core.Kind

const (
	String  = core.String
	Int     = core.Int
	Float   = core.Float
	Bool    = core.Bool
	Strings = core.Strings
)
