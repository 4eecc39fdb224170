package subcommand_test

import (
	"fmt"
	"os"

	"github.com/thrawn01/subcommand"
)

type GreetCommands struct {
	subcommand.Commands `desc:"Test Application"`
}

func (c *GreetCommands) Hello(name string, count int) int {
	for range count {
		fmt.Printf("Hello, %s!\n", name)
	}
	return 0
}

func (c *GreetCommands) Goodbye() int {
	fmt.Println("Goodbye!")
	return 0
}

func NewGreetCommands() *GreetCommands {
	c := &GreetCommands{}
	subcommand.Register(c,
		subcommand.Cmd("Hello",
			subcommand.Opt("name").Help("Name to greet"),
			subcommand.Opt("--count").Type(subcommand.Int).Default(1).Help("Print greeting COUNT times"),
		).Help("Print a greeting"),
		subcommand.NoArgs("Goodbye").Help("Say goodbye"),
	)
	return c
}

func newGreetParser() *subcommand.Parser {
	parser := subcommand.New([]subcommand.Group{NewGreetCommands()}, "Test Application")
	parser.Prog = "greeter"
	parser.Out = os.Stdout
	parser.Err = os.Stdout
	return parser
}

func Example_dispatch() {
	parser := newGreetParser()

	code, _ := parser.Run([]string{"hello", "derrick", "--count", "2"})
	fmt.Println("exit:", code)
	// Output: Hello, derrick!
	// Hello, derrick!
	// exit: 0
}

func Example_usage() {
	parser := newGreetParser()

	code, _ := parser.Run([]string{})
	fmt.Println("exit:", code)
	// Output: Usage: greeter <command> [-h]
	//
	// Test Application
	//
	// Available Commands:
	//    hello
	//    goodbye
	// exit: 1
}

type TicketCommands struct {
	subcommand.Commands `name:"tickets" desc:"Ticket management"`

	Debug bool
}

func (c *TicketCommands) PreCommand() error {
	fmt.Println("connecting to ticket service")
	return nil
}

func (c *TicketCommands) Get(tktNum string) int {
	fmt.Println("fetched ticket", tktNum)
	return 0
}

func NewTicketCommands() *TicketCommands {
	c := &TicketCommands{}
	subcommand.Register(c,
		subcommand.Global(subcommand.Opt("-d", "--debug").StoreTrue().Help("Print debug output")),
		subcommand.Cmd("Get", subcommand.Opt("tkt-num").Help("Ticket number")).Help("Fetch a ticket"),
	)
	return c
}

func Example_nested() {
	parser := subcommand.New([]subcommand.Group{NewTicketCommands()}, "Ticket service CLI")
	parser.Prog = "tix"
	parser.Out = os.Stdout
	parser.Err = os.Stdout

	code, _ := parser.Run([]string{"tickets", "get", "42"})
	fmt.Println("exit:", code)
	// Output: connecting to ticket service
	// fetched ticket 42
	// exit: 0
}
