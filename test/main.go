package main

import (
	"fmt"
	"os"

	"github.com/thrawn01/subcommand"
)

type TicketCommands struct {
	subcommand.Commands `name:"tickets" desc:"Create, fetch and close tickets"`

	Debug bool
}

func (c *TicketCommands) PreCommand() error {
	if c.Debug {
		fmt.Fprintln(os.Stderr, "debug: connecting to ticket service")
	}
	return nil
}

func (c *TicketCommands) Get(tktNum string) int {
	fmt.Printf("ticket %s: open\n", tktNum)
	return 0
}

func (c *TicketCommands) Create(subject string, tags []string) int {
	fmt.Printf("created ticket %q tags=%v\n", subject, tags)
	return 0
}

func NewTicketCommands() *TicketCommands {
	c := &TicketCommands{}
	subcommand.Register(c,
		subcommand.Global(subcommand.Opt("-d", "--debug").StoreTrue().Help("Print debug output")),
		subcommand.Cmd("Get",
			subcommand.Opt("tkt-num").Help("Ticket number"),
		).Help("Fetch a ticket"),
		subcommand.Cmd("Create",
			subcommand.Opt("subject").Help("Ticket subject"),
			subcommand.Opt("--tag").Append().Help("Attach a tag, may be repeated"),
		).Help("Create a new ticket"),
	)
	return c
}

type QueueCommands struct {
	subcommand.Commands `name:"queues" desc:"Inspect ticket queues"`
}

func (c *QueueCommands) List() int {
	fmt.Println("support, billing, ops")
	return 0
}

func NewQueueCommands() *QueueCommands {
	c := &QueueCommands{}
	subcommand.Register(c, subcommand.NoArgs("List").Help("List known queues"))
	return c
}

func main() {
	parser := subcommand.New(
		[]subcommand.Group{NewTicketCommands(), NewQueueCommands()},
		"Example ticket service CLI",
	)
	parser.Version = "0.1.0"

	code, err := parser.Run(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	os.Exit(code)
}
