package core

import (
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
)

type ticketCommands struct {
	Commands `name:"tickets" desc:"Ticket management"`

	Debug    bool
	preCalls int
	got      string
}

func (c *ticketCommands) PreCommand() error {
	c.preCalls++
	return nil
}

func (c *ticketCommands) Get(tktNum string) int {
	c.got = tktNum
	return 0
}

func (c *ticketCommands) Close(tktNum string) int { return 0 }

func newTicketCommands() *ticketCommands {
	c := &ticketCommands{}
	Register(c,
		Global(Opt("-d", "--debug").StoreTrue().Help("Print debug output")),
		Cmd("Get", Opt("tkt-num").Help("Ticket number")).Help("Fetch a ticket"),
		Cmd("Close", Opt("tkt-num").Help("Ticket number")).Help("Close a ticket"),
	)
	return c
}

type queueCommands struct {
	Commands `name:"queues" desc:"Queue management"`
	listed   int
}

func (c *queueCommands) List() int {
	c.listed++
	return 0
}

func newQueueCommands() *queueCommands {
	c := &queueCommands{}
	Register(c, NoArgs("List").Help("List queues"))
	return c
}

func TestNested_NoGroupSelected(t *testing.T) {
	p, _, errOut := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{})
	vital.Nil(t, err)
	assert.Equal(t, code, 1)

	want := "Usage: prog <command> [-h]\n" +
		"\n" +
		"Test Application\n" +
		"\n" +
		"Available Commands:\n" +
		"   tickets\n" +
		"   queues\n"
	assert.Equal(t, errOut.String(), want)
}

func TestNested_GroupWithoutCommand(t *testing.T) {
	p, _, errOut := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{"tickets"})
	vital.Nil(t, err)
	assert.Equal(t, code, 1)

	want := "Usage: prog tickets <command> [-h]\n" +
		"\n" +
		"Ticket management\n" +
		"\n" +
		"Available Commands:\n" +
		"   get\n" +
		"   close\n"
	assert.Equal(t, errOut.String(), want)
}

func TestNested_DispatchRunsPreCommandOnce(t *testing.T) {
	tickets := newTicketCommands()
	p, _, _ := newTestParser(tickets, newQueueCommands())

	code, err := p.Run([]string{"tickets", "get", "42"})
	vital.Nil(t, err)
	assert.Equal(t, code, 0)
	assert.Equal(t, tickets.preCalls, 1)
	assert.Equal(t, tickets.got, "42")
}

func TestNested_GroupLevelFlag(t *testing.T) {
	tickets := newTicketCommands()
	p, _, _ := newTestParser(tickets, newQueueCommands())

	code, err := p.Run([]string{"tickets", "--debug", "get", "42"})
	vital.Nil(t, err)
	assert.Equal(t, code, 0)
	assert.True(t, tickets.Debug)
}

func TestNested_SecondGroupDispatch(t *testing.T) {
	queues := newQueueCommands()
	p, _, _ := newTestParser(newTicketCommands(), queues)

	code, err := p.Run([]string{"queues", "list"})
	vital.Nil(t, err)
	assert.Equal(t, code, 0)
	assert.Equal(t, queues.listed, 1)
}

func TestNested_UnknownGroup(t *testing.T) {
	p, _, errOut := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{"tckets"})
	vital.Nil(t, err)
	assert.Equal(t, code, 1)
	assert.StringContains(t, errOut.String(), "   tickets")
	assert.StringContains(t, errOut.String(), `did you mean "tickets"?`)
}

func TestNested_UnknownCommandInGroup(t *testing.T) {
	p, _, errOut := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{"tickets", "gte"})
	vital.Nil(t, err)
	assert.Equal(t, code, 1)
	assert.StringContains(t, errOut.String(), "Usage: prog tickets <command> [-h]")
	assert.StringContains(t, errOut.String(), `did you mean "get"?`)
}

func TestNested_GroupHelpFlag(t *testing.T) {
	p, out, _ := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{"tickets", "-h"})
	vital.Nil(t, err)
	assert.Equal(t, code, 0)
	assert.StringContains(t, out.String(), "Usage: prog tickets <command> [-h]")
	assert.StringContains(t, out.String(), "Ticket management")
}

func TestNested_MixedGroupsRejected(t *testing.T) {
	configPanics(t, func() {
		New([]Group{newTicketCommands(), newGreetCommands()}, "")
	})
}

func TestNested_DuplicateGroupNamesRejected(t *testing.T) {
	configPanics(t, func() {
		New([]Group{newTicketCommands(), newTicketCommands()}, "")
	})
}

func TestCompletion_TopLevel(t *testing.T) {
	p, out, _ := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{"--bash-completion", "prog"})
	vital.Nil(t, err)
	assert.Equal(t, code, 0)
	assert.Equal(t, out.String(), "tickets queues\n")
}

func TestCompletion_WithinGroup(t *testing.T) {
	p, out, _ := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{"--bash-completion", "prog", "tickets"})
	vital.Nil(t, err)
	assert.Equal(t, code, 0)
	assert.Equal(t, out.String(), "get close\n")
}

func TestCompletion_Script(t *testing.T) {
	p, out, _ := newTestParser(newTicketCommands(), newQueueCommands())

	code, err := p.Run([]string{"--bash-completion-script"})
	vital.Nil(t, err)
	assert.Equal(t, code, 0)
	assert.StringContains(t, out.String(), "complete -F _prog prog")
	assert.StringContains(t, out.String(), "--bash-completion $COMP_LINE")
}
