package core

import (
	"fmt"
	"strings"
)

// completion prints the completion candidates for the current command line.
// The words after the --bash-completion token are the COMP_LINE words: the
// program name, then any selector typed so far. When a named group has
// already been selected its commands are offered; otherwise the top-level
// names are.
func (p *Parser) completion(words []string) {
	n := p.root
	if len(words) > 1 {
		for _, child := range p.root.children {
			if child.name == words[1] {
				n = child
				break
			}
		}
	}
	fmt.Fprintln(p.Out, strings.Join(n.selectable(), " "))
}

// completionScript prints a bash completion script for the program, meant
// to be redirected into /etc/bash_completion.d/.
func (p *Parser) completionScript() {
	prog := p.Prog
	fmt.Fprintf(p.Out, "_%s() {\n"+
		"  local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n"+
		"  local list=$(%s --bash-completion $COMP_LINE)\n"+
		"  COMPREPLY=($(compgen -W \"$list\" $cur))\n"+
		"}\n"+
		"complete -F _%s %s\n", prog, prog, prog, prog)
}
