package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the bnk tool, in the order they
// are registered.
var Commands = []subcommands.Command{
	&sessionCmd{},
	&demoCmd{},
	&topicCmd{},
}
