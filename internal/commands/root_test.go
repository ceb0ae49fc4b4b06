package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestRegisterAll(t *testing.T) {
	flags := &Flags{}
	root := RegisterAll(&cli.Command{Name: AppName, Flags: GlobalFlags(flags)}, flags)

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"play", "tui", "checkin", "config"}, names)
	assert.Len(t, root.Flags, 3)
}
