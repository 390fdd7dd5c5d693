// AngelaMos | 2026
// main_test.go

package main

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestConfigFlagReachesEverySubcommand(t *testing.T) {
	c := qt.New(t)

	// One root for every case: the flag binds to the first command tree
	// that reads it.
	root := NewRootCommand()

	tests := []struct {
		name    string
		args    []string
		command string
		want    string
	}{
		{"root", []string{"--config", "root.yaml"}, "socialdash", "root.yaml"},
		{"serve", []string{"serve", "--config", "serve.yaml"}, "serve", "serve.yaml"},
		{"migrate", []string{"migrate", "--config", "migrate.yaml"}, "migrate", "migrate.yaml"},
		{"seed", []string{"seed", "--config=seed.yaml"}, "seed", "seed.yaml"},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			cmd, rest, err := root.Find(tt.args)
			c.Assert(err, qt.IsNil)
			c.Assert(cmd.Name(), qt.Equals, tt.command)

			c.Assert(cmd.ParseFlags(rest), qt.IsNil)
			c.Assert(configPath(), qt.Equals, tt.want)
		})
	}
}

func TestConfigFlagDefaultsToEmpty(t *testing.T) {
	c := qt.New(t)

	root := NewRootCommand()
	c.Assert(root.PersistentFlags().Lookup(configFlag), qt.Not(qt.IsNil))
	c.Assert(root.PersistentFlags().Lookup(configFlag).DefValue, qt.Equals, "")

	for _, sub := range root.Commands() {
		c.Assert(sub.LocalNonPersistentFlags().Lookup(configFlag), qt.IsNil,
			qt.Commentf("%s registers its own --config", sub.Name()))
	}
}
