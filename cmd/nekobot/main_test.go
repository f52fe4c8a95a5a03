package main

import (
	"bytes"
	"testing"

	"nekobot/internal/version"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	var banner = "NekoBot, version " + version.Get() + "\n\n"

	tcs := map[string]struct {
		args []string
		want string
	}{
		"version":   {args: []string{"version"}, want: version.Get() + "\n"},
		"--version": {args: []string{"--version"}, want: version.Get() + "\n"},
		"no args":   {want: banner + "Usage: nekobot [version|serve|help]\n"},
		"unknown":   {args: []string{"bogus"}, want: banner + "Usage: nekobot [version|serve|help]\n"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			run(tc.args, &out)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	run([]string{"help"}, &out)
	assert.Contains(t, out.String(), "BIND_ADDR")
	assert.Contains(t, out.String(), "TEMPLATE_PATH")
}
