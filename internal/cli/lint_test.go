package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexlint/internal/cli"
)

func TestLintCommand_FlagDefaults(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	lintCmd, _, err := cmd.Find([]string{"lint"})
	require.NoError(t, err)

	tests := []struct {
		flag string
		want string
	}{
		{flag: "rule-format", want: "name"},
		{flag: "format", want: "text"},
		{flag: "jobs", want: "0"},
		{flag: "strict", want: "false"},
		{flag: "open", want: "false"},
	}

	for _, tt := range tests {
		flag := lintCmd.Flags().Lookup(tt.flag)
		require.NotNil(t, flag, "flag %s should exist", tt.flag)
		assert.Equal(t, tt.want, flag.DefValue, "default of --%s", tt.flag)
	}

	formatFlag := lintCmd.Flags().Lookup("format")
	for _, format := range []string{"text", "json", "sarif", "html"} {
		assert.Contains(t, formatFlag.Usage, format)
	}
}
