package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ivcalc", cmd.Use)
	assert.Contains(t, cmd.Long, "[nai]")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"eval", "batch", "ops"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "float64", format.DefValue)

	decorated := cmd.PersistentFlags().Lookup("decorated")
	require.NotNil(t, decorated)
	assert.Equal(t, "true", decorated.DefValue)

	color := cmd.PersistentFlags().Lookup("color")
	require.NotNil(t, color)
	assert.Equal(t, "false", color.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "", "--format", "float16", "eval", "add", "[1,2]", "[3,4]")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "float16")
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
	assert.ErrorIs(t, WrapExitError(ExitFailure, "x", assert.AnError), assert.AnError)
	assert.Equal(t, "msg", NewExitError(ExitFailure, "msg").Error())
}

func TestOps(t *testing.T) {
	out, err := execute(t, "", "ops")
	require.NoError(t, err)
	names := strings.Fields(out)
	assert.Equal(t, OperationNames(), names)
	assert.Contains(t, names, "mul_rev_to_pair")
	assert.Contains(t, names, "overlap")
	assert.IsNonDecreasing(t, names)
}
