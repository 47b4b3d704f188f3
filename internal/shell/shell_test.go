package shell_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/envy/internal/shell"
)

func testEnv() map[string]string {
	return map[string]string{
		"DATABASE_URL": "postgres://localhost/test",
		"DEBUG":        "1",
	}
}

func TestExportStatements_Bash(t *testing.T) {
	out, err := shell.ExportStatements("bash", testEnv())
	require.NoError(t, err)
	assert.Contains(t, out, `export DATABASE_URL="postgres://localhost/test"`)
	assert.Contains(t, out, `export DEBUG="1"`)
}

func TestExportStatements_Zsh(t *testing.T) {
	out, err := shell.ExportStatements("zsh", testEnv())
	require.NoError(t, err)
	assert.Contains(t, out, `export DEBUG="1"`)
}

func TestExportStatements_Fish(t *testing.T) {
	out, err := shell.ExportStatements("fish", testEnv())
	require.NoError(t, err)
	assert.Contains(t, out, `set -gx DATABASE_URL "postgres://localhost/test"`)
	assert.Contains(t, out, `set -gx DEBUG "1"`)
}

func TestExportStatements_SortedOutput(t *testing.T) {
	env := map[string]string{"Z": "1", "A": "2", "M": "3"}

	out, err := shell.ExportStatements("bash", env)
	require.NoError(t, err)

	// 출력은 키 기준 정렬로 결정적이어야 한다
	assert.Equal(t, "export A=\"2\"\nexport M=\"3\"\nexport Z=\"1\"\n", out)
}

func TestExportStatements_JSON(t *testing.T) {
	out, err := shell.ExportStatements("json", testEnv())
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, testEnv(), decoded)
}

func TestExportStatements_JSONEmpty(t *testing.T) {
	out, err := shell.ExportStatements("json", nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
}

func TestExportStatements_EmptyEnv(t *testing.T) {
	out, err := shell.ExportStatements("bash", nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExportStatements_UnsupportedShell(t *testing.T) {
	_, err := shell.ExportStatements("powershell", testEnv())
	assert.ErrorIs(t, err, shell.ErrUnsupportedShell)
}

func TestHookSnippet_Bash(t *testing.T) {
	snippet, err := shell.HookSnippet("bash", "/usr/local/bin/envy")
	require.NoError(t, err)
	assert.Contains(t, snippet, "_envy_hook")
	assert.Contains(t, snippet, "PROMPT_COMMAND")
	assert.Contains(t, snippet, "export bash")
	assert.Contains(t, snippet, "/usr/local/bin/envy")
}

func TestHookSnippet_Zsh(t *testing.T) {
	snippet, err := shell.HookSnippet("zsh", "/usr/local/bin/envy")
	require.NoError(t, err)
	assert.Contains(t, snippet, "precmd_functions")
	assert.Contains(t, snippet, "export zsh")
}

func TestHookSnippet_Fish(t *testing.T) {
	snippet, err := shell.HookSnippet("fish", "/usr/local/bin/envy")
	require.NoError(t, err)
	assert.Contains(t, snippet, "--on-event fish_prompt")
	assert.Contains(t, snippet, "export fish")
}

func TestHookSnippet_UnsupportedShell(t *testing.T) {
	_, err := shell.HookSnippet("tcsh", "/usr/local/bin/envy")
	assert.ErrorIs(t, err, shell.ErrUnsupportedShell)
}
