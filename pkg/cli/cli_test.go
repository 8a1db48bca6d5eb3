package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staylorx/id-registry/pkg/registry"
)

// run executes idreg with the given arguments against a fresh command
// tree, returning combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRegisterCheckUnregister(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ids.json")

	out, err := run(t, "register", "isbn:123", "issn:456", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Registered 2 identifier(s)")

	out, err = run(t, "check", "isbn:123", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "isbn:123 is registered")

	out, err = run(t, "unregister", "isbn:123", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Unregistered 1 identifier(s)")

	out, err = run(t, "check", "isbn:123", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "isbn:123 is not registered")
}

func TestRegisterDuplicateFails(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ids.json")

	_, err := run(t, "register", "isbn:123", "--store", storePath)
	require.NoError(t, err)

	_, err = run(t, "register", "isbn:123", "--store", storePath)
	require.ErrorIs(t, err, registry.ErrDuplicate)
}

func TestRegisterRejectsMalformedArgument(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ids.json")
	_, err := run(t, "register", "no-separator", "--store", storePath)
	require.Error(t, err)
}

func TestList(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ids.json")

	_, err := run(t, "register", "isbn:a", "isbn:b", "issn:x", "--store", storePath)
	require.NoError(t, err)

	out, err := run(t, "list", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "isbn (2)")
	assert.Contains(t, out, "issn (1)")

	out, err = run(t, "list", "isbn", "--store", storePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, strings.Fields(out))

	out, err = run(t, "list", "isbn", "--json", "--store", storePath)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, out)
}

func TestGenerate(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ids.json")

	out, err := run(t, "generate", "ticket", "--kind", "auto-increment", "-n", "3", "--store", storePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, strings.Fields(out))

	// counters persist in the store file
	out, err = run(t, "generate", "ticket", "--kind", "auto-increment", "--store", storePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, strings.Fields(out))

	out, err = run(t, "generate", "session", "--store", storePath)
	require.NoError(t, err)
	uuid := strings.TrimSpace(out)
	assert.Len(t, uuid, 36)

	out, err = run(t, "check", "session:"+uuid, "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "is registered")
}

func TestClear(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "ids.json")

	_, err := run(t, "register", "isbn:123", "--store", storePath)
	require.NoError(t, err)

	out, err := run(t, "clear", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Store cleared")

	out, err = run(t, "check", "isbn:123", "--store", storePath)
	require.NoError(t, err)
	assert.Contains(t, out, "is not registered")
}

func TestConfigFileWiresValidators(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "ids.json")
	configPath := filepath.Join(dir, "idreg.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"store_path: "+storePath+"\nvalidators:\n  isbn: isbn13\n"), 0600))

	// valid ISBN-13 passes the configured validator
	_, err := run(t, "register", "isbn:9780306406157", "--config", configPath)
	require.NoError(t, err)

	// bad checksum is rejected
	_, err = run(t, "register", "isbn:9780306406156", "--config", configPath)
	require.ErrorIs(t, err, registry.ErrValidation)
}

func TestUnknownValidatorInConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "idreg.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"store_path: "+filepath.Join(dir, "ids.json")+"\nvalidators:\n  isbn: ean\n"), 0600))

	_, err := run(t, "register", "isbn:1", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown validator")
}
