package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staylorx/id-registry/pkg/identifier"
	"github.com/staylorx/id-registry/pkg/store"
)

func TestGenerateID_NoGenerator(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.GenerateID("isbn")
	require.ErrorIs(t, err, ErrNoGenerator)

	var ngerr *NoGeneratorError
	require.ErrorAs(t, err, &ngerr)
	assert.Equal(t, "isbn", ngerr.Type)
}

func TestRegisterGenerator_UnknownKind(t *testing.T) {
	reg := newTestRegistry()
	require.Error(t, reg.RegisterGenerator("isbn", GeneratorKind("fancy")))
}

func TestRegisterGenerator_OverwriteAllowed(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.RegisterGenerator("isbn", KindAutoIncrement))
	require.NoError(t, reg.RegisterGenerator("isbn", KindUUID))
}

func TestGenerateID_AutoIncrementSequence(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.RegisterGenerator("ticket", KindAutoIncrement))

	for _, want := range []string{"1", "2", "3"} {
		code, err := reg.GenerateID("ticket")
		require.NoError(t, err)
		assert.Equal(t, want, code)

		registered, err := reg.IsRegistered("ticket", code)
		require.NoError(t, err)
		assert.True(t, registered, "generated id %q should be registered", code)
	}
}

func TestGenerateID_IndependentCountersPerType(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.RegisterGenerator("a", KindAutoIncrement))
	require.NoError(t, reg.RegisterGenerator("b", KindAutoIncrement))

	got := make([]string, 0, 3)
	for _, idType := range []string{"a", "b", "a"} {
		code, err := reg.GenerateID(idType)
		require.NoError(t, err)
		got = append(got, code)
	}
	assert.Equal(t, []string{"1", "1", "2"}, got)
}

func TestGenerateID_AutoIncrementSeedsFromExistingCodes(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.Register(identifier.NewSet(
		identifier.Pair{Type: "ticket", Code: "5"},
		identifier.Pair{Type: "ticket", Code: "not-a-number"},
	)))
	require.NoError(t, reg.RegisterGenerator("ticket", KindAutoIncrement))

	code, err := reg.GenerateID("ticket")
	require.NoError(t, err)
	assert.Equal(t, "6", code)
}

func TestGenerateID_AutoIncrementSkipsCollisions(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.RegisterGenerator("ticket", KindAutoIncrement))

	code, err := reg.GenerateID("ticket")
	require.NoError(t, err)
	assert.Equal(t, "1", code)

	// manually occupy the next value; generation skips past it
	require.NoError(t, reg.Register(identifier.NewSet(
		identifier.Pair{Type: "ticket", Code: "2"},
	)))
	code, err = reg.GenerateID("ticket")
	require.NoError(t, err)
	assert.Equal(t, "3", code)
}

func TestGenerateID_AutoIncrementPersistsAcrossRegistries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.json")

	first := New(store.NewFileStore(path))
	require.NoError(t, first.RegisterGenerator("ticket", KindAutoIncrement))
	for _, want := range []string{"1", "2"} {
		code, err := first.GenerateID("ticket")
		require.NoError(t, err)
		assert.Equal(t, want, code)
	}

	// a fresh registry over a fresh store on the same file continues
	second := New(store.NewFileStore(path))
	require.NoError(t, second.RegisterGenerator("ticket", KindAutoIncrement))
	code, err := second.GenerateID("ticket")
	require.NoError(t, err)
	assert.Equal(t, "3", code)
}

func TestGenerateID_UUID(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.RegisterGenerator("session", KindUUID))

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code, err := reg.GenerateID("session")
		require.NoError(t, err)
		require.NotEmpty(t, code)

		_, dup := seen[code]
		require.False(t, dup, "duplicate generated uuid %q", code)
		seen[code] = struct{}{}

		registered, err := reg.IsRegistered("session", code)
		require.NoError(t, err)
		require.True(t, registered)
	}
}

func TestGenerateID_UUIDFormat(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.RegisterGenerator("session", KindUUID))

	code, err := reg.GenerateID("session")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, code)
}
