package paramgen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"universal":   Universal,
		"inner":       Inner,
		"input":       Input,
		"output":      Output,
		"value_check": ValueCheck,
		"posw":        PoSW,
	}
	for selector, want := range tests {
		kind, err := ParseKind(selector)
		require.NoError(t, err)
		require.Equal(t, want, kind)
		require.Equal(t, selector, kind.String())
	}

	_, err := ParseKind("valuecheck")
	require.Error(t, err)
	_, err = ParseKind("")
	require.Error(t, err)
}

func TestDispatchTooFewTokensIsANoOp(t *testing.T) {
	inTempDir(t)

	require.NoError(t, Dispatch(nil))
	require.NoError(t, Dispatch([]string{"inner"}))

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	require.Empty(t, entries, "a usage run must not produce files")
}

func TestDispatchUnknownKind(t *testing.T) {
	inTempDir(t)
	err := Dispatch([]string{"bogus", "testnet2"})
	require.ErrorContains(t, err, "unknown parameter kind")
}

func TestDispatchUnknownNetwork(t *testing.T) {
	inTempDir(t)
	err := Dispatch([]string{"inner", "bogus"})
	require.ErrorContains(t, err, "unknown network")
}

func TestDispatchUniversalOnTestnet1(t *testing.T) {
	inTempDir(t)
	err := Dispatch([]string{"universal", "testnet1"})
	require.ErrorContains(t, err, "does not support a universal SRS")
}
