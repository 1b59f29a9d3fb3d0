package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetadataFormIsStable(t *testing.T) {
	m := &Metadata{
		ProvingChecksum:   "aa",
		ProvingSize:       3,
		VerifyingChecksum: "bb",
		VerifyingSize:     3,
		CircuitID:         "cc",
	}
	data, err := m.MarshalPretty()
	require.NoError(t, err)
	require.Equal(t, `{
  "proving_checksum": "aa",
  "proving_size": 3,
  "verifying_checksum": "bb",
  "verifying_size": 3,
  "circuit_id": "cc"
}`, string(data))
}

func TestUniversalMetadataOmitsCircuitFields(t *testing.T) {
	m := &Metadata{SRSChecksum: "dd", SRSSize: 42}
	data, err := m.MarshalPretty()
	require.NoError(t, err)
	require.Equal(t, `{
  "srs_checksum": "dd",
  "srs_size": 42
}`, string(data))
}

func TestWriteMetadataMatchesMarshaledForm(t *testing.T) {
	m := &Metadata{
		ProvingChecksum:   "aa",
		ProvingSize:       1,
		VerifyingChecksum: "bb",
		VerifyingSize:     2,
	}
	want, err := m.MarshalPretty()
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "inner.metadata")
	require.NoError(t, WriteMetadata(name, m))

	got, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, want, got, "persisted manifest must be byte-identical to the printed one")
}
