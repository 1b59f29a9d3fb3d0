package artifact

import (
	"encoding/json"
	"fmt"
)

// Metadata describes a generated parameter set. Per-circuit setups fill the
// proving/verifying fields (and, when the circuit carries one, CircuitID);
// the universal setup fills the srs fields instead. Written once per
// invocation and never mutated.
type Metadata struct {
	ProvingChecksum   string `json:"proving_checksum,omitempty"`
	ProvingSize       int    `json:"proving_size,omitempty"`
	VerifyingChecksum string `json:"verifying_checksum,omitempty"`
	VerifyingSize     int    `json:"verifying_size,omitempty"`
	CircuitID         string `json:"circuit_id,omitempty"`
	SRSChecksum       string `json:"srs_checksum,omitempty"`
	SRSSize           int    `json:"srs_size,omitempty"`
}

// MarshalPretty returns the manifest in its operator-facing form. The bytes
// printed to stdout and the bytes persisted to the metadata file both come
// from here, so the two are always identical.
func (m *Metadata) MarshalPretty() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling metadata: %v", err)
	}
	return data, nil
}

// WriteMetadata writes the manifest to a file at name with the same
// create/truncate/write-full discipline as the key artifacts.
func WriteMetadata(name string, m *Metadata) error {
	data, err := m.MarshalPretty()
	if err != nil {
		return err
	}
	return WriteLocal(name, data)
}
