// Package artifact computes content checksums for parameter artifacts and
// persists them under the pipeline's two naming policies: a plain local name
// and a version-qualified distribution name derived from a checksum fragment.
package artifact

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// checksumPrefixLen is the number of hex characters of the checksum used to
// qualify a distribution filename.
const checksumPrefixLen = 7

// Checksum returns the hex-encoded SHA-256 digest of b. Downstream consumers
// pin artifacts by this value, so it must be a pure function of the bytes.
func Checksum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// VersionedFilename returns name qualified by the first 7 hex characters of
// checksum. A checksum shorter than 7 characters leaves the name unqualified.
func VersionedFilename(name, checksum string) string {
	if len(checksum) < checksumPrefixLen {
		return name
	}
	return name + "." + checksum[:checksumPrefixLen]
}

// WriteLocal writes b to a file at name, creating or truncating it. A single
// attempt is made; any I/O error is surfaced to the caller unmodified.
func WriteLocal(name string, b []byte) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteRemote writes b under the distribution name derived from checksum.
func WriteRemote(name, checksum string, b []byte) error {
	return WriteLocal(VersionedFilename(name, checksum), b)
}
