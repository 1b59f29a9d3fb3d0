// Command ptauimport converts a powers-of-tau ceremony file into a universal
// SRS artifact, running the ceremony output through the same checksum,
// metadata, and versioned-naming pipeline as a freshly generated reference
// string. This is how testnet1, which has no standalone universal setup,
// obtains its universal parameters from audited ceremony transcripts.
//
// Usage: ptauimport <ceremony.ptau>
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	gp "github.com/mdehoog/gnark-ptau"

	"github.com/dpcnet/paramgen/artifact"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ptauimport <ceremony.ptau>")
		return
	}
	filename := os.Args[1]

	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("error opening %s: %v", filename, err)
	}
	defer file.Close()

	srs, err := gp.ToSRS(file)
	if err != nil {
		log.Fatalf("error converting %s to SRS: %v", filename, err)
	}

	var buf bytes.Buffer
	if _, err := srs.WriteTo(&buf); err != nil {
		log.Fatalf("error serializing SRS: %v", err)
	}
	srsBytes := buf.Bytes()

	srsChecksum := artifact.Checksum(srsBytes)
	meta := &artifact.Metadata{
		SRSChecksum: srsChecksum,
		SRSSize:     len(srsBytes),
	}
	data, err := meta.MarshalPretty()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	if err := artifact.WriteMetadata("universal.metadata", meta); err != nil {
		log.Fatalf("error writing metadata: %v", err)
	}
	if err := artifact.WriteRemote("universal.srs", srsChecksum, srsBytes); err != nil {
		log.Fatalf("error writing SRS artifact: %v", err)
	}
}
