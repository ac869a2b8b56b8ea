package igg

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// readFasta reads the first protein record from a FASTA file. Additional
// records are ignored with a warning, matching the one-target-per-run
// model of the annotate command.
func readFasta(path string) (name, seq string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to open FASTA file %s: %v", path, err)
	}
	defer f.Close()

	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(f, template))

	count := 0
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		if count == 0 {
			name = s.Name()
			seq = s.Seq.String()
		}
		count++
	}
	if err := sc.Error(); err != nil {
		return "", "", fmt.Errorf("failed to parse FASTA file %s: %v", path, err)
	}
	if count == 0 {
		return "", "", fmt.Errorf("no sequences in FASTA file %s", path)
	}
	if count > 1 {
		stderr.Printf("warning: %d sequences were in %s. Only annotating the first: %s\n", count, path, name)
	}

	return name, seq, nil
}
