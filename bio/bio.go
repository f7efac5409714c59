// Package bio provides nucleotide and amino acid alphabets, sequence
// containers, strand operations and FASTA input/output.
package bio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences, e.g. FASTA file records.
type Sequences []Sequence

// Nucleic converts the sequence into nucleotides. Unknown characters
// are reported to h (if not nil).
func (seq Sequence) Nucleic(h InvalidCodeHandler) NucleicSequence {
	return ParseNucleicWith(seq.Sequence, h)
}

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: line[1:]}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	return seqs, scanner.Err()
}

// gzipMagic is the first two bytes of a gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// ReadFasta parses FASTA sequences from a reader which may be gzip
// compressed.
func ReadFasta(rd io.Reader) (Sequences, error) {
	br := bufio.NewReader(rd)
	head, err := br.Peek(2)
	if err == nil && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		zr, err := pgzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return ParseFasta(zr)
	}
	return ParseFasta(br)
}

// OpenFasta reads a FASTA file, plain or gzip compressed.
func OpenFasta(fn string) (Sequences, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFasta(f)
}

// Wrap inputs a string and wraps it so string length is n characters
// or less. Non-positive n means no wrapping.
func Wrap(seq string, n int) (s string) {
	if n <= 0 {
		n = len(seq)
		if n == 0 {
			return
		}
	}
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	if len(s) == 0 {
		return
	}
	return s[:len(s)-1]
}
