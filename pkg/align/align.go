// 14 Jul 2026

// Package align holds a multiple sequence alignment in memory. It is
// the structure everything else in this module operates on. Sequences
// arrive from the caller, already parsed. We do no file reading here.
//
// An alignment is rectangular. Every row has the same length and the
// order of rows is part of the contract. Anything that builds a new
// alignment from an old one keeps the rows in the same order.
package align

import (
	"errors"
	"fmt"

	. "github.com/andrew-torda/alnutil/pkg/align/common"
	"github.com/andrew-torda/matrix"
)

// ErrMalformed says the rows do not form a rectangular alignment, or
// there are no rows at all where some are required.
var ErrMalformed = errors.New("malformed alignment")

// Strand is the strand a row came from. We never flip a strand here.
// We only carry it around and write it into derived rows.
type Strand int8

const (
	Fwd      Strand = 1
	Rev      Strand = -1
	NoStrand Strand = 0
)

// Seq is one row of an alignment. start and end are 1-based inclusive
// coordinates into the original, ungapped sequence this row was cut
// from. They are in whatever unit the caller works in (residues for a
// protein alignment, bases for nucleotides).
type Seq struct {
	name   string
	seq    []byte
	start  int
	end    int
	strand Strand
}

// NewSeq builds a row from its parts. The byte slice is used as given,
// not copied.
func NewSeq(name string, s []byte, start, end int, strand Strand) Seq {
	return Seq{name: name, seq: s, start: start, end: end, strand: strand}
}

// Name returns the identifier of a row. It must be unique within an
// alignment if the row is to be projected.
func (s Seq) Name() string { return s.name }

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// Function Len
func (s Seq) Len() int { return len(s.seq) }

func (s Seq) Start() int     { return s.start }
func (s Seq) End() int       { return s.end }
func (s Seq) Strand() Strand { return s.strand }

// SetSeq will replace whatever was the sequence with a new one.
// If the row lives in an alignment, call Clear on the alignment
// afterwards so cached tallies are not stale.
func (s *Seq) SetSeq(t []byte) { s.seq = t }

// Copy returns a deep copy of a row. The original can be changed
// without surprising anybody holding the copy.
func (s Seq) Copy() (t Seq) {
	t = s
	t.seq = make([]byte, len(s.seq))
	copy(t.seq, s.seq)
	return t
}

// String returns a row as "name" then the sequence. Handy when
// printing errors or debugging.
func (s Seq) String() string {
	return fmt.Sprintf(">%s\n%s", s.name, s.seq)
}

// Alignment is an ordered set of rows of the same length, plus some
// cached tallies of which symbols turn up where. The tallies are
// calculated when first asked for.
type Alignment struct {
	seqs     []Seq
	symUsed  [MaxSym]bool  // which symbols are actually used
	mapping  [MaxSym]uint8 // mapping['C'] tells me the index used for C
	revmap   []uint8       // revmap[2] tells me the character in place 2
	counts   *matrix.FMatrix2d
	usedKnwn bool // Do we know how many symbols are used ?
	freqKnwn bool // are counts converted to fractional probabilities ?
}

// New builds an alignment from rows. All rows must have the same
// length and there must be at least one of them.
func New(rows []Seq) (*Alignment, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	iwant := rows[0].Len()
	for i := 1; i < len(rows); i++ {
		if rows[i].Len() != iwant {
			return nil, fmt.Errorf(
				"%w: first row length %d, but row %d (%s) length %d",
				ErrMalformed, iwant, i, rows[i].Name(), rows[i].Len())
		}
	}
	aln := new(Alignment)
	aln.seqs = rows
	return aln, nil
}

// AddSeq appends a fully formed row. If the alignment already has
// rows, the new one must be the same length.
func (aln *Alignment) AddSeq(s Seq) error {
	if len(aln.seqs) > 0 && s.Len() != aln.Len() {
		return fmt.Errorf("%w: alignment length %d, new row (%s) length %d",
			ErrMalformed, aln.Len(), s.Name(), s.Len())
	}
	aln.seqs = append(aln.seqs, s)
	aln.Clear()
	return nil
}

// Len returns the number of columns. All rows have this length.
func (aln *Alignment) Len() int {
	if len(aln.seqs) == 0 {
		return 0
	}
	return aln.seqs[0].Len()
}

// NSeq returns the number of rows
func (aln *Alignment) NSeq() int { return len(aln.seqs) }

// SeqSlc returns the slice of rows, in the order they were added.
func (aln *Alignment) SeqSlc() []Seq { return aln.seqs }

// Copy returns a deep copy of an alignment. Cached tallies are not
// carried over. They will be rebuilt when needed.
func (aln *Alignment) Copy() *Alignment {
	t := new(Alignment)
	t.seqs = make([]Seq, len(aln.seqs))
	for i, s := range aln.seqs {
		t.seqs[i] = s.Copy()
	}
	return t
}

// Clear throws away the cached tallies. Call it after changing a row
// in place.
func (aln *Alignment) Clear() {
	for i := range aln.symUsed {
		aln.symUsed[i] = false
		aln.mapping[i] = 255 // Any old silly number
	}
	aln.revmap = nil
	aln.counts = nil
	aln.usedKnwn = false
	aln.freqKnwn = false
}

// NormalizeGaps returns a copy of the alignment in which every dot has
// been rewritten to the canonical gap character. The input is left
// alone, so callers keep their version with dots if they want it.
// Everything downstream can then test for gaps with an exact match.
func NormalizeGaps(aln *Alignment) *Alignment {
	t := aln.Copy()
	for _, s := range t.seqs {
		b := s.GetSeq()
		for i, c := range b {
			if c == DotChar {
				b[i] = GapChar
			}
		}
	}
	return t
}

// Str2Aln takes some strings and returns them as an alignment.
// sIn is a slice of equal-length strings which are the rows.
// prefix is an optional argument. Rows need names. If prefix is not
// given, rows will be called "s0", "s1", ...
// Each row gets start = 1, end = the number of non-gap characters and
// no strand. It is meant for tests and examples, so it does not
// check lengths. Use New if you want checking.
func Str2Aln(sIn []string, prefix ...string) *Alignment {
	var base string
	aln := new(Alignment)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		n := 0
		for j := 0; j < len(s); j++ {
			if s[j] != GapChar && s[j] != DotChar {
				n++
			}
		}
		f := Seq{name: fmt.Sprint(base, i), seq: []byte(s), start: 1, end: n}
		aln.seqs = append(aln.seqs, f)
	}
	return aln
}
