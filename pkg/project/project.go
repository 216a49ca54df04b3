// 20 Jul 2026

// Package project maps a protein alignment back onto the coding
// (nucleotide) sequences it came from. Every column of width one
// becomes one codon of width three, a gap becomes three gaps, and the
// start/end coordinates of each row are recomputed in nucleotide
// units. No translation table is consulted. This is pure coordinate
// arithmetic.
package project

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/alnutil/pkg/align"
	. "github.com/andrew-torda/alnutil/pkg/align/common"
)

// ErrMissingCDS says a row has no coding sequence in the map handed
// to us. The row name is wrapped into the returned error.
var ErrMissingCDS = errors.New("no coding sequence for row")

const codonLen = 3

// ToCodingCoords projects aln, a protein alignment, into nucleotide
// space. cds maps each row name to its flat, ungapped coding
// sequence, which must be in frame +1 relative to the row's start
// coordinate. We do not check the frame. We cannot.
//
// The input is not touched. Gap normalisation (dots to dashes)
// happens on a private copy before any row is read.
//
// A coding sequence that runs out before the columns do is not an
// error. The remaining columns are filled with gap codons and the row
// is padded to exactly three times the alignment length. Callers who
// think that is a mistake can compare coordinates themselves.
func ToCodingCoords(aln *align.Alignment, cds map[string]string) (*align.Alignment, error) {
	if aln == nil || aln.NSeq() == 0 {
		return nil, fmt.Errorf("%w: no rows to project", align.ErrMalformed)
	}
	norm := align.NormalizeGaps(aln)
	ncol := norm.Len()

	rows := make([]align.Seq, 0, norm.NSeq())
	for _, row := range norm.SeqSlc() {
		dna, ok := cds[row.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCDS, row.Name())
		}
		startOff := (row.Start() - 1) * codonLen
		s := row.GetSeq()
		nt := make([]byte, 0, ncol*codonLen)
		j := 0 // cursor into the coding sequence
		for i := 0; i < ncol; i++ {
			// The read position is shifted by the row's start
			// coordinate. Past the end of the stored row it reads as
			// a gap.
			c := GapChar
			if pos := i + startOff; pos < len(s) {
				c = s[pos]
			}
			if c == GapChar || j >= len(dna) {
				nt = append(nt, GapChar, GapChar, GapChar)
				continue // j stays put on a gap
			}
			end := j + codonLen
			if end > len(dna) {
				end = len(dna)
			}
			nt = append(nt, dna[j:end]...)
			j += codonLen
		}
		for len(nt) < ncol*codonLen { // a short coding sequence leaves
			nt = append(nt, GapChar) //  the row short, so pad it out
		}
		rows = append(rows,
			align.NewSeq(row.Name(), nt, startOff+1, row.End()*codonLen, align.Fwd))
	}
	return align.New(rows)
}
