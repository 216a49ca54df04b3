// 16 Jul 2026
// stats does the simple, common tallies on an alignment. Which symbols
// are used, how often each one turns up at each column, how gappy a
// column is. The functions live in this package since they need access
// to the internals of an alignment.

package align

import (
	"math"

	. "github.com/andrew-torda/alnutil/pkg/align/common"
	"github.com/andrew-torda/matrix"
)

const (
	badMap = math.MaxUint8 // marks a symbol as not seen
)

// SetSymUsed fills out the bool slice which says whether or not a
// symbol was used anywhere in the alignment.
func (aln *Alignment) SetSymUsed() {
	for _, ss := range aln.seqs {
		for _, c := range ss.GetSeq() {
			aln.symUsed[c] = true
		}
	}
	aln.usedKnwn = true
}

// GetSymUsed returns the normally non-exported symUsed
func (aln *Alignment) GetSymUsed() [MaxSym]bool {
	if !aln.usedKnwn {
		aln.SetSymUsed()
	}
	return aln.symUsed
}

// mapsyms looks at the symbols (characters, bases, residues) used in
// an alignment. It then makes a little array for mapping each symbol
// to a row in the counts matrix.
func (aln *Alignment) mapsyms() {
	if !aln.usedKnwn {
		aln.SetSymUsed()
	}
	for i := range aln.mapping { // Initialise with bad value, to
		aln.mapping[i] = badMap //  trap errors later
	}

	var n uint8
	for i := range aln.symUsed {
		if aln.symUsed[i] {
			aln.mapping[i] = n
			if n >= badMap {
				panic("program bug")
			}
			aln.revmap = append(aln.revmap, uint8(i))
			n++
		}
	}
}

// GetRevmap returns the non-exported revmap
func (aln *Alignment) GetRevmap() []uint8 {
	if len(aln.revmap) == 0 {
		aln.mapsyms()
	}
	return aln.revmap
}

// GetMapping returns the counts row used for a specific character
func (aln *Alignment) GetMapping(c uint8) uint8 { return aln.mapping[c] }

// UsageSite counts how many of each symbol appear at each column.
// counts.Mat looks like [number_of_symbols][length_of_alignment].
// We store it as float32, since it will often be normalised later and
// converted to a fraction, and we can then avoid allocating a second
// matrix for the frequencies.
func (aln *Alignment) UsageSite() *matrix.FMatrix2d {
	if aln.counts != nil && !aln.freqKnwn {
		return aln.counts
	}
	if len(aln.revmap) == 0 {
		aln.mapsyms()
	}
	nrow := len(aln.revmap)
	ncol := aln.Len()
	aln.counts = matrix.NewFMatrix2d(nrow, ncol)
	for _, ss := range aln.seqs {
		for i, c := range ss.GetSeq() {
			cmap := aln.mapping[c]
			aln.counts.Mat[cmap][i] += 1
		}
	}
	aln.freqKnwn = false
	return aln.counts
}

// UsageFrac converts counts to normalised frequencies. If symbol 'A'
// occurs 2 times in five rows, its entry changes from 2 to 2/5 = 0.4.
// If gapsAreChar is true, gaps are treated as a valid symbol.
// Otherwise they are removed from the tallies, so a symbol's fraction
// is the fraction of non-gap rows in which you find it, and the gap
// row keeps the fraction of all rows which are gaps.
func (aln *Alignment) UsageFrac(gapsAreChar bool) *matrix.FMatrix2d {
	counts := aln.UsageSite()
	if aln.freqKnwn {
		return counts
	}
	gappos := aln.mapping[GapChar]
	thereAreGaps := gappos != badMap

	nrow, ncol := counts.Size()
	total := make([]float32, ncol) // total observations in each column
	for icol := 0; icol < ncol; icol++ {
		for irow := 0; irow < nrow; irow++ {
			total[icol] += counts.Mat[irow][icol]
		}
	}
	var savedGapFrac []float32
	if thereAreGaps && !gapsAreChar {
		savedGapFrac = make([]float32, ncol)
		for icol := range savedGapFrac {
			savedGapFrac[icol] = counts.Mat[gappos][icol] / total[icol]
		}
		for icol := 0; icol < ncol; icol++ { // Remove gaps from totals
			total[icol] -= counts.Mat[gappos][icol]
		}
	}
	for icol := 0; icol < ncol; icol++ { // Normalise the counts
		for irow := 0; irow < nrow; irow++ {
			if total[icol] != 0 {
				counts.Mat[irow][icol] /= total[icol]
			}
		}
	}
	// The gaps have to be corrected. They have to be a fraction of
	// the original column totals.
	for icol := range savedGapFrac {
		counts.Mat[gappos][icol] = savedGapFrac[icol]
	}
	aln.freqKnwn = true
	return counts
}

// GapFrac returns a slice with the fraction of gap characters at each
// column. If there are no gaps anywhere, there is no slice, so we
// quietly return nil without signalling an error.
func (aln *Alignment) GapFrac() []float32 {
	if !aln.freqKnwn {
		gapsAreChar := true // Does not matter what we say here
		aln.UsageFrac(gapsAreChar)
	}
	gappos := aln.mapping[GapChar]
	if gappos == badMap {
		return nil
	}
	return aln.counts.Mat[gappos]
}

// NDistinct returns the number of distinct symbols in one column.
// A column where every row agrees gives 1. The counts may have been
// turned into fractions already. That does no harm, since we only ask
// whether an entry is zero.
func (aln *Alignment) NDistinct(col int) int {
	counts := aln.counts
	if counts == nil {
		counts = aln.UsageSite()
	}
	n := 0
	for irow := range counts.Mat {
		if counts.Mat[irow][col] != 0 {
			n++
		}
	}
	return n
}
