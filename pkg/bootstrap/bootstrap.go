// 22 Jul 2026

// Package bootstrap draws pseudo-replicates of an alignment by
// resampling its columns with replacement. Within one replicate the
// same drawn column index is applied to every row, so correlated
// substitutions across rows survive the resampling. That is the whole
// point of the method.
package bootstrap

import (
	"errors"
	"math/rand"
	"time"

	"github.com/andrew-torda/alnutil/pkg/align"
)

// ErrEmpty says somebody asked for replicates of an alignment with no
// columns. There is nothing to draw from.
var ErrEmpty = errors.New("bootstrap of empty alignment")

// Replicates returns n resampled copies of aln, in request order.
// n smaller than one is quietly treated as one.
// rnd is the random source, so tests can pass a seeded one and get
// the same replicates every time. If rnd is nil, we make a source
// seeded from the clock here, at the top boundary, and nowhere else.
// Each output row keeps its name and strand, but start and end are
// reset to 1 and the alignment length. Resampled columns have no
// coherent position in the original sequence.
func Replicates(aln *align.Alignment, n int, rnd *rand.Rand) ([]*align.Alignment, error) {
	ncol := aln.Len()
	if ncol == 0 {
		return nil, ErrEmpty
	}
	if n < 1 {
		n = 1
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	inrows := aln.SeqSlc()
	reps := make([]*align.Alignment, 0, n)
	for r := 0; r < n; r++ {
		bufs := make([][]byte, len(inrows))
		for k := range bufs {
			bufs[k] = make([]byte, 0, ncol)
		}
		for i := 0; i < ncol; i++ {
			ndx := rnd.Intn(ncol) // one draw, applied to every row
			for k := range inrows {
				bufs[k] = append(bufs[k], inrows[k].GetSeq()[ndx])
			}
		}
		rows := make([]align.Seq, len(inrows))
		for k, row := range inrows {
			rows[k] = align.NewSeq(row.Name(), bufs[k], 1, ncol, row.Strand())
		}
		rep, err := align.New(rows)
		if err != nil { // cannot happen, the rows are all ncol long
			return nil, err
		}
		reps = append(reps, rep)
	}
	return reps, nil
}
