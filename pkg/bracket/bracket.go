// 23 Jul 2026

// Package bracket serialises an alignment into a single string which
// shows, column by column, whether the rows agree. A unanimous column
// collapses to its one character. Anything else becomes a bracketed,
// slash-joined list of every row's character, duplicates and all, in
// row order. So two rows "ab" and "a-" give "a[b/-]".
package bracket

import (
	"strings"

	"github.com/andrew-torda/alnutil/pkg/align"
)

// String returns the bracket form of an alignment. Columns are
// concatenated with no separator. An alignment with no columns gives
// the empty string.
func String(aln *align.Alignment) string {
	var b strings.Builder
	rows := aln.SeqSlc()
	ncol := aln.Len()
	b.Grow(ncol)
	for c := 0; c < ncol; c++ {
		if aln.NDistinct(c) == 1 {
			b.WriteByte(rows[0].GetSeq()[c])
			continue
		}
		b.WriteByte('[')
		for k := range rows {
			if k > 0 {
				b.WriteByte('/')
			}
			b.WriteByte(rows[k].GetSeq()[c])
		}
		b.WriteByte(']')
	}
	return b.String()
}
