// 18 Jul 2026

package align

import (
	"fmt"
	"io"

	. "github.com/andrew-torda/alnutil/pkg/align/common"
)

// WrtOptions says how an alignment should be written out.
type WrtOptions struct {
	RmvGapsWrt bool // Remove gaps on output
}

// WrtFasta writes the rows fasta-style to an io.Writer, 60 characters
// per line. We only ever write. Reading alignments is somebody else's
// job.
// What I could change: if we are removing gaps, we grow a scratch
// buffer row by row. I could size it once from the first row.
func (aln *Alignment) WrtFasta(w io.Writer, opts *WrtOptions) error {
	const cPerLine = 60
	if opts == nil {
		opts = &WrtOptions{}
	}
	var t []byte
	for _, ss := range aln.seqs {
		if _, err := fmt.Fprintf(w, ">%s\n", ss.Name()); err != nil {
			return fmt.Errorf("writing alignment: %w", err)
		}

		s := ss.GetSeq()
		if opts.RmvGapsWrt { // we have to remove gap characters on output
			n := 0
			for i := range s { //    So we start by looking how many non-gap
				if s[i] != GapChar { // characters there are.
					n++
				}
			}
			if cap(t) < n { // See if our scratch space is big enough
				t = make([]byte, n)
			}
			m := 0
			for i := range s {
				if s[i] != GapChar {
					t[m] = s[i]
					m++
				}
			}
			s = t[:n]
		}
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			if _, err := fmt.Fprintln(w, string(s[:cPerLine])); err != nil {
				return fmt.Errorf("writing alignment: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, string(s)); err != nil {
			return fmt.Errorf("writing alignment: %w", err)
		}
	}
	return nil
}
