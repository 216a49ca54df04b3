// 25 Jul 2026

package align_test

import (
	"testing"

	. "github.com/andrew-torda/alnutil/pkg/align"
)

// roughEql says if two numbers are roughly the same
func roughEql(a, b float32) bool {
	const eps float32 = 0.001
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

// sliceEql returns true if two slices are roughly equal
func sliceEql(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !roughEql(a[i], b[i]) {
			return false
		}
	}
	return true
}

// TestUsageSite checks the shape and a couple of entries of the
// per-column counts.
func TestUsageSite(t *testing.T) {
	aln := Str2Aln([]string{"aa", "bb", "cc"})
	m := aln.UsageSite()
	nrow, ncol := m.Size()
	if nrow != 3 || ncol != 2 {
		t.Fatalf("counts want 3x2, got %dx%d", nrow, ncol)
	}
	ia := aln.GetMapping('a')
	if m.Mat[ia][0] != 1 || m.Mat[ia][1] != 1 {
		t.Fatal("counts for 'a' wrong:", m.Mat[ia])
	}
}

// TestRevmap checks symbol mapping bookkeeping, including Clear.
func TestRevmap(t *testing.T) {
	aln := Str2Aln([]string{"aa", "bb", "cc"})
	a := aln.GetRevmap()
	if len(a) != 3 {
		t.Fatal("revmap length want 3, got", len(a))
	}
	if a[0] != 'a' {
		t.Fatal(`did not find "a" in first place in revmap`)
	}
	if err := aln.AddSeq(NewSeq("s3", []byte("dd"), 1, 2, NoStrand)); err != nil {
		t.Fatal(err)
	}
	if n := len(aln.GetRevmap()); n != 4 {
		t.Fatal("revmap not rebuilt after AddSeq, length", n)
	}
}

var gapfracdata = []struct {
	ss   []string
	want []float32
}{
	{[]string{"a-", "ab", "ab", "a-"}, []float32{0, 0.5}},
	{[]string{"----", "ac-t", "acgt", "acgt"}, []float32{0.25, 0.25, 0.5, 0.25}},
}

// TestGapFrac checks the per-column gap fractions.
func TestGapFrac(t *testing.T) {
	for tnum, x := range gapfracdata {
		aln := Str2Aln(x.ss)
		got := aln.GapFrac()
		if !sliceEql(got, x.want) {
			t.Fatalf("set %d want %v got %v", tnum, x.want, got)
		}
	}
	nogaps := Str2Aln([]string{"aa", "cc"})
	if nogaps.GapFrac() != nil {
		t.Fatal("alignment without gaps should give nil gap fractions")
	}
}

// TestUsageFrac checks normalisation with gaps kept and removed.
func TestUsageFrac(t *testing.T) {
	aln := Str2Aln([]string{"a", "a", "b", "-"})
	m := aln.UsageFrac(true) // gaps are a symbol
	ia, ib, ig := aln.GetMapping('a'), aln.GetMapping('b'), aln.GetMapping('-')
	if !roughEql(m.Mat[ia][0], 0.5) || !roughEql(m.Mat[ib][0], 0.25) ||
		!roughEql(m.Mat[ig][0], 0.25) {
		t.Fatal("gaps-as-char fractions wrong:",
			m.Mat[ia][0], m.Mat[ib][0], m.Mat[ig][0])
	}

	aln.Clear()
	m = aln.UsageFrac(false) // gaps removed from the tallies
	ia, ib, ig = aln.GetMapping('a'), aln.GetMapping('b'), aln.GetMapping('-')
	if !roughEql(m.Mat[ia][0], 2.0/3) || !roughEql(m.Mat[ib][0], 1.0/3) {
		t.Fatal("gaps-removed fractions wrong:", m.Mat[ia][0], m.Mat[ib][0])
	}
	if !roughEql(m.Mat[ig][0], 0.25) { // still a fraction of all rows
		t.Fatal("gap fraction wrong:", m.Mat[ig][0])
	}
}

var ndistinctdata = []struct {
	ss   []string
	want []int
}{
	{[]string{"aaaa"}, []int{1, 1, 1, 1}},
	{[]string{"abca", "abda", "ab-a"}, []int{1, 1, 3, 1}},
	{[]string{"aa", "aa", "ab"}, []int{1, 2}},
}

// TestNDistinct checks the distinct-symbol count per column.
func TestNDistinct(t *testing.T) {
	for tnum, x := range ndistinctdata {
		aln := Str2Aln(x.ss)
		for c, want := range x.want {
			if got := aln.NDistinct(c); got != want {
				t.Fatalf("set %d col %d want %d got %d", tnum, c, want, got)
			}
		}
	}
}

// TestNDistinctAfterFrac makes sure converting counts to fractions
// does not break the distinctness test.
func TestNDistinctAfterFrac(t *testing.T) {
	aln := Str2Aln([]string{"ab", "a-"})
	aln.UsageFrac(false)
	if got := aln.NDistinct(0); got != 1 {
		t.Fatal("col 0 want 1 distinct, got", got)
	}
	if got := aln.NDistinct(1); got != 2 {
		t.Fatal("col 1 want 2 distinct, got", got)
	}
}
