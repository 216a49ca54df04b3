// 14 Jul 2026

package common

const GapChar byte = '-' // a minus sign is always used for gaps
const DotChar byte = '.' // some alignment programs write gaps as dots

// We only handle ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)
