// Package bgmap reads the pregenerated roster index, a line-oriented
// file where each line holds the concatenated 7-character bioguide ids
// of one congress. Line offsets count backwards from the current
// congress, so line 0 is the current roster, line 1 the one before it,
// and so on.
package bgmap

import (
	"fmt"
	"os"
	"strings"
)

const idWidth = 7

type Index struct {
	lines []string
}

func Open(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

func Parse(data []byte) *Index {
	trimmed := strings.TrimRight(string(data), "\r\n")
	if trimmed == "" {
		return &Index{}
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return &Index{lines: lines}
}

func (x *Index) line(currentCongress, target int) (string, bool) {
	offset := currentCongress - target
	if offset < 0 || offset >= len(x.lines) || x.lines[offset] == "" {
		return "", false
	}
	return x.lines[offset], true
}

// Contains reports whether the index carries a roster for the target
// congress, given which congress is current.
func (x *Index) Contains(currentCongress, target int) bool {
	_, ok := x.line(currentCongress, target)
	return ok
}

// BioguideIDs returns the cached roster of the target congress, or
// false when the index has no line for it.
func (x *Index) BioguideIDs(currentCongress, target int) ([]string, bool) {
	line, ok := x.line(currentCongress, target)
	if !ok {
		return nil, false
	}
	ids := make([]string, 0, len(line)/idWidth)
	for i := 0; i+idWidth <= len(line); i += idWidth {
		ids = append(ids, line[i:i+idWidth])
	}
	return ids, true
}

// Encode renders rosters into index file format. rosters[0] must be the
// current congress's roster. Ids that are not exactly 7 characters wide
// would corrupt every id after them on the line, so they are rejected.
func Encode(rosters [][]string) ([]byte, error) {
	var b strings.Builder
	for offset, ids := range rosters {
		for _, id := range ids {
			if len(id) != idWidth {
				return nil, fmt.Errorf("bioguide id %q at offset %d is not %d characters", id, offset, idWidth)
			}
			b.WriteString(id)
		}
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}
