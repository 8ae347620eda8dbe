package multifloor

import (
	"fmt"
	"strconv"
	"strings"
)

// NamespaceID prefixes a per-floor node id with its floor index so ids
// stay unique after floors merge. The mapping is deterministic and
// reversible via SplitID.
func NamespaceID(floor int, id string) string {
	return fmt.Sprintf("F%d_%s", floor, id)
}

// SplitID reverses NamespaceID. ok is false when id does not carry a
// floor namespace.
func SplitID(id string) (floor int, raw string, ok bool) {
	if len(id) < 3 || id[0] != 'F' {
		return 0, id, false
	}
	sep := strings.Index(id, "_")
	if sep < 2 {
		return 0, id, false
	}
	n, err := strconv.Atoi(id[1:sep])
	if err != nil {
		return 0, id, false
	}
	return n, id[sep+1:], true
}
