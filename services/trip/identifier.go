package trip

import (
	"fmt"
	"strconv"
	"strings"
)

// extraSuffixes caps a line item at 26 extras; ExtraID fails loudly past that.
const extraSuffixes = "abcdefghijklmnopqrstuvwxyz"

// IsMainID reports whether an item id identifies a main line item. Extra ids
// always end in a single lowercase letter.
func IsMainID(id string) bool {
	if id == "" {
		return false
	}
	last := id[len(id)-1]
	return last < 'a' || last > 'z'
}

// NextSequence derives the next free 3-digit sequence from a trip's existing
// item ids. Extra suffixes are stripped so the full id list can be passed;
// unparseable or non-positive tails are ignored.
func NextSequence(existingIDs []string) string {
	highest := 0
	for _, id := range existingIDs {
		tail := id
		if idx := strings.LastIndex(id, "_"); idx >= 0 {
			tail = id[idx+1:]
		}
		tail = strings.TrimRight(tail, extraSuffixes)
		seq, err := strconv.Atoi(tail)
		if err != nil || seq <= 0 {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return fmt.Sprintf("%03d", highest+1)
}

// ComposeID builds the composite ReisID for a main item.
func ComposeID(uid, sequence string) string {
	return uid + "_" + sequence
}

// ExtraID derives the id of the index-th extra (in selection order) belonging
// to a main item.
func ExtraID(mainID string, index int) (string, error) {
	if index < 0 || index >= len(extraSuffixes) {
		return "", fmt.Errorf("%w: extra %d for item %s", ErrTooManyExtras, index+1, mainID)
	}
	return mainID + string(extraSuffixes[index]), nil
}

// SequenceOf extracts the sequence part of a main item id.
func SequenceOf(id string) string {
	if idx := strings.LastIndex(id, "_"); idx >= 0 {
		return id[idx+1:]
	}
	return id
}
