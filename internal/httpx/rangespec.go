package httpx

import (
	"fmt"
	"strconv"
	"strings"
)

// RangeOutcome classifies the Range header of a request.
type RangeOutcome int

const (
	// RangeNone means the request carried no Range header.
	RangeNone RangeOutcome = iota
	// RangeValid means the header parsed to a satisfiable interval.
	RangeValid
	// RangeInvalid means the header was malformed or unsatisfiable.
	RangeInvalid
)

// ByteRange is an inclusive byte interval within a file, zero-indexed.
type ByteRange struct {
	Start uint64
	End   uint64
}

// Length returns the number of bytes the range covers.
func (b ByteRange) Length() uint64 {
	return b.End - b.Start + 1
}

// ContentRange formats the Content-Range header value for a file of the
// given total size.
func (b ByteRange) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", b.Start, b.End, size)
}

// ParseRange parses a Range header against a file of the given size.
//
// Parsing is deliberately lenient: the bytes= prefix is stripped when
// present but its absence is tolerated, and an empty start bound is read as
// offset 0 rather than as RFC 7233 suffix syntax. That matches the clients
// this server exists to exercise; see README for the known deviations. The
// end bound is clamped to size-1. A range whose start lies past the clamped
// end or past the end of the file is unsatisfiable and reported as
// RangeInvalid, as is anything that fails to parse. Malformed input never
// panics.
func ParseRange(header string, size int64) (ByteRange, RangeOutcome) {
	if header == "" {
		return ByteRange{}, RangeNone
	}
	if size <= 0 {
		// No byte of an empty file is addressable.
		return ByteRange{}, RangeInvalid
	}

	spec := strings.TrimPrefix(header, "bytes=")
	dash := strings.IndexByte(spec, '-')
	if dash < 0 {
		return ByteRange{}, RangeInvalid
	}
	startStr, endStr := spec[:dash], spec[dash+1:]

	var start uint64
	if startStr != "" {
		v, err := strconv.ParseUint(startStr, 10, 64)
		if err != nil {
			return ByteRange{}, RangeInvalid
		}
		start = v
	}

	end := uint64(size - 1)
	if endStr != "" {
		v, err := strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return ByteRange{}, RangeInvalid
		}
		end = v
	}

	if end > uint64(size-1) {
		end = uint64(size - 1)
	}
	if start > end || start >= uint64(size) {
		return ByteRange{}, RangeInvalid
	}
	return ByteRange{Start: start, End: end}, RangeValid
}
