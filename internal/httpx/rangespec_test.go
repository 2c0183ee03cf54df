package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	t.Parallel()

	const size = 1000

	tests := []struct {
		name    string
		header  string
		size    int64
		want    ByteRange
		outcome RangeOutcome
	}{
		{
			name:    "no_header",
			header:  "",
			size:    size,
			outcome: RangeNone,
		},
		{
			name:    "simple_range",
			header:  "bytes=0-499",
			size:    size,
			want:    ByteRange{Start: 0, End: 499},
			outcome: RangeValid,
		},
		{
			name:    "single_byte",
			header:  "bytes=42-42",
			size:    size,
			want:    ByteRange{Start: 42, End: 42},
			outcome: RangeValid,
		},
		{
			name:    "open_ended",
			header:  "bytes=500-",
			size:    size,
			want:    ByteRange{Start: 500, End: 999},
			outcome: RangeValid,
		},
		{
			name:   "empty_start_coerced_to_zero",
			header: "bytes=-500",
			size:   size,
			// Lenient parser reads an omitted start as offset 0, not
			// as suffix length.
			want:    ByteRange{Start: 0, End: 500},
			outcome: RangeValid,
		},
		{
			name:    "end_clamped_to_file_size",
			header:  "bytes=500-1499",
			size:    size,
			want:    ByteRange{Start: 500, End: 999},
			outcome: RangeValid,
		},
		{
			name:    "last_byte",
			header:  "bytes=999-999",
			size:    size,
			want:    ByteRange{Start: 999, End: 999},
			outcome: RangeValid,
		},
		{
			name:    "missing_prefix_still_parsed",
			header:  "100-199",
			size:    size,
			want:    ByteRange{Start: 100, End: 199},
			outcome: RangeValid,
		},
		{
			name:    "start_past_end_of_file",
			header:  "bytes=2000-3000",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "start_equal_to_file_size",
			header:  "bytes=1000-",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "start_after_end",
			header:  "bytes=600-500",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "empty_spec",
			header:  "bytes=",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "no_dash",
			header:  "bytes=500",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "non_numeric_start",
			header:  "bytes=abc-499",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "non_numeric_end",
			header:  "bytes=0-xyz",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "negative_start_rejected",
			header:  "bytes=-5-10",
			size:    size,
			outcome: RangeInvalid,
		},
		{
			name:    "any_range_on_empty_file",
			header:  "bytes=0-0",
			size:    0,
			outcome: RangeInvalid,
		},
		{
			name:    "garbage",
			header:  "pages=1-2",
			size:    size,
			outcome: RangeInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, outcome := ParseRange(tt.header, tt.size)
			assert.Equal(t, tt.outcome, outcome)
			if tt.outcome == RangeValid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestByteRangeHelpers(t *testing.T) {
	t.Parallel()

	br := ByteRange{Start: 500, End: 999}
	assert.Equal(t, uint64(500), br.Length())
	assert.Equal(t, "bytes 500-999/1000", br.ContentRange(1000))

	one := ByteRange{Start: 0, End: 0}
	assert.Equal(t, uint64(1), one.Length())
}
