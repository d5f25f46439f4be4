package dns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		input string
		want  RecordType
	}{
		{"A", RecordTypeA},
		{"a", RecordTypeA},
		{" aaaa ", RecordTypeAAAA},
		{"TXT", RecordTypeTXT},
		{"mx", RecordTypeMX},
	}

	for _, tt := range tests {
		got, err := ParseRecordType(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseRecordType("ANY")
	assert.Error(t, err)
	_, err = ParseRecordType("")
	assert.Error(t, err)
}

func TestDefaultQueryOptions(t *testing.T) {
	opts := DefaultQueryOptions()
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.Equal(t, 2, opts.Retries)
	assert.True(t, opts.UseRecursion)
}
