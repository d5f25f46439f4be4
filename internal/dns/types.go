// =============================================================================
// internal/dns/types.go - Resolver collaborator data structures
// =============================================================================
package dns

import (
	"fmt"
	"strings"
	"time"
)

// RecordType represents the DNS record types the resolver understands.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeSOA   RecordType = "SOA"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeSRV   RecordType = "SRV"
)

// supportedTypes lists every record type the resolver can query.
var supportedTypes = []RecordType{
	RecordTypeA, RecordTypeAAAA, RecordTypeCNAME, RecordTypeMX, RecordTypeNS,
	RecordTypeTXT, RecordTypeSOA, RecordTypePTR, RecordTypeSRV,
}

// ParseRecordType validates a record type string, case-insensitively.
func ParseRecordType(s string) (RecordType, error) {
	recordType := RecordType(strings.ToUpper(strings.TrimSpace(s)))
	for _, supported := range supportedTypes {
		if recordType == supported {
			return recordType, nil
		}
	}
	return "", fmt.Errorf("unsupported record type %q", s)
}

// QueryOptions represents options for DNS queries.
type QueryOptions struct {
	Timeout      time.Duration `json:"timeout"`
	Retries      int           `json:"retries"`
	UseRecursion bool          `json:"use_recursion"`
}

// DefaultQueryOptions returns the resolver defaults: a 5 second per-attempt
// timeout and two attempts per query.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Timeout:      5 * time.Second,
		Retries:      2,
		UseRecursion: true,
	}
}
