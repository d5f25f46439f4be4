// =============================================================================
// internal/dns/resolver.go - DNS resolution implementation
// =============================================================================
package dns

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/bryanCE/dnsgrid/internal/grid"
)

// Resolver performs single (name, server) DNS queries over the wire.
// It satisfies grid.Resolver: timeout and retry live here, and the
// dispatcher only ever sees the final post-retry result.
type Resolver struct {
	client  *dns.Client
	options QueryOptions
}

// NewResolver creates a new DNS resolver with default options.
func NewResolver() *Resolver {
	return NewResolverWithOptions(DefaultQueryOptions())
}

// NewResolverWithOptions creates a resolver with custom options.
func NewResolverWithOptions(opts QueryOptions) *Resolver {
	if opts.Retries < 1 {
		opts.Retries = 1
	}
	return &Resolver{
		client: &dns.Client{
			Timeout: opts.Timeout,
		},
		options: opts,
	}
}

// Resolve queries one name against one server for one record type and
// returns the answer section as (owner, kind, value) records in response
// order. A response with no answers returns an empty, non-nil slice; an
// error means no response arrived within the retry budget.
func (r *Resolver) Resolve(ctx context.Context, name, server, recordType string) ([]grid.Record, error) {
	queryType, err := ParseRecordType(recordType)
	if err != nil {
		return nil, err
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), typeCode(queryType))
	msg.RecursionDesired = r.options.UseRecursion

	// Ensure the server has a port
	if !strings.Contains(server, ":") {
		server += ":53"
	}

	var response *dns.Msg
	for attempt := 0; attempt < r.options.Retries; attempt++ {
		response, _, err = r.client.ExchangeContext(ctx, msg, server)
		if err == nil {
			break
		}
		if attempt < r.options.Retries-1 {
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("DNS query failed: %w", err)
	}
	if response == nil {
		return nil, fmt.Errorf("received nil response")
	}

	return parseResponse(response), nil
}

// parseResponse converts a DNS response's answer section to records.
// The owner name is taken from each answer header, so callers can see
// when a server chased a CNAME to a different owner.
func parseResponse(response *dns.Msg) []grid.Record {
	records := make([]grid.Record, 0, len(response.Answer))

	for _, answer := range response.Answer {
		record := grid.Record{
			Owner: answer.Header().Name,
			Kind:  dns.TypeToString[answer.Header().Rrtype],
		}

		switch rr := answer.(type) {
		case *dns.A:
			record.Value = rr.A.String()
		case *dns.AAAA:
			record.Value = rr.AAAA.String()
		case *dns.CNAME:
			record.Value = rr.Target
		case *dns.MX:
			record.Value = rr.Mx
		case *dns.NS:
			record.Value = rr.Ns
		case *dns.TXT:
			record.Value = strings.Join(rr.Txt, " ")
		case *dns.PTR:
			record.Value = rr.Ptr
		case *dns.SOA:
			record.Value = fmt.Sprintf("%s %s %d %d %d %d %d",
				rr.Ns, rr.Mbox, rr.Serial, rr.Refresh, rr.Retry, rr.Expire, rr.Minttl)
		case *dns.SRV:
			record.Value = rr.Target
		default:
			record.Value = answer.String()
		}

		records = append(records, record)
	}

	return records
}

// typeCode converts our record type to the DNS library type.
func typeCode(recordType RecordType) uint16 {
	switch recordType {
	case RecordTypeA:
		return dns.TypeA
	case RecordTypeAAAA:
		return dns.TypeAAAA
	case RecordTypeCNAME:
		return dns.TypeCNAME
	case RecordTypeMX:
		return dns.TypeMX
	case RecordTypeNS:
		return dns.TypeNS
	case RecordTypeTXT:
		return dns.TypeTXT
	case RecordTypeSOA:
		return dns.TypeSOA
	case RecordTypePTR:
		return dns.TypePTR
	case RecordTypeSRV:
		return dns.TypeSRV
	default:
		return dns.TypeA
	}
}
