package skyetel

import (
	"net/url"
	"strconv"
	"strings"
)

const defaultPageLimit = 10

// ListOptions controls pagination, searching, and ordering on list
// endpoints. The zero value requests the first page at the API's default
// page size.
type ListOptions struct {
	// Limit is the number of items per page. Zero means the default of 10.
	Limit int

	// Offset is the page offset, starting at zero.
	Offset int

	// Query is a wildcard match applied across the resource's string fields.
	Query string

	// Search holds exact per-field matches. Multiple entries are combined
	// with AND by the server.
	Search map[string]string

	// Sort lists fields to order by. A leading '-' reverses that field.
	Sort []string
}

// values serializes the options into the API's query grammar: mandatory
// page[limit]/page[offset], optional filter[query], repeated
// filter[<field>] per search entry, and a comma-joined sort list.
func (o ListOptions) values() url.Values {
	limit := o.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	offset := o.Offset
	if offset < 0 {
		offset = 0
	}

	v := url.Values{}
	v.Set("page[limit]", strconv.Itoa(limit))
	v.Set("page[offset]", strconv.Itoa(offset))

	if o.Query != "" {
		v.Set("filter[query]", o.Query)
	}
	for field, value := range o.Search {
		v.Set("filter["+field+"]", value)
	}
	if len(o.Sort) > 0 {
		v.Set("sort", strings.Join(o.Sort, ","))
	}
	return v
}

// encode renders the full query string, including the leading '?'.
// url.Values sorts keys on encoding, so filter[...] precedes page[...] in
// the output; the server reads parameters by name and the order carries
// no meaning.
func (o ListOptions) encode() string {
	return "?" + o.values().Encode()
}
