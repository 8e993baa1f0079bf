package diffbot

import "strings"

// EntityType selects which Enhance entity schema a request resolves against.
type EntityType string

const (
	EntityPerson       EntityType = "Person"
	EntityOrganization EntityType = "Organization"
)

// SearchQuery holds the parameters of a DQL search call.
type SearchQuery struct {
	Query  string
	Count  int
	Offset int
}

// Validate checks the query against the API's parameter limits.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return invalidArgf("query must not be empty")
	}
	if q.Count < 1 || q.Count > MaxSearchCount {
		return invalidArgf("num must be between 1 and %d, got %d", MaxSearchCount, q.Count)
	}
	if q.Offset < 0 {
		return invalidArgf("start must be >= 0, got %d", q.Offset)
	}
	return nil
}

// EnhanceRequest holds the input attributes for an Enhance lookup. Unset
// optional fields are never serialized into the outbound request.
type EnhanceRequest struct {
	Type     EntityType
	Name     string
	URL      string
	Location string
	Phone    string
	Employer string
	Title    string
	School   string
	IP       string
	ID       string

	Threshold *float64
	Size      int
	Refresh   bool
	Search    bool
}

// Validate enforces the per-type minimum input rules: an Organization needs
// a name or a URL, a Person needs a name.
func (r EnhanceRequest) Validate() error {
	switch r.Type {
	case EntityOrganization:
		if strings.TrimSpace(r.Name) == "" && strings.TrimSpace(r.URL) == "" {
			return invalidArgf("for Organizations, either 'name' or 'url' is required")
		}
	case EntityPerson:
		if strings.TrimSpace(r.Name) == "" {
			return invalidArgf("for Persons, 'name' is required")
		}
	default:
		return invalidArgf("type must be either %q or %q, got %q", EntityPerson, EntityOrganization, string(r.Type))
	}
	if r.Threshold != nil && (*r.Threshold < 0 || *r.Threshold > 1) {
		return invalidArgf("threshold must be between 0.0 and 1.0, got %g", *r.Threshold)
	}
	return nil
}

// Match is one candidate entity returned by the Enhance API. Entity is an
// open mapping: the same semantic attribute may live under several
// alternative keys depending on entity type and API revision.
type Match struct {
	Score  *float64
	Errors []string
	Entity map[string]any
}
