package diffbot

import (
	"fmt"
	"strings"

	"go.mau.fi/util/ptr"

	"github.com/kgtools/diffbot-mcp/pkg/shared/stringutil"
)

// descriptionLimit caps organization description length.
const descriptionLimit = 200

// The Enhance API's entity payload is loosely specified and has drifted
// across revisions: the same semantic attribute may live under several
// alternative keys. Each logical attribute is resolved through an ordered
// list of (candidate key, extractor) pairs; the first present key wins and
// later candidates are ignored. A present key whose value has an unusable
// shape drops the line rather than failing the match.
type fieldProbe struct {
	key     string
	extract func(value any) (string, bool)
}

var (
	websiteProbes = []fieldProbe{
		{"homepageUri", scalarString},
		{"website", scalarString},
		{"url", scalarString},
		{"homepage", scalarString},
	}
	locationProbes = []fieldProbe{
		{"location", extractNamed},
		{"locations", extractFirstNamed},
	}
	revenueProbes = []fieldProbe{
		{"revenue", extractAmount},
		{"annualRevenue", extractAmount},
		{"yearlyRevenue", extractAmount},
	}
	industryProbes = []fieldProbe{
		{"industry", extractJoined},
		{"industries", extractJoined},
		{"category", extractJoined},
		{"categories", extractJoined},
	}
	descriptionProbes = []fieldProbe{
		{"description", scalarString},
		{"summary", scalarString},
		{"about", scalarString},
	}
	uriProbes = []fieldProbe{
		{"diffbotUri", scalarString},
		{"uri", scalarString},
		{"id", scalarString},
		{"diffbotId", scalarString},
	}
	titleProbes = []fieldProbe{
		{"title", scalarString},
		{"position", scalarString},
		{"role", scalarString},
	}

	employeeRangeKeys = [][2]string{
		{"nbEmployeesMin", "nbEmployeesMax"},
		{"employeesMin", "employeesMax"},
		{"employeeCountMin", "employeeCountMax"},
	}
	employmentKeys = []string{"employments", "employment", "jobs", "currentEmployment"}
	educationKeys  = []string{"educations", "education", "schools"}

	// Social links collect every matching key, not just the first.
	socialKeys = []struct{ key, platform string }{
		{"twitterUri", "Twitter"},
		{"twitter", "Twitter"},
		{"twitterUrl", "Twitter"},
		{"linkedInUri", "LinkedIn"},
		{"linkedin", "LinkedIn"},
		{"linkedinUri", "LinkedIn"},
		{"linkedInUrl", "LinkedIn"},
		{"facebookUri", "Facebook"},
		{"facebook", "Facebook"},
		{"facebookUrl", "Facebook"},
	}
	extraFields = []struct{ key, label string }{
		{"founded", "Founded"},
		{"foundedYear", "Founded"},
		{"ticker", "Stock Ticker"},
		{"stock", "Stock"},
		{"ceo", "CEO"},
		{"headquarters", "Headquarters"},
	}
)

// FormatEnhanceResults renders a parsed Enhance response for the given
// entity type. Anomalies inside a single match degrade to omitted lines;
// only an unusable top-level body fails the call.
func FormatEnhanceResults(entityType EntityType, doc any) (string, error) {
	matches, err := parseMatches(doc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Enhanced %s Data:\n", entityType)
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(matches) == 0 {
		fmt.Fprintf(&sb, "No %s found matching the provided criteria.\n", strings.ToLower(string(entityType)))
		sb.WriteString("Try:\n")
		sb.WriteString("- Adding more input parameters (location, url, etc.)\n")
		sb.WriteString("- Lowering the threshold parameter\n")
		sb.WriteString("- Using search=true to search beyond the Knowledge Graph\n")
		return strings.TrimSpace(sb.String()), nil
	}

	for i, match := range matches {
		if i > 0 {
			sb.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
		}
		fmt.Fprintf(&sb, "Match #%d:\n", i+1)
		if match.Score != nil {
			fmt.Fprintf(&sb, "  Confidence Score: %.3f\n", *match.Score)
		}
		if len(match.Errors) > 0 {
			fmt.Fprintf(&sb, "  Errors: %s\n", strings.Join(match.Errors, ", "))
		}
		if len(match.Entity) == 0 {
			sb.WriteString("  No entity data found in this match.\n")
			continue
		}
		if name, ok := scalarString(match.Entity["name"]); ok {
			fmt.Fprintf(&sb, "  Name: %s\n", name)
		}
		if entityType == EntityOrganization {
			appendOrganizationFields(&sb, match.Entity)
		} else {
			appendPersonFields(&sb, match.Entity)
		}
		appendCommonFields(&sb, match.Entity)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// parseMatches locates the match list. The upstream response shape is
// inconsistent across API revisions: the list may live under "data" or
// "results", or the body may itself be the list.
func parseMatches(doc any) ([]Match, error) {
	var raw []any
	switch body := doc.(type) {
	case map[string]any:
		if list, ok := asList(body["data"]); ok && len(list) > 0 {
			raw = list
		} else if list, ok := asList(body["results"]); ok && len(list) > 0 {
			raw = list
		}
	case []any:
		raw = body
	default:
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("enhance response has unexpected top-level shape %T", doc),
		}
	}
	matches := make([]Match, 0, len(raw))
	for _, entry := range raw {
		matches = append(matches, parseMatch(entry))
	}
	return matches, nil
}

func parseMatch(entry any) Match {
	m, ok := asMap(entry)
	if !ok {
		return Match{}
	}
	var match Match
	if score, ok := m["score"].(float64); ok {
		match.Score = ptr.Ptr(score)
	}
	if errs, ok := asList(m["errors"]); ok {
		for _, e := range errs {
			if text, ok := scalarString(e); ok {
				match.Errors = append(match.Errors, text)
			}
		}
	}
	if entity, ok := asMap(m["entity"]); ok {
		match.Entity = entity
	}
	return match
}

func resolveField(entity map[string]any, probes []fieldProbe) (string, bool) {
	for _, probe := range probes {
		value, ok := entity[probe.key]
		if !ok || value == nil {
			continue
		}
		return probe.extract(value)
	}
	return "", false
}

func appendOrganizationFields(sb *strings.Builder, entity map[string]any) {
	if website, ok := resolveField(entity, websiteProbes); ok {
		fmt.Fprintf(sb, "  Website: %s\n", website)
	}
	if location, ok := resolveField(entity, locationProbes); ok {
		fmt.Fprintf(sb, "  Location: %s\n", location)
	}
	if revenue, ok := resolveField(entity, revenueProbes); ok {
		fmt.Fprintf(sb, "  Revenue: %s\n", revenue)
	}
	if employees, ok := resolveEmployees(entity); ok {
		fmt.Fprintf(sb, "  Employees: %s\n", employees)
	}
	if industry, ok := resolveField(entity, industryProbes); ok {
		fmt.Fprintf(sb, "  Industry: %s\n", industry)
	}
	if description, ok := resolveField(entity, descriptionProbes); ok {
		fmt.Fprintf(sb, "  Description: %s\n", stringutil.Truncate(description, descriptionLimit))
	}
}

func appendPersonFields(sb *strings.Builder, entity map[string]any) {
	if location, ok := resolveField(entity, locationProbes); ok {
		fmt.Fprintf(sb, "  Location: %s\n", location)
	}
	appendEmployment(sb, entity)
	appendEducation(sb, entity)
}

func appendCommonFields(sb *strings.Builder, entity map[string]any) {
	if uri, ok := resolveField(entity, uriProbes); ok {
		fmt.Fprintf(sb, "  Diffbot URI: %s\n", uri)
	}
	var links []string
	for _, social := range socialKeys {
		if value, ok := scalarString(entity[social.key]); ok {
			links = append(links, social.platform+": "+value)
		}
	}
	if len(links) > 0 {
		fmt.Fprintf(sb, "  Social Media: %s\n", strings.Join(links, ", "))
	}
	for _, extra := range extraFields {
		value, ok := entity[extra.key]
		if !ok || value == nil {
			continue
		}
		if text, ok := extractNamed(value); ok {
			fmt.Fprintf(sb, "  %s: %s\n", extra.label, text)
		}
	}
}

// resolveEmployees tries three alternative min/max key pairs before falling
// back to a single headcount value.
func resolveEmployees(entity map[string]any) (string, bool) {
	for _, pair := range employeeRangeKeys {
		minText, minOK := scalarString(entity[pair[0]])
		maxText, maxOK := scalarString(entity[pair[1]])
		if minOK || maxOK {
			if !minOK {
				minText = "N/A"
			}
			if !maxOK {
				maxText = "N/A"
			}
			return minText + " - " + maxText, true
		}
	}
	return scalarString(entity["nbEmployees"])
}

// appendEmployment prints the most recent employment: the first usable entry
// of the first present employment key.
func appendEmployment(sb *strings.Builder, entity map[string]any) {
	for _, key := range employmentKeys {
		value, ok := entity[key]
		if !ok || value == nil {
			continue
		}
		job := value
		if list, isList := asList(value); isList {
			if len(list) == 0 {
				continue
			}
			job = list[0]
		}
		if jobMap, ok := asMap(job); ok {
			if employer, ok := extractNamed(jobMap["employer"]); ok {
				fmt.Fprintf(sb, "  Current Employer: %s\n", employer)
			}
			if title, ok := resolveField(jobMap, titleProbes); ok {
				fmt.Fprintf(sb, "  Title: %s\n", title)
			}
		}
		return
	}
}

// appendEducation prints up to the first two schools of the first present
// education key.
func appendEducation(sb *strings.Builder, entity map[string]any) {
	for _, key := range educationKeys {
		value, ok := entity[key]
		if !ok || value == nil {
			continue
		}
		list, isList := asList(value)
		if isList && len(list) == 0 {
			continue
		}
		if !isList {
			return
		}
		schools := make([]string, 0, 2)
		for _, entry := range list {
			if len(schools) == 2 {
				break
			}
			eduMap, ok := asMap(entry)
			if !ok {
				continue
			}
			if institution, ok := asMap(eduMap["institution"]); ok {
				if name, ok := scalarString(institution["name"]); ok {
					schools = append(schools, name)
					continue
				}
			}
			if name, ok := scalarString(eduMap["school"]); ok {
				schools = append(schools, name)
				continue
			}
			if name, ok := scalarString(eduMap["name"]); ok {
				schools = append(schools, name)
			}
		}
		if len(schools) > 0 {
			fmt.Fprintf(sb, "  Education: %s\n", strings.Join(schools, ", "))
		}
		return
	}
}

// extractNamed reads a value that may be a plain scalar or a {name: ...}
// object, the two shapes the API uses for referenced entities.
func extractNamed(value any) (string, bool) {
	if m, ok := asMap(value); ok {
		return scalarString(m["name"])
	}
	return scalarString(value)
}

// extractFirstNamed reads the first element of a list in either shape.
func extractFirstNamed(value any) (string, bool) {
	list, ok := asList(value)
	if !ok || len(list) == 0 {
		return "", false
	}
	return extractNamed(list[0])
}

// extractAmount reads a monetary value that may be a scalar or an object
// with a numeric "value" field.
func extractAmount(value any) (string, bool) {
	if m, ok := asMap(value); ok {
		return scalarString(m["value"])
	}
	return scalarString(value)
}

// extractJoined reads a value that may be a scalar or a list; list items are
// joined with ", ". Items that are {name: ...} objects contribute their name.
func extractJoined(value any) (string, bool) {
	list, ok := asList(value)
	if !ok {
		return scalarString(value)
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		if text, ok := extractNamed(item); ok {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}
