package diffbot

import (
	"fmt"
	"strings"

	"github.com/kgtools/diffbot-mcp/pkg/shared/stringutil"
)

// searchTextLimit caps excerpt length in search result blocks.
const searchTextLimit = 300

// FormatSearchResults renders a parsed DQL search response as readable text.
// Missing keys degrade to zero values and "N/A" placeholders; the function
// never fails, and identical input always yields identical output.
func FormatSearchResults(query string, offset int, doc any) string {
	body, _ := asMap(doc)
	objects, _ := asList(body["objects"])

	var sb strings.Builder
	fmt.Fprintf(&sb, "DQL Search Results for: %s\n", query)
	fmt.Fprintf(&sb, "Total results: %d\n", intValue(body["hits"]))
	fmt.Fprintf(&sb, "Showing %d-%d\n\n", offset+1, offset+len(objects))

	for i, raw := range objects {
		record, _ := asMap(raw)
		fmt.Fprintf(&sb, "Result %d:\n", i+1)
		fmt.Fprintf(&sb, "  Title: %s\n", stringOr(record, "title", "N/A"))
		fmt.Fprintf(&sb, "  URL: %s\n", stringOr(record, "pageUrl", "N/A"))
		fmt.Fprintf(&sb, "  Type: %s\n", stringOr(record, "type", "N/A"))
		fmt.Fprintf(&sb, "  Date: %s\n", stringOr(record, "date", "N/A"))
		if text, ok := record["text"].(string); ok && text != "" {
			fmt.Fprintf(&sb, "  Text: %s\n", stringutil.Truncate(text, searchTextLimit))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
