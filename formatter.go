package newsgrab

import "strings"

// FormatItems formats news items as plain text for terminal display.
// Each item shows its title, link and date followed by the content.
// Items are separated by blank lines. An empty slice formats as
// NotFoundMessage.
func FormatItems(items []NewsItem) string {
	if len(items) == 0 {
		return NotFoundMessage
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		header := "## " + item.Title
		if item.Link != "" {
			header += "\n" + item.Link
		}
		if item.Date != "" {
			header += "\n" + item.Date
		}
		parts = append(parts, header+"\n"+item.Content)
	}

	return strings.Join(parts, "\n\n")
}
