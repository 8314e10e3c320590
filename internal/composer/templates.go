package composer

import "strings"

// QuickTemplates are the canned caption starters offered in the composer.
var QuickTemplates = []string{
	"Announce a limited-time offer with urgency.",
	"Share a behind-the-scenes moment from today.",
	"Promote an upcoming event with date and time.",
	"Highlight a customer testimonial or review.",
}

// ApplyTemplate merges a template into the caption: an empty (or
// whitespace-only) caption is replaced, otherwise the template is appended
// with a separating space unless the caption already ends in one.
func ApplyTemplate(caption, template string) string {
	if strings.TrimSpace(caption) == "" {
		return template
	}
	if strings.HasSuffix(caption, " ") {
		return caption + template
	}
	return caption + " " + template
}
