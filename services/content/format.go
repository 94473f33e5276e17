package content

import (
	"regexp"
	"strings"
)

var (
	h2Line   = regexp.MustCompile(`(?m)^H2:\s*(.+)$`)
	h3Line   = regexp.MustCompile(`(?m)^H3:\s*(.+)$`)
	tipLine  = regexp.MustCompile(`(?m)^Tip:\s*(.+)$`)
	listLine = regexp.MustCompile(`(?m)^-\s*(.+)$`)
)

// AutoFormat converts the editor's lightweight line markup into the HTML
// blocks the blog renderer expects. "H2:", "H3:", "Tip:" and "- " line
// prefixes become headings, callouts and list items; remaining plain
// paragraphs (separated by blank lines) are wrapped in <p> tags. Blocks
// already starting with a tag pass through untouched.
func AutoFormat(text string) string {
	text = h2Line.ReplaceAllString(text, `<h2 class="text-2xl font-bold text-slate-800 mt-8 mb-4">$1</h2>`)
	text = h3Line.ReplaceAllString(text, `<h3 class="text-xl font-bold text-slate-800 mt-6 mb-3">$1</h3>`)
	text = tipLine.ReplaceAllString(text, `<div class="bg-blue-50 border-l-4 border-blue-500 p-4 my-6 italic text-slate-700 flex gap-2"><span class="font-bold">Tip:</span> $1</div>`)
	text = listLine.ReplaceAllString(text, `<li class="ml-4 list-disc marker:text-blue-500 mb-2">$1</li>`)

	blocks := strings.Split(text, "\n\n")
	formatted := make([]string, 0, len(blocks))
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			formatted = append(formatted, "")
			continue
		}
		if strings.HasPrefix(trimmed, "<") {
			formatted = append(formatted, trimmed)
			continue
		}
		formatted = append(formatted, `<p class="mb-4 leading-relaxed text-slate-600">`+trimmed+`</p>`)
	}
	return strings.Join(formatted, "\n")
}
