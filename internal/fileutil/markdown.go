package fileutil

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarkdownBuilder constructs markdown notes with YAML frontmatter.
// Frontmatter fields keep their insertion order.
type MarkdownBuilder struct {
	frontmatter *yaml.Node
	content     strings.Builder
}

// NewMarkdownBuilder creates a new markdown builder
func NewMarkdownBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{
		frontmatter: &yaml.Node{Kind: yaml.MappingNode},
	}
}

// AddField adds a key-value field to the frontmatter. Empty strings,
// zero numbers and nil values are skipped.
func (mb *MarkdownBuilder) AddField(key string, value any) *MarkdownBuilder {
	switch v := value.(type) {
	case nil:
		return mb
	case string:
		if v == "" {
			return mb
		}
	case int:
		if v == 0 {
			return mb
		}
	case float64:
		if v == 0 {
			return mb
		}
	}

	var valueNode yaml.Node
	if err := valueNode.Encode(value); err != nil {
		slog.Warn("Skipping unencodable frontmatter field", "key", key, "error", err)
		return mb
	}

	keyNode := yaml.Node{Kind: yaml.ScalarNode, Value: key}
	mb.frontmatter.Content = append(mb.frontmatter.Content, &keyNode, &valueNode)
	return mb
}

// AddStringArray adds an array of strings to the frontmatter,
// dropping empty entries.
func (mb *MarkdownBuilder) AddStringArray(key string, values []string) *MarkdownBuilder {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return mb
	}
	return mb.AddField(key, cleaned)
}

// AddTags adds a list of tags to the frontmatter
func (mb *MarkdownBuilder) AddTags(tags ...string) *MarkdownBuilder {
	return mb.AddStringArray("tags", tags)
}

// GetDecadeTag returns a decade tag based on the release year
func (mb *MarkdownBuilder) GetDecadeTag(year int) string {
	switch {
	case year >= 2020:
		return "year/2020s"
	case year >= 2010:
		return "year/2010s"
	case year >= 2000:
		return "year/2000s"
	case year >= 1990:
		return "year/1990s"
	case year >= 1980:
		return "year/1980s"
	case year >= 1970:
		return "year/1970s"
	case year >= 1960:
		return "year/1960s"
	case year >= 1950:
		return "year/1950s"
	default:
		return "year/pre-1950s"
	}
}

// AddParagraph adds a paragraph of text to the content
func (mb *MarkdownBuilder) AddParagraph(text string) *MarkdownBuilder {
	if text == "" {
		return mb
	}

	mb.content.WriteString(text)
	mb.content.WriteString("\n\n")
	return mb
}

// AddImage adds an image to the content
func (mb *MarkdownBuilder) AddImage(imageURL string) *MarkdownBuilder {
	if imageURL == "" {
		return mb
	}

	fmt.Fprintf(&mb.content, "![](%s)\n\n", imageURL)
	return mb
}

// AddCallout adds a collapsible callout section to the content
func (mb *MarkdownBuilder) AddCallout(calloutType, title, content string) *MarkdownBuilder {
	if content == "" {
		return mb
	}

	if title != "" {
		fmt.Fprintf(&mb.content, ">[!%s]- %s\n", calloutType, title)
	} else {
		fmt.Fprintf(&mb.content, ">[!%s]\n", calloutType)
	}

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(&mb.content, "> %s\n", line)
	}

	mb.content.WriteString("\n")
	return mb
}

// AddExternalLink adds an external link to the content
func (mb *MarkdownBuilder) AddExternalLink(title, url string) *MarkdownBuilder {
	if url == "" {
		return mb
	}

	fmt.Fprintf(&mb.content, "[%s](%s)\n\n", title, url)
	return mb
}

// Build returns the complete markdown document as a string
func (mb *MarkdownBuilder) Build() string {
	if len(mb.frontmatter.Content) == 0 {
		return mb.content.String()
	}

	var doc strings.Builder
	doc.WriteString("---\n")

	encoded, err := yaml.Marshal(mb.frontmatter)
	if err != nil {
		slog.Error("Failed to marshal frontmatter", "error", err)
	} else {
		doc.Write(encoded)
	}

	doc.WriteString("---\n\n")
	doc.WriteString(mb.content.String())

	return doc.String()
}
