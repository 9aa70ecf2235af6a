package markdown

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const maxStripPasses = 4

// MarkdownService renders organizer-authored descriptions and scrubs attendee text.
type MarkdownService interface {
	ToHTMLSanitized(markdown string) (string, error)
	StripTags(text string) string
}

type markdownServiceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewMarkdownService() MarkdownService {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &markdownServiceImpl{
		md:     md,
		policy: policy,
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *markdownServiceImpl) ToHTMLSanitized(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}

// StripTags removes all markup and returns plain text. Entities are decoded and
// the text sanitized again until it stops changing, so encoded markup such as
// "&lt;b&gt;" is removed rather than decoded into a live tag.
func (s *markdownServiceImpl) StripTags(text string) string {
	for i := 0; i < maxStripPasses; i++ {
		next := stdhtml.UnescapeString(s.strict.Sanitize(text))
		if next == text {
			return strings.TrimSpace(next)
		}
		text = next
	}
	// still changing: keep the escaped form
	return strings.TrimSpace(s.strict.Sanitize(text))
}
