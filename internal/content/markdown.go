package content

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders profile copy. Raw HTML in the source is dropped (goldmark's
// default), so profile files cannot inject markup.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Typographer),
)

// Markdown renders a block of profile copy to HTML.
func Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InlineMarkdown renders src and strips the enclosing paragraph, for copy
// placed inside an existing <p>.
func InlineMarkdown(src string) (string, error) {
	out, err := Markdown(src)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = out[len("<p>") : len(out)-len("</p>")]
	}
	return out, nil
}
