// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads markup documents from local files, HTML files, and
// http(s) URLs. HTML is cut down to its main content and normalized to
// Markdown before the lines reach the classifier. YAML front matter, when
// present, is split off into DocumentMeta.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/frontmatter"

	"github.com/pdiddy/mddoc/internal/httputil"
	"github.com/pdiddy/mddoc/pkg/types"
)

// noiseSelectors are removed from HTML before the content container is
// chosen. None of them carry document text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// containers are tried in order; the first match holds the content.
var containers = []string{"main", "article", "body"}

// Loader reads source documents. The zero value is not usable; call
// NewLoader.
type Loader struct {
	client *http.Client
	cfg    types.HTTPConfig
	log    io.Writer
}

// NewLoader returns a Loader. A nil client gets one with cfg.Timeout. Retry
// notes go to log; nil discards them.
func NewLoader(client *http.Client, cfg types.HTTPConfig, log io.Writer) *Loader {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = io.Discard
	}
	return &Loader{client: client, cfg: cfg, log: log}
}

// IsURL reports whether location is an http or https URL.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// IsHTML reports whether a local path names an HTML file.
func IsHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// Load reads location and returns its lines and front matter. Any failure
// to obtain the raw text wraps types.ErrSourceNotFound.
func (l *Loader) Load(ctx context.Context, location string) (*types.SourceDocument, error) {
	var (
		text string
		err  error
	)
	switch {
	case IsURL(location):
		text, err = l.loadURL(ctx, location)
	case IsHTML(location):
		text, err = l.loadHTMLFile(location)
	default:
		text, err = l.loadFile(location)
	}
	if err != nil {
		return nil, err
	}

	body, meta := splitFrontMatter(text)
	doc := types.NewSourceDocument(location, body)
	doc.Meta = meta
	return &doc, nil
}

func (l *Loader) loadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrSourceNotFound, path, err)
	}
	return string(data), nil
}

func (l *Loader) loadHTMLFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrSourceNotFound, path, err)
	}
	md, err := HTMLToMarkdown(string(data))
	if err != nil {
		return "", fmt.Errorf("normalizing %s: %w", path, err)
	}
	return md, nil
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (string, error) {
	body, err := httputil.Get(ctx, l.client, rawURL, l.cfg.UserAgent, l.cfg.MaxRetries, l.log)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrSourceNotFound, err)
	}
	if isMarkupURL(rawURL) {
		return string(body), nil
	}
	md, err := HTMLToMarkdown(string(body))
	if err != nil {
		return "", fmt.Errorf("normalizing %s: %w", rawURL, err)
	}
	return md, nil
}

// isMarkupURL reports whether a URL names a raw markup file that is read
// as is rather than normalized from HTML.
func isMarkupURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}

// HTMLToMarkdown strips noise from an HTML page, keeps the first of main,
// article, or body, and converts that fragment to Markdown.
func HTMLToMarkdown(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range containers {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	md, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return md, nil
}

// splitFrontMatter separates a leading YAML block from the body. Text whose
// front matter does not parse is returned whole with empty meta.
func splitFrontMatter(text string) (string, types.DocumentMeta) {
	var meta types.DocumentMeta
	body, err := frontmatter.Parse(strings.NewReader(text), &meta)
	if err != nil {
		return text, types.DocumentMeta{}
	}
	return string(body), meta
}
