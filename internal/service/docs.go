package service

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/templui/lenscard/internal/markdown"
	"github.com/templui/lenscard/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrDocNotFound = errors.New("documentation page not found")

// DocsService serves the embedding guide from markdown files under docs/ in content.
type DocsService struct {
	parser  *markdown.Parser
	content fs.FS

	once  sync.Once
	pages []*model.DocPage
	err   error
}

func NewDocsService(content fs.FS) *DocsService {
	return &DocsService{
		parser:  markdown.NewParser(),
		content: content,
	}
}

func (s *DocsService) load() {
	err := fs.WalkDir(s.content, "docs", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(p, ".md") {
			return err
		}

		page, err := s.loadDocPage(p)
		if err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		s.pages = append(s.pages, page)
		return nil
	})
	if err != nil {
		s.err = err
		return
	}

	sort.Slice(s.pages, func(i, j int) bool {
		if s.pages[i].Order != s.pages[j].Order {
			return s.pages[i].Order < s.pages[j].Order
		}
		return s.pages[i].Title < s.pages[j].Title
	})
}

func (s *DocsService) loadDocPage(p string) (*model.DocPage, error) {
	content, err := fs.ReadFile(s.content, p)
	if err != nil {
		return nil, err
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(path.Base(p), ".md")
	page := &model.DocPage{
		Slug:        slug,
		HTMLContent: string(htmlContent),
	}

	title, ok := meta["title"].(string)
	if ok {
		page.Title = title
	} else {
		page.Title = titleFromSlug(slug)
	}

	description, ok := meta["description"].(string)
	if ok {
		page.Description = description
	}

	switch order := meta["order"].(type) {
	case int:
		page.Order = order
	case uint64:
		page.Order = int(order)
	case float64:
		page.Order = int(order)
	}

	return page, nil
}

// Pages returns every page in navigation order.
func (s *DocsService) Pages() ([]*model.DocPage, error) {
	s.once.Do(s.load)
	return s.pages, s.err
}

// DocPage returns the page for slug, or the first page when slug is empty.
func (s *DocsService) DocPage(slug string) (*model.DocPage, error) {
	pages, err := s.Pages()
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, ErrDocNotFound
	}
	if slug == "" {
		return pages[0], nil
	}
	for _, page := range pages {
		if page.Slug == slug {
			return page, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDocNotFound, slug)
}

func titleFromSlug(slug string) string {
	slug = strings.ReplaceAll(slug, "-", " ")
	slug = strings.ReplaceAll(slug, "_", " ")

	words := strings.Fields(slug)
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
