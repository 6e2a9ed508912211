package site

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/pkg/slug"
)

// ErrContent is returned by Report.Err when the content check found issues.
var ErrContent = errors.New("site: content check failed")

// Issue is one content problem.
type Issue struct {
	Lang    portfolio.Code
	Message string
}

func (i Issue) String() string {
	return string(i.Lang) + ": " + i.Message
}

// Report is the outcome of Check.
type Report struct {
	Languages []portfolio.Code
	Projects  map[portfolio.Code][]string
	Issues    []Issue
}

// OK reports whether no issues were found.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Err returns nil for a clean report and otherwise ErrContent joined with every issue.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, len(r.Issues)+1)
	errs = append(errs, ErrContent)
	for _, is := range r.Issues {
		errs = append(errs, errors.New(is.String()))
	}
	return errors.Join(errs...)
}

func (r *Report) add(lang portfolio.Code, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Lang: lang, Message: fmt.Sprintf(format, args...)})
}

// Check loads every language document without fallback and verifies it:
// all label keys are present, slugs are non-empty, URL-safe and unique, and
// every language lists the same slugs as the default one.
// The returned error is non-nil only when ctx is done.
func (s *Site) Check(ctx context.Context) (*Report, error) {
	langs := s.loader.Languages()
	rep := &Report{
		Languages: langs.Codes(),
		Projects:  make(map[portfolio.Code][]string),
	}

	for _, lang := range langs.Codes() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := s.loader.Load(ctx, portfolio.PageRef{Path: "index.html"}, lang)
		if err != nil {
			rep.add(lang, "%v", err)
			continue
		}

		for _, key := range doc.MissingLabels() {
			rep.add(lang, "missing label %q", key)
		}

		seen := make(map[string]struct{}, len(doc.Projects))
		slugs := make([]string, 0, len(doc.Projects))
		for i, pr := range doc.Projects {
			switch {
			case pr.Slug == "":
				rep.add(lang, "project %d has no slug", i)
				continue
			case !slug.Valid(pr.Slug):
				rep.add(lang, "project slug %q is not URL-safe (suggested %q)", pr.Slug, slug.Make(pr.Slug))
			}
			if _, dup := seen[pr.Slug]; dup {
				rep.add(lang, "duplicate project slug %q", pr.Slug)
				continue
			}
			seen[pr.Slug] = struct{}{}
			slugs = append(slugs, pr.Slug)
		}
		rep.Projects[lang] = slugs
	}

	def := langs.Default()
	want, ok := rep.Projects[def]
	if !ok {
		return rep, nil
	}
	for _, lang := range langs.Codes() {
		got, ok := rep.Projects[lang]
		if !ok || lang == def {
			continue
		}
		if missing := difference(want, got); len(missing) > 0 {
			rep.add(lang, "missing projects %s", strings.Join(missing, ", "))
		}
		if extra := difference(got, want); len(extra) > 0 {
			rep.add(lang, "projects not in %s: %s", def, strings.Join(extra, ", "))
		}
	}
	return rep, nil
}

// Slugs returns the project slugs of the default language document.
func (s *Site) Slugs(ctx context.Context) ([]string, error) {
	doc, err := s.loader.Load(ctx, portfolio.PageRef{Path: "index.html"}, s.loader.Languages().Default())
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(doc.Projects))
	for _, pr := range doc.Projects {
		if slug.Valid(pr.Slug) && !slices.Contains(out, pr.Slug) {
			out = append(out, pr.Slug)
		}
	}
	return out, nil
}

// difference returns the items of a not in b, in order.
func difference(a, b []string) []string {
	var out []string
	for _, s := range a {
		if !slices.Contains(b, s) {
			out = append(out, s)
		}
	}
	return out
}
