package api

import (
	"fmt"
	"html/template"
	"path/filepath"
)

// parsePageTemplates parses base.html, the page and every partial into one
// set per page so pages can embed fragments.
func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string, partialFiles []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		files := make([]string, 0, len(partialFiles)+2)
		files = append(files, filepath.Join(templateDir, "base.html"), filepath.Join(templateDir, page+".html"))
		for _, partial := range partialFiles {
			files = append(files, filepath.Join(templateDir, partial))
		}

		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(files...)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func parsePartialTemplates(templateDir string, funcMap template.FuncMap, partialFiles []string) (*template.Template, error) {
	files := make([]string, 0, len(partialFiles))
	for _, partial := range partialFiles {
		files = append(files, filepath.Join(templateDir, partial))
	}
	parsed, err := template.New("partials").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}
