// Package renderer turns catalogs, plans and sweeps into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// PlanRenderOptions holds configuration for rendering a plan report.
type PlanRenderOptions struct {
	Explain bool // Append a short explanation of the method.
}

// RenderCatalog renders the CatalogView struct to a markdown string.
func RenderCatalog(c *CatalogView) string {
	partials := map[string]string{
		"project_table": "project_table.md",
	}
	return renderTemplate("catalog", "catalog.md", partials, c)
}

// RenderPlan renders the PlanView struct to a markdown string.
func RenderPlan(p *PlanView, opts PlanRenderOptions) string {
	partials := map[string]string{
		"project_table":    "project_table.md",
		"plan_explanation": "plan_explanation.md",
	}
	data := struct {
		*PlanView
		Explain bool
	}{p, opts.Explain}
	return renderTemplate("plan", "plan.md", partials, data)
}

// RenderSweep renders the SweepView struct to a markdown string.
func RenderSweep(s *SweepView) string {
	return renderTemplate("sweep", "sweep.md", nil, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
