// Package template defines renderer-agnostic template interfaces. Renderers
// depend on the TemplateRenderer seam instead of a concrete engine so the
// page shell and snapshot templates can be swapped without touching render
// logic.
package template
