// Package model defines the typed form model consumed by renderers and the
// response serializer. Builders reside in internal/model but return the types
// defined here. A FormModel carries the resolved submission route (backend
// URL or mailto with a percent-encoded subject) plus one Field per configured
// question in document order; renderers never look at the raw configuration.
package model
