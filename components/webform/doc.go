// Package webform provides an extraction-friendly net/http component that
// serves a configured contact form, accepts its submissions, and returns the
// standalone response artifact as a download.
//
// The page handler responds to GET and HEAD requests with the rendered form
// (or the degraded error page when the configuration cannot be loaded). The
// response handler accepts POST submissions, validates required answers, and
// either re-renders the form with the offending fields flagged or streams the
// response document back as an attachment.
package webform
