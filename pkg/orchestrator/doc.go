// Package orchestrator coordinates the loader, the model builder, and the
// renderer registry into a single Generate call.
package orchestrator
