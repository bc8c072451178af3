package model

import internalmodel "github.com/goliatone/go-contactform/internal/model"

// Field re-exports the internal per-question control model.
type Field = internalmodel.Field

// Option re-exports the internal select option model.
type Option = internalmodel.Option

// Attr re-exports the internal literal attribute model.
type Attr = internalmodel.Attr

// FormModel re-exports the internal top-level form representation.
type FormModel = internalmodel.FormModel

const (
	EnctypeURLEncoded = internalmodel.EnctypeURLEncoded
	EnctypeTextPlain  = internalmodel.EnctypeTextPlain
)
