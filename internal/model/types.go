package model

// Attr is one literal attribute applied to a rendered control. Boolean
// attributes carry no value (e.g. multiple, autofocus); everything else is
// escaped and emitted as name="value".
type Attr struct {
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
	Boolean bool   `json:"boolean,omitempty"`
}

// Option is one choice inside a select control, in document order.
type Option struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Placeholder reports whether the option is the disabled "please select"
// prompt that the page runtime clears on first genuine interaction.
func (o Option) Placeholder() bool {
	return o.Value == "" && o.Disabled && o.Selected
}

// Field models an individual control inside a generated form. Type carries
// the configuration token verbatim: "textarea" and "selectbox" pick the
// control element, every other token becomes the input type hint.
type Field struct {
	Label          string   `json:"label"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Required       bool     `json:"required"`
	Multiple       bool     `json:"multiple,omitempty"`
	HasPlaceholder bool     `json:"hasPlaceholder,omitempty"`
	Options        []Option `json:"options,omitempty"`
	Custom         []Attr   `json:"custom,omitempty"`
}

// Selectbox reports whether the field renders as a choice control.
func (f Field) Selectbox() bool {
	return f.Type == "selectbox"
}

// Textarea reports whether the field renders as a multi-line control.
func (f Field) Textarea() bool {
	return f.Type == "textarea"
}

// FormModel is the top-level representation renderers and the response
// serializer consume. Action, Method, and Enctype arrive fully resolved:
// either the configured backend URL or a mailto route carrying the
// percent-encoded subject.
type FormModel struct {
	Title      string  `json:"title"`
	Subject    string  `json:"subject"`
	Email      string  `json:"email"`
	BackendURL string  `json:"backendUrl,omitempty"`
	Action     string  `json:"action"`
	Method     string  `json:"method"`
	Enctype    string  `json:"enctype"`
	Fields     []Field `json:"fields"`
}

// MailtoRouted reports whether submissions are routed over mailto rather than
// an HTTP backend.
func (m FormModel) MailtoRouted() bool {
	return m.BackendURL == ""
}
