// Package response serializes submitted form values into a label-keyed
// FormResponse and renders the standalone downloadable HTML snapshot.
package response

// Entry is one serialized field: the question's stored label plus either a
// scalar value or, for multi-select controls, an ordered list of values.
type Entry struct {
	Label  string   `json:"label"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
	List   bool     `json:"list,omitempty"`
}

// FormResponse is the serialized label→value snapshot of user input at
// download time. Entries keep document order; duplicate labels overwrite the
// earlier entry in place (last write wins), matching how a plain object keyed
// by label behaves.
type FormResponse struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Get returns the entry recorded under label.
func (r FormResponse) Get(label string) (Entry, bool) {
	for _, entry := range r.Entries {
		if entry.Label == label {
			return entry, true
		}
	}
	return Entry{}, false
}

// Map flattens the response into a label-keyed map; list entries become
// []string values.
func (r FormResponse) Map() map[string]any {
	out := make(map[string]any, len(r.Entries))
	for _, entry := range r.Entries {
		if entry.List {
			out[entry.Label] = append([]string(nil), entry.Values...)
			continue
		}
		out[entry.Label] = entry.Value
	}
	return out
}

// record appends an entry or, when the label already exists, overwrites the
// earlier entry in place so first-occurrence order is preserved.
func (r *FormResponse) record(entry Entry) {
	for i := range r.Entries {
		if r.Entries[i].Label == entry.Label {
			r.Entries[i] = entry
			return
		}
	}
	r.Entries = append(r.Entries, entry)
}
