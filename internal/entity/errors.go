package entity

import "sort"

// FieldErrors maps a form field to its human-readable messages.
type FieldErrors map[string][]string

// First returns the first message for field, or "".
func (f FieldErrors) First(field string) string {
	if msgs := f[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (f FieldErrors) Has(field string) bool {
	return f.First(field) != ""
}

// Set replaces the messages of field.
func (f FieldErrors) Set(field string, msgs ...string) {
	f[field] = msgs
}

func (f FieldErrors) Clear(field string) {
	delete(f, field)
}

// Empty reports whether no field carries a message.
func (f FieldErrors) Empty() bool {
	for _, msgs := range f {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

// Fields returns the names of fields that carry a message, sorted.
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for name, msgs := range f {
		if len(msgs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy.
func (f FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(f))
	for k, v := range f {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Merge returns base overlaid with over; a field present in over replaces
// the same field in base.
func Merge(base, over FieldErrors) FieldErrors {
	out := base.Clone()
	for k, v := range over {
		if len(v) == 0 {
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}
