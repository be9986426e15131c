package notion

// Properties is a page properties payload for create and update calls.
// Values come from the helpers below so the wire shapes stay in one place.
type Properties map[string]any

// TitleProperty builds a title value with a single text segment.
func TitleProperty(content string) any {
	return map[string]any{
		"title": []map[string]any{
			{"text": map[string]any{"content": content}},
		},
	}
}

// SelectProperty builds a select value referencing an option by name.
func SelectProperty(name string) any {
	return map[string]any{
		"select": map[string]any{"name": name},
	}
}

// DateProperty builds a date value with the given start instant.
func DateProperty(start string) any {
	return map[string]any{
		"date": map[string]any{"start": start},
	}
}

// RelationProperty builds a relation value. With no ids it serializes as an
// empty list, which is how an existing relation is cleared.
func RelationProperty(ids ...string) any {
	refs := make([]RelationRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, RelationRef{ID: id})
	}
	return map[string]any{"relation": refs}
}
