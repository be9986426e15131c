package moment

import "tableflip.dev/momentchen/pkg/notion"

// BuildProperties translates a normalized draft into the page properties
// payload for a create or update call.
//
// The required fields are always present. Relation handling keeps the
// "zero or one of {project, life area}" rule intact on the remote side:
// setting one relation clears the other when the original carried it, and
// dropping the category clears whatever was populated. When creating with
// no category the relation fields are omitted entirely.
func BuildProperties(description, typeName, timestamp string, cat Category, editing *Moment) notion.Properties {
	props := notion.Properties{
		momentTitleProperty: notion.TitleProperty(description),
		TypeProperty:        notion.SelectProperty(typeName),
		TimestampProperty:   notion.DateProperty(timestamp),
	}

	switch cat.Kind {
	case CategoryProject:
		props[ProjectProperty] = notion.RelationProperty(cat.ID)
		if editing != nil && editing.HasLifeAreaField() {
			props[LifeAreaProperty] = notion.RelationProperty()
		}
	case CategoryLifeArea:
		props[LifeAreaProperty] = notion.RelationProperty(cat.ID)
		if editing != nil && editing.HasProjectField() {
			props[ProjectProperty] = notion.RelationProperty()
		}
	default:
		if editing != nil {
			if editing.HasProjectField() {
				props[ProjectProperty] = notion.RelationProperty()
			}
			if editing.HasLifeAreaField() {
				props[LifeAreaProperty] = notion.RelationProperty()
			}
		}
	}

	return props
}
