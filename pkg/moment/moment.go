package moment

// TypeName returns the name of the moment's Typ select, or "".
func (m Moment) TypeName() string {
	prop, ok := m.Content.Properties[TypeProperty]
	if !ok || prop.Select == nil {
		return ""
	}
	return prop.Select.Name
}

// TypeColor returns the Notion color of the moment's Typ select, or "".
func (m Moment) TypeColor() string {
	prop, ok := m.Content.Properties[TypeProperty]
	if !ok || prop.Select == nil {
		return ""
	}
	return prop.Select.Color
}

// Timestamp returns the raw Zeitpunkt start instant, or "".
func (m Moment) Timestamp() string {
	prop, ok := m.Content.Properties[TimestampProperty]
	if !ok || prop.Date == nil {
		return ""
	}
	return prop.Date.Start
}

func (m Moment) relationID(property string) string {
	prop, ok := m.Content.Properties[property]
	if !ok || len(prop.Relation) == 0 {
		return ""
	}
	return prop.Relation[0].ID
}

// ProjectRelationID returns the linked project id, or "".
func (m Moment) ProjectRelationID() string {
	return m.relationID(ProjectProperty)
}

// LifeAreaRelationID returns the linked life area id, or "".
func (m Moment) LifeAreaRelationID() string {
	return m.relationID(LifeAreaProperty)
}

// RelationID returns whichever relation id is present, project first.
func (m Moment) RelationID() string {
	if id := m.ProjectRelationID(); id != "" {
		return id
	}
	return m.LifeAreaRelationID()
}

// HasProjectField reports whether the Projekt property exists on the record
// at all, populated or not. The write path clears exactly the relation
// fields that are present on the original.
func (m Moment) HasProjectField() bool {
	_, ok := m.Content.Properties[ProjectProperty]
	return ok
}

// HasLifeAreaField reports whether the Lebensbereich property exists.
func (m Moment) HasLifeAreaField() bool {
	_, ok := m.Content.Properties[LifeAreaProperty]
	return ok
}

// Category derives the moment's category from its relations.
func (m Moment) Category() Category {
	if id := m.ProjectRelationID(); id != "" {
		return Category{Kind: CategoryProject, ID: id}
	}
	if id := m.LifeAreaRelationID(); id != "" {
		return Category{Kind: CategoryLifeArea, ID: id}
	}
	return Category{}
}
