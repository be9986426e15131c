package moment

// CategoryKind says which kind of record a moment is linked to.
type CategoryKind int

const (
	CategoryNone CategoryKind = iota
	CategoryProject
	CategoryLifeArea
)

func (k CategoryKind) String() string {
	switch k {
	case CategoryProject:
		return "project"
	case CategoryLifeArea:
		return "lifeArea"
	default:
		return "none"
	}
}

// Category is the one-of-three link state of a moment: no category, a
// project, or a life area. The wire format splits this back into two
// optional relation fields on write; everything in between uses the union.
type Category struct {
	Kind CategoryKind
	ID   string
}

// CategoryFromForm rebuilds the union from the form pair of a free-text id
// and a project/life-area toggle.
func CategoryFromForm(id string, isProject bool) Category {
	if id == "" {
		return Category{}
	}
	if isProject {
		return Category{Kind: CategoryProject, ID: id}
	}
	return Category{Kind: CategoryLifeArea, ID: id}
}

// FormValues splits the union back into the form pair. An empty category
// reports isProject=true, the form's default toggle position.
func (c Category) FormValues() (id string, isProject bool) {
	switch c.Kind {
	case CategoryProject:
		return c.ID, true
	case CategoryLifeArea:
		return c.ID, false
	default:
		return "", true
	}
}
