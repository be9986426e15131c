package moment

// Resolution is the display result of looking up a moment's relation.
type Resolution struct {
	Title string
	Kind  CategoryKind
}

// Resolve looks a relation id up in the cached project list first, then the
// life area list, first match wins. A nil result means the id is empty or
// not loaded yet; that is not an error. Results are recomputed on demand so
// they track the underlying collections as they refresh.
func Resolve(relationID string, projects []Project, lifeAreas []LifeArea) *Resolution {
	if relationID == "" {
		return nil
	}
	for _, p := range projects {
		if p.ID == relationID {
			return &Resolution{Title: p.Title, Kind: CategoryProject}
		}
	}
	for _, la := range lifeAreas {
		if la.ID == relationID {
			return &Resolution{Title: la.Title, Kind: CategoryLifeArea}
		}
	}
	return nil
}
