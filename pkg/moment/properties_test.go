package moment

import (
	"testing"

	"tableflip.dev/momentchen/pkg/notion"
)

func pageWith(props map[string]notion.PropertyValue) notion.Page {
	return notion.Page{ID: "page-1", Properties: props}
}

func momentWith(props map[string]notion.PropertyValue) *Moment {
	m := MapMoment(pageWith(props))
	return &m
}

func relationValue(ids ...string) notion.PropertyValue {
	refs := make([]notion.RelationRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, notion.RelationRef{ID: id})
	}
	return notion.PropertyValue{Type: "relation", Relation: refs}
}

func relationIDs(props notion.Properties, field string) ([]string, bool) {
	raw, ok := props[field]
	if !ok {
		return nil, false
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, true
	}
	refs, ok := m["relation"].([]notion.RelationRef)
	if !ok {
		return nil, true
	}
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids, true
}

func TestBuildPropertiesRequiredFieldsAlwaysPresent(t *testing.T) {
	props := BuildProperties("desc", "Arbeit", "2026-08-30T09:00:00.000Z", Category{}, nil)

	for _, field := range []string{"Name", "Typ", "Zeitpunkt"} {
		if _, ok := props[field]; !ok {
			t.Errorf("expected %s to be present", field)
		}
	}
}

func TestBuildPropertiesCreateWithoutCategoryOmitsRelations(t *testing.T) {
	props := BuildProperties("desc", "Arbeit", "2026-08-30T09:00:00.000Z", Category{}, nil)

	if _, ok := props[ProjectProperty]; ok {
		t.Error("expected no project relation on create without category")
	}
	if _, ok := props[LifeAreaProperty]; ok {
		t.Error("expected no life area relation on create without category")
	}
}

func TestBuildPropertiesProjectCategorySetsSingleReference(t *testing.T) {
	cat := Category{Kind: CategoryProject, ID: "proj-9"}
	props := BuildProperties("desc", "Arbeit", "2026-08-30T09:00:00.000Z", cat, nil)

	ids, ok := relationIDs(props, ProjectProperty)
	if !ok {
		t.Fatal("expected project relation to be set")
	}
	if len(ids) != 1 || ids[0] != "proj-9" {
		t.Fatalf("expected single reference proj-9, got %v", ids)
	}
	if _, ok := props[LifeAreaProperty]; ok {
		t.Error("life area relation should not appear when creating")
	}
}

func TestBuildPropertiesSwitchingToProjectClearsLifeArea(t *testing.T) {
	editing := momentWith(map[string]notion.PropertyValue{
		LifeAreaProperty: relationValue("la-1"),
	})
	cat := Category{Kind: CategoryProject, ID: "proj-9"}
	props := BuildProperties("desc", "Arbeit", "2026-08-30T09:00:00.000Z", cat, editing)

	ids, ok := relationIDs(props, LifeAreaProperty)
	if !ok {
		t.Fatal("expected explicit life area clear")
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty relation, got %v", ids)
	}
}

func TestBuildPropertiesSwitchingToLifeAreaClearsProject(t *testing.T) {
	editing := momentWith(map[string]notion.PropertyValue{
		ProjectProperty: relationValue("proj-1"),
	})
	cat := Category{Kind: CategoryLifeArea, ID: "la-9"}
	props := BuildProperties("desc", "Privat", "2026-08-30T09:00:00.000Z", cat, editing)

	ids, ok := relationIDs(props, LifeAreaProperty)
	if !ok || len(ids) != 1 || ids[0] != "la-9" {
		t.Fatalf("expected single life area reference la-9, got %v (present=%v)", ids, ok)
	}
	cleared, ok := relationIDs(props, ProjectProperty)
	if !ok {
		t.Fatal("expected explicit project clear")
	}
	if len(cleared) != 0 {
		t.Fatalf("expected empty project relation, got %v", cleared)
	}
}

func TestBuildPropertiesEmptyCategoryWhileEditingClearsPresentFields(t *testing.T) {
	tests := []struct {
		name    string
		editing *Moment
		cleared []string
		absent  []string
	}{
		{
			name: "both fields present",
			editing: momentWith(map[string]notion.PropertyValue{
				ProjectProperty:  relationValue("proj-1"),
				LifeAreaProperty: relationValue(),
			}),
			cleared: []string{ProjectProperty, LifeAreaProperty},
		},
		{
			name: "only project present",
			editing: momentWith(map[string]notion.PropertyValue{
				ProjectProperty: relationValue("proj-1"),
			}),
			cleared: []string{ProjectProperty},
			absent:  []string{LifeAreaProperty},
		},
		{
			name:    "no relation fields on original",
			editing: momentWith(map[string]notion.PropertyValue{}),
			absent:  []string{ProjectProperty, LifeAreaProperty},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			props := BuildProperties("desc", "Arbeit", "2026-08-30T09:00:00.000Z", Category{}, tc.editing)
			for _, field := range tc.cleared {
				ids, ok := relationIDs(props, field)
				if !ok {
					t.Errorf("expected %s to be cleared explicitly", field)
					continue
				}
				if len(ids) != 0 {
					t.Errorf("expected %s to be empty, got %v", field, ids)
				}
			}
			for _, field := range tc.absent {
				if _, ok := props[field]; ok {
					t.Errorf("expected %s to be omitted", field)
				}
			}
		})
	}
}
