package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("secret-token", WithBaseURL(srv.URL)), srv
}

func TestEmptyTokenNeverReachesTheNetwork(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	c.token = ""

	if _, err := c.Query(context.Background(), "db", nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := c.ValidateToken(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no requests, saw %d", hits.Load())
	}
}

func TestRequestHeaders(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("authorization header %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got != "2022-06-28" {
			t.Errorf("version header %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	if ok, err := c.ValidateToken(context.Background()); err != nil || !ok {
		t.Fatalf("expected valid token, got ok=%v err=%v", ok, err)
	}
}

func TestValidateTokenUnauthorizedIsNotAnError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	ok, err := c.ValidateToken(context.Background())
	if err != nil {
		t.Fatalf("a rejected token is a clean negative, got %v", err)
	}
	if ok {
		t.Fatal("expected ok=false")
	}
}

func TestValidateTokenUnreachableIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New("secret-token", WithBaseURL(srv.URL))

	ok, err := c.ValidateToken(context.Background())
	if ok {
		t.Fatal("an unreachable service must not look like a valid token")
	}
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"code":"validation_error","message":"body failed validation"}`)
	})

	_, err := c.Query(context.Background(), "db", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T %v", err, err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Code != "validation_error" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestQuerySendsPageSizeAndFilter(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/db-1/query" {
			t.Errorf("path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = io.WriteString(w, `{"results":[{"id":"p-1"},{"id":"p-2"}]}`)
	})

	filter := StatusEquals("Status", "Aktiv")
	pages, err := c.Query(context.Background(), "db-1", filter)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 || pages[0].ID != "p-1" {
		t.Fatalf("unexpected pages %+v", pages)
	}

	if got, _ := body["page_size"].(float64); got != 100 {
		t.Fatalf("page_size %v", body["page_size"])
	}
	f, _ := body["filter"].(map[string]any)
	if f["property"] != "Status" {
		t.Fatalf("filter %v", body["filter"])
	}
}

func TestQueryWithoutFilterOmitsTheField(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"results":[]}`)
	})

	if _, err := c.Query(context.Background(), "db-1", nil); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["filter"]; ok {
		t.Fatalf("expected no filter key, got %v", body["filter"])
	}
}

func TestCreatePageTargetsTheDatabaseParent(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pages" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"id":"new-page"}`)
	})

	props := Properties{"Name": TitleProperty("coffee")}
	page, err := c.CreatePage(context.Background(), "db-moments", props)
	if err != nil {
		t.Fatal(err)
	}
	if page.ID != "new-page" {
		t.Fatalf("page id %q", page.ID)
	}

	parent, _ := body["parent"].(map[string]any)
	if parent["database_id"] != "db-moments" {
		t.Fatalf("parent %v", body["parent"])
	}
}

func TestUpdatePagePatchesProperties(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/pages/p-7" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"id":"p-7"}`)
	})

	props := Properties{"Projekt": RelationProperty()}
	if _, err := c.UpdatePage(context.Background(), "p-7", props); err != nil {
		t.Fatal(err)
	}

	properties, _ := body["properties"].(map[string]any)
	projekt, _ := properties["Projekt"].(map[string]any)
	refs, ok := projekt["relation"].([]any)
	if !ok {
		t.Fatalf("expected a relation array on the wire, got %v", projekt["relation"])
	}
	if len(refs) != 0 {
		t.Fatalf("expected an empty relation array to clear the field, got %v", refs)
	}
}

func TestSearchDatabasesFlattensTitles(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"results":[
			{"id":"db-1","title":[{"plain_text":"Momente "},{"plain_text":"2026"}]},
			{"id":"db-2","title":[]}
		]}`)
	})

	refs, err := c.SearchDatabases(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected two refs, got %v", refs)
	}
	if refs[0].Title != "Momente 2026" {
		t.Fatalf("title %q", refs[0].Title)
	}
	if refs[1].Title != "" {
		t.Fatalf("expected empty title, got %q", refs[1].Title)
	}

	f, _ := body["filter"].(map[string]any)
	if f["property"] != "object" || f["value"] != "database" {
		t.Fatalf("search filter %v", body["filter"])
	}
}

func TestRetrieveDatabaseExposesSelectOptions(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/db-1" {
			t.Errorf("path %q", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{
			"id":"db-1",
			"properties":{
				"Typ":{"type":"select","select":{"options":[
					{"id":"1","name":"Arbeit","color":"blue"},
					{"id":"2","name":"Privat","color":"green"}
				]}}
			}
		}`)
	})

	db, err := c.RetrieveDatabase(context.Background(), "db-1")
	if err != nil {
		t.Fatal(err)
	}
	opts := db.SelectOptions("Typ")
	if len(opts) != 2 || opts[0].Name != "Arbeit" || opts[1].Color != "green" {
		t.Fatalf("options %+v", opts)
	}
	if got := db.SelectOptions("Missing"); got != nil {
		t.Fatalf("expected nil for an unknown property, got %+v", got)
	}
}
