package navigate

import (
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "paths.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreAddFilterDelete(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Add("https://{var:domain}/wp-admin/options.php", "site options"); err != nil {
		t.Fatalf("add: %v", err)
	}
	count, err := store.Add("https://{var:domain}/wp-admin/edit.php?post={var:id}", "edit post")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if count != 2 {
		t.Fatalf("count=%d, want 2", count)
	}

	items, err := store.Filter("options")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(items) != 1 || items[0].Title != "site options" {
		t.Fatalf("items=%+v", items)
	}
	if items[0].Vars["url"] != "https://{var:domain}/wp-admin/options.php" {
		t.Fatalf("url var=%q", items[0].Vars["url"])
	}

	all, err := store.Filter("")
	if err != nil {
		t.Fatalf("filter all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all=%d", len(all))
	}
	if all[0].Title != "site options" {
		t.Fatalf("insertion order lost: %+v", all)
	}

	count, err = store.Delete("https://{var:domain}/wp-admin/options.php")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if count != 1 {
		t.Fatalf("count=%d, want 1", count)
	}
	if _, err := store.Delete("https://missing"); err != ErrNotFound {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestStoreUpdateAndDescription(t *testing.T) {
	store := openTestStore(t)

	url := "https://{var:domain}/wp-admin/plugins.php"
	if _, err := store.Add(url, "plugins"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := store.Update(url, "manage plugins"); err != nil {
		t.Fatalf("update: %v", err)
	}
	desc, err := store.Description(url)
	if err != nil {
		t.Fatalf("description: %v", err)
	}
	if desc != "manage plugins" {
		t.Fatalf("desc=%q", desc)
	}
	if _, err := store.Description("https://missing"); err != ErrNotFound {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if _, err := store.Update("https://missing", "x"); err != ErrNotFound {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestStoreImportJSON(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Add("https://kept", "already here"); err != nil {
		t.Fatalf("add: %v", err)
	}

	legacy := `{"items":[
		{"title":"already here","url":"https://kept","arg":"https://kept"},
		{"title":"from legacy","url":"https://legacy","arg":"https://legacy"},
		{"title":"arg only","arg":"https://argonly"}
	]}`
	imported, err := store.ImportJSON(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported != 2 {
		t.Fatalf("imported=%d, want 2", imported)
	}
	count, err := store.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count=%d, want 3", count)
	}
}

func TestWordpressDomain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "wp-admin keeps site subdirectory",
			url:  "https://example.com/blog/wp-admin/options.php",
			want: "example.com/blog",
		},
		{
			name: "wp-login",
			url:  "https://example.com/wp-login.php",
			want: "example.com",
		},
		{
			name: "localhost",
			url:  "http://localhost:8080/admin",
			want: "localhost:8080",
		},
		{
			name: "plain site",
			url:  "https://sub.example.com/page",
			want: "sub.example.com",
		},
		{
			name: "php query token skipped",
			url:  "https://example.com/index.php?p=1",
			want: "example.com",
		},
		{
			name: "no domain",
			url:  "nothing here",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordpressDomain(tt.url); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScriptFilterURL(t *testing.T) {
	template, domain := ScriptFilterURL("http://example.com/blog/wp-admin/options.php")
	if domain != "example.com/blog" {
		t.Fatalf("domain=%q", domain)
	}
	if template != "https://{var:domain}/wp-admin/options.php" {
		t.Fatalf("template=%q", template)
	}
}

func TestFillSubstitutions(t *testing.T) {
	stored := "https://{var:domain}/wp-admin/edit.php?post={var:id}"
	if !HasVarID(stored) {
		t.Fatal("expected id placeholder")
	}
	got := FillID(FillDomain(stored, "example.com"), "42")
	if got != "https://example.com/wp-admin/edit.php?post=42" {
		t.Fatalf("got %q", got)
	}
	if HasVarID(got) {
		t.Fatal("placeholder not substituted")
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://example.com/path", want: "example.com"},
		{in: "example.com/path", want: "example.com"},
		{in: "plain", want: "plain"},
	}
	for _, tt := range tests {
		if got := Domain(tt.in); got != tt.want {
			t.Fatalf("Domain(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
