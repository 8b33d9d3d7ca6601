package registry

import (
	"context"
	"testing"
)

func stubFunc(result string) Func {
	return func(ctx context.Context, args []string) (string, error) {
		return result, nil
	}
}

func TestRegistry_Empty(t *testing.T) {
	r := New()
	if got := r.All(); len(got) != 0 {
		t.Errorf("expected empty registry, got %d definitions", len(got))
	}
	if got := r.ByCategory("filesystem"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
	if _, ok := r.Get("anything"); ok {
		t.Error("Get on empty registry should report not found")
	}
}

func TestRegistry_AllPreservesOrder(t *testing.T) {
	r := New()
	names := []string{"alpha", "beta", "gamma", "delta"}
	for _, name := range names {
		r.Register(Definition{Name: name, Func: stubFunc(name)})
	}

	got := r.All()
	if len(got) != len(names) {
		t.Fatalf("expected %d definitions, got %d", len(names), len(got))
	}
	for i, name := range names {
		if got[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	r := New()
	r.Register(Definition{Name: "one", Func: stubFunc("")})
	r.Register(Definition{Name: "two", Func: stubFunc("")})

	got := r.All()
	got[0].Name = "mutated"

	if r.All()[0].Name != "one" {
		t.Error("mutating the returned slice should not affect the registry")
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	r := New()
	r.Register(Definition{Name: "read_file", Category: "filesystem", Func: stubFunc("")})
	r.Register(Definition{Name: "fetch_url", Category: "network", Func: stubFunc("")})
	r.Register(Definition{Name: "list_directory", Category: "filesystem", Func: stubFunc("")})

	fs := r.ByCategory("filesystem")
	if len(fs) != 2 {
		t.Fatalf("expected 2 filesystem tools, got %d", len(fs))
	}
	if fs[0].Name != "read_file" || fs[1].Name != "list_directory" {
		t.Errorf("expected relative order preserved, got %q, %q", fs[0].Name, fs[1].Name)
	}
}

func TestRegistry_ByCategoryCaseSensitive(t *testing.T) {
	r := New()
	r.Register(Definition{Name: "read_file", Category: "filesystem", Func: stubFunc("")})

	if got := r.ByCategory("Filesystem"); len(got) != 0 {
		t.Errorf("category match must be case-sensitive, got %d matches", len(got))
	}
}

func TestRegistry_ByCategoryNoMatch(t *testing.T) {
	r := New()
	r.Register(Definition{Name: "read_file", Category: "filesystem", Func: stubFunc("")})

	got := r.ByCategory("database")
	if len(got) != 0 {
		t.Errorf("expected empty result for unknown category, got %d", len(got))
	}
}

func TestRegistry_GetLastWinsOnDuplicate(t *testing.T) {
	r := New()
	r.Register(Definition{Name: "read_file", Description: "first", Func: stubFunc("")})
	r.Register(Definition{Name: "read_file", Description: "second", Func: stubFunc("")})

	def, ok := r.Get("read_file")
	if !ok {
		t.Fatal("expected read_file to be found")
	}
	if def.Description != "second" {
		t.Errorf("expected last registration to win, got %q", def.Description)
	}

	// Both duplicates are retained in order.
	if r.Len() != 2 {
		t.Errorf("expected both duplicates retained, got %d", r.Len())
	}
}

func TestRegistry_Names(t *testing.T) {
	r := New()
	r.Register(Definition{Name: "read_file", Func: stubFunc("")})
	r.Register(Definition{Name: "create_file", Func: stubFunc("")})

	names := r.Names()
	if len(names) != 2 || names[0] != "read_file" || names[1] != "create_file" {
		t.Errorf("unexpected names: %v", names)
	}
}
