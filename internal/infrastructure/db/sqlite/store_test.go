package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	if _, found, err := store.Get(ctx, "user"); err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}
	if err := store.Set(ctx, "user", `{"id":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "user", `{"id":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, found, err := store.Get(ctx, "user")
	if err != nil || !found || v != `{"id":2}` {
		t.Fatalf("get = %q found=%v err=%v", v, found, err)
	}

	if err := store.Set(ctx, "access_token", "tok"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := store.Delete(ctx, "user", "access_token"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, k := range []string{"user", "access_token"} {
		if _, found, _ := store.Get(ctx, k); found {
			t.Fatalf("%s survived delete", k)
		}
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	if err := store.Set(ctx, "hasSeenOnboarding", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if v, found, _ := reopened.Get(ctx, "hasSeenOnboarding"); !found || v != "true" {
		t.Fatalf("value lost across reopen: %q found=%v", v, found)
	}
}
