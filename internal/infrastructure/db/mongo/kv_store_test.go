package mongo

import (
	"context"
	"os"
	"testing"
	"time"
)

// Requires a reachable MongoDB; set MONGO_TEST_URI to run.
func TestKVStore_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()

	store, err := Open(ctx, Config{
		URI:        uri,
		Database:   "bemshell_test",
		Collection: "kv_" + time.Now().Format("150405"),
		Timeout:    5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		_ = store.coll.Drop(ctx)
		_ = store.Close()
	}()

	if err := store.Set(ctx, "user", `{"id":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "user", `{"id":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, found, err := store.Get(ctx, "user"); err != nil || !found || v != `{"id":2}` {
		t.Fatalf("get = %q found=%v err=%v", v, found, err)
	}
	if err := store.Delete(ctx, "user", "access_token"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "user"); found {
		t.Fatalf("key survived delete")
	}
}
