package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

const defaultKVCollection = "device_session"

// KVStore keeps session keys as one document per key.
type KVStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type kvDoc struct {
	Key       string `bson:"_id"`
	Value     string `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

// NewKVStore stores keys in collection of db. An empty collection name
// defaults to "device_session".
func NewKVStore(client *mongo.Client, db *mongo.Database, collection string) *KVStore {
	if collection == "" {
		collection = defaultKVCollection
	}
	return &KVStore{client: client, coll: db.Collection(collection)}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	doc := kvDoc{Key: key, Value: value, UpdatedAt: time.Now().Unix()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}}); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *KVStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ ports.KeyValueStore = (*KVStore)(nil)
