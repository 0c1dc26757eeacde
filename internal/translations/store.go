package translations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads translated posts from a MongoDB collection. The connection is
// established lazily on first use and reused for the rest of the process;
// repeated connects are no-ops.
type Store struct {
	uri        string
	database   string
	collection string
	log        *slog.Logger

	connectOnce sync.Once
	connectErr  error
	client      *mongo.Client
}

func NewStore(uri, database, collection string, log *slog.Logger) *Store {
	return &Store{
		uri:        uri,
		database:   database,
		collection: collection,
		log:        log,
	}
}

func (s *Store) connect(ctx context.Context) (*mongo.Collection, error) {
	s.connectOnce.Do(func() {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
		if err != nil {
			s.connectErr = fmt.Errorf("connect to mongo: %w", err)
			return
		}

		if err := client.Ping(ctx, nil); err != nil {
			s.connectErr = fmt.Errorf("ping mongo: %w", err)
			return
		}

		s.client = client
		s.log.Info("connected to translation store", "database", s.database, "collection", s.collection)
	})

	if s.connectErr != nil {
		return nil, s.connectErr
	}

	return s.client.Database(s.database).Collection(s.collection), nil
}

// PostBySlug returns the translation whose slug matches case-insensitively,
// or (nil, nil) when none exists. Translation is optional per post, so
// absence is normal control flow.
func (s *Store) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	coll, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	var post Post
	err = coll.FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find translation by slug: %w", err)
	}

	return &post, nil
}

// AllPosts returns every completed translation. Documents without a
// non-empty translated title are still mid-pipeline and excluded.
func (s *Store) AllPosts(ctx context.Context) ([]Post, error) {
	coll, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"translatedTitle": bson.M{"$exists": true, "$ne": ""}}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find translations: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}

	return posts, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
