package indexer

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Entry is one indexed record: an embedding plus the flat metadata of the
// appointment it represents, keyed by the composite session-date-time ID.
type Entry struct {
	ID       string            `bson:"_id"`
	Values   []float32         `bson:"values"`
	Metadata map[string]string `bson:"metadata"`
}

// Match is one search hit with its cosine similarity score.
type Match struct {
	Entry Entry
	Score float64
}

// MongoIndexer stores embeddings in a Mongo collection and ranks them by
// cosine similarity.
type MongoIndexer struct {
	coll *mongo.Collection
}

func NewMongoIndexer(db *mongo.Database) *MongoIndexer {
	return &MongoIndexer{coll: db.Collection("booking_index")}
}

// Upsert writes the entry, replacing any previous vector under the same ID.
func (x *MongoIndexer) Upsert(ctx context.Context, id string, vector []float32, metadata map[string]string) error {
	entry := Entry{ID: id, Values: vector, Metadata: metadata}
	opts := options.Replace().SetUpsert(true)
	if _, err := x.coll.ReplaceOne(ctx, bson.M{"_id": id}, entry, opts); err != nil {
		return fmt.Errorf("upsert index entry %s: %w", id, err)
	}
	return nil
}

// Search returns the k entries closest to the query vector. The index stays
// small (one entry per booking), so a full scan with in-process ranking is
// enough; no server-side vector search is required.
func (x *MongoIndexer) Search(ctx context.Context, vector []float32, k int) ([]Match, error) {
	cursor, err := x.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("scan index: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode index entries: %w", err)
	}

	matches := make([]Match, 0, len(entries))
	for _, entry := range entries {
		matches = append(matches, Match{Entry: entry, Score: CosineSimilarity(vector, entry.Values)})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// 0 when either has no magnitude or the dimensions differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
