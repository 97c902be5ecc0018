// Package documents is a thin uniform CRUD wrapper over one mongo
// database/collection pair. Driver failures never leak: every operation wraps
// its cause into a StoreError naming the operation and collection.
package documents

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is bound to one (database, collection) pair for its lifetime.
// The underlying client is process-wide and safe for concurrent use.
type Collection struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewCollection binds an accessor to database/collection.
func NewCollection(client *mongo.Client, database, collection string) *Collection {
	return &Collection{client: client, database: database, collection: collection}
}

func (c *Collection) coll() *mongo.Collection {
	return c.client.Database(c.database).Collection(c.collection)
}

// defaultProjection suppresses the internal identifier unless the caller
// asks for specific fields.
func defaultProjection(projection bson.M) bson.M {
	if projection == nil {
		return bson.M{"_id": 0}
	}
	return projection
}

// FindOne returns the first matching document, or nil when nothing matches.
func (c *Collection) FindOne(ctx context.Context, query bson.M, projection bson.M) (bson.M, error) {
	opts := options.FindOne().SetProjection(defaultProjection(projection))

	var doc bson.M
	err := c.coll().FindOne(ctx, query, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "find_one", Collection: c.collection, Err: err}
	}
	return doc, nil
}

// FindOptions tunes a Find call. Sort entries are (field, 1|-1) pairs applied
// in order.
type FindOptions struct {
	Projection bson.M
	Sort       bson.D
	Skip       int64
	Limit      int64
}

// Find returns every matching document. The cursor is drained before
// returning; a fresh call re-issues the query.
func (c *Collection) Find(ctx context.Context, query bson.M, fo FindOptions) ([]bson.M, error) {
	opts := options.Find().
		SetProjection(defaultProjection(fo.Projection)).
		SetSkip(fo.Skip)
	if len(fo.Sort) > 0 {
		opts = opts.SetSort(fo.Sort)
	}
	if fo.Limit > 0 {
		opts = opts.SetLimit(fo.Limit)
	}

	cursor, err := c.coll().Find(ctx, query, opts)
	if err != nil {
		return nil, &StoreError{Op: "find", Collection: c.collection, Err: err}
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &StoreError{Op: "find", Collection: c.collection, Err: err}
	}
	return docs, nil
}

// InsertOne writes a document and returns the generated identifier.
func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (interface{}, error) {
	res, err := c.coll().InsertOne(ctx, doc)
	if err != nil {
		return nil, &StoreError{Op: "insert_one", Collection: c.collection, Err: err}
	}
	return res.InsertedID, nil
}

// InsertMany writes documents and returns the generated identifiers.
func (c *Collection) InsertMany(ctx context.Context, docs []interface{}) ([]interface{}, error) {
	res, err := c.coll().InsertMany(ctx, docs)
	if err != nil {
		return nil, &StoreError{Op: "insert_many", Collection: c.collection, Err: err}
	}
	return res.InsertedIDs, nil
}

// UpdateOne patches the first document matching query and reports how many
// documents were modified. The patch always applies as a field-set of the
// named fields, never a full-document replace; see UnwrapSet.
func (c *Collection) UpdateOne(ctx context.Context, query bson.M, patch bson.M, upsert bool) (int64, error) {
	res, err := c.coll().UpdateOne(ctx, query,
		bson.M{"$set": UnwrapSet(patch)},
		options.Update().SetUpsert(upsert))
	if err != nil {
		return 0, &StoreError{Op: "update_one", Collection: c.collection, Err: err}
	}
	return res.ModifiedCount, nil
}

// UpdateMany patches every document matching query.
func (c *Collection) UpdateMany(ctx context.Context, query bson.M, patch bson.M, upsert bool) (int64, error) {
	res, err := c.coll().UpdateMany(ctx, query,
		bson.M{"$set": UnwrapSet(patch)},
		options.Update().SetUpsert(upsert))
	if err != nil {
		return 0, &StoreError{Op: "update_many", Collection: c.collection, Err: err}
	}
	return res.ModifiedCount, nil
}

// DeleteOne removes the first matching document.
func (c *Collection) DeleteOne(ctx context.Context, query bson.M) (int64, error) {
	res, err := c.coll().DeleteOne(ctx, query)
	if err != nil {
		return 0, &StoreError{Op: "delete_one", Collection: c.collection, Err: err}
	}
	return res.DeletedCount, nil
}

// DeleteMany removes every matching document.
func (c *Collection) DeleteMany(ctx context.Context, query bson.M) (int64, error) {
	res, err := c.coll().DeleteMany(ctx, query)
	if err != nil {
		return 0, &StoreError{Op: "delete_many", Collection: c.collection, Err: err}
	}
	return res.DeletedCount, nil
}

// Aggregate passes pipeline stages through to the store in order.
func (c *Collection) Aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error) {
	cursor, err := c.coll().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &StoreError{Op: "aggregate", Collection: c.collection, Err: err}
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &StoreError{Op: "aggregate", Collection: c.collection, Err: err}
	}
	return docs, nil
}

// UnwrapSet strips a "$set" envelope when the caller supplied one. Patches
// are always re-wrapped into a plain $set afterwards so the update can never
// escalate into arbitrary pipeline operators.
func UnwrapSet(patch bson.M) bson.M {
	if inner, ok := patch["$set"]; ok {
		switch v := inner.(type) {
		case bson.M:
			return v
		case map[string]interface{}:
			return bson.M(v)
		}
	}
	return patch
}
