package documents

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect builds the process-wide mongo client. Connections are established
// lazily per operation; the short ping here only surfaces configuration
// mistakes early instead of on the first request.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, &StoreError{Op: "connect", Collection: "", Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, &StoreError{Op: "ping", Collection: "", Err: err}
	}

	return client, nil
}
