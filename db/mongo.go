package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/config"
)

// NewMongoDatabase connects to MongoDB and returns the configured database handle.
// The caller owns the client and must Disconnect it on shutdown.
func NewMongoDatabase(cfg *config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, nil, apperror.NewDatabaseError("error connecting to mongodb", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, apperror.NewDatabaseError("error pinging mongodb", err)
	}

	return client, client.Database(cfg.Database), nil
}
