package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam222343/doantion-app/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("donation")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	err := migrateMongo()
	if nil != err {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, _ := mongo.NewClient(opts)
	_ = client.Connect(ctx)
	defer client.Disconnect(ctx)

	db := client.Database(viper.GetString("mongo.database"))

	if err := setupCollectionUser(ctx, db); err != nil {
		fmt.Println("failed to set up collection `users`: ", err)
		return err
	}

	if err := setupCollectionDonationRequest(ctx, db); err != nil {
		fmt.Println("failed to set up collection `donation_requests`: ", err)
		return err
	}

	return nil
}

// backfill fills a field on every document which misses it
func backfill(ctx context.Context, c *mongo.Collection, field string, value interface{}) error {
	result, err := c.UpdateMany(ctx,
		bson.M{field: bson.M{"$exists": false}},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return err
	}

	fmt.Printf("%s.%s: %d documents backfilled\n", c.Name(), field, result.ModifiedCount)
	return nil
}

// setupCollectionUser prepares the reputation fields for users created
// before reputation versioning
func setupCollectionUser(ctx context.Context, db *mongo.Database) error {
	fmt.Println("initialize users collection")
	c := db.Collection(schema.UserCollection)

	for field, value := range map[string]interface{}{
		"points":         0,
		"level":          1,
		"version":        0,
		"badges":         bson.A{},
		"pending_badges": bson.A{},
	} {
		if err := backfill(ctx, c, field, value); err != nil {
			return err
		}
	}

	return nil
}

func setupCollectionDonationRequest(ctx context.Context, db *mongo.Database) error {
	fmt.Println("initialize donation_requests collection")
	return backfill(ctx, db.Collection(schema.DonationRequestCollection), "thanks_sent", false)
}
