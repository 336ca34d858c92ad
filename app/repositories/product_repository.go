package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/pkg/database"
)

// counterKey is the counters document that backs product ID allocation.
const counterKey = "products"

// ProductRepository handles persistence for catalogue products.
type ProductRepository interface {
	// NextID atomically allocates the next sequential product ID.
	// The first allocation returns 1.
	NextID(ctx context.Context) (int64, error)
	// Create persists p under the decimal string of its ID.
	Create(ctx context.Context, p *models.Product) error
	// List returns products newest first. limit <= 0 means no cap.
	List(ctx context.Context, limit int64) ([]models.Product, error)
	// FindByID looks up a product by its sequential ID.
	FindByID(ctx context.Context, id int64) (models.Product, error)
}

type mongoProductRepository struct {
	products *mongo.Collection
	counters *mongo.Collection
}

// NewProductRepository returns a ProductRepository backed by the shared
// Mongo connection.
func NewProductRepository() ProductRepository {
	return &mongoProductRepository{
		products: database.DB.Collection(database.Products),
		counters: database.DB.Collection(database.Counters),
	}
}

func (r *mongoProductRepository) NextID(ctx context.Context) (int64, error) {
	session, err := database.Client.StartSession()
	if err != nil {
		return 0, fmt.Errorf("repositories: start session: %w", err)
	}
	defer session.EndSession(ctx)

	// The increment and the read of the new value happen in one
	// findOneAndUpdate, so two concurrent allocations can never observe
	// the same counter state. The transaction keeps the allocation tied
	// to the session for retryable-write semantics.
	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		opts := options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After)

		var doc struct {
			CurrentID int64 `bson:"currentId"`
		}
		err := r.counters.FindOneAndUpdate(sc,
			bson.M{"_id": counterKey},
			bson.M{"$inc": bson.M{"currentId": 1}},
			opts,
		).Decode(&doc)
		if err != nil {
			return nil, err
		}
		return doc.CurrentID, nil
	})
	if err != nil {
		return 0, fmt.Errorf("repositories: allocate product id: %w", err)
	}
	return result.(int64), nil
}

func (r *mongoProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now().UTC()
	p.DocID = strconv.FormatInt(p.ID, 10)
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Bullets == nil {
		p.Bullets = []string{}
	}
	if _, err := r.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("repositories: insert product: %w", err)
	}
	return nil
}

func (r *mongoProductRepository) List(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: list products: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("repositories: decode products: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) FindByID(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	err := r.products.FindOne(ctx, bson.M{"_id": strconv.FormatInt(id, 10)}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return p, ErrNotFound
	}
	if err != nil {
		return p, fmt.Errorf("repositories: find product: %w", err)
	}
	return p, nil
}
