package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/pkg/database"
)

// ArticleRepository handles persistence for blog submissions.
type ArticleRepository interface {
	// Create persists a and fills in its generated ID.
	Create(ctx context.Context, a *models.Article) error
	// List returns all articles newest first, regardless of status.
	List(ctx context.Context) ([]models.Article, error)
	// FindByID looks up an article by its hex ID.
	FindByID(ctx context.Context, id string) (models.Article, error)
	// UpdateStatus moves an article to a new moderation state.
	UpdateStatus(ctx context.Context, id string, status models.ArticleStatus) error
}

type mongoArticleRepository struct {
	articles *mongo.Collection
}

// NewArticleRepository returns an ArticleRepository backed by the shared
// Mongo connection.
func NewArticleRepository() ArticleRepository {
	return &mongoArticleRepository{
		articles: database.DB.Collection(database.Articles),
	}
}

func (r *mongoArticleRepository) Create(ctx context.Context, a *models.Article) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID().Hex()
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := r.articles.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("repositories: insert article: %w", err)
	}
	return nil
}

func (r *mongoArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.articles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: list articles: %w", err)
	}
	defer cur.Close(ctx)

	articles := []models.Article{}
	if err := cur.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("repositories: decode articles: %w", err)
	}
	return articles, nil
}

func (r *mongoArticleRepository) FindByID(ctx context.Context, id string) (models.Article, error) {
	var a models.Article
	err := r.articles.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return a, ErrNotFound
	}
	if err != nil {
		return a, fmt.Errorf("repositories: find article: %w", err)
	}
	return a, nil
}

func (r *mongoArticleRepository) UpdateStatus(ctx context.Context, id string, status models.ArticleStatus) error {
	res, err := r.articles.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("repositories: update article status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
