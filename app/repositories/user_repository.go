package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/pkg/database"
)

// UserRepository handles database operations for User.
type UserRepository interface {
	// Create persists a new user record. Fails if the email is taken.
	Create(ctx context.Context, u *models.User) error
	// EnsureUser creates the record for uid if it does not exist yet.
	// An existing record is left untouched, role included.
	EnsureUser(ctx context.Context, u *models.User) error
	// FindByUID looks up a user by their account UID.
	FindByUID(ctx context.Context, uid string) (models.User, error)
	// FindByEmail looks up a user by their email address.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// MarkEmailVerified flips the verification flag for uid.
	MarkEmailVerified(ctx context.Context, uid string) error
}

type mongoUserRepository struct {
	users *mongo.Collection
}

// NewUserRepository returns a UserRepository backed by the shared Mongo
// connection.
func NewUserRepository() UserRepository {
	return &mongoUserRepository{
		users: database.DB.Collection(database.Users),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if _, err := r.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("repositories: insert user: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) EnsureUser(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	// $setOnInsert keeps an existing record intact: a returning user's
	// role and timestamps never get rewritten by sign-in.
	_, err := r.users.UpdateOne(ctx,
		bson.M{"_id": u.UID},
		bson.M{"$setOnInsert": bson.M{
			"name":          u.Name,
			"email":         u.Email,
			"rol":           u.Role,
			"emailVerified": u.EmailVerified,
			"createdAt":     now,
			"updatedAt":     now,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("repositories: ensure user: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByUID(ctx context.Context, uid string) (models.User, error) {
	var u models.User
	err := r.users.FindOne(ctx, bson.M{"_id": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, ErrNotFound
	}
	if err != nil {
		return u, fmt.Errorf("repositories: find user: %w", err)
	}
	return u, nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, ErrNotFound
	}
	if err != nil {
		return u, fmt.Errorf("repositories: find user by email: %w", err)
	}
	return u, nil
}

func (r *mongoUserRepository) MarkEmailVerified(ctx context.Context, uid string) error {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{
			"emailVerified": true,
			"updatedAt":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("repositories: mark email verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
