package services

import (
	"context"
	"strings"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/repositories"
	"github.com/terry1921/stickerstore/pkg/auth"
	"github.com/terry1921/stickerstore/pkg/logger"
)

// ProductService owns the catalogue: sequential ID allocation, creation
// and the public listing.
type ProductService struct {
	repo repositories.ProductRepository
}

func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create allocates the next product ID and persists the product. Only
// admins may create products; everyone else gets ErrForbidden.
func (s *ProductService) Create(ctx context.Context, principal *auth.Claims, in models.ProductInput) (models.Product, error) {
	if principal == nil || principal.Role != models.RoleAdmin {
		return models.Product{}, ErrForbidden
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Link:        in.Link,
		ImageURL:    in.ImageURL,
		Label:       models.LabelType(in.Label),
		Bullets:     trimBullets(in.Bullets),
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return models.Product{}, err
	}

	logger.WithCtx(ctx).Info("product created", "id", p.ID, "label", p.Label)
	return p, nil
}

// List returns the catalogue newest first. Repository failures degrade
// to an empty listing so the storefront never renders an error page, and
// records missing their display fields are dropped rather than rendered
// half-empty.
func (s *ProductService) List(ctx context.Context, limit int64) []models.Product {
	products, err := s.repo.List(ctx, limit)
	if err != nil {
		logger.WithCtx(ctx).Error("product listing failed", "error", err)
		return []models.Product{}
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID <= 0 || p.Title == "" || p.ImageURL == "" || p.Link == "" {
			logger.WithCtx(ctx).Warn("skipping malformed product record", "doc_id", p.DocID)
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the n newest products for the storefront landing page.
func (s *ProductService) Featured(ctx context.Context, n int64) []models.Product {
	return s.List(ctx, n)
}

func trimBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if t := strings.TrimSpace(b); t != "" {
			out = append(out, t)
		}
	}
	return out
}
