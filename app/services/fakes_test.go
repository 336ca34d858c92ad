package services_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/repositories"
)

// fakeProductRepo is an in-memory ProductRepository with a sequential
// counter guarded the same way the backing store guards it.
type fakeProductRepo struct {
	mu       sync.Mutex
	counter  int64
	products []models.Product

	failNextID bool
	failList   bool
}

func (f *fakeProductRepo) NextID(ctx context.Context) (int64, error) {
	if f.failNextID {
		return 0, errors.New("counter unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	return f.counter, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	p.DocID = strconv.FormatInt(p.ID, 10)
	p.CreatedAt = now
	p.UpdatedAt = now
	// Prepend: listings are newest first.
	f.products = append([]models.Product{*p}, f.products...)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, limit int64) ([]models.Product, error) {
	if f.failList {
		return nil, errors.New("store unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

// fakeArticleRepo is an in-memory ArticleRepository.
type fakeArticleRepo struct {
	mu       sync.Mutex
	seq      int
	articles []models.Article

	failList bool
}

func (f *fakeArticleRepo) Create(ctx context.Context, a *models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	now := time.Now().UTC()
	a.ID = "art-" + strconv.Itoa(f.seq)
	a.CreatedAt = now
	a.UpdatedAt = now
	f.articles = append([]models.Article{*a}, f.articles...)
	return nil
}

func (f *fakeArticleRepo) List(ctx context.Context) ([]models.Article, error) {
	if f.failList {
		return nil, errors.New("store unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Article, len(f.articles))
	copy(out, f.articles)
	return out, nil
}

func (f *fakeArticleRepo) FindByID(ctx context.Context, id string) (models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Article{}, repositories.ErrNotFound
}

func (f *fakeArticleRepo) UpdateStatus(ctx context.Context, id string, status models.ArticleStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.articles[i].Status = status
			f.articles[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	f.users[u.UID] = *u
	return nil
}

func (f *fakeUserRepo) EnsureUser(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.UID]; ok {
		return nil
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	f.users[u.UID] = *u
	return nil
}

func (f *fakeUserRepo) FindByUID(ctx context.Context, uid string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUserRepo) MarkEmailVerified(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return repositories.ErrNotFound
	}
	u.EmailVerified = true
	f.users[uid] = u
	return nil
}
