package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/terry1921/stickerstore/pkg/router"
)

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestNamedRoutesAndDispatch(t *testing.T) {
	r := router.New()
	r.Get("/products", "products.list", okHandler("products"))
	r.Post("/submit-blog", "articles.submit", okHandler("submitted"))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/products")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(infos))
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var sawMiddleware bool
	guard := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawMiddleware = true
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	dashboard := r.Group("/dashboard", guard)
	dashboard.Get("/articles", "dashboard.articles", okHandler("articles"))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/dashboard/articles")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !sawMiddleware {
		t.Error("expected group middleware to run")
	}
}

func TestURLReversal(t *testing.T) {
	r := router.New()
	r.Patch("/dashboard/articles/{id}/status", "dashboard.articles.status", okHandler(""))

	got, err := r.URL("dashboard.articles.status", map[string]string{"id": "abc123"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	want := "/dashboard/articles/abc123/status"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if _, err := r.URL("does.not.exist", nil); err == nil {
		t.Error("expected unknown route name to error")
	}
}

func TestParamExtraction(t *testing.T) {
	r := router.New()
	var gotID string
	r.Get("/articles/{id}", "articles.show", func(w http.ResponseWriter, req *http.Request) {
		gotID = router.Param(req, "id")
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/articles/xyz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if gotID != "xyz" {
		t.Errorf("expected param xyz, got %q", gotID)
	}
}
