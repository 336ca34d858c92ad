package validate_test

import (
	"testing"

	"github.com/terry1921/stickerstore/pkg/validate"
)

type productInput struct {
	Title    string   `json:"title"    validate:"required,min=3"`
	Link     string   `json:"link"     validate:"required,url"`
	ImageURL string   `json:"imageUrl" validate:"required,url"`
	Label    string   `json:"label"    validate:"required,in=Sticker,Button,Magnet"`
	Bullets  []string `json:"bullets"  validate:"nullable,max_items=5,each_min=1"`
}

func validProduct() productInput {
	return productInput{
		Title:    "Holographic cat",
		Link:     "https://shop.example.com/p/1",
		ImageURL: "https://cdn.example.com/cat.png",
		Label:    "Sticker",
		Bullets:  []string{"Waterproof", "Die-cut"},
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(validProduct())
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"title", "link", "imageUrl", "label"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestMinRule(t *testing.T) {
	in := validProduct()
	in.Title = "ab"
	errs := validate.Struct(in)
	if _, ok := errs["title"]; !ok {
		t.Error("expected title min error")
	}
}

func TestURLRule(t *testing.T) {
	in := validProduct()
	in.Link = "not a url"
	errs := validate.Struct(in)
	if _, ok := errs["link"]; !ok {
		t.Error("expected link url error")
	}

	in = validProduct()
	in.Link = "ftp://example.com/file"
	errs = validate.Struct(in)
	if _, ok := errs["link"]; !ok {
		t.Error("expected non-http scheme to fail")
	}
}

func TestInRule(t *testing.T) {
	in := validProduct()
	in.Label = "Poster"
	errs := validate.Struct(in)
	if _, ok := errs["label"]; !ok {
		t.Error("expected label in error")
	}

	in.Label = "Magnet"
	errs = validate.Struct(in)
	if validate.HasErrors(errs) {
		t.Errorf("expected Magnet to be accepted, got: %v", errs)
	}
}

func TestMaxItemsRule(t *testing.T) {
	in := validProduct()
	in.Bullets = []string{"a", "b", "c", "d", "e"}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected five bullets to pass, got: %v", errs)
	}

	in.Bullets = append(in.Bullets, "f")
	errs := validate.Struct(in)
	if _, ok := errs["bullets"]; !ok {
		t.Error("expected sixth bullet to be rejected")
	}
}

func TestEachMinRule(t *testing.T) {
	in := validProduct()
	in.Bullets = []string{"fine", "   "}
	errs := validate.Struct(in)
	if _, ok := errs["bullets"]; !ok {
		t.Error("expected blank bullet to be rejected")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	in := validProduct()
	in.Bullets = nil
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("expected nil bullets to pass, got: %v", errs)
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password" validate:"required,min=8,confirmed"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "different"})
	if _, ok := errs["password"]; !ok {
		t.Error("expected mismatched confirmation to fail")
	}

	errs = validate.Struct(in{Password: "secret123", PasswordConfirmation: "secret123"})
	if validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass, got: %v", errs)
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}
