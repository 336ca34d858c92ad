// Package graphql exposes a read-only query surface over the catalogue
// and the public blog, for storefront clients that prefer one roundtrip
// over several REST calls.
package graphql

import (
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/services"
	gql "github.com/terry1921/stickerstore/pkg/graphql"
)

var timestampType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Timestamp",
	Fields: graphql.Fields{
		"seconds":     &graphql.Field{Type: graphql.Int},
		"nanoseconds": &graphql.Field{Type: graphql.Int},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"title":       &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"link":        &graphql.Field{Type: graphql.String},
		"imageUrl":    &graphql.Field{Type: graphql.String},
		"label":       &graphql.Field{Type: graphql.String},
		"bullets":     &graphql.Field{Type: graphql.NewList(graphql.String)},
		"createdAt":   &graphql.Field{Type: timestampType},
	},
})

var articleType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Article",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.String},
		"title":            &graphql.Field{Type: graphql.String},
		"author":           &graphql.Field{Type: graphql.String},
		"shortDescription": &graphql.Field{Type: graphql.String},
		"link":             &graphql.Field{Type: graphql.String},
		"date":             &graphql.Field{Type: timestampType},
		"status":           &graphql.Field{Type: graphql.String},
		"createdAt":        &graphql.Field{Type: timestampType},
	},
})

// NewSchema builds the storefront query schema over the given services.
func NewSchema(products *services.ProductService, articles *services.ArticleService) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"limit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var limit int64
					if n, ok := p.Args["limit"].(int); ok {
						limit = int64(n)
					}
					out := []map[string]interface{}{}
					for _, prod := range products.List(p.Context, limit) {
						out = append(out, productMap(prod))
					}
					return out, nil
				},
			},
			"articles": &graphql.Field{
				Type: graphql.NewList(articleType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out := []map[string]interface{}{}
					for _, a := range articles.Accepted(p.Context) {
						out = append(out, articleMap(a))
					}
					return out, nil
				},
			},
		},
	})
	return gql.NewSchema(rootQuery)
}

func productMap(p models.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":          strconv.FormatInt(p.ID, 10),
		"title":       p.Title,
		"description": p.Description,
		"link":        p.Link,
		"imageUrl":    p.ImageURL,
		"label":       string(p.Label),
		"bullets":     p.Bullets,
		"createdAt":   timestampMap(models.NewTimestamp(p.CreatedAt)),
	}
}

func articleMap(a models.Article) map[string]interface{} {
	return map[string]interface{}{
		"id":               a.ID,
		"title":            a.Title,
		"author":           a.Author,
		"shortDescription": a.ShortDescription,
		"link":             a.Link,
		"date":             timestampMap(models.NewTimestamp(a.Date)),
		"status":           string(a.Status),
		"createdAt":        timestampMap(models.NewTimestamp(a.CreatedAt)),
	}
}

func timestampMap(ts models.Timestamp) map[string]interface{} {
	return map[string]interface{}{
		"seconds":     ts.Seconds,
		"nanoseconds": ts.Nanoseconds,
	}
}
