package routes

import (
	"github.com/terry1921/stickerstore/app/controllers"
	appgraphql "github.com/terry1921/stickerstore/app/graphql"
	"github.com/terry1921/stickerstore/app/models"
	"github.com/terry1921/stickerstore/app/services"
	"github.com/terry1921/stickerstore/pkg/graphql"
	"github.com/terry1921/stickerstore/pkg/logger"
	"github.com/terry1921/stickerstore/pkg/middleware"
	"github.com/terry1921/stickerstore/pkg/rbac"
	"github.com/terry1921/stickerstore/pkg/router"
	"github.com/terry1921/stickerstore/pkg/ws"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Articles *services.ArticleService
	Topics   *services.TopicService
	Feed     *ws.Hub
}

// RegisterAPI mounts the full route table.
func RegisterAPI(r *router.Router, deps Deps) {
	authController := controllers.NewAuthController(deps.Auth)
	productController := controllers.NewProductController(deps.Products)
	articleController := controllers.NewArticleController(deps.Articles)
	topicController := controllers.NewTopicController(deps.Topics)
	storeController := controllers.NewStoreController(deps.Products)
	uploadController := controllers.NewUploadController()

	// Public storefront.
	r.Get("/", "store.home", storeController.Home)
	r.Get("/products", "products.list", productController.List)
	r.Get("/blog", "articles.accepted", articleController.Accepted)

	// Session lifecycle.
	r.Post("/register", "auth.register", authController.Register)
	r.Post("/login", "auth.login", authController.Login)
	r.Post("/login/google", "auth.login_google", authController.LoginGoogle)
	r.Post("/logout", "auth.logout", authController.Logout)
	r.Get("/verification", "auth.verify", authController.VerifyEmail)

	// Signed-in routes.
	session := r.Group("", middleware.Auth)
	session.Get("/me", "auth.me", authController.Me)
	session.Post("/verification/resend", "auth.resend", authController.ResendVerification)
	session.Post("/submit-blog", "articles.submit", articleController.Submit)
	session.Post("/topic-suggestion", "topics.suggest", topicController.Suggest)

	// Admin dashboard.
	dashboard := session.Group("/dashboard", rbac.HasRole(models.RoleAdmin))
	dashboard.Get("/articles", "dashboard.articles", articleController.List)
	dashboard.Patch("/articles/{id}/status", "dashboard.articles.status", articleController.SetStatus)
	dashboard.Post("/products", "dashboard.products.create", productController.Create)
	dashboard.Post("/products/image", "dashboard.products.image", uploadController.Image)
	dashboard.Get("/feed", "dashboard.feed", deps.Feed.Serve)

	// GraphQL read surface.
	schema, err := appgraphql.NewSchema(deps.Products, deps.Articles)
	if err != nil {
		logger.Error("graphql schema build failed", "error", err)
		return
	}
	r.Post("/graphql", "graphql", graphql.Handler(schema))
}
