package routes

import (
	"net/http"

	"kitabdunyasi/admin"
	"kitabdunyasi/auth"
	"kitabdunyasi/bonus"
	"kitabdunyasi/cart"
	"kitabdunyasi/catalog"
	"kitabdunyasi/checkout"
	"kitabdunyasi/favorites"
	"kitabdunyasi/media"
	"kitabdunyasi/middleware"
	"kitabdunyasi/profile"
	"kitabdunyasi/ratelim"
	"kitabdunyasi/receipts"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/bookpic/*filepath", http.Dir("static/bookpic"))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.GET("/api/auth/session", h.Session)

	router.POST("/api/admin/login", rl.Limit(h.AdminLogin))
	router.POST("/api/admin/logout", middleware.RequireAdmin(h.AdminLogout))
}

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handler) {
	router.GET("/api/books", h.ListBooks)
	router.GET("/api/books/:id", h.GetBook)
	router.GET("/api/featured", h.FeaturedBooks)
	router.GET("/api/categories", h.Categories)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", h.GetCart)
	router.GET("/api/cart/summary", middleware.OptionalAuth(h.GetSummary))
	router.POST("/api/cart/:id", h.AddToCart)
	router.PUT("/api/cart/:id", h.UpdateQuantity)
	router.DELETE("/api/cart/:id", h.RemoveFromCart)
	router.DELETE("/api/cart", h.ClearCart)
}

func AddBonusRoutes(router *httprouter.Router, h *bonus.Handler) {
	router.GET("/api/bonus", middleware.Authenticate(h.GetBalance))
	router.GET("/api/bonus/history", middleware.Authenticate(h.GetHistory))
}

func AddCheckoutRoutes(router *httprouter.Router, h *checkout.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/checkout", middleware.Authenticate(h.BeginCheckout))
	router.GET("/api/checkout", middleware.Authenticate(h.GetDraft))
	router.DELETE("/api/checkout", middleware.Authenticate(h.CancelCheckout))
	router.POST("/api/checkout/confirm", rl.Limit(middleware.Authenticate(h.ConfirmCheckout)))
}

func AddFavoritesRoutes(router *httprouter.Router, h *favorites.Handler) {
	router.GET("/api/favorites", h.GetFavorites)
	router.GET("/api/favorites/export", h.ExportFavorites)
	router.POST("/api/favorites/cart", h.AddAllToCart)
	router.POST("/api/favorites/toggle/:id", h.ToggleFavorite)
	router.DELETE("/api/favorites/:id", h.RemoveFavorite)
	router.DELETE("/api/favorites", h.ClearFavorites)
}

func AddProfileRoutes(router *httprouter.Router, h *profile.Handler) {
	router.GET("/api/profile", middleware.Authenticate(h.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(h.UpdateProfile))
	router.DELETE("/api/profile", middleware.Authenticate(h.DeleteAccount))
	router.PUT("/api/profile/password", middleware.Authenticate(h.ChangePassword))
	router.PUT("/api/profile/settings", middleware.Authenticate(h.UpdateSettings))
	router.GET("/api/profile/orders", middleware.Authenticate(h.GetOrders))
	router.GET("/api/profile/stats", middleware.Authenticate(h.GetStats))
}

func AddReceiptRoutes(router *httprouter.Router, h *receipts.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/orders/:id/receipt", rl.Limit(middleware.Authenticate(h.PrintReceipt)))
}

func AddAdminRoutes(router *httprouter.Router, h *admin.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/admin/stats", middleware.RequireAdmin(h.GetStats))

	router.POST("/api/admin/books", middleware.RequireAdmin(h.CreateBook))
	router.PUT("/api/admin/books/:id", middleware.RequireAdmin(h.UpdateBook))
	router.DELETE("/api/admin/books/:id", middleware.RequireAdmin(h.DeleteBook))
	router.POST("/api/admin/books/cover", rl.Limit(middleware.RequireAdmin(media.UploadCover)))

	router.GET("/api/admin/orders", middleware.RequireAdmin(h.GetOrders))
	router.PUT("/api/admin/orders/:id/status", middleware.RequireAdmin(h.UpdateOrderStatus))
	router.DELETE("/api/admin/orders/:id", middleware.RequireAdmin(h.DeleteOrder))

	router.GET("/api/admin/users", middleware.RequireAdmin(h.GetUsers))
	router.DELETE("/api/admin/users/:id", middleware.RequireAdmin(h.DeleteUser))

	router.GET("/api/admin/analytics/top", middleware.RequireAdmin(h.GetTopSelling))
}
