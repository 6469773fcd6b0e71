package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/config"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/controller"
	"github.com/Kiattisakchaochata/backendTopaward/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	storeController    *controller.StoreController
	categoryController *controller.CategoryController
	reviewController   *controller.ReviewController
	bannerController   *controller.BannerController
	videoController    *controller.VideoController
	trackingController *controller.TrackingController
	visitorController  *controller.VisitorController
	uploadController   *controller.UploadController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	storeController *controller.StoreController,
	categoryController *controller.CategoryController,
	reviewController *controller.ReviewController,
	bannerController *controller.BannerController,
	videoController *controller.VideoController,
	trackingController *controller.TrackingController,
	visitorController *controller.VisitorController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		storeController:    storeController,
		categoryController: categoryController,
		reviewController:   reviewController,
		bannerController:   bannerController,
		videoController:    videoController,
		trackingController: trackingController,
		visitorController:  visitorController,
		uploadController:   uploadController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "TopAwards API is running",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/oauth/google", r.authController.GoogleLogin)
			auth.POST("/oauth/facebook", r.authController.FacebookLogin)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			auth.POST("/change-password", r.authMiddleware.Authenticate(), r.authController.ChangePassword)
		}

		stores := api.Group("/stores")
		{
			stores.GET("", r.storeController.GetStores)
			stores.GET("/search", r.storeController.SearchStores)
			stores.GET("/popular", r.storeController.GetPopularStores)
			stores.GET("/slug/:slug", r.storeController.GetStoreBySlug)
			stores.GET("/:id", r.storeController.GetStore)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", r.categoryController.GetCategories)
			categories.GET("/:id", r.categoryController.GetCategory)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/store/:storeId", r.reviewController.GetStoreReviews)
			reviews.POST("", r.authMiddleware.Authenticate(), r.reviewController.CreateReview)
			reviews.PATCH("/:id", r.authMiddleware.Authenticate(), r.reviewController.UpdateReview)
			reviews.DELETE("/:id", r.authMiddleware.Authenticate(), r.reviewController.DeleteReview)
		}

		api.GET("/banners", r.bannerController.GetBanners)
		api.GET("/videos", r.videoController.GetActiveVideos)
		api.GET("/tracking", r.trackingController.GetPublicScripts)

		visitor := api.Group("/visitor")
		{
			visitor.GET("", r.visitorController.GetTotalCount)
			visitor.GET("/:storeId", r.visitorController.GetStoreCount)
			visitor.POST("/:storeId", r.visitorController.RecordVisit)
		}

		admin := api.Group("/admin",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAdmin(),
		)
		{
			adminStores := admin.Group("/stores")
			{
				adminStores.GET("", r.storeController.GetStores)
				adminStores.GET("/expiring-soon", r.storeController.GetExpiringStores)
				adminStores.GET("/expired", r.storeController.GetExpiredStores)
				adminStores.GET("/loyalty", r.storeController.GetLoyaltyStats)
				adminStores.GET("/export", r.storeController.ExportLoyaltyReport)
				adminStores.POST("", r.storeController.CreateStore)
				adminStores.GET("/:id", r.storeController.GetStore)
				adminStores.PATCH("/:id", r.storeController.UpdateStore)
				adminStores.DELETE("/:id", r.storeController.DeleteStore)
				adminStores.POST("/:id/renew", r.storeController.RenewStore)
				adminStores.POST("/:id/reactivate", r.storeController.ReactivateStore)
				adminStores.PATCH("/:id/status", r.storeController.SetStatus)
				adminStores.PATCH("/:id/enable", r.storeController.EnableStore)
				adminStores.PATCH("/:id/disable", r.storeController.DisableStore)
				adminStores.PATCH("/:id/order", r.storeController.SwapOrder)
				adminStores.PATCH("/:id/cover", r.storeController.UpdateCover)
				adminStores.POST("/:id/images", r.storeController.AddImages)
			}

			adminImages := admin.Group("/images")
			{
				adminImages.DELETE("/:id", r.storeController.DeleteImage)
				adminImages.PATCH("/reorder/:storeId", r.storeController.ReorderImages)
			}

			adminCategories := admin.Group("/categories")
			{
				adminCategories.POST("", r.categoryController.CreateCategory)
				adminCategories.PATCH("/:id", r.categoryController.UpdateCategory)
				adminCategories.DELETE("/:id", r.categoryController.DeleteCategory)
			}

			adminBanners := admin.Group("/banners")
			{
				adminBanners.GET("", r.bannerController.GetBanners)
				adminBanners.POST("", r.bannerController.CreateBanner)
				adminBanners.PATCH("/:id", r.bannerController.UpdateBanner)
				adminBanners.DELETE("/:id", r.bannerController.DeleteBanner)
			}

			adminVideos := admin.Group("/videos")
			{
				adminVideos.GET("", r.videoController.GetVideos)
				adminVideos.GET("/:id", r.videoController.GetVideo)
				adminVideos.POST("", r.videoController.CreateVideo)
				adminVideos.PATCH("/:id", r.videoController.UpdateVideo)
				adminVideos.DELETE("/:id", r.videoController.DeleteVideo)
			}

			admin.POST("/uploads/presign", r.uploadController.GeneratePresignedURL)

			adminTracking := admin.Group("/tracking")
			{
				adminTracking.GET("", r.trackingController.GetScripts)
				adminTracking.POST("", r.trackingController.CreateScript)
				adminTracking.PATCH("/:id", r.trackingController.UpdateScript)
				adminTracking.DELETE("/:id", r.trackingController.DeleteScript)
			}
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
