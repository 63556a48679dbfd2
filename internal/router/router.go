package router

import (
	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/config"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/controller"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/websocket"
)

type Router struct {
	authController     *controller.AuthController
	cafeController     *controller.CafeController
	reviewController   *controller.ReviewController
	favoriteController *controller.FavoriteController
	jobController      *controller.JobController
	postController     *controller.PostController
	profileController  *controller.ProfileController
	searchController   *controller.SearchController
	uploadController   *controller.UploadController
	liveSearchHandler  *websocket.LiveSearchHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	cafeController *controller.CafeController,
	reviewController *controller.ReviewController,
	favoriteController *controller.FavoriteController,
	jobController *controller.JobController,
	postController *controller.PostController,
	profileController *controller.ProfileController,
	searchController *controller.SearchController,
	uploadController *controller.UploadController,
	liveSearchHandler *websocket.LiveSearchHandler,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		cafeController:     cafeController,
		reviewController:   reviewController,
		favoriteController: favoriteController,
		jobController:      jobController,
		postController:     postController,
		profileController:  profileController,
		searchController:   searchController,
		uploadController:   uploadController,
		liveSearchHandler:  liveSearchHandler,
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
			"message": "WorkSpot API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		cafes := v1.Group("/cafes")
		{
			cafes.GET("", r.cafeController.ListCafes)
			cafes.GET("/locations", r.cafeController.ListLocations)
			cafes.GET("/featured", r.cafeController.ListFeatured)
			cafes.GET("/nearby", r.cafeController.ListNearby)
			cafes.GET("/viewport", r.cafeController.MapViewport)
			cafes.GET("/export",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.cafeController.ExportCafes,
			)
			cafes.GET("/:slug", r.cafeController.GetCafeBySlug)

			cafes.POST("", r.authMiddleware.Authenticate(), r.cafeController.CreateCafe)
			cafes.PUT("/:slug", r.authMiddleware.Authenticate(), r.cafeController.UpdateCafe)
			cafes.DELETE("/:slug", r.authMiddleware.Authenticate(), r.cafeController.DeleteCafe)

			cafes.GET("/:slug/reviews", r.reviewController.GetCafeReviews)
			cafes.POST("/:slug/favorite", r.authMiddleware.Authenticate(), r.favoriteController.ToggleFavorite)
		}

		// City pages: /locations/bangladesh/dhaka?page=2
		v1.GET("/locations/:country/:city", r.cafeController.ListByLocation)

		reviews := v1.Group("/reviews")
		reviews.Use(r.authMiddleware.Authenticate())
		{
			reviews.POST("", r.reviewController.CreateReview)
			reviews.PUT("/:id", r.reviewController.UpdateReview)
			reviews.DELETE("/:id", r.reviewController.DeleteReview)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.GET("", r.jobController.ListJobs)
			jobs.GET("/:id", r.jobController.GetJob)
			jobs.POST("", r.authMiddleware.Authenticate(), r.jobController.CreateJob)
			jobs.PUT("/:id", r.authMiddleware.Authenticate(), r.jobController.UpdateJob)
			jobs.DELETE("/:id", r.authMiddleware.Authenticate(), r.jobController.DeleteJob)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", r.authMiddleware.OptionalAuthenticate(), r.postController.ListPosts)
			posts.GET("/:slug", r.authMiddleware.OptionalAuthenticate(), r.postController.GetPostBySlug)
			posts.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.postController.CreatePost,
			)
			posts.PUT("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.postController.UpdatePost,
			)
			posts.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.postController.DeletePost,
			)
		}

		profiles := v1.Group("/profiles")
		{
			profiles.GET("/:username", r.profileController.GetProfileByUsername)
		}

		me := v1.Group("/me")
		me.Use(r.authMiddleware.Authenticate())
		{
			me.GET("/profile", r.profileController.GetMyProfile)
			me.PUT("/profile", r.profileController.UpdateMyProfile)
			me.GET("/favorites", r.favoriteController.GetMyFavorites)
			me.GET("/reviews", r.reviewController.GetMyReviews)
			me.GET("/jobs", r.jobController.GetMyJobs)
		}

		v1.GET("/search", r.searchController.GlobalSearch)
		v1.GET("/search/live", r.liveSearchHandler.Handle)

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presign", r.uploadController.GetPresignedURL)
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
