package app

import (
	"faculty_hub_backend/docs"
	"faculty_hub_backend/internal/config"
	"faculty_hub_backend/internal/middleware"
	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// The directory, rankings and comment threads are readable without
		// an account.
		public.GET("/faculty", c.faculty.List)
		public.GET("/faculty/:id", c.faculty.Get)
		public.GET("/faculty/:id/comments", c.comment.ListForFaculty)
		public.GET("/rankings", c.ranking.Rank)
		public.GET("/interests", c.user.ListInterestTags)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.Me)
	rg.PATCH("/users/me", c.user.UpdateProfile)
	rg.GET("/users/me/preferences", c.user.GetPreferences)
	rg.PUT("/users/me/preferences", c.user.UpdatePreferences)

	rg.POST("/faculty/:id/ratings", c.rating.Submit)
	rg.GET("/faculty/:id/ratings/me", c.rating.MyRating)

	rg.GET("/recommendations", c.recommendation.Recommend)

	rg.POST("/faculty/:id/comments", c.comment.Create)
	rg.DELETE("/comments/:commentId", c.comment.Delete)

	rg.GET("/chat/conversations", c.chat.ListConversations)
	rg.POST("/chat/messages", c.chat.SendMessage)
	rg.GET("/chat/ws", c.chat.ServeWS)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(a.Config),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Admin),
	)
	{
		admin.POST("/faculty", c.faculty.Create)
		admin.PATCH("/faculty/:id", c.faculty.Update)
		admin.DELETE("/faculty/:id", c.faculty.Delete)
		admin.POST("/faculty/:id/image", c.faculty.UploadImage)
		admin.POST("/faculty/:id/sync", c.faculty.SyncPublications)
	}
}
