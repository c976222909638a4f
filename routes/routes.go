package routes

import (
    "github.com/bipan-sh/weight-tracker/controllers"
    "github.com/bipan-sh/weight-tracker/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    auth.Use(middlewares.RateLimit(5, 10))
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
        user.PUT("/profile", controllers.UpdateProfile)
        user.GET("/privacy", controllers.GetPrivacySettings)
        user.PUT("/privacy", controllers.UpdatePrivacySettings)
    }

    users := r.Group("/users")
    users.Use(middlewares.AuthMiddleware())
    {
        users.GET("", controllers.ListAvailableUsers)
        users.GET("/search", controllers.SearchUsers)
    }

    weights := r.Group("/weights")
    weights.Use(middlewares.AuthMiddleware())
    {
        weights.POST("", controllers.CreateWeight)
        weights.GET("", controllers.ListWeights)
        weights.PUT("/:id", controllers.UpdateWeight)
        weights.DELETE("/:id", controllers.DeleteWeight)
    }

    goals := r.Group("/goals")
    goals.Use(middlewares.AuthMiddleware())
    {
        goals.POST("", controllers.CreateGoal)
        goals.GET("", controllers.ListGoals)
        goals.GET("/:id", controllers.GetGoal)
        goals.PUT("/:id", controllers.UpdateGoal)
        goals.DELETE("/:id", controllers.DeleteGoal)
    }

    partners := r.Group("/partners")
    partners.Use(middlewares.AuthMiddleware())
    {
        partners.POST("", controllers.RequestPartner)
        partners.GET("", controllers.GetPartners)
        partners.GET("/weights", controllers.GetPartnerWeights)
        partners.POST("/:id/accept", controllers.AcceptPartner)
        partners.PUT("/:id", controllers.UpdatePartner)
        partners.DELETE("/:id", controllers.RemovePartner)
    }

    return r
}
