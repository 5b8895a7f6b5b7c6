package routes

import (
    "healthcoach/config"
    "healthcoach/controllers"
    "healthcoach/middlewares"
    "healthcoach/services"

    "github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
    r := gin.Default()

    adminCtl := controllers.NewAdminController(services.NewAdminService(config.DB))
    rtCtl := controllers.NewRealtimeController(hub)

    r.GET("/home", controllers.Home)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
        auth.POST("/admin/login", controllers.AdminLogin)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/dashboard", controllers.UserDashboard)
        user.POST("/bmi", controllers.SubmitBMI)
        user.GET("/bmi/history", controllers.BMIHistory)
        user.GET("/tracking", controllers.GetTracking)
        user.POST("/tracking", controllers.UpdateTracking)
        user.GET("/messages", controllers.ListMessages)
        user.POST("/messages/:id/read", controllers.MarkMessageRead)
        user.GET("/ws", rtCtl.MessagesWS)
    }

    // Admin routes
    admin := r.Group("/admin")
    admin.Use(middlewares.AdminAuthMiddleware())
    {
        admin.GET("/dashboard", adminCtl.GetDashboard)
        admin.POST("/messages", adminCtl.SendMessage)
        admin.PUT("/users/:id/target", adminCtl.UpdateTarget)
    }

    return r
}
