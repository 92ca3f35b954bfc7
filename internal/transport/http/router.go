package handlers

import (
	"strings"
	"time"

	"coursemarket/internal/infrastructure/security"
	"coursemarket/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Course    *CourseHandler
	Cart      *CartHandler
	Payment   *PaymentHandler
	Progress  *ProgressHandler
	Review    *ReviewHandler
	Assistant *AssistantHandler
	Contact   *ContactHandler

	TokenManager   *security.TokenManager
	Limiter        *middleware.RateLimiter
	AllowedOrigins string
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(d.AllowedOrigins, ",")
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.Auth.Register)
			auth.POST("/login", d.Limiter.Limit("login", 5, 1*time.Minute), d.Auth.Login)
			auth.POST("/refresh", d.Auth.Refresh)
			auth.POST("/logout", d.Auth.Logout)
			auth.POST("/forgot-password", d.Limiter.Limit("forgot_pass", 1, 5*time.Minute), d.Auth.ForgotPassword)
			auth.POST("/reset-password", d.Auth.ResetPassword)
		}

		// Каталог открыт без логина — как витрина
		api.GET("/courses", d.Course.List)
		api.GET("/courses/:id", d.Course.GetOne)
		api.GET("/courses/:id/reviews", d.Course.ListReviews)
		api.POST("/contact", d.Contact.Submit)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(d.TokenManager))
		{
			cart := authed.Group("/cart")
			{
				cart.GET("", d.Cart.List)
				cart.POST("", d.Cart.Add)
				cart.GET("/count", d.Cart.Count)
				cart.DELETE("/:id", d.Cart.Remove)
			}

			authed.POST("/checkout", d.Payment.Checkout)
			authed.GET("/purchases", d.Payment.ListPurchases)

			authed.GET("/progress", d.Progress.List)
			authed.PUT("/progress/:courseId", d.Progress.Mark)

			authed.POST("/reviews", d.Review.Submit)

			authed.POST("/assistant/chat", d.Limiter.Limit("assistant", 10, 1*time.Minute), d.Assistant.Chat)

			authed.POST("/courses", d.Course.Create)
			authed.DELETE("/courses/:id", d.Course.Delete)
		}
	}

	return r
}
