package api

import (
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/controllers"
	"github.com/kendall-kelly/tailorshop-api/middleware"
)

// SetupRouter builds the gin engine with every route under /api/v1
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), middleware.CORS(cfg.AllowedOrigins))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", controllers.HealthCheck)
		v1.GET("/database/status", controllers.DatabaseStatus)

		customers := v1.Group("/customers")
		{
			customers.GET("", controllers.ListCustomers)
			customers.POST("", controllers.CreateCustomer)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.PATCH("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		templates := v1.Group("/measurement-templates")
		{
			templates.GET("", controllers.ListTemplates)
			templates.POST("", controllers.CreateTemplate)
			templates.GET("/:id", controllers.GetTemplate)
			templates.PUT("/:id", controllers.UpdateTemplate)
			templates.PATCH("/:id", controllers.UpdateTemplate)
			templates.DELETE("/:id", controllers.DeleteTemplate)
		}

		measurements := v1.Group("/measurements")
		{
			measurements.GET("", controllers.ListMeasurements)
			measurements.POST("", controllers.CreateMeasurement)
			measurements.GET("/:id", controllers.GetMeasurement)
			measurements.PUT("/:id", controllers.UpdateMeasurement)
			measurements.PATCH("/:id", controllers.UpdateMeasurement)
			measurements.DELETE("/:id", controllers.DeleteMeasurement)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", controllers.ListOrders)
			orders.POST("", controllers.CreateOrder)
			orders.GET("/:id", controllers.GetOrder)
			orders.PUT("/:id", controllers.UpdateOrder)
			orders.PATCH("/:id", controllers.UpdateOrder)
			orders.DELETE("/:id", controllers.DeleteOrder)

			orders.GET("/:id/staff", controllers.ListOrderStaff)
			orders.POST("/:id/staff", controllers.AssignOrderStaff)
			orders.DELETE("/:id/staff/:assignment_id", controllers.UnassignOrderStaff)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", controllers.ListPayments)
			payments.POST("", controllers.CreatePayment)
			payments.GET("/:id", controllers.GetPayment)
			payments.PUT("/:id", controllers.UpdatePayment)
			payments.PATCH("/:id", controllers.UpdatePayment)
			payments.DELETE("/:id", controllers.DeletePayment)
		}

		v1.GET("/deliveries", controllers.ListDeliveries)

		samples := v1.Group("/samples")
		{
			samples.GET("", controllers.ListSamples)
			samples.POST("", controllers.CreateSample)
			samples.POST("/images", controllers.UploadSampleImage)
			samples.GET("/:id", controllers.GetSample)
			samples.PUT("/:id", controllers.UpdateSample)
			samples.PATCH("/:id", controllers.UpdateSample)
			samples.DELETE("/:id", controllers.DeleteSample)
		}

		staff := v1.Group("/staff")
		{
			staff.GET("", controllers.ListStaff)
			staff.POST("", controllers.CreateStaff)
			staff.GET("/:id", controllers.GetStaff)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.PATCH("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}

		v1.GET("/uploads/:filename", controllers.GetUploadedImage)
	}

	return router
}
