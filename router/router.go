package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DanielaMVG19/sloteats/controllers"
	"github.com/DanielaMVG19/sloteats/middlewares"
	"github.com/DanielaMVG19/sloteats/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global per IP
	rateLimiter := middlewares.NewRateLimiter(50, 10)
	r.Use(rateLimiter.RateLimit())

	lifecycle := services.NewLifecycle(db)

	userCtrl := controllers.NewUserController(db)
	reservationCtrl := controllers.NewReservationController(lifecycle)
	orderCtrl := controllers.NewOrderController(lifecycle)
	rankingCtrl := controllers.NewRankingController(lifecycle)
	restaurantCtrl := controllers.NewRestaurantController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
		public.POST("/staff/login", userCtrl.StaffLogin)
	}

	// Reservasi (customer tidak perlu login, sesuai flow lama)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations", reservationCtrl.ListReservations)
	r.POST("/reservations/:reservation_id/ticket", reservationCtrl.IssueTicket)
	r.DELETE("/reservations/:reservation_id", reservationCtrl.CancelReservation)

	// Orders
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.DELETE("/orders/:order_id", orderCtrl.CancelOrder)

	// Restoran yang dikenal (read-only untuk publik)
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	// STAFF: status order dan ranking
	staff := auth.Group("/")
	staff.Use(middlewares.RequireRole("staff"))
	{
		staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		staff.GET("/rankings", rankingCtrl.GetRankings)
		staff.GET("/rankings/chart", rankingCtrl.GetRankingChart)
	}

	// ADMIN: kelola restoran dan akun staff
	admin := auth.Group("/")
	admin.Use(middlewares.RequireRole("admin"))
	{
		admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		admin.POST("/employees", userCtrl.CreateEmployee)
	}

	return r
}
