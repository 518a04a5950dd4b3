package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sopejohn/freshmart/controllers"
	"github.com/Sopejohn/freshmart/middleware"
)

type Controllers struct {
	Payment   *controllers.PaymentController
	Auth      *controllers.AuthController
	Menu      *controllers.MenuController
	Staff     *controllers.StaffController
	Orders    *controllers.OrderController
	Analytics *controllers.AnalyticsController
}

// Register wires every route. Payment endpoints are public (the checkout page
// has no session); admin data routes sit behind the bearer-token guard.
func Register(r *gin.Engine, c Controllers, jwtSecret string) {
	r.GET("/health", c.Payment.Health)
	r.POST("/create-payment-intent", c.Payment.CreatePaymentIntent)

	r.POST("/orders", c.Orders.CreateOrder)

	admin := r.Group("/admin")
	admin.POST("/login", c.Auth.Login)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuth(jwtSecret))
	{
		protected.GET("/menu", c.Menu.ListItems)
		protected.POST("/menu", c.Menu.CreateItem)
		protected.PUT("/menu/:id", c.Menu.UpdateItem)
		protected.PATCH("/menu/:id/availability", c.Menu.SetAvailability)
		protected.DELETE("/menu/:id", c.Menu.DeleteItem)

		protected.GET("/staff", c.Staff.ListMembers)
		protected.POST("/staff", c.Staff.CreateMember)
		protected.PUT("/staff/:id", c.Staff.UpdateMember)
		protected.DELETE("/staff/:id", c.Staff.DeleteMember)

		protected.GET("/orders/recent", c.Orders.RecentOrders)
		protected.GET("/analytics/summary", c.Analytics.Summary)
		protected.GET("/financials/monthly", c.Analytics.MonthlyFinancials)
	}
}
