package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-chain-api/controllers"
	"restaurant-chain-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP across the whole API
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	menuCtrl := controllers.NewMenuController(db)
	clientCtrl := controllers.NewClientController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/", controllers.Index)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// MENU
	r.GET("/menu/all_info", menuCtrl.GetAllMenus)
	r.GET("/menu/:item_id", menuCtrl.GetMenuByID)
	r.POST("/menu", menuCtrl.CreateMenu)
	r.PUT("/menu/:item_id", menuCtrl.UpdateMenu)
	r.DELETE("/menu/:item_id", menuCtrl.DeleteMenu)

	// CLIENTS
	r.GET("/clients", clientCtrl.GetAllClients)
	r.POST("/clients", clientCtrl.CreateClient)
	r.PUT("/clients/:client_id", clientCtrl.UpdateClient)
	r.DELETE("/clients/:client_id", clientCtrl.DeleteClient)

	// ORDERS
	r.GET("/orders/all_info", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id/details", orderCtrl.GetOrderDetails)
	r.GET("/orders/:order_id/total_price", orderCtrl.TotalPrice)
	r.PUT("/orders/:order_id/change_status", orderCtrl.ChangeStatus)
	r.DELETE("/orders/:order_id/remove_item/:detail_id", orderCtrl.RemoveItem)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// Order mutations share a stricter limiter than reads.
	writes := r.Group("/orders")
	writes.Use(middlewares.NewWriteRateLimiter())
	{
		writes.POST("/add", orderCtrl.CreateOrder)
		writes.POST("/:order_id/add_items", orderCtrl.AddItems)
	}

	return r
}
