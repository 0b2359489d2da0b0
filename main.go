package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/controllers"
	"github.com/sarose/kinmel-api/initializers"
	"github.com/sarose/kinmel-api/routes"
	"github.com/sarose/kinmel-api/services"
	"github.com/sarose/kinmel-api/stores"
)

func main() {
	initializers.LoadEnv()

	ctx := context.Background()
	client, err := initializers.ConnectToDB(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Error disconnecting from database:", err)
		}
	}()

	db := initializers.Database(client)
	if err := initializers.SyncIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	timeout := initializers.DBTimeout()
	cartStore := stores.NewCartStore(db, timeout)
	productStore := stores.NewProductStore(db, timeout)
	orderStore := stores.NewOrderStore(db, timeout)
	transactionStore := stores.NewTransactionStore(db, timeout)
	wishListStore := stores.NewWishListStore(db, timeout)
	reviewStore := stores.NewReviewStore(db, timeout)
	userStore := stores.NewUserStore(db, timeout)

	cartService := services.NewCartService(cartStore)

	authController := controllers.NewAuthController(userStore)
	cartController := controllers.NewCartController(cartService, productStore)
	productController := controllers.NewProductController(productStore)
	orderController := controllers.NewOrderController(orderStore)
	transactionController := controllers.NewTransactionController(transactionStore)
	wishListController := controllers.NewWishListController(wishListStore)
	reviewController := controllers.NewReviewController(reviewStore)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.kinmel.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, authController)
	routes.ProductRoutes(server, productController, reviewController)
	routes.CartRoutes(server, cartController)
	routes.OrderRoutes(server, orderController)
	routes.TransactionRoutes(server, transactionController)
	routes.WishListRoutes(server, wishListController)

	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
