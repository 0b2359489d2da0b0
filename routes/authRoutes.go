package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	server.POST("/signup", auth.Signup)
	server.POST("/login", auth.Login)
}
