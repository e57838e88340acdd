package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full route table. The path shapes mirror the public
// contract, including the odd GET /usuario/favoritos/:id.
func NewRouter(
	authMiddleware gin.HandlerFunc,
	accountHandler *AccountHandler,
	restaurantHandler *RestaurantHandler,
	reservationHandler *ReservationHandler,
	favoriteHandler *FavoriteHandler,
	ratingHandler *RatingHandler,
	mediaHandler *MediaHandler,
) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		// Cuentas de usuario
		api.POST("/signup", accountHandler.Signup)
		api.POST("/login", accountHandler.Login)
		api.POST("/refresh", accountHandler.Refresh)
		api.POST("/logout", accountHandler.Logout)
		api.GET("/protected", authMiddleware, accountHandler.Protected)
		api.GET("/validate-token", authMiddleware, accountHandler.ValidateToken)
		api.GET("/usuarios", authMiddleware, accountHandler.List)

		usuario := api.Group("/usuario")
		usuario.Use(authMiddleware)
		{
			usuario.GET("/:id", accountHandler.Get)
			usuario.PUT("/:id", accountHandler.Update)
			usuario.DELETE("/:id", accountHandler.Delete)

			// Reservas
			usuario.POST("/reservas", reservationHandler.Create)
			usuario.GET("/:id/reservas", reservationHandler.ListByUsuario)

			// Favoritos
			usuario.POST("/:id/favoritos", favoriteHandler.Add)
			usuario.DELETE("/:id/favoritos", favoriteHandler.Remove)
			usuario.GET("/favoritos/:id", favoriteHandler.ListByUsuario)

			// Valoraciones
			usuario.POST("/:id/valoraciones", ratingHandler.Add)
			usuario.PUT("/:id/valoraciones", ratingHandler.Update)
			usuario.DELETE("/:id/valoraciones", ratingHandler.Delete)
		}

		reservas := api.Group("/reservas")
		reservas.Use(authMiddleware)
		{
			reservas.PUT("/:id", reservationHandler.Update)
			reservas.DELETE("/:id", reservationHandler.Cancel)
		}

		// Restaurantes
		api.POST("/signup/restaurante", restaurantHandler.Signup)
		api.POST("/login/restaurante", restaurantHandler.Login)
		api.GET("/restaurantes", restaurantHandler.List)
		api.GET("/restaurantes/:id", restaurantHandler.Get)
		api.PUT("/restaurantes/:id", authMiddleware, restaurantHandler.Update)
		api.DELETE("/restaurantes/:id", authMiddleware, restaurantHandler.Delete)
		api.POST("/poblar_restaurantes", restaurantHandler.Seed)

		api.GET("/restaurante/:id/valoracion", ratingHandler.ListByRestaurante)
		api.GET("/restaurante/:id/valoracion_promedio", ratingHandler.Average)

		// Media
		api.POST("/upload_image", authMiddleware, mediaHandler.Upload)
	}

	return router
}
