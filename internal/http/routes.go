package http

import (
	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/middleware"
)

// PublicRouteGroup defines routes that don't require a signed-in session.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require a signed-in session.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(protected *gin.RouterGroup)
}

// StoreRoutes handles state, catalog, builder and feed route registration.
type StoreRoutes struct {
	handler *Handler
}

// NewStoreRoutes creates a new StoreRoutes instance.
func NewStoreRoutes(handler *Handler) *StoreRoutes {
	return &StoreRoutes{handler: handler}
}

// RegisterPublicRoutes registers the session-independent routes.
func (r *StoreRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/state", r.handler.GetState)

	rg.GET("/ingredients", r.handler.GetIngredients)
	rg.POST("/ingredients/fetch", r.handler.FetchIngredients)

	builder := rg.Group("/builder")
	builder.GET("", r.handler.GetBuilder)
	builder.DELETE("", r.handler.ClearBuilder)
	builder.PUT("/bun", r.handler.SetBun)
	builder.POST("/ingredients", r.handler.AddIngredient)
	builder.DELETE("/ingredients/:id", r.handler.RemoveIngredient)
	builder.POST("/ingredients/:index/move", r.handler.MoveIngredient)

	rg.GET("/feed", r.handler.GetFeed)
	rg.POST("/feed/fetch", r.handler.FetchFeed)
}

// OrderRoutes handles order route registration.
type OrderRoutes struct {
	handler *Handler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(handler *Handler) *OrderRoutes {
	return &OrderRoutes{handler: handler}
}

// RegisterPublicRoutes registers the order lookups open to any session.
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/orders/modal", r.handler.CloseOrderModal)
	rg.GET("/orders/:number", r.handler.GetOrder)
}

// RegisterProtectedRoutes registers submission and history.
func (r *OrderRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/orders", r.handler.SubmitOrder)
	protected.GET("/orders/history", r.handler.GetOrderHistory)
	protected.POST("/orders/history/fetch", r.handler.FetchOrderHistory)
}

// AuthRoutes handles session route registration.
type AuthRoutes struct {
	handler *Handler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(handler *Handler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

// RegisterPublicRoutes registers sign in, registration and the password flow.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", r.handler.Register)
	auth.POST("/login", r.handler.Login)
	auth.GET("/user", r.handler.GetUser)
	auth.POST("/user/fetch", r.handler.FetchUser)

	if r.handler.password != nil {
		auth.POST("/password-reset", r.handler.ForgotPassword)
		auth.POST("/password-reset/reset", r.handler.ResetPassword)
	}
}

// RegisterProtectedRoutes registers sign out and profile changes.
func (r *AuthRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", r.handler.Logout)
	protected.PATCH("/auth/user", r.handler.UpdateUser)
}

// registerRoutes mounts every route group on api. Protected groups share a
// session gate bound to the user container.
func registerRoutes(api *gin.RouterGroup, handler *Handler) {
	groups := []any{
		NewStoreRoutes(handler),
		NewOrderRoutes(handler),
		NewAuthRoutes(handler),
	}

	protected := api.Group("", middleware.RequireSession(func() bool {
		return handler.store.User.State().IsAuthenticated
	}))

	for _, g := range groups {
		if pub, ok := g.(PublicRouteGroup); ok {
			pub.RegisterPublicRoutes(api)
		}
		if prot, ok := g.(ProtectedRouteGroup); ok {
			prot.RegisterProtectedRoutes(protected)
		}
	}
}
