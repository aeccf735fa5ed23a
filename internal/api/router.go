package api

import (
	"chainwatch/internal/metrics"    // Prometheus exposition
	"chainwatch/internal/middleware" // Custom middleware
	"chainwatch/internal/service"    // Case and wallet services
	"chainwatch/internal/session"    // Flash store
	"chainwatch/internal/store"      // Record store
	"chainwatch/web"                 // Templates and static assets

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps holds what the routes need
type Deps struct {
	Cases   *service.CaseService   // Case Service
	Wallets *service.WalletService // Wallet Service
	Store   store.Store            // Record store, pinged by /healthz
	Flashes session.Store          // Flash message store
}

// NewDeps builds both services over one record store
func NewDeps(records store.Store, flashes session.Store) Deps {
	return Deps{
		Cases:   service.NewCaseService(records),
		Wallets: service.NewWalletService(records),
		Store:   records,
		Flashes: flashes,
	}
}

// NewEngine builds the gin engine with middleware, templates, static assets and routes.
// Wrap it in middleware.MethodOverride before serving.
func NewEngine(d Deps, sessionSecret string, secureCookies bool) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static()) // Registered before the session middleware so assets skip it

	r.GET("/healthz", HealthHandler(d.Store, d.Flashes))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.Use(middleware.SessionMiddleware(d.Flashes, sessionSecret, secureCookies))
	RegisterRoutes(r, d)
	return r, nil
}

// RegisterRoutes mounts the case routes at the root and the wallet routes under /wallets
func RegisterRoutes(r gin.IRouter, d Deps) {
	// Case routes
	r.GET("/", ListCasesHandler(d.Cases))                    // List cases
	r.GET("/cases/new", NewCaseHandler())                    // New case form
	r.POST("/cases", CreateCaseHandler(d.Cases))             // Create case
	r.GET("/cases/:id", ShowCaseHandler(d.Cases, d.Wallets)) // Case detail
	r.GET("/cases/:id/edit", EditCaseHandler(d.Cases))       // Edit case form
	r.PUT("/cases/:id", UpdateCaseHandler(d.Cases))          // Update case
	r.PATCH("/cases/:id", UpdateCaseHandler(d.Cases))        // Update case
	r.DELETE("/cases/:id", DeleteCaseHandler(d.Cases))       // Delete case

	// Wallet routes
	walletGroup := r.Group("/wallets")
	walletGroup.GET("", ListWalletsHandler(d.Cases, d.Wallets))    // List wallets of a case
	walletGroup.GET("/new", NewWalletHandler(d.Cases))             // New wallet form
	walletGroup.POST("", CreateWalletHandler(d.Wallets))           // Create wallet
	walletGroup.GET("/:id", ShowWalletHandler(d.Cases, d.Wallets)) // Wallet detail
	walletGroup.GET("/:id/edit", EditWalletHandler(d.Wallets))     // Edit wallet form
	walletGroup.PUT("/:id", UpdateWalletHandler(d.Wallets))        // Update wallet
	walletGroup.PATCH("/:id", UpdateWalletHandler(d.Wallets))      // Update wallet
	walletGroup.DELETE("/:id", DeleteWalletHandler(d.Wallets))     // Delete wallet
}
