package router

import (
	"github.com/erp/salechannel/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	System       *handler.SystemHandler
	Channel      *handler.ChannelHandler
	Carrier      *handler.CarrierHandler
	Listing      *handler.ListingHandler
	Availability *handler.AvailabilityHandler
	Export       *handler.ExportHandler
	Wizard       *handler.WizardHandler
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	handlers   Handlers
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, handlers Handlers, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		handlers:   handlers,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	system := api.Group("/system")
	{
		system.GET("/info", r.handlers.System.GetSystemInfo)
		system.GET("/ping", r.handlers.System.Ping)
		system.GET("/health", r.handlers.System.Health)
	}

	channels := api.Group("/channels")
	{
		channels.POST("", r.handlers.Channel.Create)
		channels.GET("", r.handlers.Channel.List)
		channels.GET("/:id", r.handlers.Channel.GetByID)
		channels.PUT("/:id", r.handlers.Channel.Update)
		channels.DELETE("/:id", r.handlers.Channel.Delete)

		// Carrier mappings of a channel
		channels.POST("/:id/carrier-mappings", r.handlers.Carrier.Create)
		channels.GET("/:id/carrier-mappings", r.handlers.Carrier.List)

		// Product listings of a channel
		channels.POST("/:id/listings", r.handlers.Listing.CreateProductListing)
		channels.GET("/:id/listings", r.handlers.Listing.ListProductListings)

		// Create-from extension points
		channels.POST("/:id/create-product-from", r.handlers.Export.CreateProductFrom)
		channels.POST("/:id/create-listing-from", r.handlers.Export.CreateListingFrom)
	}

	mappings := api.Group("/carrier-mappings")
	{
		mappings.GET("/:id", r.handlers.Carrier.GetByID)
		mappings.POST("/:id/carrier", r.handlers.Carrier.AssignCarrier)
		mappings.POST("/:id/service", r.handlers.Carrier.AssignService)
		mappings.GET("/:id/available-services", r.handlers.Carrier.AvailableServices)
		mappings.DELETE("/:id", r.handlers.Carrier.Delete)
	}

	parties := api.Group("/parties")
	{
		parties.POST("/:id/listings", r.handlers.Listing.CreatePartyListing)
		parties.GET("/:id/listings", r.handlers.Listing.ListPartyListings)
	}
	api.DELETE("/party-listings/:id", r.handlers.Listing.DeletePartyListing)

	templates := api.Group("/templates")
	{
		templates.POST("/:id/listings", r.handlers.Listing.CreateTemplateListing)
		templates.GET("/:id/listings", r.handlers.Listing.ListTemplateListings)
	}
	api.DELETE("/template-listings/:id", r.handlers.Listing.DeleteTemplateListing)

	listings := api.Group("/listings")
	{
		listings.GET("/:id", r.handlers.Listing.GetProductListing)
		listings.DELETE("/:id", r.handlers.Listing.DeleteProductListing)
		listings.POST("/:id/activate", r.handlers.Listing.Activate)
		listings.POST("/:id/disable", r.handlers.Listing.Disable)
		listings.POST("/:id/link-product", r.handlers.Listing.LinkProduct)

		listings.GET("/:id/availability", r.handlers.Availability.GetAvailability)
		listings.POST("/availability-fields", r.handlers.Availability.GetAvailabilityFields)

		listings.POST("/:id/export-inventory", r.handlers.Export.ExportInventory)
		listings.POST("/export-inventory", r.handlers.Export.ExportBulkInventory)
	}

	wizard := api.Group("/listing-wizard")
	{
		wizard.GET("/sources", r.handlers.Wizard.Sources)
		wizard.POST("/sessions", r.handlers.Wizard.Start)
		wizard.GET("/sessions/:id", r.handlers.Wizard.Get)
		wizard.POST("/sessions/:id/next", r.handlers.Wizard.Next)
		wizard.DELETE("/sessions/:id", r.handlers.Wizard.Cancel)
	}
}
