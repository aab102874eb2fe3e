// Package adapthttp implements the HTTP adapter for the storefront.
package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"printcraft/internal/app"
	"printcraft/internal/domain"
)

// Server is the driving HTTP adapter that routes requests to the stores and
// application services.
type Server struct {
	catalog  domain.Catalog
	cart     *app.CartStore
	session  *app.SessionStore
	checkout *app.CheckoutService
	artwork  *app.ArtworkService
	drafts   *app.DraftService
	log      *zap.Logger
}

// Services groups the collaborators a Server routes to.
type Services struct {
	Catalog  domain.Catalog
	Cart     *app.CartStore
	Session  *app.SessionStore
	Checkout *app.CheckoutService
	Artwork  *app.ArtworkService
	Drafts   *app.DraftService
}

// New creates a Server wired to the given services.
func New(svc Services, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		catalog:  svc.Catalog,
		cart:     svc.Cart,
		session:  svc.Session,
		checkout: svc.Checkout,
		artwork:  svc.Artwork,
		drafts:   svc.Drafts,
		log:      log,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.loggingMiddleware)
	r.Use(withNoCache)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})

		r.Get("/products", s.handleListProducts)
		r.Get("/products/{slug}", s.handleGetProduct)
		r.Post("/products/{slug}/quote", s.handleQuote)
		r.Route("/products/{slug}/draft", func(r chi.Router) {
			r.Get("/", s.handleGetDraft)
			r.Patch("/", s.handleUpdateDraft)
			r.Delete("/", s.handleResetDraft)
			r.Post("/cart", s.handleAddDraftToCart)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleGetCart)
			r.Delete("/", s.handleClearCart)
			r.Post("/items", s.handleAddItem)
			r.Patch("/items/{id}", s.handleSetQuantity)
			r.Delete("/items/{id}", s.handleRemoveItem)
		})

		r.Post("/checkout", s.handleCheckout)
		r.Get("/orders/{id}", s.handleGetOrder)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/sign-in", s.handleSignIn)
			r.Post("/sign-up", s.handleSignUp)
			r.Post("/sign-out", s.handleSignOut)
		})

		r.Post("/artwork", s.handleUploadArtwork)
		r.Get("/artwork/{id}", s.handleGetArtwork)
	})

	return r
}
