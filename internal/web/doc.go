// Package web is the HTTP layer of the site: an App over a chi router whose
// handlers take a Context and return errors.
//
// Handlers declare routes through the Router interface:
//
//	type pages struct{}
//
//	func (p *pages) Routes(r web.Router) {
//	    r.GET("/", p.home)
//	}
//
//	func (p *pages) home(c web.Context) error {
//	    return c.String(http.StatusOK, "hello")
//	}
//
//	app := web.New(
//	    web.WithLogger(log),
//	    web.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    web.WithHandlers(&pages{}),
//	    web.WithHealthChecks(),
//	)
//	err := app.Run(":8080")
//
// Errors returned by handlers go to the ErrorHandler set with
// WithErrorHandler. An *HTTPError carries the status code; anything else is
// treated as 500. Unknown routes return ErrNotFound through the same path.
//
// For htmx requests the ResponseWriter rewrites non-200 statuses to 200 so
// the returned markup is swapped in; Status still reports the original code.
package web
