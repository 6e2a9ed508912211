// Package middlewares provides the site's request middleware.
//
// Register them in this order so that later ones see what earlier ones
// stored:
//
//	web.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.Language(resolver, catalog, middlewares.WithLanguageCookie(prefs)),
//	    middlewares.RequestLog(),
//	    middlewares.Recover(),
//	    middlewares.Timeout(10*time.Second),
//	)
//
// RequestID reuses an upstream X-Request-ID or generates a UUID; pair it
// with RequestIDExtractor in the logger so every record carries request_id.
//
// Language resolves the page language from the lang query parameter, the
// stored cookie preference and, when enabled on the resolver,
// Accept-Language. It stores the code and a UI translator in the context
// for c.Language and c.T.
//
// Recover converts panics into *PanicError values for the error handler.
// Timeout puts a deadline on the request context.
package middlewares
