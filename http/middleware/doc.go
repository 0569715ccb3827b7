/*
The middleware package defines what a middleware is and the middlewares the HTTP API applies to every request.

The available middlewares are:
  - LogRequest
  - RateLimit
  - RequestID

RequestID must run before LogRequest for the request ID to be logged:

	h = middleware.Chain(h, middleware.RequestID(), middleware.LogRequest(logger))
*/
package middleware
