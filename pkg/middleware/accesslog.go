package middleware

import (
	"net/http"

	"cardoctor/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// AccessLog records method, host and path before dispatching. Side effect
// only; it never blocks or alters the request.
func AccessLog(log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			log.Info("Route accessed",
				"request_id", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"host", r.Host,
				"path", r.URL.RequestURI(),
			)
			next(w, r, ps)
		}
	}
}
