package router

import (
	"net/http"

	"pageforge/app/controllers"
	"pageforge/app/middleware"
)

// NewRouter builds the route table. API routes are registered with method
// patterns; everything else falls through to the SPA controller, which
// serves static assets or the root document.
func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, cfgCtrl *controllers.ConfigController, spaCtrl *controllers.SPAController, mw *middleware.Auth, rl *middleware.RateLimit) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", httpCtrl.Ping)

	// credential endpoints sit behind the rate limiter
	mux.Handle("POST /api/auth/register", rl.Wrap(http.HandlerFunc(authCtrl.Register)))
	mux.Handle("POST /api/auth/login", rl.Wrap(http.HandlerFunc(authCtrl.Login)))
	mux.HandleFunc("POST /api/auth/logout", authCtrl.Logout)
	mux.Handle("GET /api/me", mw.RequireSession(http.HandlerFunc(authCtrl.Me)))

	// published reads are public; writes and draft reads need a session
	mux.HandleFunc("GET /api/config/{pageName}", cfgCtrl.GetPublished)
	mux.Handle("POST /api/config/{pageName}", mw.RequireSession(http.HandlerFunc(cfgCtrl.Save)))
	mux.Handle("GET /api/config/{pageName}/draft", mw.RequireSession(http.HandlerFunc(cfgCtrl.GetDraft)))

	mux.HandleFunc("/", spaCtrl.Serve)

	return mux
}
