package http

import (
	"net/http"

	"seller-wallet-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires the delivery routes. Accept and reject are staff-only;
// everything except auth requires a valid access token.
func NewRouter(tokens security.TokenManager, authHandler *AuthHandler, requestHandler *RequestHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(Auth(tokens))
	authed.HandleFunc("/sellers/me", requestHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/credit-requests", requestHandler.CreateCreditRequest).Methods(http.MethodPost)
	authed.HandleFunc("/charges", requestHandler.ChargePhoneNumber).Methods(http.MethodPost)

	staff := authed.NewRoute().Subrouter()
	staff.Use(RequireStaff)
	staff.HandleFunc("/credit-requests/{id:[0-9]+}/accept", requestHandler.AcceptCreditRequest).Methods(http.MethodPost)
	staff.HandleFunc("/credit-requests/{id:[0-9]+}/reject", requestHandler.RejectCreditRequest).Methods(http.MethodPost)

	return r
}
