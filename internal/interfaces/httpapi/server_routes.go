package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/groups", handler.ListGroups)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboard", handler.ListLeaderboard)
	mux.HandleFunc("GET /v1/groups/{groupID}/standings", handler.ListGroupStandings)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/admin/results/autofill", RequireAuth(verifier, http.HandlerFunc(handler.AutoFillResults)))
	mux.Handle("POST /v1/admin/results/clear", RequireAuth(verifier, http.HandlerFunc(handler.ClearResults)))
	mux.Handle("GET /v1/admin/tournaments/{tournamentID}/simulation", RequireAuth(verifier, http.HandlerFunc(handler.SimulateTournament)))
}
