package httpapi

import (
	"net/http"
	"time"

	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/score"
	"github.com/predictpool/backend/internal/domain/standings"
	"github.com/predictpool/backend/internal/domain/team"
	"github.com/predictpool/backend/internal/domain/tournament"
)

type tournamentDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
}

type groupDTO struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	Name         string `json:"name"`
}

type teamDTO struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	Name         string `json:"name"`
	ShortCode    string `json:"shortCode"`
}

type standingRowDTO struct {
	TeamID         string `json:"teamId"`
	CurrentRank    int    `json:"currentRank"`
	Points         int    `json:"points"`
	GamesPlayed    int    `json:"gamesPlayed"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}

type userScoreDTO struct {
	UserID      string    `json:"userId"`
	GamePoints  int       `json:"gamePoints"`
	BonusPoints int       `json:"bonusPoints"`
	TotalPoints int       `json:"totalPoints"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	items, err := h.queryService.ListTournaments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentsToDTO(items))
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.queryService.ListGroups(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list groups failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupsToDTO(items))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.queryService.ListTeams(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) ListGroupStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupStandings")
	defer span.End()

	groupID := r.PathValue("groupID")
	rows, err := h.queryService.GroupStandings(ctx, groupID)
	if err != nil {
		h.logger.WarnContext(ctx, "list group standings failed", "group_id", groupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboard")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	rows, err := h.queryService.Leaderboard(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaderboard failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userScoresToDTO(rows))
}

// SimulateTournament runs the Monte Carlo group-winner simulation and returns
// per-team win probabilities.
func (h *Handler) SimulateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SimulateTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	outcome, err := h.simulationService.Simulate(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "tournament simulation failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcome)
}

func tournamentsToDTO(items []tournament.Tournament) []tournamentDTO {
	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentDTO{ID: item.ID, Name: item.Name, Season: item.Season})
	}
	return out
}

func groupsToDTO(items []group.Group) []groupDTO {
	out := make([]groupDTO, 0, len(items))
	for _, item := range items {
		out = append(out, groupDTO{ID: item.ID, TournamentID: item.TournamentID, Name: item.Name})
	}
	return out
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamDTO{ID: item.ID, TournamentID: item.TournamentID, Name: item.Name, ShortCode: item.ShortCode})
	}
	return out
}

func standingsToDTO(rows []standings.RankedTeamStat) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			TeamID:         row.TeamID,
			CurrentRank:    row.CurrentRank,
			Points:         row.Points,
			GamesPlayed:    row.GamesPlayed,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
		})
	}
	return out
}

func userScoresToDTO(rows []score.UserScore) []userScoreDTO {
	out := make([]userScoreDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, userScoreDTO{
			UserID:      row.UserID,
			GamePoints:  row.GamePoints,
			BonusPoints: row.BonusPoints,
			TotalPoints: row.TotalPoints,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out
}
