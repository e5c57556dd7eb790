package usecase

import (
	"context"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/pick"
	"github.com/predictpool/backend/internal/domain/playoff"
	"github.com/predictpool/backend/internal/domain/result"
	"github.com/predictpool/backend/internal/domain/score"
	"github.com/predictpool/backend/internal/domain/standings"
	"github.com/predictpool/backend/internal/domain/team"
	"github.com/predictpool/backend/internal/domain/tournament"
	"github.com/predictpool/backend/internal/domain/user"
)

// Hand-written fakes shared by the service tests. Every fake counts its
// reads so tests can assert that short-circuit paths touch no repository.

type stubAuth struct {
	principal user.Principal
	ok        bool
	err       error
}

func (s stubAuth) CurrentUser(context.Context) (user.Principal, bool, error) {
	return s.principal, s.ok, s.err
}

func adminAuth() stubAuth {
	return stubAuth{principal: user.Principal{UserID: "admin-1", IsAdmin: true}, ok: true}
}

type stubTournamentRepo struct {
	tournaments map[string]tournament.Tournament
	reads       int
}

func (s *stubTournamentRepo) GetByID(_ context.Context, id string) (tournament.Tournament, bool, error) {
	s.reads++
	t, ok := s.tournaments[id]
	return t, ok, nil
}

func (s *stubTournamentRepo) List(context.Context) ([]tournament.Tournament, error) {
	s.reads++
	out := make([]tournament.Tournament, 0, len(s.tournaments))
	for _, t := range s.tournaments {
		out = append(out, t)
	}
	return out, nil
}

type stubTeamRepo struct {
	teams []team.Team
	reads int
}

func (s *stubTeamRepo) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	s.reads++
	var out []team.Team
	for _, t := range s.teams {
		if t.TournamentID == tournamentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTeamRepo) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	s.reads++
	for _, t := range s.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

type stubGroupRepo struct {
	groups       map[string]group.Group
	teamIDs      map[string][]string
	byTournament map[string][]group.Group
	reads        int
}

func (s *stubGroupRepo) GetByID(_ context.Context, id string) (group.Group, bool, error) {
	s.reads++
	g, ok := s.groups[id]
	return g, ok, nil
}

func (s *stubGroupRepo) ListByTournament(_ context.Context, tournamentID string) ([]group.Group, error) {
	s.reads++
	return s.byTournament[tournamentID], nil
}

func (s *stubGroupRepo) TeamIDs(_ context.Context, groupID string) ([]string, error) {
	s.reads++
	return s.teamIDs[groupID], nil
}

type stubPlayoffRepo struct {
	rounds map[string]playoff.Round
	reads  int
}

func (s *stubPlayoffRepo) GetRoundByID(_ context.Context, id string) (playoff.Round, bool, error) {
	s.reads++
	r, ok := s.rounds[id]
	return r, ok, nil
}

func (s *stubPlayoffRepo) ListRoundsByTournament(_ context.Context, tournamentID string) ([]playoff.Round, error) {
	s.reads++
	var out []playoff.Round
	for _, r := range s.rounds {
		if r.TournamentID == tournamentID {
			out = append(out, r)
		}
	}
	return out, nil
}

type participantUpdate struct {
	gameID   string
	homeTeam string
	awayTeam string
}

type stubGameRepo struct {
	byGroup      map[string][]game.Game
	byRound      map[string][]game.Game
	byTournament map[string][]game.Game
	updates      []participantUpdate
	reads        int
}

func (s *stubGameRepo) ListByGroup(_ context.Context, groupID string) ([]game.Game, error) {
	s.reads++
	return s.byGroup[groupID], nil
}

func (s *stubGameRepo) ListByRound(_ context.Context, roundID string) ([]game.Game, error) {
	s.reads++
	return s.byRound[roundID], nil
}

func (s *stubGameRepo) ListByTournament(_ context.Context, tournamentID string) ([]game.Game, error) {
	s.reads++
	return s.byTournament[tournamentID], nil
}

func (s *stubGameRepo) UpdateParticipants(_ context.Context, gameID, homeTeamID, awayTeamID string) error {
	s.updates = append(s.updates, participantUpdate{gameID: gameID, homeTeam: homeTeamID, awayTeam: awayTeamID})
	for key, games := range s.byTournament {
		for i, g := range games {
			if g.ID == gameID {
				s.byTournament[key][i].HomeTeamID = homeTeamID
				s.byTournament[key][i].AwayTeamID = awayTeamID
			}
		}
	}
	return nil
}

type stubResultRepo struct {
	results map[string]result.Result
	creates []result.Result
	updates []result.Result
	reads   int
}

func newStubResultRepo(results ...result.Result) *stubResultRepo {
	s := &stubResultRepo{results: make(map[string]result.Result, len(results))}
	for _, r := range results {
		s.results[r.GameID] = r
	}
	return s
}

func (s *stubResultRepo) ListByGameIDs(_ context.Context, gameIDs []string, includeDrafts bool) ([]result.Result, error) {
	s.reads++
	var out []result.Result
	for _, id := range gameIDs {
		r, ok := s.results[id]
		if !ok {
			continue
		}
		if r.IsDraft && !includeDrafts {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *stubResultRepo) Create(_ context.Context, res result.Result) error {
	s.creates = append(s.creates, res)
	s.results[res.GameID] = res
	return nil
}

func (s *stubResultRepo) Update(_ context.Context, res result.Result) (bool, error) {
	s.updates = append(s.updates, res)
	if _, ok := s.results[res.GameID]; !ok {
		return false, nil
	}
	s.results[res.GameID] = res
	return true, nil
}

type stubStandingsRepo struct {
	byGroup  map[string][]standings.RankedTeamStat
	replaced map[string][]standings.RankedTeamStat
	reads    int
}

func newStubStandingsRepo() *stubStandingsRepo {
	return &stubStandingsRepo{
		byGroup:  make(map[string][]standings.RankedTeamStat),
		replaced: make(map[string][]standings.RankedTeamStat),
	}
}

func (s *stubStandingsRepo) ListByGroup(_ context.Context, groupID string) ([]standings.RankedTeamStat, error) {
	s.reads++
	return s.byGroup[groupID], nil
}

func (s *stubStandingsRepo) ReplaceByGroup(_ context.Context, groupID string, rows []standings.RankedTeamStat) error {
	s.byGroup[groupID] = rows
	s.replaced[groupID] = rows
	return nil
}

type stubPickRepo struct {
	gamePicks      []pick.GamePick
	qualifiedPicks []pick.QualifiedPick
}

func (s *stubPickRepo) ListGamePicksByTournament(_ context.Context, tournamentID string) ([]pick.GamePick, error) {
	var out []pick.GamePick
	for _, p := range s.gamePicks {
		if p.TournamentID == tournamentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPickRepo) ListQualifiedPicksByTournament(_ context.Context, tournamentID string) ([]pick.QualifiedPick, error) {
	var out []pick.QualifiedPick
	for _, p := range s.qualifiedPicks {
		if p.TournamentID == tournamentID {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubScoreRepo struct {
	scores      []score.UserScore
	gamePoints  map[string]int
	bonusPoints map[string]int
	history     []score.HistoryEntry
}

func (s *stubScoreRepo) ListByTournament(_ context.Context, tournamentID string) ([]score.UserScore, error) {
	var out []score.UserScore
	for _, sc := range s.scores {
		if sc.TournamentID == tournamentID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *stubScoreRepo) SetGamePoints(_ context.Context, _ string, points map[string]int) error {
	s.gamePoints = points
	return nil
}

func (s *stubScoreRepo) SetBonusPoints(_ context.Context, _ string, points map[string]int) error {
	s.bonusPoints = points
	return nil
}

func (s *stubScoreRepo) AppendHistory(_ context.Context, entries []score.HistoryEntry) error {
	s.history = append(s.history, entries...)
	return nil
}

type pipelineCall struct {
	tournamentID string
	groupID      string
}

type stubPipeline struct {
	calls []pipelineCall
	err   error
}

func (s *stubPipeline) Run(_ context.Context, tournamentID, groupID string) error {
	s.calls = append(s.calls, pipelineCall{tournamentID: tournamentID, groupID: groupID})
	return s.err
}

func intPtr(n int) *int { return &n }
