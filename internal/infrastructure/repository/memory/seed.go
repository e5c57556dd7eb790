package memory

import (
	"time"

	"github.com/predictpool/backend/internal/domain/game"
	"github.com/predictpool/backend/internal/domain/group"
	"github.com/predictpool/backend/internal/domain/pick"
	"github.com/predictpool/backend/internal/domain/playoff"
	"github.com/predictpool/backend/internal/domain/team"
	"github.com/predictpool/backend/internal/domain/tournament"
)

const (
	TournamentIDEuro = "euro-2024"

	GroupIDEuroA = "euro-2024-a"
	GroupIDEuroB = "euro-2024-b"

	RoundIDEuroSemis = "euro-2024-sf"
	RoundIDEuroFinal = "euro-2024-f"
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:                 TournamentIDEuro,
			Name:               "European Championship",
			Season:             "2024",
			HeadToHeadTieBreak: true,
		},
	}
}

func SeedGroups() []group.Group {
	return []group.Group{
		{ID: GroupIDEuroA, TournamentID: TournamentIDEuro, Name: "Group A"},
		{ID: GroupIDEuroB, TournamentID: TournamentIDEuro, Name: "Group B"},
	}
}

func SeedGroupTeamIDs() map[string][]string {
	return map[string][]string{
		GroupIDEuroA: {"team-ger", "team-sco", "team-hun", "team-sui"},
		GroupIDEuroB: {"team-esp", "team-hrv", "team-ita", "team-alb"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-ger", TournamentID: TournamentIDEuro, Name: "Germany", ShortCode: "GER"},
		{ID: "team-sco", TournamentID: TournamentIDEuro, Name: "Scotland", ShortCode: "SCO"},
		{ID: "team-hun", TournamentID: TournamentIDEuro, Name: "Hungary", ShortCode: "HUN"},
		{ID: "team-sui", TournamentID: TournamentIDEuro, Name: "Switzerland", ShortCode: "SUI"},
		{ID: "team-esp", TournamentID: TournamentIDEuro, Name: "Spain", ShortCode: "ESP"},
		{ID: "team-hrv", TournamentID: TournamentIDEuro, Name: "Croatia", ShortCode: "CRO"},
		{ID: "team-ita", TournamentID: TournamentIDEuro, Name: "Italy", ShortCode: "ITA"},
		{ID: "team-alb", TournamentID: TournamentIDEuro, Name: "Albania", ShortCode: "ALB"},
	}
}

func SeedPlayoffRounds() []playoff.Round {
	return []playoff.Round{
		{ID: RoundIDEuroSemis, TournamentID: TournamentIDEuro, Name: "Semi-finals", Stage: 1},
		{ID: RoundIDEuroFinal, TournamentID: TournamentIDEuro, Name: "Final", Stage: 2},
	}
}

func SeedGames() []game.Game {
	kickoff := func(day, hour int) time.Time {
		return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
	}
	groupGame := func(id, groupID, home, away string, at time.Time) game.Game {
		return game.Game{
			ID:           id,
			TournamentID: TournamentIDEuro,
			GroupID:      groupID,
			HomeTeamID:   home,
			AwayTeamID:   away,
			KickoffAt:    at,
		}
	}
	return []game.Game{
		groupGame("gm-a-01", GroupIDEuroA, "team-ger", "team-sco", kickoff(14, 19)),
		groupGame("gm-a-02", GroupIDEuroA, "team-hun", "team-sui", kickoff(15, 13)),
		groupGame("gm-a-03", GroupIDEuroA, "team-ger", "team-hun", kickoff(19, 16)),
		groupGame("gm-a-04", GroupIDEuroA, "team-sco", "team-sui", kickoff(19, 19)),
		groupGame("gm-a-05", GroupIDEuroA, "team-sui", "team-ger", kickoff(23, 19)),
		groupGame("gm-a-06", GroupIDEuroA, "team-sco", "team-hun", kickoff(23, 19)),
		groupGame("gm-b-01", GroupIDEuroB, "team-esp", "team-hrv", kickoff(15, 16)),
		groupGame("gm-b-02", GroupIDEuroB, "team-ita", "team-alb", kickoff(15, 19)),
		groupGame("gm-b-03", GroupIDEuroB, "team-hrv", "team-alb", kickoff(19, 13)),
		groupGame("gm-b-04", GroupIDEuroB, "team-esp", "team-ita", kickoff(20, 19)),
		groupGame("gm-b-05", GroupIDEuroB, "team-alb", "team-esp", kickoff(24, 19)),
		groupGame("gm-b-06", GroupIDEuroB, "team-hrv", "team-ita", kickoff(24, 19)),
		{
			ID:             "gm-sf-01",
			TournamentID:   TournamentIDEuro,
			PlayoffRoundID: RoundIDEuroSemis,
			HomeSlot:       game.Slot{Type: game.SlotGroupPosition, GroupID: GroupIDEuroA, Position: 1},
			AwaySlot:       game.Slot{Type: game.SlotGroupPosition, GroupID: GroupIDEuroB, Position: 2},
			KickoffAt:      kickoff(28, 19),
		},
		{
			ID:             "gm-sf-02",
			TournamentID:   TournamentIDEuro,
			PlayoffRoundID: RoundIDEuroSemis,
			HomeSlot:       game.Slot{Type: game.SlotGroupPosition, GroupID: GroupIDEuroB, Position: 1},
			AwaySlot:       game.Slot{Type: game.SlotGroupPosition, GroupID: GroupIDEuroA, Position: 2},
			KickoffAt:      kickoff(29, 19),
		},
		{
			ID:             "gm-f-01",
			TournamentID:   TournamentIDEuro,
			PlayoffRoundID: RoundIDEuroFinal,
			HomeSlot:       game.Slot{Type: game.SlotWinnerOf, GameID: "gm-sf-01"},
			AwaySlot:       game.Slot{Type: game.SlotWinnerOf, GameID: "gm-sf-02"},
			KickoffAt:      time.Date(2024, 7, 3, 19, 0, 0, 0, time.UTC),
		},
	}
}

func SeedGamePicks() []pick.GamePick {
	gamePick := func(userID, gameID string, home, away int, boosted bool) pick.GamePick {
		return pick.GamePick{
			UserID:       userID,
			TournamentID: TournamentIDEuro,
			GameID:       gameID,
			HomeGoals:    home,
			AwayGoals:    away,
			Boosted:      boosted,
		}
	}
	return []pick.GamePick{
		gamePick("user-alice", "gm-a-01", 2, 0, false),
		gamePick("user-alice", "gm-a-02", 1, 1, false),
		gamePick("user-alice", "gm-b-01", 3, 1, true),
		gamePick("user-bob", "gm-a-01", 1, 1, false),
		gamePick("user-bob", "gm-a-02", 0, 2, false),
		gamePick("user-bob", "gm-b-01", 2, 1, false),
		gamePick("user-carol", "gm-a-01", 4, 0, false),
	}
}

func SeedQualifiedPicks() []pick.QualifiedPick {
	return []pick.QualifiedPick{
		{UserID: "user-alice", TournamentID: TournamentIDEuro, TeamID: "team-ger"},
		{UserID: "user-alice", TournamentID: TournamentIDEuro, TeamID: "team-esp"},
		{UserID: "user-bob", TournamentID: TournamentIDEuro, TeamID: "team-ita"},
		{UserID: "user-bob", TournamentID: TournamentIDEuro, TeamID: "team-sui"},
	}
}
