package core

import (
	"context"
	"time"

	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

// Seeder is the part of a GameStore that accepts catalogue records.
type Seeder interface {
	SaveTournament(ctx context.Context, t *Tournament) error
	SaveAchievement(ctx context.Context, a *Achievement) error
}

// Seed fills s with a small catalogue for every table game, dated around now.
func Seed(ctx context.Context, s Seeder, now time.Time) error {
	now = now.UTC().Truncate(time.Second)
	for _, game := range tablegames.Games() {
		for _, t := range seedTournaments(game, now) {
			if err := s.SaveTournament(ctx, &t); err != nil {
				return err
			}
		}
		for _, a := range seedAchievements(game, now) {
			if err := s.SaveAchievement(ctx, &a); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedTournaments(game tablegames.Game, now time.Time) []Tournament {
	ended := now.Add(-24 * time.Hour)
	tonight := now.Add(6 * time.Hour)
	nextWeek := now.Add(8 * 24 * time.Hour)

	return []Tournament{
		{
			Game:                  game,
			GameTypeID:            1,
			TournamentTypeID:      1,
			Status:                tablegames.TournamentFinished,
			BetAmount:             1,
			Prize:                 50,
			FinalPoint:            5,
			MinPlayerCount:        4,
			MaxPlayerCount:        8,
			RegisteredPlayerCount: 8,
			CreateDate:            now.Add(-72 * time.Hour),
			StartDate:             now.Add(-48 * time.Hour),
			EndDate:               &ended,
			Prizes:                []Prize{{ID: 1, Percent: 100}},
			Translations:          []Translation{{Lang: "en", Name: string(game) + " Daily Cup"}},
		},
		{
			Game:                  game,
			GameTypeID:            1,
			TournamentTypeID:      2,
			Status:                tablegames.TournamentInProgress,
			BetAmount:             5,
			Prize:                 200,
			FinalPoint:            7,
			MinPlayerCount:        8,
			MaxPlayerCount:        32,
			RegisteredPlayerCount: 19,
			IsNetwork:             true,
			CreateDate:            now.Add(-48 * time.Hour),
			StartDate:             now.Add(-2 * time.Hour),
			EndDate:               &tonight,
			Prizes:                []Prize{{ID: 1, Percent: 70}, {ID: 2, Percent: 30}},
			Translations: []Translation{
				{Lang: "en", Name: string(game) + " Weekend Masters"},
				{Lang: "ka", Name: string(game) + " შაბათ-კვირის მასტერსი"},
			},
		},
		{
			Game:                  game,
			GameTypeID:            2,
			TournamentTypeID:      1,
			Status:                tablegames.TournamentOpen,
			BetAmount:             10,
			Prize:                 1000,
			FinalPoint:            9,
			MinPlayerCount:        16,
			MaxPlayerCount:        64,
			RegisteredPlayerCount: 3,
			CreateDate:            now.Add(-time.Hour),
			StartDate:             now.Add(7 * 24 * time.Hour),
			EndDate:               &nextWeek,
			Prizes:                []Prize{{ID: 1, Percent: 50}, {ID: 2, Percent: 30}, {ID: 3, Percent: 20}},
			Translations:          []Translation{{Lang: "en", Name: string(game) + " Grand Open"}},
		},
	}
}

func seedAchievements(game tablegames.Game, now time.Time) []Achievement {
	created := now.Add(-30 * 24 * time.Hour)
	return []Achievement{
		{
			Game:         game,
			Type:         tablegames.AchievementGamesPlayed,
			TargetValue:  100,
			Points:       10,
			IsActive:     true,
			CreateDate:   created,
			Translations: []Translation{{Lang: "en", Name: "Regular", Description: "Play 100 games"}},
		},
		{
			Game:         game,
			Type:         tablegames.AchievementGamesWon,
			TargetValue:  50,
			Points:       25,
			IsActive:     true,
			CreateDate:   created,
			Translations: []Translation{{Lang: "en", Name: "Winner", Description: "Win 50 games"}},
		},
		{
			Game:         game,
			Type:         tablegames.AchievementWinStreak,
			TargetValue:  5,
			Points:       50,
			IsActive:     true,
			CreateDate:   created.Add(time.Hour),
			Translations: []Translation{{Lang: "en", Name: "On fire", Description: "Win five in a row"}},
		},
		{
			Game:         game,
			Type:         tablegames.AchievementTournamentsWon,
			TargetValue:  1,
			Points:       100,
			IsActive:     false,
			CreateDate:   created.Add(2 * time.Hour),
			Translations: []Translation{{Lang: "en", Name: "Champion"}},
		},
	}
}
