// Package tablegames exposes tournaments and achievements of the table games.
// Every game shares one wire contract; only the controller name differs.
package tablegames

import (
	"context"

	wire "github.com/betsolutions/casino-sdk-go/internal/wire/tablegames"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

// TournamentService lists tournaments of one table game.
type TournamentService struct {
	client *casino.Client
	op     casino.Operation[*wire.TournamentsFilter, wire.TournamentPagingResult, TournamentPagingResult]
}

func NewTournamentService(client *casino.Client, game Game) *TournamentService {
	return &TournamentService{
		client: client,
		op: casino.Operation[*wire.TournamentsFilter, wire.TournamentPagingResult, TournamentPagingResult]{
			Controller: game.controller(wire.TournamentController),
			Resource:   wire.ResourceGetTournaments,
			Project:    projectTournaments,
		},
	}
}

// GetTournaments returns one page of tournaments matching filter.
func (s *TournamentService) GetTournaments(ctx context.Context, filter TournamentsFilter) (*GetTournamentsResult, error) {
	if err := filter.Validate(); err != nil {
		return casino.Invalid[TournamentPagingResult](err), nil
	}

	return casino.Execute(ctx, s.client, s.op, &wire.TournamentsFilter{
		Paging:           filter.Paging,
		GameTypeID:       filter.GameTypeID,
		TournamentTypeID: filter.TournamentTypeID,
		StartDateFrom:    filter.StartDateFrom,
		StartDateTo:      filter.StartDateTo,
		EndDateFrom:      filter.EndDateFrom,
		EndDateTo:        filter.EndDateTo,
	})
}

// AchievementService lists achievements of one table game.
type AchievementService struct {
	client *casino.Client
	op     casino.Operation[*wire.AchievementsFilter, wire.AchievementPagingResult, AchievementPagingResult]
}

func NewAchievementService(client *casino.Client, game Game) *AchievementService {
	return &AchievementService{
		client: client,
		op: casino.Operation[*wire.AchievementsFilter, wire.AchievementPagingResult, AchievementPagingResult]{
			Controller: game.controller(wire.AchievementController),
			Resource:   wire.ResourceGetAchievements,
			Project:    projectAchievements,
		},
	}
}

// GetAchievements returns one page of achievements matching filter.
func (s *AchievementService) GetAchievements(ctx context.Context, filter AchievementsFilter) (*GetAchievementsResult, error) {
	if err := filter.Validate(); err != nil {
		return casino.Invalid[AchievementPagingResult](err), nil
	}

	return casino.Execute(ctx, s.client, s.op, &wire.AchievementsFilter{
		Paging:            filter.Paging,
		AchievementTypeID: filter.AchievementTypeID,
	})
}
