package handlers

import (
	"net/http"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
	wire "github.com/betsolutions/casino-sdk-go/internal/wire/tablegames"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

// Tournaments serves <Game>Tournament/GetTournaments.
func Tournaments(store repositories.GameStore, game tablegames.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req wire.TournamentsFilter
		if _, ok := decodeSigned(w, r, &req); !ok {
			return
		}
		if err := req.Paging.Validate(); err != nil {
			respondStatus(w, casino.StatusInvalidRequest, err.Error())
			return
		}

		items, total, err := store.ListTournaments(r.Context(), core.TournamentQuery{
			Game:             game,
			GameTypeID:       req.GameTypeID,
			TournamentTypeID: req.TournamentTypeID,
			StartDateFrom:    req.StartDateFrom,
			StartDateTo:      req.StartDateTo,
			EndDateFrom:      req.EndDateFrom,
			EndDateTo:        req.EndDateTo,
			Page:             pageOf(req.Paging),
		})
		if err != nil {
			fail(w, r, err)
			return
		}

		out := wire.TournamentPagingResult{TotalCount: &total, Tournaments: make([]wire.Tournament, 0, len(items))}
		for _, t := range items {
			out.Tournaments = append(out.Tournaments, tournamentOf(t, total))
		}
		respond(w, casino.StatusSuccess, "", &out)
	}
}

func tournamentOf(t core.Tournament, filtered int) wire.Tournament {
	prizes := make([]wire.TournamentPrize, 0, len(t.Prizes))
	for _, p := range t.Prizes {
		prizes = append(prizes, wire.TournamentPrize{ID: ptr(p.ID), Percent: ptr(p.Percent)})
	}
	translations := make([]wire.TournamentTranslation, 0, len(t.Translations))
	for _, tr := range t.Translations {
		translations = append(translations, wire.TournamentTranslation{Lang: ptr(tr.Lang), Name: ptr(tr.Name)})
	}

	return wire.Tournament{
		ID:                    ptr(t.ID),
		TournamentTypeID:      ptr(t.TournamentTypeID),
		GameTypeID:            ptr(t.GameTypeID),
		StatusID:              ptr(int(t.Status)),
		BetAmount:             t.BetAmount,
		Prize:                 t.Prize,
		FinalPoint:            t.FinalPoint,
		MinPlayerCount:        t.MinPlayerCount,
		MaxPlayerCount:        t.MaxPlayerCount,
		RegisteredPlayerCount: t.RegisteredPlayerCount,
		FilteredCount:         filtered,
		IsHidden:              t.IsHidden,
		IsNetwork:             t.IsNetwork,
		CreateDate:            ptr(t.CreateDate),
		StartDate:             ptr(t.StartDate),
		EndDate:               t.EndDate,
		Prizes:                prizes,
		Translations:          translations,
	}
}

// Achievements serves <Game>Achievement/GetAchievements.
func Achievements(store repositories.GameStore, game tablegames.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req wire.AchievementsFilter
		if _, ok := decodeSigned(w, r, &req); !ok {
			return
		}
		if err := req.Paging.Validate(); err != nil {
			respondStatus(w, casino.StatusInvalidRequest, err.Error())
			return
		}

		items, total, err := store.ListAchievements(r.Context(), core.AchievementQuery{
			Game:   game,
			TypeID: req.AchievementTypeID,
			Page:   pageOf(req.Paging),
		})
		if err != nil {
			fail(w, r, err)
			return
		}

		out := wire.AchievementPagingResult{TotalCount: &total, Achievements: make([]wire.Achievement, 0, len(items))}
		for _, a := range items {
			translations := make([]wire.AchievementTranslation, 0, len(a.Translations))
			for _, tr := range a.Translations {
				translations = append(translations, wire.AchievementTranslation{
					Lang:        ptr(tr.Lang),
					Name:        ptr(tr.Name),
					Description: tr.Description,
				})
			}
			out.Achievements = append(out.Achievements, wire.Achievement{
				ID:                ptr(a.ID),
				AchievementTypeID: ptr(int(a.Type)),
				TargetValue:       a.TargetValue,
				Points:            a.Points,
				IsActive:          a.IsActive,
				CreateDate:        ptr(a.CreateDate),
				Translations:      translations,
			})
		}
		respond(w, casino.StatusSuccess, "", &out)
	}
}
