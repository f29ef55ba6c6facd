package tablegames

import (
	"fmt"

	wire "github.com/betsolutions/casino-sdk-go/internal/wire/tablegames"
)

func projectTournaments(w *wire.TournamentPagingResult) (TournamentPagingResult, error) {
	out := TournamentPagingResult{
		TotalCount:  *w.TotalCount,
		Tournaments: make([]Tournament, 0, len(w.Tournaments)),
	}
	for i := range w.Tournaments {
		t, err := projectTournament(&w.Tournaments[i])
		if err != nil {
			return TournamentPagingResult{}, fmt.Errorf("tournament %d: %w", i, err)
		}
		out.Tournaments = append(out.Tournaments, t)
	}
	return out, nil
}

func projectTournament(w *wire.Tournament) (Tournament, error) {
	status, err := tournamentStatus(*w.StatusID)
	if err != nil {
		return Tournament{}, err
	}

	prizes := make([]TournamentPrize, 0, len(w.Prizes))
	for _, p := range w.Prizes {
		prizes = append(prizes, TournamentPrize{ID: *p.ID, Percent: *p.Percent})
	}

	translations := make([]TournamentTranslation, 0, len(w.Translations))
	for _, t := range w.Translations {
		translations = append(translations, TournamentTranslation{Lang: *t.Lang, Name: *t.Name})
	}

	return Tournament{
		ID:                    *w.ID,
		TournamentTypeID:      *w.TournamentTypeID,
		GameTypeID:            *w.GameTypeID,
		Status:                status,
		BetAmount:             w.BetAmount,
		Prize:                 w.Prize,
		FinalPoint:            w.FinalPoint,
		MinPlayerCount:        w.MinPlayerCount,
		MaxPlayerCount:        w.MaxPlayerCount,
		RegisteredPlayerCount: w.RegisteredPlayerCount,
		FilteredCount:         w.FilteredCount,
		IsHidden:              w.IsHidden,
		IsNetwork:             w.IsNetwork,
		CreateDate:            *w.CreateDate,
		StartDate:             *w.StartDate,
		EndDate:               w.EndDate,
		Prizes:                prizes,
		Translations:          translations,
	}, nil
}

func projectAchievements(w *wire.AchievementPagingResult) (AchievementPagingResult, error) {
	out := AchievementPagingResult{
		TotalCount:   *w.TotalCount,
		Achievements: make([]Achievement, 0, len(w.Achievements)),
	}
	for i := range w.Achievements {
		a, err := projectAchievement(&w.Achievements[i])
		if err != nil {
			return AchievementPagingResult{}, fmt.Errorf("achievement %d: %w", i, err)
		}
		out.Achievements = append(out.Achievements, a)
	}
	return out, nil
}

func projectAchievement(w *wire.Achievement) (Achievement, error) {
	typ, err := achievementType(*w.AchievementTypeID)
	if err != nil {
		return Achievement{}, err
	}

	translations := make([]AchievementTranslation, 0, len(w.Translations))
	for _, t := range w.Translations {
		translations = append(translations, AchievementTranslation{
			Lang:        *t.Lang,
			Name:        *t.Name,
			Description: t.Description,
		})
	}

	return Achievement{
		ID:           *w.ID,
		Type:         typ,
		TargetValue:  w.TargetValue,
		Points:       w.Points,
		IsActive:     w.IsActive,
		CreateDate:   w.CreateDate,
		Translations: translations,
	}, nil
}
