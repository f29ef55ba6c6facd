// Package tablegames holds the table game wire contract shared by every game
// (backgammon, okey). Controllers are "<Game>Tournament" and "<Game>Achievement".
package tablegames

import (
	"time"

	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

const (
	TournamentController  = "Tournament"
	AchievementController = "Achievement"

	ResourceGetTournaments  = "GetTournaments"
	ResourceGetAchievements = "GetAchievements"
)

// TournamentsFilter is hashed as merchantId|gameTypeId|tournamentTypeId|
// startDateFrom|startDateTo|endDateFrom|endDateTo|orderingDirection|
// orderingField|pageIndex|pageSize|key.
type TournamentsFilter struct {
	casino.Signature
	casino.Paging
	GameTypeID       *int64     `json:"gameTypeId,omitempty"`
	TournamentTypeID *int64     `json:"tournamentTypeId,omitempty"`
	StartDateFrom    *time.Time `json:"startDateFrom,omitempty"`
	StartDateTo      *time.Time `json:"startDateTo,omitempty"`
	EndDateFrom      *time.Time `json:"endDateFrom,omitempty"`
	EndDateTo        *time.Time `json:"endDateTo,omitempty"`
}

func (f *TournamentsFilter) HashFields() []string {
	fields := []string{
		casino.FormatOptionalInt(f.GameTypeID),
		casino.FormatOptionalInt(f.TournamentTypeID),
		casino.FormatOptionalTime(f.StartDateFrom),
		casino.FormatOptionalTime(f.StartDateTo),
		casino.FormatOptionalTime(f.EndDateFrom),
		casino.FormatOptionalTime(f.EndDateTo),
	}
	return append(fields, f.Paging.HashFields()...)
}

type TournamentPagingResult struct {
	TotalCount  *int         `json:"totalCount" validate:"required"`
	Tournaments []Tournament `json:"tournaments" validate:"required,dive"`
}

type Tournament struct {
	ID                    *int64                  `json:"id" validate:"required"`
	TournamentTypeID      *int64                  `json:"tournamentTypeId" validate:"required"`
	GameTypeID            *int64                  `json:"gameTypeId" validate:"required"`
	StatusID              *int                    `json:"statusId" validate:"required"`
	BetAmount             float64                 `json:"betAmount"`
	Prize                 float64                 `json:"prize"`
	FinalPoint            int                     `json:"finalPoint"`
	MinPlayerCount        int                     `json:"minPlayerCount"`
	MaxPlayerCount        int                     `json:"maxPlayerCount"`
	RegisteredPlayerCount int                     `json:"registeredPlayerCount"`
	FilteredCount         int                     `json:"filteredCount"`
	IsHidden              bool                    `json:"isHidden"`
	IsNetwork             bool                    `json:"isNetwork"`
	CreateDate            *time.Time              `json:"createDate" validate:"required"`
	StartDate             *time.Time              `json:"startDate" validate:"required"`
	EndDate               *time.Time              `json:"endDate"`
	Prizes                []TournamentPrize       `json:"prizes" validate:"dive"`
	Translations          []TournamentTranslation `json:"translations" validate:"dive"`
}

type TournamentPrize struct {
	ID      *int64   `json:"id" validate:"required"`
	Percent *float64 `json:"percent" validate:"required"`
}

type TournamentTranslation struct {
	Lang *string `json:"lang" validate:"required"`
	Name *string `json:"name" validate:"required"`
}

// AchievementsFilter is hashed as merchantId|achievementTypeId|
// orderingDirection|orderingField|pageIndex|pageSize|key.
type AchievementsFilter struct {
	casino.Signature
	casino.Paging
	AchievementTypeID *int64 `json:"achievementTypeId,omitempty"`
}

func (f *AchievementsFilter) HashFields() []string {
	return append([]string{casino.FormatOptionalInt(f.AchievementTypeID)}, f.Paging.HashFields()...)
}

type AchievementPagingResult struct {
	TotalCount   *int          `json:"totalCount" validate:"required"`
	Achievements []Achievement `json:"achievements" validate:"required,dive"`
}

type Achievement struct {
	ID                *int64                   `json:"id" validate:"required"`
	AchievementTypeID *int                     `json:"achievementTypeId" validate:"required"`
	TargetValue       int                      `json:"targetValue"`
	Points            int                      `json:"points"`
	IsActive          bool                     `json:"isActive"`
	CreateDate        *time.Time               `json:"createDate"`
	Translations      []AchievementTranslation `json:"translations" validate:"dive"`
}

type AchievementTranslation struct {
	Lang        *string `json:"lang" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	Description string  `json:"description"`
}
