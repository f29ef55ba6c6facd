package tablegames

import (
	"time"

	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

// Game selects the table game whose backend controllers are addressed.
type Game string

const (
	Backgammon Game = "Backgammon"
	Okey       Game = "Okey"
)

// Games lists every supported table game.
func Games() []Game {
	return []Game{Backgammon, Okey}
}

func (g Game) controller(kind string) string {
	return string(g) + kind
}

// TournamentStatus is the named form of the backend tournament status id.
type TournamentStatus int

const (
	TournamentOpen       TournamentStatus = 1
	TournamentInProgress TournamentStatus = 2
	TournamentFinished   TournamentStatus = 3
	TournamentCancelled  TournamentStatus = 4
	TournamentClosed     TournamentStatus = 5
)

var tournamentStatusNames = map[TournamentStatus]string{
	TournamentOpen:       "Open",
	TournamentInProgress: "InProgress",
	TournamentFinished:   "Finished",
	TournamentCancelled:  "Cancelled",
	TournamentClosed:     "Closed",
}

func (s TournamentStatus) String() string {
	if name, ok := tournamentStatusNames[s]; ok {
		return name
	}
	return "TournamentStatus(unknown)"
}

func tournamentStatus(code int) (TournamentStatus, error) {
	s := TournamentStatus(code)
	if _, ok := tournamentStatusNames[s]; !ok {
		return 0, casino.UnknownCode("tournament status", code)
	}
	return s, nil
}

// AchievementType is the named form of the backend achievement type id.
type AchievementType int

const (
	AchievementGamesPlayed    AchievementType = 1
	AchievementGamesWon       AchievementType = 2
	AchievementTournamentsWon AchievementType = 3
	AchievementWinStreak      AchievementType = 4
)

var achievementTypeNames = map[AchievementType]string{
	AchievementGamesPlayed:    "GamesPlayed",
	AchievementGamesWon:       "GamesWon",
	AchievementTournamentsWon: "TournamentsWon",
	AchievementWinStreak:      "WinStreak",
}

func (t AchievementType) String() string {
	if name, ok := achievementTypeNames[t]; ok {
		return name
	}
	return "AchievementType(unknown)"
}

func achievementType(code int) (AchievementType, error) {
	t := AchievementType(code)
	if _, ok := achievementTypeNames[t]; !ok {
		return 0, casino.UnknownCode("achievement type", code)
	}
	return t, nil
}

// TournamentsFilter narrows a tournament listing. Nil fields are not filtered on.
type TournamentsFilter struct {
	casino.Paging
	GameTypeID       *int64
	TournamentTypeID *int64
	StartDateFrom    *time.Time
	StartDateTo      *time.Time
	EndDateFrom      *time.Time
	EndDateTo        *time.Time
}

type TournamentPagingResult struct {
	TotalCount  int
	Tournaments []Tournament
}

type Tournament struct {
	ID                    int64
	TournamentTypeID      int64
	GameTypeID            int64
	Status                TournamentStatus
	BetAmount             float64
	Prize                 float64
	FinalPoint            int
	MinPlayerCount        int
	MaxPlayerCount        int
	RegisteredPlayerCount int
	FilteredCount         int
	IsHidden              bool
	IsNetwork             bool
	CreateDate            time.Time
	StartDate             time.Time
	EndDate               *time.Time
	Prizes                []TournamentPrize
	Translations          []TournamentTranslation
}

type TournamentPrize struct {
	ID      int64
	Percent float64
}

type TournamentTranslation struct {
	Lang string
	Name string
}

// AchievementsFilter narrows an achievement listing.
type AchievementsFilter struct {
	casino.Paging
	AchievementTypeID *int64
}

type AchievementPagingResult struct {
	TotalCount   int
	Achievements []Achievement
}

type Achievement struct {
	ID           int64
	Type         AchievementType
	TargetValue  int
	Points       int
	IsActive     bool
	CreateDate   *time.Time
	Translations []AchievementTranslation
}

type AchievementTranslation struct {
	Lang        string
	Name        string
	Description string
}

type (
	GetTournamentsResult  = casino.Result[TournamentPagingResult]
	GetAchievementsResult = casino.Result[AchievementPagingResult]
)
