// Package core holds the sandbox backend's records and the listing rules
// shared by every GameStore implementation.
package core

import (
	"errors"
	"time"

	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

var ErrNotFound = errors.New("not found")

type Campaign struct {
	ID            int64                `json:"id"`
	MerchantID    int64                `json:"merchantId"`
	Name          string               `json:"name"`
	GameID        int64                `json:"gameId"`
	Currency      string               `json:"currency"`
	BetAmount     float64              `json:"betAmount"`
	FreespinCount int                  `json:"freespinCount"`
	PlayerIDs     []string             `json:"playerIds,omitempty"`
	Status        slots.CampaignStatus `json:"status"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	CreateDate    time.Time            `json:"createDate"`
}

type Prize struct {
	ID      int64   `json:"id"`
	Percent float64 `json:"percent"`
}

type Translation struct {
	Lang        string `json:"lang"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Tournament struct {
	ID                    int64                       `json:"id"`
	Game                  tablegames.Game             `json:"game"`
	GameTypeID            int64                       `json:"gameTypeId"`
	TournamentTypeID      int64                       `json:"tournamentTypeId"`
	Status                tablegames.TournamentStatus `json:"status"`
	BetAmount             float64                     `json:"betAmount"`
	Prize                 float64                     `json:"prize"`
	FinalPoint            int                         `json:"finalPoint"`
	MinPlayerCount        int                         `json:"minPlayerCount"`
	MaxPlayerCount        int                         `json:"maxPlayerCount"`
	RegisteredPlayerCount int                         `json:"registeredPlayerCount"`
	IsHidden              bool                        `json:"isHidden"`
	IsNetwork             bool                        `json:"isNetwork"`
	CreateDate            time.Time                   `json:"createDate"`
	StartDate             time.Time                   `json:"startDate"`
	EndDate               *time.Time                  `json:"endDate,omitempty"`
	Prizes                []Prize                     `json:"prizes,omitempty"`
	Translations          []Translation               `json:"translations,omitempty"`
}

// Advance moves the tournament along Open -> InProgress -> Finished as its
// dates pass. Cancelled and Closed tournaments never move. It reports whether
// the status changed.
func (t *Tournament) Advance(now time.Time) bool {
	before := t.Status
	if t.Status == tablegames.TournamentOpen && !now.Before(t.StartDate) {
		t.Status = tablegames.TournamentInProgress
	}
	if t.Status == tablegames.TournamentInProgress && t.EndDate != nil && !now.Before(*t.EndDate) {
		t.Status = tablegames.TournamentFinished
	}
	return t.Status != before
}

type Achievement struct {
	ID           int64                      `json:"id"`
	Game         tablegames.Game            `json:"game"`
	Type         tablegames.AchievementType `json:"type"`
	TargetValue  int                        `json:"targetValue"`
	Points       int                        `json:"points"`
	IsActive     bool                       `json:"isActive"`
	CreateDate   time.Time                  `json:"createDate"`
	Translations []Translation              `json:"translations,omitempty"`
}
