// Package slots holds the slot campaign wire contract: request bodies, their
// hash field order and the response payloads as the backend sends them.
package slots

import (
	"time"

	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

const (
	Controller = "SlotCampaign"

	ResourceCreateCampaign     = "CreateCampaign"
	ResourceDeactivateCampaign = "DeactivateCampaign"
	ResourceGetCampaigns       = "GetCampaigns"
)

// CreateCampaignRequest is hashed as
// merchantId|name|gameId|currency|betAmount|freespinCount|startDate|endDate|playerIds|key.
type CreateCampaignRequest struct {
	casino.Signature
	Name          string    `json:"name"`
	GameID        int64     `json:"gameId"`
	Currency      string    `json:"currency"`
	BetAmount     float64   `json:"betAmount"`
	FreespinCount int       `json:"freespinCount"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	PlayerIDs     []string  `json:"playerIds,omitempty"`
}

func (r *CreateCampaignRequest) HashFields() []string {
	return []string{
		r.Name,
		casino.FormatInt(r.GameID),
		r.Currency,
		casino.FormatAmount(r.BetAmount),
		casino.FormatInt(int64(r.FreespinCount)),
		casino.FormatTime(r.StartDate),
		casino.FormatTime(r.EndDate),
		casino.FormatList(r.PlayerIDs),
	}
}

type CreateCampaignResponse struct {
	CampaignID *int64 `json:"campaignId" validate:"required"`
}

// DeactivateCampaignRequest is hashed as merchantId|campaignId|key.
type DeactivateCampaignRequest struct {
	casino.Signature
	CampaignID int64 `json:"campaignId"`
}

func (r *DeactivateCampaignRequest) HashFields() []string {
	return []string{casino.FormatInt(r.CampaignID)}
}

// CampaignsFilter is hashed as
// merchantId|orderingDirection|orderingField|pageIndex|pageSize|key.
type CampaignsFilter struct {
	casino.Signature
	casino.Paging
}

func (f *CampaignsFilter) HashFields() []string {
	return f.Paging.HashFields()
}

type CampaignPagingResult struct {
	TotalCount *int       `json:"totalCount" validate:"required"`
	Campaigns  []Campaign `json:"campaigns" validate:"required,dive"`
}

type Campaign struct {
	ID            *int64     `json:"id" validate:"required"`
	Name          *string    `json:"name" validate:"required"`
	GameID        *int64     `json:"gameId" validate:"required"`
	Currency      string     `json:"currency"`
	BetAmount     float64    `json:"betAmount"`
	FreespinCount int        `json:"freespinCount"`
	StatusID      *int       `json:"statusId" validate:"required"`
	StartDate     *time.Time `json:"startDate" validate:"required"`
	EndDate       *time.Time `json:"endDate"`
	CreateDate    *time.Time `json:"createDate"`
	PlayerIDs     []string   `json:"playerIds"`
}
