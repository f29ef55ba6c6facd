package slots

import (
	"time"

	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

// CampaignStatus is the lifecycle state of a free-spin campaign.
type CampaignStatus int

const (
	CampaignActive   CampaignStatus = 1
	CampaignInactive CampaignStatus = 2
	CampaignFinished CampaignStatus = 3
)

func (s CampaignStatus) String() string {
	switch s {
	case CampaignActive:
		return "Active"
	case CampaignInactive:
		return "Inactive"
	case CampaignFinished:
		return "Finished"
	}
	return "CampaignStatus(unknown)"
}

func campaignStatus(code int) (CampaignStatus, error) {
	switch s := CampaignStatus(code); s {
	case CampaignActive, CampaignInactive, CampaignFinished:
		return s, nil
	}
	return 0, casino.UnknownCode("campaign status", code)
}

// CreateCampaignRequest describes a free-spin campaign to create.
type CreateCampaignRequest struct {
	Name          string
	GameID        int64
	Currency      string
	BetAmount     float64
	FreespinCount int
	StartDate     time.Time
	EndDate       time.Time
	PlayerIDs     []string
}

type CreateCampaignResponse struct {
	CampaignID int64
}

type DeactivateCampaignRequest struct {
	CampaignID int64
}

// CampaignsFilter pages through the merchant's campaigns.
type CampaignsFilter struct {
	casino.Paging
}

type CampaignPagingResult struct {
	TotalCount int
	Campaigns  []Campaign
}

type Campaign struct {
	ID            int64
	Name          string
	GameID        int64
	Currency      string
	BetAmount     float64
	FreespinCount int
	Status        CampaignStatus
	StartDate     time.Time
	EndDate       *time.Time
	CreateDate    *time.Time
	PlayerIDs     []string
}

type (
	CreateCampaignResult     = casino.Result[CreateCampaignResponse]
	DeactivateCampaignResult = casino.Result[casino.NoData]
	GetCampaignsResult       = casino.Result[CampaignPagingResult]
)
