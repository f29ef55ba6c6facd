package slots

import (
	wire "github.com/betsolutions/casino-sdk-go/internal/wire/slots"
)

func projectCreateCampaign(w *wire.CreateCampaignResponse) (CreateCampaignResponse, error) {
	return CreateCampaignResponse{CampaignID: *w.CampaignID}, nil
}

func projectCampaigns(w *wire.CampaignPagingResult) (CampaignPagingResult, error) {
	out := CampaignPagingResult{
		TotalCount: *w.TotalCount,
		Campaigns:  make([]Campaign, 0, len(w.Campaigns)),
	}
	for i := range w.Campaigns {
		c, err := projectCampaign(&w.Campaigns[i])
		if err != nil {
			return CampaignPagingResult{}, err
		}
		out.Campaigns = append(out.Campaigns, c)
	}
	return out, nil
}

func projectCampaign(w *wire.Campaign) (Campaign, error) {
	status, err := campaignStatus(*w.StatusID)
	if err != nil {
		return Campaign{}, err
	}
	return Campaign{
		ID:            *w.ID,
		Name:          *w.Name,
		GameID:        *w.GameID,
		Currency:      w.Currency,
		BetAmount:     w.BetAmount,
		FreespinCount: w.FreespinCount,
		Status:        status,
		StartDate:     *w.StartDate,
		EndDate:       w.EndDate,
		CreateDate:    w.CreateDate,
		PlayerIDs:     append([]string(nil), w.PlayerIDs...),
	}, nil
}
