package handlers

import (
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
	wire "github.com/betsolutions/casino-sdk-go/internal/wire/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
)

// Campaigns serves the SlotCampaign controller.
type Campaigns struct {
	store repositories.GameStore
	now   func() time.Time
}

func NewCampaigns(store repositories.GameStore, now func() time.Time) *Campaigns {
	return &Campaigns{store: store, now: now}
}

func (h *Campaigns) Create(w http.ResponseWriter, r *http.Request) {
	var req wire.CreateCampaignRequest
	merchantID, ok := decodeSigned(w, r, &req)
	if !ok {
		return
	}

	if utf8.RuneCountInString(req.Name) < slots.MinNameLength {
		respondStatus(w, casino.StatusInvalidRequest, "min name length: 10")
		return
	}
	now := h.now()
	if !req.StartDate.After(now) {
		respondStatus(w, casino.StatusInvalidRequest, "start date must be more than current date")
		return
	}
	if !req.EndDate.After(req.StartDate) {
		respondStatus(w, casino.StatusInvalidRequest, "end date must be more than start date")
		return
	}

	c := &core.Campaign{
		MerchantID:    merchantID,
		Name:          req.Name,
		GameID:        req.GameID,
		Currency:      req.Currency,
		BetAmount:     req.BetAmount,
		FreespinCount: req.FreespinCount,
		PlayerIDs:     req.PlayerIDs,
		Status:        slots.CampaignActive,
		StartDate:     req.StartDate.UTC(),
		EndDate:       req.EndDate.UTC(),
		CreateDate:    now.UTC(),
	}
	if err := h.store.CreateCampaign(r.Context(), c); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, casino.StatusSuccess, "", &wire.CreateCampaignResponse{CampaignID: &c.ID})
}

func (h *Campaigns) Deactivate(w http.ResponseWriter, r *http.Request) {
	var req wire.DeactivateCampaignRequest
	merchantID, ok := decodeSigned(w, r, &req)
	if !ok {
		return
	}
	if err := h.store.DeactivateCampaign(r.Context(), merchantID, req.CampaignID); err != nil {
		fail(w, r, err)
		return
	}
	respondStatus(w, casino.StatusSuccess, "")
}

func (h *Campaigns) List(w http.ResponseWriter, r *http.Request) {
	var req wire.CampaignsFilter
	merchantID, ok := decodeSigned(w, r, &req)
	if !ok {
		return
	}
	if err := req.Paging.Validate(); err != nil {
		respondStatus(w, casino.StatusInvalidRequest, err.Error())
		return
	}

	items, total, err := h.store.ListCampaigns(r.Context(), merchantID, pageOf(req.Paging))
	if err != nil {
		fail(w, r, err)
		return
	}

	out := wire.CampaignPagingResult{TotalCount: &total, Campaigns: make([]wire.Campaign, 0, len(items))}
	for _, c := range items {
		out.Campaigns = append(out.Campaigns, wire.Campaign{
			ID:            ptr(c.ID),
			Name:          ptr(c.Name),
			GameID:        ptr(c.GameID),
			Currency:      c.Currency,
			BetAmount:     c.BetAmount,
			FreespinCount: c.FreespinCount,
			StatusID:      ptr(int(c.Status)),
			StartDate:     ptr(c.StartDate),
			EndDate:       ptr(c.EndDate),
			CreateDate:    ptr(c.CreateDate),
			PlayerIDs:     c.PlayerIDs,
		})
	}
	respond(w, casino.StatusSuccess, "", &out)
}
