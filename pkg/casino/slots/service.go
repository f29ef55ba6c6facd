// Package slots exposes slot free-spin campaign operations.
package slots

import (
	"context"
	"errors"
	"unicode/utf8"

	wire "github.com/betsolutions/casino-sdk-go/internal/wire/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

// MinNameLength is the shortest campaign name the backend accepts.
const MinNameLength = 10

var (
	createCampaign = casino.Operation[*wire.CreateCampaignRequest, wire.CreateCampaignResponse, CreateCampaignResponse]{
		Controller: wire.Controller,
		Resource:   wire.ResourceCreateCampaign,
		Mutating:   true,
		Project:    projectCreateCampaign,
	}
	deactivateCampaign = casino.Operation[*wire.DeactivateCampaignRequest, casino.NoData, casino.NoData]{
		Controller: wire.Controller,
		Resource:   wire.ResourceDeactivateCampaign,
		Mutating:   true,
	}
	getCampaigns = casino.Operation[*wire.CampaignsFilter, wire.CampaignPagingResult, CampaignPagingResult]{
		Controller: wire.Controller,
		Resource:   wire.ResourceGetCampaigns,
		Project:    projectCampaigns,
	}
)

// CampaignService manages slot campaigns for one merchant.
type CampaignService struct {
	client *casino.Client
}

func NewCampaignService(client *casino.Client) *CampaignService {
	return &CampaignService{client: client}
}

// CreateCampaign creates a campaign. Each call creates a new campaign on the
// backend; the SDK does not deduplicate.
func (s *CampaignService) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*CreateCampaignResult, error) {
	if err := casino.Validate(
		func() error { return validateName(req.Name) },
		func() error { return s.validateStartDate(req) },
	); err != nil {
		return casino.Invalid[CreateCampaignResponse](err), nil
	}

	return casino.Execute(ctx, s.client, createCampaign, &wire.CreateCampaignRequest{
		Name:          req.Name,
		GameID:        req.GameID,
		Currency:      req.Currency,
		BetAmount:     req.BetAmount,
		FreespinCount: req.FreespinCount,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PlayerIDs:     req.PlayerIDs,
	})
}

// DeactivateCampaign stops a campaign. Only the status code is returned.
func (s *CampaignService) DeactivateCampaign(ctx context.Context, req DeactivateCampaignRequest) (*DeactivateCampaignResult, error) {
	return casino.Execute(ctx, s.client, deactivateCampaign, &wire.DeactivateCampaignRequest{
		CampaignID: req.CampaignID,
	})
}

// GetCampaigns lists the merchant's campaigns page by page.
func (s *CampaignService) GetCampaigns(ctx context.Context, filter CampaignsFilter) (*GetCampaignsResult, error) {
	if err := filter.Validate(); err != nil {
		return casino.Invalid[CampaignPagingResult](err), nil
	}
	return casino.Execute(ctx, s.client, getCampaigns, &wire.CampaignsFilter{Paging: filter.Paging})
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) < MinNameLength {
		return &casino.ValidationError{Field: "Name", Message: "min name length: 10"}
	}
	return nil
}

func (s *CampaignService) validateStartDate(req CreateCampaignRequest) error {
	if !req.StartDate.After(s.client.Now()) {
		return &casino.ValidationError{Field: "StartDate", Message: "start date must be more than current date"}
	}
	return nil
}

// ErrNoCampaign is returned by helpers that expect a created campaign id.
var ErrNoCampaign = errors.New("slots: no campaign in result")

// CampaignID extracts the created campaign id from a successful result.
func CampaignID(res *CreateCampaignResult) (int64, error) {
	if res == nil || !res.OK() || res.Data == nil {
		return 0, ErrNoCampaign
	}
	return res.Data.CampaignID, nil
}
