package slots_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wire "github.com/betsolutions/casino-sdk-go/internal/wire/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/casinotest"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, d casino.Dispatcher) *slots.CampaignService {
	t.Helper()
	creds, err := casino.NewMerchantCredentials("https://casino.example.com", 42, "private-key")
	require.NoError(t, err)
	client := casino.NewClient(creds,
		casino.WithDispatcher(d),
		casino.WithLogger(zerolog.Nop()),
		casino.WithClock(func() time.Time { return now }),
	)
	return slots.NewCampaignService(client)
}

func validCampaign() slots.CreateCampaignRequest {
	return slots.CreateCampaignRequest{
		Name:          "Summer free spins",
		GameID:        3001,
		Currency:      "EUR",
		BetAmount:     0.5,
		FreespinCount: 20,
		StartDate:     now.Add(24 * time.Hour),
		EndDate:       now.Add(7 * 24 * time.Hour),
		PlayerIDs:     []string{"p-1", "p-2"},
	}
}

func TestCreateCampaign_ShortNameRejectedLocally(t *testing.T) {
	d := &casinotest.Dispatcher{}
	req := validCampaign()
	req.Name = "abc"

	res, err := newService(t, d).CreateCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, casino.StatusInvalidRequest, res.StatusCode)
	assert.Equal(t, "min name length: 10", res.Message)
	assert.Nil(t, res.Data)
	assert.Zero(t, d.CallCount())
}

func TestCreateCampaign_NameLengthCountsCharacters(t *testing.T) {
	d := &casinotest.Dispatcher{Respond: casinotest.Respond(casinotest.Envelope(casino.StatusSuccess, map[string]any{"campaignId": 1}))}
	req := validCampaign()
	req.Name = "ტურნირი-აა"

	res, err := newService(t, d).CreateCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.OK())

	req.Name = "ტურნირი"
	res, err = newService(t, d).CreateCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, casino.StatusInvalidRequest, res.StatusCode)
	assert.Equal(t, 1, d.CallCount())
}

func TestCreateCampaign_PastStartDateRejectedLocally(t *testing.T) {
	for name, start := range map[string]time.Time{
		"yesterday": now.Add(-24 * time.Hour),
		"now":       now,
	} {
		t.Run(name, func(t *testing.T) {
			d := &casinotest.Dispatcher{}
			req := validCampaign()
			req.StartDate = start

			res, err := newService(t, d).CreateCampaign(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, casino.StatusInvalidRequest, res.StatusCode)
			assert.Equal(t, "start date must be more than current date", res.Message)
			assert.Zero(t, d.CallCount())
		})
	}
}

func TestCreateCampaign_NameCheckedFirst(t *testing.T) {
	req := validCampaign()
	req.Name = "x"
	req.StartDate = now.Add(-time.Hour)

	res, err := newService(t, &casinotest.Dispatcher{}).CreateCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "min name length: 10", res.Message)
}

func TestCreateCampaign_Success(t *testing.T) {
	d := &casinotest.Dispatcher{Respond: casinotest.Respond(casinotest.Envelope(casino.StatusSuccess, map[string]any{"campaignId": 981}))}

	res, err := newService(t, d).CreateCampaign(context.Background(), validCampaign())
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, int64(981), res.Data.CampaignID)

	id, err := slots.CampaignID(res)
	require.NoError(t, err)
	assert.Equal(t, int64(981), id)

	require.Equal(t, 1, d.CallCount())
	call := d.Calls()[0]
	assert.Equal(t, wire.Controller, call.Controller)
	assert.Equal(t, wire.ResourceCreateCampaign, call.Resource)
	assert.True(t, call.Mutating)

	body, ok := call.Body.(*wire.CreateCampaignRequest)
	require.True(t, ok)
	assert.Equal(t, int64(42), body.MerchantID)
	assert.Equal(t, casino.SignRequest(42, "private-key", body), body.Hash)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"merchantId":42`)
	assert.Contains(t, string(raw), `"name":"Summer free spins"`)
	assert.Contains(t, string(raw), `"playerIds":["p-1","p-2"]`)
}

func TestCreateCampaign_DomainFailurePassesThrough(t *testing.T) {
	d := &casinotest.Dispatcher{Respond: casinotest.Respond(casinotest.Envelope(casino.StatusInvalidHash, nil))}

	res, err := newService(t, d).CreateCampaign(context.Background(), validCampaign())
	require.NoError(t, err)
	assert.Equal(t, casino.StatusInvalidHash, res.StatusCode)
	assert.Nil(t, res.Data)

	_, err = slots.CampaignID(res)
	assert.ErrorIs(t, err, slots.ErrNoCampaign)
}

func TestCreateCampaign_MissingIDIsMappingError(t *testing.T) {
	d := &casinotest.Dispatcher{Respond: casinotest.Respond(casinotest.Envelope(casino.StatusSuccess, map[string]any{}))}

	res, err := newService(t, d).CreateCampaign(context.Background(), validCampaign())
	assert.Nil(t, res)
	assert.True(t, casino.IsMapping(err))
}

func TestDeactivateCampaign(t *testing.T) {
	d := &casinotest.Dispatcher{Respond: casinotest.Respond(casinotest.Envelope(casino.StatusNotFound, nil))}

	res, err := newService(t, d).DeactivateCampaign(context.Background(), slots.DeactivateCampaignRequest{CampaignID: 5})
	require.NoError(t, err)
	assert.Equal(t, casino.StatusNotFound, res.StatusCode)

	call := d.Calls()[0]
	assert.Equal(t, wire.ResourceDeactivateCampaign, call.Resource)
	assert.True(t, call.Mutating)
	body := call.Body.(*wire.DeactivateCampaignRequest)
	assert.Equal(t, casino.Sign([]string{"42", "5"}, "private-key"), body.Hash)
}

func TestGetCampaigns_InvalidPagingRejectedLocally(t *testing.T) {
	d := &casinotest.Dispatcher{}

	res, err := newService(t, d).GetCampaigns(context.Background(), slots.CampaignsFilter{
		Paging: casino.Paging{PageIndex: 1, PageSize: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, casino.StatusInvalidRequest, res.StatusCode)
	assert.Equal(t, "invalid PageSize", res.Message)
	assert.Zero(t, d.CallCount())
}

func TestGetCampaigns_ProjectsPage(t *testing.T) {
	d := &casinotest.Dispatcher{Respond: casinotest.Respond(casinotest.Raw([]byte(`{
		"statusCode": 200,
		"data": {
			"totalCount": 12,
			"campaigns": [
				{"id": 1, "name": "Summer free spins", "gameId": 3001, "currency": "EUR", "betAmount": 0.5,
				 "freespinCount": 20, "statusId": 1, "startDate": "2025-06-02T12:00:00Z", "playerIds": ["p-1"]},
				{"id": 2, "name": "Winter free spins", "gameId": 3002, "statusId": 3,
				 "startDate": "2025-01-02T12:00:00Z", "endDate": "2025-01-09T12:00:00Z"}
			]
		}
	}`)))}

	res, err := newService(t, d).GetCampaigns(context.Background(), slots.CampaignsFilter{
		Paging: casino.Paging{PageIndex: 1, PageSize: 2, OrderingField: "id", OrderingDirection: "desc"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	page := res.Data
	assert.Equal(t, 12, page.TotalCount)
	require.Len(t, page.Campaigns, 2)
	assert.Equal(t, int64(1), page.Campaigns[0].ID)
	assert.Equal(t, slots.CampaignActive, page.Campaigns[0].Status)
	assert.Equal(t, []string{"p-1"}, page.Campaigns[0].PlayerIDs)
	assert.Nil(t, page.Campaigns[0].EndDate)
	assert.Equal(t, slots.CampaignFinished, page.Campaigns[1].Status)
	require.NotNil(t, page.Campaigns[1].EndDate)

	call := d.Calls()[0]
	assert.False(t, call.Mutating)
	body := call.Body.(*wire.CampaignsFilter)
	assert.Equal(t, casino.Sign([]string{"42", "desc", "id", "1", "2"}, "private-key"), body.Hash)
}

func TestGetCampaigns_UnknownStatusIsMappingError(t *testing.T) {
	d := &casinotest.Dispatcher{Respond: casinotest.Respond(casinotest.Raw([]byte(`{
		"statusCode": 200,
		"data": {"totalCount": 1, "campaigns": [
			{"id": 1, "name": "Summer free spins", "gameId": 3001, "statusId": 9, "startDate": "2025-06-02T12:00:00Z"}
		]}
	}`)))}

	_, err := newService(t, d).GetCampaigns(context.Background(), slots.CampaignsFilter{
		Paging: casino.Paging{PageIndex: 1, PageSize: 10},
	})
	require.Error(t, err)
	assert.True(t, casino.IsMapping(err))
	assert.Contains(t, err.Error(), "campaign status code 9")
}
