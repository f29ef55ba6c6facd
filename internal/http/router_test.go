package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	httpx "github.com/betsolutions/casino-sdk-go/internal/http"
	"github.com/betsolutions/casino-sdk-go/internal/store/memory"
	wire "github.com/betsolutions/casino-sdk-go/internal/wire/tablegames"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

const (
	merchantID = int64(42)
	privateKey = "sandbox-private-key"
)

func newSandbox(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.New()
	require.NoError(t, core.Seed(context.Background(), store, time.Now()))

	server := httptest.NewServer(httpx.NewRouter(httpx.RouterDependencies{
		Store:  store,
		Keys:   memory.NewKeyStore(map[int64]string{merchantID: privateKey}),
		Logger: zerolog.Nop(),
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T, baseURL, key string) *casino.Client {
	t.Helper()
	creds, err := casino.NewMerchantCredentials(baseURL, merchantID, key)
	require.NoError(t, err)
	return casino.NewClient(creds, casino.WithTimeout(5*time.Second), casino.WithLogger(zerolog.Nop()))
}

func TestSandbox_CampaignLifecycle(t *testing.T) {
	server := newSandbox(t)
	svc := slots.NewCampaignService(newClient(t, server.URL, privateKey))
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)
	created, err := svc.CreateCampaign(ctx, slots.CreateCampaignRequest{
		Name:          "Sandbox free spins",
		GameID:        3001,
		Currency:      "EUR",
		BetAmount:     0.25,
		FreespinCount: 15,
		StartDate:     start,
		EndDate:       start.Add(7 * 24 * time.Hour),
		PlayerIDs:     []string{"player-1", "player-2"},
	})
	require.NoError(t, err)
	require.True(t, created.OK(), "status %v", created.StatusCode)
	id, err := slots.CampaignID(created)
	require.NoError(t, err)

	page, err := svc.GetCampaigns(ctx, slots.CampaignsFilter{Paging: casino.Paging{PageIndex: 1, PageSize: 10}})
	require.NoError(t, err)
	require.True(t, page.OK())
	require.Equal(t, 1, page.Data.TotalCount)
	campaign := page.Data.Campaigns[0]
	assert.Equal(t, id, campaign.ID)
	assert.Equal(t, slots.CampaignActive, campaign.Status)
	assert.Equal(t, []string{"player-1", "player-2"}, campaign.PlayerIDs)
	assert.Equal(t, 0.25, campaign.BetAmount)

	deactivated, err := svc.DeactivateCampaign(ctx, slots.DeactivateCampaignRequest{CampaignID: id})
	require.NoError(t, err)
	assert.True(t, deactivated.OK())

	missing, err := svc.DeactivateCampaign(ctx, slots.DeactivateCampaignRequest{CampaignID: id + 1000})
	require.NoError(t, err)
	assert.Equal(t, casino.StatusNotFound, missing.StatusCode)

	page, err = svc.GetCampaigns(ctx, slots.CampaignsFilter{Paging: casino.Paging{PageIndex: 1, PageSize: 10}})
	require.NoError(t, err)
	assert.Equal(t, slots.CampaignInactive, page.Data.Campaigns[0].Status)
}

func TestSandbox_WrongKeyIsInvalidHash(t *testing.T) {
	server := newSandbox(t)
	svc := tablegames.NewTournamentService(newClient(t, server.URL, "not-the-key"), tablegames.Okey)

	res, err := svc.GetTournaments(context.Background(), tablegames.TournamentsFilter{
		Paging: casino.Paging{PageIndex: 1, PageSize: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, casino.StatusInvalidHash, res.StatusCode)
	assert.Nil(t, res.Data)
}

func TestSandbox_Tournaments(t *testing.T) {
	server := newSandbox(t)
	svc := tablegames.NewTournamentService(newClient(t, server.URL, privateKey), tablegames.Backgammon)
	ctx := context.Background()

	res, err := svc.GetTournaments(ctx, tablegames.TournamentsFilter{
		Paging: casino.Paging{PageIndex: 1, PageSize: 10, OrderingField: "id", OrderingDirection: "asc"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, 3, res.Data.TotalCount)
	require.Len(t, res.Data.Tournaments, 3)

	running := res.Data.Tournaments[1]
	assert.Equal(t, tablegames.TournamentInProgress, running.Status)
	assert.Len(t, running.Prizes, 2)
	assert.Len(t, running.Translations, 2)

	gameType := int64(2)
	res, err = svc.GetTournaments(ctx, tablegames.TournamentsFilter{
		Paging:     casino.Paging{PageIndex: 1, PageSize: 10},
		GameTypeID: &gameType,
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	require.Len(t, res.Data.Tournaments, 1)
	assert.Equal(t, tablegames.TournamentOpen, res.Data.Tournaments[0].Status)

	res, err = svc.GetTournaments(ctx, tablegames.TournamentsFilter{
		Paging: casino.Paging{PageIndex: 2, PageSize: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Data.TotalCount)
	assert.Len(t, res.Data.Tournaments, 1)
}

func TestSandbox_HugePagingReturnsEmptyPage(t *testing.T) {
	server := newSandbox(t)
	svc := tablegames.NewTournamentService(newClient(t, server.URL, privateKey), tablegames.Backgammon)
	ctx := context.Background()

	res, err := svc.GetTournaments(ctx, tablegames.TournamentsFilter{
		Paging: casino.Paging{PageIndex: 3, PageSize: 1<<62 + 1},
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, 3, res.Data.TotalCount)
	assert.Empty(t, res.Data.Tournaments)

	res, err = svc.GetTournaments(ctx, tablegames.TournamentsFilter{
		Paging: casino.Paging{PageIndex: 1, PageSize: math.MaxInt},
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Len(t, res.Data.Tournaments, 3)
}

func TestSandbox_Achievements(t *testing.T) {
	server := newSandbox(t)
	svc := tablegames.NewAchievementService(newClient(t, server.URL, privateKey), tablegames.Okey)

	typ := int64(tablegames.AchievementWinStreak)
	res, err := svc.GetAchievements(context.Background(), tablegames.AchievementsFilter{
		Paging:            casino.Paging{PageIndex: 1, PageSize: 10},
		AchievementTypeID: &typ,
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	require.Len(t, res.Data.Achievements, 1)
	assert.Equal(t, tablegames.AchievementWinStreak, res.Data.Achievements[0].Type)
	assert.Equal(t, "Win five in a row", res.Data.Achievements[0].Translations[0].Description)
}

func TestSandbox_BackendValidatesPaging(t *testing.T) {
	server := newSandbox(t)

	req := &wire.AchievementsFilter{Paging: casino.Paging{PageIndex: 0, PageSize: 10}}
	req.SetSignature(merchantID, casino.SignRequest(merchantID, privateKey, req))
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/OkeyAchievement/GetAchievements", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var env casino.Envelope[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, casino.StatusInvalidRequest, env.StatusCode)
	assert.Equal(t, "invalid PageIndex", env.StatusMessage)
	assert.Nil(t, env.Data)
}

func TestSandbox_UnknownControllerIsConnectivityError(t *testing.T) {
	server := newSandbox(t)
	svc := tablegames.NewTournamentService(newClient(t, server.URL, privateKey), tablegames.Game("Chess"))

	res, err := svc.GetTournaments(context.Background(), tablegames.TournamentsFilter{
		Paging: casino.Paging{PageIndex: 1, PageSize: 10},
	})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, casino.IsConnectivity(err))
}

func TestSandbox_Health(t *testing.T) {
	server := newSandbox(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
