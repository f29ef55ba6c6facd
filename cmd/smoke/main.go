// Command smoke runs read-only SDK calls against MERCHANT_BASE_URL and logs
// the outcome of each. It exits non-zero on transport or mapping failures.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/betsolutions/casino-sdk-go/internal/config"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/slots"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	creds, err := cfg.Merchant.Credentials()
	if err != nil {
		log.Fatal().Err(err).Msg("credentials")
	}

	client := casino.NewClient(creds, cfg.Merchant.ClientOptions()...)
	log.Info().Object("merchant", creds).Msg("smoke run")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	paging := casino.Paging{PageIndex: 1, PageSize: 5}
	failed := false
	check := func(name string, status casino.StatusCode, total int, err error) {
		if err != nil {
			failed = true
			log.Error().Err(err).Str("call", name).
				Bool("connectivity", casino.IsConnectivity(err)).
				Bool("mapping", casino.IsMapping(err)).
				Msg("call failed")
			return
		}
		log.Info().Str("call", name).Stringer("status", status).Int("total", total).Msg("call done")
	}

	campaigns, err := slots.NewCampaignService(client).GetCampaigns(ctx, slots.CampaignsFilter{Paging: paging})
	check("SlotCampaign/GetCampaigns", statusOf(campaigns), totalOf(campaigns, func(p *slots.CampaignPagingResult) int { return p.TotalCount }), err)

	for _, game := range tablegames.Games() {
		tournaments, err := tablegames.NewTournamentService(client, game).GetTournaments(ctx, tablegames.TournamentsFilter{Paging: paging})
		check(string(game)+"Tournament/GetTournaments", statusOf(tournaments),
			totalOf(tournaments, func(p *tablegames.TournamentPagingResult) int { return p.TotalCount }), err)

		achievements, err := tablegames.NewAchievementService(client, game).GetAchievements(ctx, tablegames.AchievementsFilter{Paging: paging})
		check(string(game)+"Achievement/GetAchievements", statusOf(achievements),
			totalOf(achievements, func(p *tablegames.AchievementPagingResult) int { return p.TotalCount }), err)
	}

	if failed {
		os.Exit(1)
	}
}

func statusOf[T any](res *casino.Result[T]) casino.StatusCode {
	if res == nil {
		return 0
	}
	return res.StatusCode
}

func totalOf[T any](res *casino.Result[T], total func(*T) int) int {
	if res == nil || res.Data == nil {
		return 0
	}
	return total(res.Data)
}
