// Command keyseal seals a merchant signing key with AES_256_KEY_BASE64 and,
// when DB_DSN is set, stores the merchant in the sandbox database.
//
//	go run ./tools/keyseal -id 42 -name "Demo casino" <private-key>
//	go run ./tools/keyseal -deactivate -id 42
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/betsolutions/casino-sdk-go/internal/config"
	"github.com/betsolutions/casino-sdk-go/internal/domain/merchant"
	"github.com/betsolutions/casino-sdk-go/internal/store/postgres"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
)

func main() {
	id := flag.Int64("id", 0, "merchant id")
	name := flag.String("name", "", "merchant name")
	open := flag.Bool("open", false, "decrypt the argument instead of sealing it")
	off := flag.Bool("deactivate", false, "deactivate merchant -id in the database")
	flag.Parse()

	if *off {
		if *id == 0 || flag.NArg() != 0 {
			fmt.Fprintln(os.Stderr, "usage: keyseal -deactivate -id N")
			os.Exit(2)
		}
	} else if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: keyseal [-open] [-id N -name NAME] <value>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if *off {
		if cfg.DB.DSN == "" {
			log.Fatal().Msg("DB_DSN is required")
		}
		ctx := context.Background()
		pool := postgres.MustOpen(ctx, cfg.DB.DSN)
		defer pool.Close()

		if err := deactivate(ctx, postgres.NewMerchantRepository(pool), *id, time.Now()); err != nil {
			log.Fatal().Err(err).Int64("merchant_id", *id).Msg("deactivate merchant")
		}
		log.Info().Int64("merchant_id", *id).Msg("merchant deactivated")
		return
	}
	if cfg.Sec.AESKey == nil {
		log.Fatal().Msg("AES_256_KEY_BASE64 is required")
	}

	if *open {
		plain, err := merchant.Open(flag.Arg(0), cfg.Sec.AESKey)
		if err != nil {
			log.Fatal().Err(err).Msg("open")
		}
		fmt.Println(plain)
		return
	}

	if cfg.DB.DSN == "" || *id == 0 {
		sealed, err := merchant.Seal(flag.Arg(0), cfg.Sec.AESKey)
		if err != nil {
			log.Fatal().Err(err).Msg("seal")
		}
		fmt.Println(sealed)
		return
	}

	m, err := merchant.New(*id, *name, flag.Arg(0), cfg.Sec.AESKey)
	if err != nil {
		log.Fatal().Err(err).Msg("merchant")
	}

	ctx := context.Background()
	pool := postgres.MustOpen(ctx, cfg.DB.DSN)
	defer pool.Close()

	if err := postgres.NewMerchantRepository(pool).Save(ctx, m); err != nil {
		log.Fatal().Err(err).Msg("save merchant")
	}
	log.Info().Int64("merchant_id", m.ID).Msg("merchant stored")
}

func deactivate(ctx context.Context, repo repositories.MerchantRepository, id int64, at time.Time) error {
	m, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !m.IsActive {
		return nil
	}
	m.Deactivate(at)
	return repo.Save(ctx, m)
}
