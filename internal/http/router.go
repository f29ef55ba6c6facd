package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/betsolutions/casino-sdk-go/internal/http/handlers"
	middlewarex "github.com/betsolutions/casino-sdk-go/internal/http/middleware"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
	wireslots "github.com/betsolutions/casino-sdk-go/internal/wire/slots"
	wiretables "github.com/betsolutions/casino-sdk-go/internal/wire/tablegames"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

// RouterDependencies holds everything the sandbox backend serves from.
type RouterDependencies struct {
	Store  repositories.GameStore
	Keys   repositories.KeyStore
	Logger zerolog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRouter builds the sandbox backend: the casino controllers under
// /{Controller}/{Resource}, all answering POST with a signed JSON body.
func NewRouter(deps RouterDependencies) http.Handler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middlewarex.RequestLogger(deps.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"time":   now().UTC().Format(time.RFC3339),
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewarex.MerchantAuth(deps.Keys))

		campaigns := handlers.NewCampaigns(deps.Store, now)
		r.Route("/"+wireslots.Controller, func(r chi.Router) {
			r.Post("/"+wireslots.ResourceCreateCampaign, campaigns.Create)
			r.Post("/"+wireslots.ResourceDeactivateCampaign, campaigns.Deactivate)
			r.Post("/"+wireslots.ResourceGetCampaigns, campaigns.List)
		})

		for _, game := range tablegames.Games() {
			r.Post("/"+string(game)+wiretables.TournamentController+"/"+wiretables.ResourceGetTournaments,
				handlers.Tournaments(deps.Store, game))
			r.Post("/"+string(game)+wiretables.AchievementController+"/"+wiretables.ResourceGetAchievements,
				handlers.Achievements(deps.Store, game))
		}
	})

	return r
}
