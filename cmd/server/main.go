package main

import (
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/grandline/autobattler/internal/arena"
	"github.com/grandline/autobattler/internal/auth"
	"github.com/grandline/autobattler/internal/config"
	"github.com/grandline/autobattler/internal/gamedata"
	"github.com/grandline/autobattler/internal/httpapi"
	"github.com/grandline/autobattler/internal/player"
	"github.com/grandline/autobattler/internal/stats"
	"github.com/grandline/autobattler/internal/ws"
)

func newLogger(pretty bool) zerolog.Logger {
	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("config: load failed")
	}
	log := newLogger(cfg.LogPretty)

	users := arena.NewRegistry()
	tracker := stats.NewTracker()
	players := player.NewStore(rand.New(rand.NewSource(time.Now().UnixNano())))
	authSvc := auth.NewService(cfg.JWTSecret)
	hub := ws.NewHub(log, authSvc)

	arenaSvc := arena.NewService(log, hub, users, arena.Collaborators{
		Formation:     players.Formation,
		UnitDef:       gamedata.UnitByID,
		Wave:          gamedata.WaveByIndex,
		LockFormation: players.SetLocked,
	}, tracker, arena.Options{
		BotWait:       cfg.BotWait,
		RoundInterval: cfg.RoundInterval,
	})
	hub.BindQueue(arenaSvc)

	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler: init failed")
	}
	_, _ = sched.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(tracker.Rollover),
	)
	_, _ = sched.NewJob(
		gocron.DurationJob(30*time.Second),
		gocron.NewTask(func() {
			if depth, active := arenaSvc.QueueDepth(), arenaSvc.ActiveMatches(); depth > 0 || active > 0 {
				log.Info().Int("queued", depth).Int("matches", active).Msg("arena: status")
			}
		}),
	)
	sched.Start()
	defer func() { _ = sched.Shutdown() }()

	r := mux.NewRouter()
	api := httpapi.New(log, authSvc, users, arenaSvc, players, hub, tracker)
	api.Routes(r)
	r.HandleFunc("/ws", hub.HandleWS)

	log.Info().Str("addr", cfg.ListenAddr).Msg("server: listening")
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal().Err(err).Msg("server: exited")
	}
}
