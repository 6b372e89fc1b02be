package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	httpapi "battleship-engine/internal/api/http"
	"battleship-engine/internal/api/ws"
	"battleship-engine/internal/codec"
	"battleship-engine/internal/config"
	"battleship-engine/internal/engine"
	"battleship-engine/internal/logging"
	"battleship-engine/internal/match"
	"battleship-engine/internal/random"
	"battleship-engine/internal/store"
)

// @title Battleship Engine API
// @version 1.0
// @description Fleet placement, shot selection and shot adjudication for Battleship
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("set up logging")
	}

	app := &cli.App{
		Name:  "engine",
		Usage: "battleship placement and targeting engine",
		Commands: []*cli.Command{
			serveCommand(cfg),
			placeCommand(cfg),
			simulateCommand(cfg),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("engine exited")
	}
}

func gameFlags(cfg config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "ruleset", Value: string(codec.Classic), Usage: "Classic or Polish"},
		&cli.StringFlag{Name: "engine", Value: string(cfg.DefaultEngine), Usage: "random, greedy, parity or probability"},
		&cli.Int64Flag{Name: "seed", Value: cfg.EngineSeed, Usage: "random seed, 0 for a fresh one"},
	}
}

func serveCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP and websocket API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: cfg.HTTPAddr, Usage: "listen address"},
		},
		Action: func(c *cli.Context) error {
			gin.SetMode(cfg.GinMode)
			engines := store.NewMemoryStore(store.SeededFactory(cfg.EngineSeed, cfg.EngineOptions()))
			r := httpapi.NewRouter(engines, ws.NewHub(), cfg)

			addr := c.String("addr")
			log.Info().Str("addr", addr).Str("default_engine", string(cfg.DefaultEngine)).Msg("listening")
			return r.Run(addr)
		},
	}
}

func placeCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "place",
		Usage: "print a fleet placed by an engine as JSON",
		Flags: gameFlags(cfg),
		Action: func(c *cli.Context) error {
			def, err := codec.LookupDefinition(c.String("ruleset"))
			if err != nil {
				return err
			}
			e, seed, err := newEngine(c.String("engine"), c.Int64("seed"), cfg)
			if err != nil {
				return err
			}
			ships, err := e.PlaceShips(def)
			if err != nil {
				return err
			}
			log.Debug().Int64("seed", seed).Str("engine", e.Name()).Msg("fleet placed")

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(codec.FromShips(ships))
		},
	}
}

func simulateCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "play an engine against a random fleet and report the shot count",
		Flags: append(gameFlags(cfg),
			&cli.IntFlag{Name: "games", Value: 1, Usage: "number of games"},
		),
		Action: func(c *cli.Context) error {
			def, err := codec.LookupDefinition(c.String("ruleset"))
			if err != nil {
				return err
			}
			attacker, seed, err := newEngine(c.String("engine"), c.Int64("seed"), cfg)
			if err != nil {
				return err
			}
			defender, _, err := newEngine(string(engine.Random), seed+1, cfg)
			if err != nil {
				return err
			}

			total := 0
			games := c.Int("games")
			for i := 0; i < games; i++ {
				m, err := match.New(def, defender, attacker)
				if err != nil {
					return err
				}
				if err := m.Run(0); err != nil {
					return err
				}
				total += m.Shots()
				log.Info().Int("game", i+1).Int("shots", m.Shots()).Str("engine", attacker.Name()).Msg("game won")
			}
			if games > 0 {
				fmt.Fprintf(c.App.Writer, "%s: %d games, %.2f shots on average (seed %d)\n",
					attacker.Name(), games, float64(total)/float64(games), seed)
			}
			return nil
		},
	}
}

func newEngine(name string, seed int64, cfg config.Config) (engine.Engine, int64, error) {
	t, err := engine.ParseType(name)
	if err != nil {
		return nil, 0, err
	}
	rng, seed, err := random.New(seed)
	if err != nil {
		return nil, 0, err
	}
	e, err := engine.New(t, rng, cfg.EngineOptions())
	return e, seed, err
}
