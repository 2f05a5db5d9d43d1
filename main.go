package main

import (
	"flag"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JonesRobM/Monopoly/agent"
	"github.com/JonesRobM/Monopoly/engine"
	"github.com/JonesRobM/Monopoly/experiments"
	"github.com/JonesRobM/Monopoly/game"
)

func main() {
	experiment := flag.String("experiment", "baseline", "experiment to run: baseline, rollout_strength or seat_count")
	serve := flag.String("serve", "", "serve a random-policy agent on this port instead of running an experiment")
	agents := flag.String("agents", "", "comma-separated agent base URLs for a remote game")
	seed := flag.Uint64("seed", 1, "game seed (remote games and the served policy)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *serve != "" {
		agent.StartServer(*serve, agent.RandomPolicy(*seed))
		return
	}

	if *agents != "" {
		runRemoteGame(strings.Split(*agents, ","), *seed)
		return
	}

	switch *experiment {
	case "baseline":
		experiments.RunBaselineExperiment()
	case "rollout_strength":
		experiments.RunRolloutStrengthExperiment()
	case "seat_count":
		experiments.RunSeatCountExperiment()
	default:
		log.Fatal().Msgf("unknown experiment: %q", *experiment)
	}
}

func runRemoteGame(urls []string, seed uint64) {
	board := game.StandardBoard()
	cfg := game.DefaultConfig(len(urls))
	cfg.Seed = seed
	cfg.MaxRounds = experiments.MaxRounds

	e := engine.RemoteEngine(board, cfg, urls)
	winner, gameMetric, _ := e.Run()
	log.Info().Msgf("remote game finished after %d moves, winner: player %d", gameMetric.TotalMoves, winner)
}
