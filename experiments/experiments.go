package experiments

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JonesRobM/Monopoly/agent"
	"github.com/JonesRobM/Monopoly/engine"
	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

const (
	NumGames  = 30 // Per match up
	MaxRounds = 500
)

var rolloutConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "rollout", Playouts: 8, Cutoff: 200, Seed: 11},
	{ID: 2, Kind: "rollout", Playouts: 16, Cutoff: 200, Seed: 12},
	{ID: 3, Kind: "rollout", Playouts: 32, Cutoff: 200, Seed: 13},
	{ID: 4, Kind: "rollout", Playouts: 64, Cutoff: 200, Seed: 14},
	{ID: 5, Kind: "rollout", Playouts: 128, Cutoff: 200, Seed: 15},
}

// RunRolloutStrengthExperiment pairs the greedy baseline against flat Monte
// Carlo agents of increasing playout budgets.
func RunRolloutStrengthExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Kind: "greedy"}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range rolloutConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("rollout_strength", append(rolloutConfigs, baseline), matchUps)
}

// RunBaselineExperiment pits the three agent kinds against each other.
func RunBaselineExperiment() {
	configs := []metrics.AgentConfig{
		{ID: 0, Kind: "random", Seed: 21},
		{ID: 1, Kind: "greedy"},
		{ID: 2, Kind: "rollout", Playouts: 32, Cutoff: 200, Seed: 22},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[0], configs[2]},
		{configs[1], configs[2]},
	}

	runExperiment("baseline", configs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, NumGames)

			count++
			winner, gameMetric, moveMetrics := runGame(config1, config2, uint64(count))
			gameID := uuid.NewString()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         gameID,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: player %d", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writeRecords(name, configs, gameRecords, moveRecords)
}

func writeRecords(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single two-seat game and returns the winner.
func runGame(config1, config2 metrics.AgentConfig, seed uint64) (int, metrics.GameMetric, []metrics.MoveMetric) {
	board := game.StandardBoard()
	cfg := game.DefaultConfig(2)
	cfg.Seed = seed
	cfg.MaxRounds = MaxRounds

	enc := game.NewActionEncoder(board)
	agents := []agent.Agent{
		createAgent(config1, enc, seed),
		createAgent(config2, enc, seed),
	}
	e := engine.LocalEngine(board, cfg, agents)

	return e.Run()
}

func createAgent(config metrics.AgentConfig, enc *game.ActionEncoder, gameSeed uint64) agent.Agent {
	switch config.Kind {
	case "random":
		return agent.NewRandom(config.Seed ^ gameSeed)
	case "greedy":
		return agent.NewGreedy(enc)
	case "rollout":
		options := []agent.Option{agent.WithMetrics()}
		if config.Playouts > 0 {
			options = append(options, agent.WithPlayouts(config.Playouts))
		}
		if config.Cutoff > 0 {
			options = append(options, agent.WithCutoff(config.Cutoff))
		}
		return agent.NewRollout(enc, config.Seed^gameSeed, options...)
	}
	panic(fmt.Sprintf("unknown agent kind: %q", config.Kind))
}
