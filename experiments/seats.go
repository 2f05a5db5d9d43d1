package experiments

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JonesRobM/Monopoly/agent"
	"github.com/JonesRobM/Monopoly/engine"
	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

// RunSeatCountExperiment measures how game length and bankruptcy counts
// scale with the number of seats, using random self-play at each table size.
func RunSeatCountExperiment() {
	const numGames = 100

	config := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 31}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting seat count experiment...")

	count := 0
	for seats := 2; seats <= game.MaxPlayers; seats++ {
		log.Info().Msgf("starting %d-seat table...", seats)

		for i := 0; i < numGames; i++ {
			count++
			seed := uint64(count)

			board := game.StandardBoard()
			cfg := game.DefaultConfig(seats)
			cfg.Seed = seed
			cfg.MaxRounds = MaxRounds

			agents := make([]agent.Agent, seats)
			for s := range agents {
				agents[s] = agent.NewRandom(config.Seed ^ seed ^ uint64(s))
			}
			e := engine.LocalEngine(board, cfg, agents)
			winner, gameMetric, gameMoves := e.Run()

			gameID := uuid.NewString()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         gameID,
				Agent1:     config.ID,
				Agent2:     config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range gameMoves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed %d-seat game %d of %d with winner: player %d", seats, i+1, numGames, winner)
		}
	}

	log.Info().Msg("completed seat count experiment")

	writeRecords("seat_count", []metrics.AgentConfig{config}, gameRecords, moveRecords)
}
