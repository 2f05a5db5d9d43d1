package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JonesRobM/Monopoly/agent"
	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

// Local drives a full game between in-process agents, one per seat.
type Local struct {
	State   *game.GameState
	Agents  []agent.Agent
	Encoder *game.ActionEncoder
}

func LocalEngine(b *game.Board, cfg game.GameConfig, agents []agent.Agent) *Local {
	if len(agents) != cfg.NumPlayers {
		panic("number of agents does not match the number of players")
	}
	if len(agents) < 2 {
		panic("need at least two agents")
	}

	state, err := game.NewGameState(b, cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create game state: %v", err))
	}

	return &Local{
		State:   state,
		Agents:  agents,
		Encoder: game.NewActionEncoder(b),
	}
}

// Run executes the game loop until a winner emerges or the step cap hits.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Seed:           e.State.Config.Seed,
		StartingPlayer: e.State.Current,
		Winner:         -1,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.State.Current)

	steps := 0
	for !e.State.IsTerminal() && steps < MaxSteps {
		actor := e.State.ActingPlayer()
		legal := legalIDs(LegalMask(e.State, e.Encoder))
		if len(legal) == 0 {
			panic(fmt.Sprintf("no legal actions in phase %v", e.State.Phase))
		}

		id, searchMetric := e.Agents[actor].Act(e.State, legal)

		newState, outcome, err := Step(e.State, e.Encoder, id)
		if err != nil {
			panic(fmt.Sprintf("agent %d chose illegal action %d: %v", actor, id, err))
		}

		steps++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         steps,
			Player:       actor,
			ActionID:     id,
			Action:       outcome.Action.String(),
			SearchMetric: searchMetric,
		})
		gameMetric.Bankruptcies += len(outcome.Bankrupted)

		e.State = newState
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = steps
	gameMetric.Rounds = e.State.Round

	if e.State.IsTerminal() {
		gameMetric.Winner = e.State.Winner
		log.Info().Msgf("game over after %d moves, winner: player %d", steps, e.State.Winner)
	} else {
		log.Info().Msgf("stopped after %d moves with no winner", steps)
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}

// legalIDs flattens a mask into the ascending list of set ids.
func legalIDs(mask []bool) []int {
	var ids []int
	for id, ok := range mask {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}
