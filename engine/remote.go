package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JonesRobM/Monopoly/agent"
	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

// Remote drives a game against agents served over HTTP. Each seat maps to a
// base URL exposing POST /act. Agents only ever see state views, so a
// misbehaving remote cannot corrupt the game.
type Remote struct {
	State     *game.GameState
	AgentURLs []string
	Encoder   *game.ActionEncoder
	Client    *http.Client
}

func RemoteEngine(b *game.Board, cfg game.GameConfig, urls []string) *Remote {
	if len(urls) != cfg.NumPlayers {
		panic("number of agent URLs does not match the number of players")
	}
	if len(urls) < 2 {
		panic("need at least two agents")
	}

	state, err := game.NewGameState(b, cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create game state: %v", err))
	}

	return &Remote{
		State:     state,
		AgentURLs: urls,
		Encoder:   game.NewActionEncoder(b),
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *Remote) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Seed:           e.State.Config.Seed,
		StartingPlayer: e.State.Current,
		Winner:         -1,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	steps := 0
	for !e.State.IsTerminal() && steps < MaxSteps {
		actor := e.State.ActingPlayer()
		legal := legalIDs(LegalMask(e.State, e.Encoder))
		if len(legal) == 0 {
			panic(fmt.Sprintf("no legal actions in phase %v", e.State.Phase))
		}

		id := e.requestAction(actor, legal)

		newState, outcome, err := Step(e.State, e.Encoder, id)
		if err != nil {
			panic(fmt.Sprintf("remote agent %d chose illegal action %d: %v", actor, id, err))
		}

		steps++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     steps,
			Player:   actor,
			ActionID: id,
			Action:   outcome.Action.String(),
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
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}

// requestAction posts the current view and legal ids to the seat's agent. An
// unreachable or misbehaving agent falls back to the first legal action.
func (e *Remote) requestAction(actor int, legal []int) int {
	actions := make([]string, len(legal))
	for i, id := range legal {
		if a, err := e.Encoder.Decode(id); err == nil {
			actions[i] = a.String()
		}
	}
	payload := agent.ActRequest{
		View:    e.State.Snapshot(),
		Legal:   legal,
		Actions: actions,
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}

	url := e.AgentURLs[actor] + "/act"
	resp, err := e.Client.Post(url, "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		log.Warn().Err(err).Msgf("agent %d unreachable, forcing first legal action", actor)
		return legal[0]
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		log.Warn().Msgf("agent %d returned status %d: %s", actor, resp.StatusCode, out)
		return legal[0]
	}

	var reply agent.ActResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		log.Warn().Err(err).Msgf("agent %d sent an unreadable reply", actor)
		return legal[0]
	}

	for _, id := range legal {
		if id == reply.ActionID {
			return id
		}
	}
	log.Warn().Msgf("agent %d chose illegal action %d, forcing first legal action", actor, reply.ActionID)
	return legal[0]
}
