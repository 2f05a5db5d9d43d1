package agent

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/JonesRobM/Monopoly/game"
)

// Policy picks a legal action id from a rendered state view. Remote agents
// work on the view, not the live state, so they can never corrupt a game.
type Policy func(view game.StateView, legal []int) int

// ActRequest is the payload an engine posts to a remote agent.
type ActRequest struct {
	View    game.StateView `json:"view"`
	Legal   []int          `json:"legal"`
	Actions []string       `json:"actions"` // decoded form of each legal id
}

// ActResponse carries the chosen action id back to the engine.
type ActResponse struct {
	ActionID int `json:"action_id"`
}

// RandomPolicy answers with a uniformly random legal id.
func RandomPolicy(seed uint64) Policy {
	rng := rand.New(rand.NewSource(seed))
	return func(view game.StateView, legal []int) int {
		return legal[rng.Intn(len(legal))]
	}
}

// StartServer serves a policy over HTTP on the given port, blocking forever.
func StartServer(port string, policy Policy) {
	log.Info().Msgf("starting agent server on :%s ...", port)

	mux := http.NewServeMux()
	mux.HandleFunc("/act", func(w http.ResponseWriter, r *http.Request) {
		var req ActRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Legal) == 0 {
			http.Error(w, "no legal actions", http.StatusBadRequest)
			return
		}

		id := policy(req.View, req.Legal)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ActResponse{ActionID: id}); err != nil {
			http.Error(w, "failed to encode response: "+err.Error(), http.StatusInternalServerError)
		}
	})

	log.Fatal().Err(http.ListenAndServe(":"+port, mux)).Msg("agent server stopped")
}
