package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gridpolicy/gridpolicy/pkg/log"
	"github.com/gridpolicy/gridpolicy/pkg/types"
)

const maxDecideBodyBytes = 1 << 20

// handleDecide evaluates one interval. Only a body that isn't a JSON object is
// rejected; malformed variables inside the object are the decider's concern
// and still produce a decision.
func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxDecideBodyBytes))
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Ctx(ctx).DebugContext(ctx, "invalid decide body", slog.Any("error", err))
		writeJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	obj, ok := body.(map[string]any)
	if !ok {
		writeJSONError(w, "body must be a JSON object of variables", http.StatusBadRequest)
		return
	}

	start := time.Now()
	decision := s.decider.Decide(ctx, types.Variables(obj))
	elapsed := time.Since(start)
	s.metrics.observe(decision, elapsed)

	log.Ctx(ctx).InfoContext(
		ctx,
		"decision made",
		slog.String("action", string(decision.Action)),
		slog.String("solar", string(decision.Solar)),
		slog.String("rule", string(decision.Rule)),
		slog.Any("degraded", decision.Degraded),
		slog.Duration("elapsed", elapsed),
	)

	writeJSON(w, decision)
}
