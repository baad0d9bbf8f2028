package skill

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/sukalov/lyricecho/internal/alexa"
	"github.com/sukalov/lyricecho/internal/logger"
	"github.com/sukalov/lyricecho/internal/session"
)

// Handle runs one turn: it loads the conversation, dispatches to the handler
// for the classified intent and stores the conversation again. It always
// produces a response.
func (s *Skill) Handle(ctx context.Context, env *alexa.RequestEnvelope) Response {
	intent := Classify(env)
	s.metrics.Turn(intent.String())

	sessionID := env.Session.SessionID
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return s.catchAll(intent, err)
	}

	turn := &Turn{
		SessionID: sessionID,
		Intent:    intent,
		Envelope:  env,
		Session:   sess,
	}

	resp, err := s.dispatch(ctx, turn)
	if err != nil {
		return s.catchAll(intent, err)
	}

	if resp.EndSession {
		if err := s.store.Delete(ctx, sessionID); err != nil {
			logger.Warn("failed to delete session", "session_id", sessionID, "error", err)
		}
		return resp
	}
	if err := s.store.Save(ctx, sessionID, turn.Session); err != nil {
		logger.Error("failed to save session", "session_id", sessionID, "error", err)
	}
	return resp
}

// dispatch invokes the handler for t.Intent, falling back to the intent
// reflector for unknown intents. Unknown request types and panics are
// returned as errors.
func (s *Skill) dispatch(ctx context.Context, t *Turn) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v\n%s", r, debug.Stack())
		}
	}()

	handler, ok := s.handlers[t.Intent]
	if !ok {
		if t.Envelope.Request.Type != alexa.IntentRequest {
			return Response{}, fmt.Errorf("unsupported request type %q", t.Envelope.Request.Type)
		}
		handler = s.intentReflectorHandler
	}
	return handler(ctx, t)
}

func (s *Skill) loadSession(ctx context.Context, id string) (*session.Session, error) {
	sess, err := s.store.Load(ctx, id)
	if errors.Is(err, session.ErrInvalid) {
		logger.Warn("discarding invalid session", "session_id", id, "error", err)
		return session.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// catchAll converts any handler failure into the generic apology.
func (s *Skill) catchAll(intent Intent, err error) Response {
	s.metrics.HandlerFailure()
	logger.Error("turn failed", "intent", intent.String(), "error", err)
	return Response{Speech: speechApology, Reprompt: speechApology}
}
