package game

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gogame/internal/bootstrap"
	"gogame/internal/domain/board"
	"gogame/internal/domain/game"
	"gogame/internal/domain/sgf"
	errs "gogame/internal/errors"
	"gogame/internal/httpresponse"
	repo "gogame/internal/repository"
	gameuc "gogame/internal/usecase/game"
	"gogame/internal/utils"
)

// GameHandler exposes sessions over HTTP. It holds no rules of its own:
// every decision is made by the session and the agent.
type GameHandler struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	store *repo.SessionStore
	feeds *feedHub
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, store *repo.SessionStore) *GameHandler {
	return &GameHandler{
		cfg:   cfg,
		log:   log,
		store: store,
		feeds: newFeedHub(log),
	}
}

func (g *GameHandler) Router(r chi.Router) {
	r.Post("/games", g.HandleNewGame)
	r.Get("/games/{id}", g.HandleGetGame)
	r.Delete("/games/{id}", g.HandleDeleteGame)
	r.Post("/games/{id}/move", g.HandleMove)
	r.Post("/games/{id}/pass", g.HandlePass)
	r.Post("/games/{id}/resign", g.HandleResign)
	r.Post("/games/{id}/restart", g.HandleRestart)
	r.Post("/games/{id}/color", g.HandleColor)
	r.Post("/games/{id}/bot", g.HandleBotMove)
	r.Get("/games/{id}/sgf", g.HandleSGF)
	r.Get("/games/{id}/ws", g.HandleFeed)
}

func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	req := game.GameCreateRequest{BoardSize: g.cfg.BoardSize, PlayerColor: g.cfg.PlayerColor}
	if err := utils.DecodeOptionalJSONRequest(r, &req); err != nil {
		g.log.Errorw("new game: decode error", "error", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}
	if req.BoardSize == 0 {
		req.BoardSize = g.cfg.BoardSize
	}
	if req.PlayerColor == "" {
		req.PlayerColor = g.cfg.PlayerColor
	}

	if err := bootstrap.ValidateBoardSize(req.BoardSize); err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	color, err := board.ParseStone(req.PlayerColor)
	if err != nil {
		g.reject(w, err)
		return
	}

	entry, err := g.store.Create(req.BoardSize, color)
	if err != nil {
		g.reject(w, err)
		return
	}

	entry.Lock()
	msg := ""
	if g.cfg.BotAutoplay {
		msg = g.botTurn(entry)
	}
	state := g.state(entry, msg)
	entry.Unlock()

	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, game.GameCreateResponse{ID: entry.ID, State: state})
}

func (g *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	entry, ok := g.entry(w, r)
	if !ok {
		return
	}
	entry.Lock()
	state := g.state(entry, "")
	entry.Unlock()
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

func (g *GameHandler) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !g.store.Delete(id) {
		g.reject(w, errs.ErrGameNotFound)
		return
	}
	g.feeds.closeAll(id)
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Errorw("move: decode error", "error", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}
	g.perform(w, r, "move", func(e *repo.GameEntry) (gameuc.Result, error) {
		return e.Session.PlayMoveAs(e.Session.PlayerColor(), board.Point{X: req.X, Y: req.Y})
	})
}

func (g *GameHandler) HandlePass(w http.ResponseWriter, r *http.Request) {
	g.perform(w, r, "pass", func(e *repo.GameEntry) (gameuc.Result, error) {
		return e.Session.PassTurnAs(e.Session.PlayerColor())
	})
}

func (g *GameHandler) HandleResign(w http.ResponseWriter, r *http.Request) {
	g.perform(w, r, "resign", func(e *repo.GameEntry) (gameuc.Result, error) {
		s := e.Session
		if !s.GameOver() && s.CurrentPlayer() != s.PlayerColor() {
			return gameuc.Result{}, fmt.Errorf("%w: %s to play", errs.ErrNotCurrentPlayer, s.CurrentPlayer())
		}
		return s.Resign()
	})
}

func (g *GameHandler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	g.perform(w, r, "restart", func(e *repo.GameEntry) (gameuc.Result, error) {
		return e.Session.Restart()
	})
}

func (g *GameHandler) HandleColor(w http.ResponseWriter, r *http.Request) {
	var req game.ColorRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Errorw("color: decode error", "error", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}
	color, err := board.ParseStone(req.Color)
	if err != nil {
		g.reject(w, err)
		return
	}
	g.perform(w, r, "color", func(e *repo.GameEntry) (gameuc.Result, error) {
		if err := e.Session.SetPlayerColor(color); err != nil {
			return gameuc.Result{}, err
		}
		return gameuc.Result{Message: fmt.Sprintf("You play %s.", color)}, nil
	})
}

// HandleBotMove asks the agent to move now, for callers that run without
// autoplay.
func (g *GameHandler) HandleBotMove(w http.ResponseWriter, r *http.Request) {
	entry, ok := g.entry(w, r)
	if !ok {
		return
	}

	entry.Lock()
	defer entry.Unlock()
	color := entry.Session.BotColor()
	choice, res, err := entry.Agent.Play(entry.Session)
	if err != nil {
		g.log.Infow("bot move rejected", "id", entry.ID, "error", err)
		g.reject(w, err)
		return
	}

	move := game.Move{Color: color.Short()}
	if !choice.Pass {
		move.Coordinates = sgf.FromPoint(choice.Point)
	}
	state := g.state(entry, res.Message)
	g.feeds.broadcast(entry.ID, state)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, game.BotMoveResponse{BotMove: move, State: state})
}

func (g *GameHandler) HandleSGF(w http.ResponseWriter, r *http.Request) {
	entry, ok := g.entry(w, r)
	if !ok {
		return
	}
	entry.Lock()
	record := entry.Session.SGF()
	entry.Unlock()

	httpresponse.WriteAttachment(w, "application/x-go-sgf", entry.ID+".sgf", record)
}

// perform runs one human action and, with autoplay on, lets the bot answer
// while the game is still locked.
func (g *GameHandler) perform(w http.ResponseWriter, r *http.Request, name string, act func(e *repo.GameEntry) (gameuc.Result, error)) {
	entry, ok := g.entry(w, r)
	if !ok {
		return
	}

	entry.Lock()
	defer entry.Unlock()
	res, err := act(entry)
	if err != nil {
		g.log.Infow(name+" rejected", "id", entry.ID, "error", err)
		g.reject(w, err)
		return
	}

	messages := []string{res.Message}
	if g.cfg.BotAutoplay {
		if msg := g.botTurn(entry); msg != "" {
			messages = append(messages, msg)
		}
	}
	state := g.state(entry, strings.Join(messages, " "))
	g.feeds.broadcast(entry.ID, state)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

// botTurn plays for the bot if it is its turn. The entry must be locked.
func (g *GameHandler) botTurn(e *repo.GameEntry) string {
	s := e.Session
	if s.GameOver() || s.CurrentPlayer() != s.BotColor() {
		return ""
	}
	choice, res, err := e.Agent.Play(s)
	if err != nil {
		g.log.Errorw("bot move failed", "id", e.ID, "error", err)
		return ""
	}
	g.log.Debugw("bot moved", "id", e.ID, "pass", choice.Pass, "x", choice.Point.X, "y", choice.Point.Y)
	return res.Message
}

func (g *GameHandler) entry(w http.ResponseWriter, r *http.Request) (*repo.GameEntry, bool) {
	id := chi.URLParam(r, "id")
	entry, err := g.store.Get(id)
	if err != nil {
		g.log.Infow("game lookup failed", "id", id, "error", err)
		g.reject(w, err)
		return nil, false
	}
	return entry, true
}

func (g *GameHandler) state(e *repo.GameEntry, msg string) game.State {
	st := e.Session.State()
	st.ID = e.ID
	st.Message = msg
	return st
}

// reject reports a refused operation with its reason unchanged.
func (g *GameHandler) reject(w http.ResponseWriter, err error) {
	httpresponse.WriteError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrOutOfBounds), errors.Is(err, errs.ErrInvalidColor):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrOccupied),
		errors.Is(err, errs.ErrSuicide),
		errors.Is(err, errs.ErrKoViolation),
		errors.Is(err, errs.ErrSessionOver),
		errors.Is(err, errs.ErrNotCurrentPlayer):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
