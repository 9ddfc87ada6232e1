package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"time"

	"jolly/internal/app"
	"jolly/internal/bot"
	"jolly/internal/config"
	"jolly/internal/domain"
	"jolly/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for one Jolly table: a
// single human seat against the house CPU.
type MatchState struct {
	HumanID     string                      `json:"human_id"`
	Difficulty  domain.Difficulty           `json:"difficulty"`
	CpuIdentity bot.Identity                `json:"cpu_identity"`
	Tick        int64                       `json:"tick"`
	Presences   map[string]runtime.Presence `json:"-"`
	App         *app.Service                `json:"-"`
	Game        *domain.Game                `json:"-"`
	Economy     ports.EconomyPort           `json:"-"`

	// CpuActAt is the tick the CPU plays its pending turn, 0 when idle.
	// The delay keeps the house moving at a human pace.
	CpuActAt    int64 `json:"-"`
	BotMinDelay int   `json:"-"`
	BotMaxDelay int   `json:"-"`

	rng *rand.Rand
}

// snapshotPayload is the redacted game view sent to the human. The CPU hand
// is reported as a count only.
type snapshotPayload struct {
	Game         *domain.Game  `json:"game"`
	Hand         []domain.Card `json:"hand"`
	CpuCardCount int           `json:"cpu_card_count"`
	StockCount   int           `json:"stock_count"`
	HasBottom    bool          `json:"has_bottom"`
	CpuName      string        `json:"cpu_name"`
	CpuAvatar    int           `json:"cpu_avatar"`
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	difficulty := config.GetDefaultDifficulty()
	if v, ok := params["difficulty"].(string); ok && v != "" {
		difficulty = domain.Difficulty(v)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	minDelay, maxDelay := config.GetBotDelayBounds()
	state := &MatchState{
		Difficulty:  difficulty,
		CpuIdentity: bot.IdentityForDifficulty(difficulty, rng),
		Tick:        time.Now().Unix(),
		Presences:   make(map[string]runtime.Presence),
		App:         app.NewService(rng),
		Economy:     NewNakamaEconomyAdapter(nk),
		BotMinDelay: minDelay,
		BotMaxDelay: maxDelay,
		rng:         rng,
	}

	labelBytes, err := json.Marshal(domain.ComputeLabel(nil))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// The CPU seat is virtual; provisioned persona accounts never join.
	if identity, isBot := bot.GetIdentity(presence.GetUserId()); isBot {
		logger.Warn("MatchJoinAttempt: persona account %s tried to take a seat", identity.Username)
		return state, false, "bots cannot join"
	}

	// One human per table. Rejoining from another device is allowed.
	if matchState.HumanID != "" && matchState.HumanID != presence.GetUserId() {
		return state, false, "match full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		if matchState.HumanID == "" {
			matchState.HumanID = p.GetUserId()
			logger.Info("MatchJoin: %s seated against %s (%s)", p.GetUserId(), matchState.CpuIdentity.DisplayName, matchState.Difficulty)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.sendSnapshot(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave terminates the match once the human is gone; there is nobody
// left to play the CPU against.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
	}
	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Human left, terminating match.")
		return nil
	}
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		if msg.GetUserId() != matchState.HumanID {
			logger.Warn("MatchLoop: Message from non-seated user %s", msg.GetUserId())
			continue
		}
		mh.handleMessage(ctx, matchState, dispatcher, logger, msg)
	}

	mh.processCpu(ctx, matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) handleMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if msg.GetOpCode() == domain.OpCodeStartGame {
		mh.handleStartGame(state, dispatcher, logger, msg)
		return
	}

	if state.Game == nil {
		mh.sendResult(state, dispatcher, logger, app.ActionResult{Msg: "no game in progress"})
		return
	}
	if state.Game.Turn != domain.SeatHuman {
		mh.sendResult(state, dispatcher, logger, app.ActionResult{Msg: "it is not your turn"})
		return
	}

	g := state.Game
	var res app.ActionResult

	switch msg.GetOpCode() {
	case domain.OpCodeDrawCard:
		var req struct {
			Source domain.DrawSource `json:"source"`
		}
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			logger.Warn("handleMessage: bad draw payload: %v", err)
			return
		}
		dr := state.App.DrawCard(g, req.Source)
		res = app.ActionResult{Success: dr.Success, Msg: dr.Msg}
	case domain.OpCodeUndoDraw:
		res = state.App.UndoDraw(g)
	case domain.OpCodeMeld:
		var req struct {
			CardIDs []int `json:"card_ids"`
		}
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			logger.Warn("handleMessage: bad meld payload: %v", err)
			return
		}
		res = state.App.AttemptMeld(g, req.CardIDs)
	case domain.OpCodeAddToMeld:
		var req struct {
			MeldIndex int   `json:"meld_index"`
			CardIDs   []int `json:"card_ids"`
		}
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			logger.Warn("handleMessage: bad addition payload: %v", err)
			return
		}
		res = state.App.AddToExistingMeld(g, req.MeldIndex, req.CardIDs)
	case domain.OpCodeJokerSwap:
		var req struct {
			MeldIndex int `json:"meld_index"`
			CardID    int `json:"card_id"`
		}
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			logger.Warn("handleMessage: bad swap payload: %v", err)
			return
		}
		res = state.App.AttemptJokerSwap(g, req.MeldIndex, req.CardID)
	case domain.OpCodeCancelMelds:
		state.App.CancelTurnMelds(g)
		res = app.ActionResult{Success: true}
	case domain.OpCodeDiscard:
		var req struct {
			CardID int `json:"card_id"`
		}
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			logger.Warn("handleMessage: bad discard payload: %v", err)
			return
		}
		res = state.App.AttemptDiscard(g, req.CardID)
	case domain.OpCodeJollyHand:
		res = state.App.AttemptJollyHand(g)
	case domain.OpCodeUndoJolly:
		res = state.App.UndoJolly(g)
	default:
		logger.Warn("handleMessage: Unknown opcode received: %d", msg.GetOpCode())
		return
	}

	mh.sendResult(state, dispatcher, logger, res)
	if res.Winner != "" {
		mh.finishGame(ctx, state, dispatcher, logger, res.Winner, res.Score)
		return
	}
	mh.sendSnapshot(state, dispatcher, logger)
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	if state.Game != nil {
		mh.sendResult(state, dispatcher, logger, app.ActionResult{Msg: "a game is already in progress"})
		return
	}

	debug := false
	if cfg := config.GetGameConfig(); cfg != nil {
		debug = cfg.DebugDeal
	}
	game, events := state.App.InitGame(state.Difficulty, debug)
	state.Game = game

	for _, ev := range events {
		mh.dispatchEvent(state, dispatcher, logger, ev)
	}
	mh.sendSnapshot(state, dispatcher, logger)
	mh.updateLabel(state, dispatcher, logger)
	logger.Info("StartGame: Game %s started at difficulty %s.", game.ID, state.Difficulty)
}

// processCpu plays the CPU turn after a short randomized delay.
func (mh *matchHandler) processCpu(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g := state.Game
	if g == nil || g.Turn != domain.SeatCpu {
		state.CpuActAt = 0
		return
	}

	if state.CpuActAt == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += state.rng.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.CpuActAt = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.CpuActAt {
		return
	}
	state.CpuActAt = 0

	result, events := state.App.ProcessCpuTurn(g)
	for _, ev := range events {
		mh.dispatchEvent(state, dispatcher, logger, ev)
	}
	if result.Winner != "" {
		mh.finishGame(ctx, state, dispatcher, logger, result.Winner, result.Score)
		return
	}
	mh.sendSnapshot(state, dispatcher, logger)
	mh.updateLabel(state, dispatcher, logger)
}

// finishGame settles the winner's coins, announces the result and returns
// the table to the lobby.
func (mh *matchHandler) finishGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, winner domain.Seat, score int) {
	if winner == domain.SeatHuman && state.Economy != nil && state.HumanID != "" {
		amount := int64(score) * config.GetWinWalletCredit()
		updates := []ports.WalletUpdate{{
			UserID: state.HumanID,
			Amount: amount,
			Metadata: map[string]interface{}{
				"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
				"reason":   "game_win",
			},
		}}
		if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
			logger.Error("finishGame: Failed to credit winner: %v", err)
		}
	}

	mh.broadcast(state, dispatcher, logger, domain.OpCodeGameEnded, app.GameEndedPayload{Winner: winner, Score: score}, nil)
	state.Game = nil
	mh.updateLabel(state, dispatcher, logger)
}

// dispatchEvent maps an app event to its wire opcode and recipients.
func (mh *matchHandler) dispatchEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	switch ev.Kind {
	case app.EventGameStarted:
		opCode = domain.OpCodeGameState
	case app.EventHandDealt:
		opCode = domain.OpCodeGameState
	case app.EventCpuTurn:
		opCode = domain.OpCodeCpuTurn
	case app.EventGameEnded:
		opCode = domain.OpCodeGameEnded
	default:
		logger.Warn("dispatchEvent: Unknown event kind: %v", ev.Kind)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		// Seat-targeted events only ever address the human; the CPU has no
		// presence to deliver to.
		for _, seat := range ev.Recipients {
			if seat != string(domain.SeatHuman) {
				continue
			}
			if p, ok := state.Presences[state.HumanID]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}
	mh.broadcast(state, dispatcher, logger, opCode, ev.Payload, recipients)
}

// sendSnapshot sends the redacted game view to the human seat.
func (mh *matchHandler) sendSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	p, ok := state.Presences[state.HumanID]
	if !ok {
		return
	}

	payload := snapshotPayload{
		Game:      state.Game,
		CpuName:   state.CpuIdentity.DisplayName,
		CpuAvatar: state.CpuIdentity.AvatarIndex,
	}
	if state.Game != nil {
		payload.Hand = state.Game.HumanHand
		payload.CpuCardCount = len(state.Game.CpuHand)
		payload.StockCount = len(state.Game.Stock)
		payload.HasBottom = state.Game.Bottom != nil
	}
	mh.broadcast(state, dispatcher, logger, domain.OpCodeGameState, payload, []runtime.Presence{p})
}

func (mh *matchHandler) sendResult(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, res app.ActionResult) {
	p, ok := state.Presences[state.HumanID]
	if !ok {
		return
	}
	mh.broadcast(state, dispatcher, logger, domain.OpCodeActionResult, res, []runtime.Presence{p})
}

func (mh *matchHandler) broadcast(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any, recipients []runtime.Presence) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("broadcast: Failed to marshal opcode %d payload: %v", opCode, err)
		return
	}
	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(domain.ComputeLabel(state.Game))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
