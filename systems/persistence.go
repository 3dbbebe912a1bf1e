package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// ClientState is the local state kept between runs: which save was last
// entered and the bearer token, if any.
type ClientState struct {
	PlayerID string `json:"currentPlayerId"`
	Token    string `json:"token,omitempty"`
}

const clientStateKey = "client"

var gdataManager *gdata.Manager
var gdataInitialized bool
var persistLog = zap.NewNop().Sugar()

// InitPersistence initializes the gdata manager for client state storage
func InitPersistence(appName string, log *zap.SugaredLogger) error {
	if log != nil {
		persistLog = log
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		persistLog.Warnf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadClientState loads the client state from disk. A missing or unreadable
// item yields a zero state.
func LoadClientState() ClientState {
	var state ClientState
	if !gdataInitialized || gdataManager == nil {
		return state
	}

	data, err := gdataManager.LoadItem(clientStateKey)
	if err != nil {
		persistLog.Warnf("[persistence] could not load client state: %v", err)
		return state
	}
	if data == nil {
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		persistLog.Warnf("[persistence] could not parse client state: %v", err)
		return ClientState{}
	}
	return state
}

// SaveClientState saves the client state to disk
func SaveClientState(state ClientState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(clientStateKey, data); err != nil {
		persistLog.Warnf("[persistence] could not save client state: %v", err)
		return err
	}
	return nil
}

// RememberPlayer stores the selected save id, keeping the stored token.
func RememberPlayer(playerID string) {
	state := LoadClientState()
	state.PlayerID = playerID
	_ = SaveClientState(state)
}
