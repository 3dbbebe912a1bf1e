package scenes

import (
	"math/rand"

	"github.com/automoto/herbclinic/network"
	"github.com/automoto/herbclinic/session"
	"go.uber.org/zap"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Env is what every scene shares: the backend client, the selected save and
// the logger.
type Env struct {
	Client  *network.Client
	Session *session.Session
	Log     *zap.SugaredLogger
	Rand    *rand.Rand
}
