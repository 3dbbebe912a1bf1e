package main

import (
	"flag"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/fonts"
	"github.com/automoto/herbclinic/logging"
	"github.com/automoto/herbclinic/network"
	"github.com/automoto/herbclinic/scenes"
	"github.com/automoto/herbclinic/session"
	"github.com/automoto/herbclinic/shared/motion"
	"github.com/automoto/herbclinic/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// NewGame starts on the save screen, or straight in the clinic when a save
// was remembered from the last run.
func NewGame(env *scenes.Env) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if env.Session.PlayerID() != "" {
		g.scene = scenes.NewWorldScene(g, env, config.Maps.Start)
	} else {
		g.scene = scenes.NewSaveSelectScene(g, env)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	server := flag.String("server", config.Network.BaseURL, "Backend base URL")
	token := flag.String("token", config.Network.Token, "Bearer token (stored for later runs)")
	logFile := flag.String("log", config.Log.File, "Log file path (empty = stderr only)")
	policy := flag.String("policy", config.Player.Policy.String(), "Movement policy: last-key-wins or axis-cancel")
	syncEvery := flag.Duration("sync", config.Sync.Interval, "Position upload interval (0 disables)")
	fontPath := flag.String("font", "", "TTF font with CJK glyphs")
	resume := flag.Bool("resume", false, "Enter the last selected save directly")
	debug := flag.Bool("debug", false, "Verbose logging and collider overlay")
	flag.Parse()

	config.Log.Debug = *debug
	config.Debug.DrawColliders = *debug
	log := logging.New(*logFile, config.Log.Debug)
	defer logging.Sync(log)

	p, err := motion.ParsePolicy(*policy)
	if err != nil {
		log.Fatalf("[main] %v", err)
	}
	config.Player.Policy = p
	config.Network.BaseURL = *server
	if *syncEvery > 0 {
		config.Sync.Interval = *syncEvery
	} else {
		config.Sync.Enabled = false
	}

	if err := fonts.LoadAll(*fontPath, config.UI.HUDFontSize, config.UI.HUDTitleSize, config.UI.HUDFontSize-2); err != nil {
		log.Fatalf("[main] load fonts: %v", err)
	}

	// Initialize persistence and load the remembered save
	if err := systems.InitPersistence("herbclinic", log); err != nil {
		log.Warnf("[main] running without persistence: %v", err)
	}
	state := systems.LoadClientState()
	if *token != "" {
		state.Token = *token
		_ = systems.SaveClientState(state)
	}

	client := network.NewClient(config.Network.BaseURL, config.Network.Timeout, log)
	client.SetToken(state.Token)

	sess := session.New()
	if *resume {
		sess.SetPlayerID(state.PlayerID)
	}

	env := &scenes.Env{
		Client:  client,
		Session: sess,
		Log:     log,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	log.Infof("[main] backend %s, policy %s, sync every %s", config.Network.BaseURL, config.Player.Policy, config.Sync.Interval)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(env)); err != nil {
		log.Errorf("[main] %v", err)
		logging.Sync(log)
		os.Exit(1)
	}
}
