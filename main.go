package main

import (
	"flag"
	"strings"

	"github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/fonts"
	"github.com/colorwandcastle/colorwand/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type Game struct {
	level config.LevelConfig
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(level config.LevelConfig) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return nil, err
	}

	g := &Game{level: level}
	g.scene = scenes.NewRoomScene(g, level)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.level.Width, g.level.Height
}

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	levelName := flag.String("level", config.C.Level, "level to play: "+strings.Join(config.LevelNames(), ", "))
	debug := flag.Bool("debug", config.Debug.Overlay, "draw collision boxes (toggle in game with F1)")
	seed := flag.Int64("seed", config.Debug.Seed, "block color seed, 0 for a random room")
	flag.Parse()

	config.C.Level = *levelName
	config.Debug.Overlay = *debug
	config.Debug.Seed = *seed

	logLevel, err := log.ParseLevel(config.Debug.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(logLevel)

	level, err := config.CurrentLevel()
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(level)
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"level":  level.Name,
		"policy": level.Policy,
		"tps":    config.C.TPS,
	}).Info("Starting Colorwand Castle")

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowTitle("Colorwand Castle")
	ebiten.SetWindowSize(level.Width*level.Scale, level.Height*level.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
