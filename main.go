// gomoku-local is a terminal application to play five-in-a-row with two
// players sharing one keyboard and mouse.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/config"
	"gomoku-local/engine/local"
	"gomoku-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagFocus   = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagDebug   = flag.Bool("debug", false, "Log at debug level")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("gomoku-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}
	if *flagDebug {
		cfg.Log.Level = "debug"
	}

	logger, closeLog, err := initLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer closeLog()
	logger.Info("starting", "version", Version)

	eng := local.NewLocalEngine(logger)

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● gomoku ○ ")

	gameHint = tview.NewTextView()
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameBoard = ui.NewBoardUI(app, cfg, gameHint)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.ConnectEngine(eng)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.PlaySelection()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				if gameBoard.SelectedTile() != nil {
					gameBoard.ResetSelection()
				} else {
					app.Stop()
				}
				return nil
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case ' ':
				gameBoard.PlaySelection()
			case 'r':
				gameBoard.NewGame()
			case 'c':
				rootPage.SwitchToPage("colors")
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
				app.SetFocus(gameBoard.Box)
			}
		}
		return event
	})

	colorConfig := ui.NewColorConfig(cfg, logger, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("gameview")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			gameBoard.SetConfig(cfg)
			rootPage.SwitchToPage("gameview")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("gameview", gameFrame, true, true)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if *flagFocus {
		gameBoard.SetFocusMode(true)
		ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
	}

	if err := app.SetRoot(rootPage, true).SetFocus(gameBoard.Box).Run(); err != nil {
		panic(err)
	}
	logger.Info("exiting")
}

// initLogger opens the log file and builds the application logger. The
// terminal belongs to the UI, so nothing is logged to stdout.
func initLogger(c *config.Config) (*slog.Logger, func(), error) {
	path, err := c.LogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return c.Log.NewLogger(f), func() { f.Close() }, nil
}
