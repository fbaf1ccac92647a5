package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/qnkhuat/hotseat/pkg"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	logPath := flag.String("log", "", "path to log file")
	theme := flag.String("theme", "", "board theme (basic, raylib or one from the config)")
	white := flag.String("white", "", "name of the white player")
	black := flag.String("black", "", "name of the black player")
	session := flag.String("session", "", "session name, generated when empty")
	spectate := flag.String("spectate", "", "serve a read-only spectator feed on this address")
	debug := flag.Bool("debug", false, "log board diagrams after every move")
	flag.Parse()

	config, err := pkg.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&config.LogPath, *logPath)
	override(&config.Theme, *theme)
	override(&config.White, *white)
	override(&config.Black, *black)
	override(&config.Session, *session)
	override(&config.Spectate, *spectate)
	if *debug {
		config.LogLevel = "debug"
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "chessterm needs an interactive terminal")
		os.Exit(1)
	}

	if err := pkg.InitLog(config.LogPath, "chessterm"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := pkg.SetLogLevel(config.LogLevel); err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	t, err := config.ResolveTheme()
	if err != nil {
		log.WithError(err).Fatal("bad theme")
	}

	s := pkg.NewSession(config.Session, config.Players())
	cl := pkg.NewClient(s, t)

	var spectateServer *http.Server
	if config.Spectate != "" {
		spectateServer = pkg.NewSpectateServer(config.Spectate, s)
		go func() {
			log.WithField("addr", config.Spectate).Info("spectator feed listening")
			if err := spectateServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("spectator feed stopped")
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() { // Down when receive killed signal
		<-sigc
		cl.App.QueueUpdate(cl.Stop)
	}()

	runErr := cl.Run()
	s.Close()
	if spectateServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		spectateServer.Shutdown(ctx)
		cancel()
	}
	if runErr != nil {
		log.WithError(runErr).Fatal("terminal ui failed")
	}
}
