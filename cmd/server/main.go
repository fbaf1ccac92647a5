package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/hotseat/pkg"
)

func main() {
	listen := flag.String("listen-ssh", pkg.SshPort, "address to accept ssh connections on")
	chessterm := flag.String("chessterm", "chessterm", "path to the chessterm binary")
	hostKey := flag.String("host-key", "", "path to the ssh host key, generated when empty")
	logPath := flag.String("log", "./log", "path to log file")
	theme := flag.String("theme", "", "theme passed to every game")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	if err := pkg.InitLog(*logPath, "server"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debug {
		pkg.SetLogLevel("debug")
	}

	s, err := pkg.NewServer(*listen, *chessterm, *hostKey)
	if err != nil {
		log.WithError(err).Fatal("creating ssh server")
	}
	s.Args = []string{"-log", *logPath}
	if *theme != "" {
		s.Args = append(s.Args, "-theme", *theme)
	}

	color.New(color.FgGreen, color.Bold).Printf("hotseat chess ")
	fmt.Printf("serving %s over ssh on %s\n", color.CyanString(*chessterm), color.YellowString(*listen))
	log.WithField("addr", *listen).Info("server started")

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		log.Info("shutting down")
		s.Close()
	}()

	if err := s.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
		log.WithError(err).Fatal("ssh server stopped")
	}
}
