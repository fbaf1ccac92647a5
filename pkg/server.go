package pkg

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
	"unicode"

	"github.com/apex/log"
	"github.com/creack/pty"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
	maxNameLength     = 16
)

var rejectColor = color.New(color.FgRed, color.Bold)

// Server hosts chessterm over SSH. Each connection gets its own process and
// its own game; both players sit at the connecting terminal.
type Server struct {
	*ssh.Server
	Chessterm string
	// Args are passed to every chessterm process before the per-connection flags
	Args []string
}

func NewServer(addr, chessterm, hostKey string) (*Server, error) {
	s := &Server{Chessterm: chessterm}
	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.sshHandle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			logger.WithFields(log.Fields{
				"user":        ctx.User(),
				"fingerprint": gossh.FingerprintSHA256(key),
			}).Debug("public key offered")
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}
	if hostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
			return nil, fmt.Errorf("host key %s: %w", hostKey, err)
		}
	}
	return s, nil
}

// Nickname keeps the printable part of an ssh user name for the player label
func Nickname(user string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return -1
	}, user)
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	return name
}

// chesstermArgs builds the command line of the game spawned for user
func (s *Server) chesstermArgs(user string) []string {
	args := append([]string(nil), s.Args...)
	if name := Nickname(user); name != "" {
		args = append(args, "-white", name)
	}
	return args
}

func (s *Server) sshHandle(sess ssh.Session) {
	entry := logger.WithFields(log.Fields{
		"user":   sess.User(),
		"remote": sess.RemoteAddr().String(),
	})
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, rejectColor.Sprint("non-interactive terminals are not supported")+"\n")
		entry.Info("rejected non-interactive session")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Chessterm, s.chesstermArgs(sess.User())...)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		io.WriteString(sess, rejectColor.Sprintf("failed to initialize pseudo-terminal: %s", err)+"\n")
		entry.WithError(err).Error("starting chessterm")
		sess.Exit(1)
		return
	}
	defer f.Close()
	entry.Info("chessterm started")

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	if err := cmd.Wait(); err != nil {
		entry.WithError(err).Info("chessterm exited")
		sess.Exit(1)
		return
	}
	entry.Info("chessterm exited")
	sess.Exit(0)
}
