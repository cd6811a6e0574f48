package anvil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

const (
	// DefaultBinary is the local node started for the development network
	DefaultBinary = "anvil"

	startupTimeout = 10 * time.Second
	pollInterval   = 100 * time.Millisecond
	stopTimeout    = 5 * time.Second
)

// Prober reports whether a node answers JSON-RPC on rpcURL
type Prober func(ctx context.Context, rpcURL string) error

// ProbeRPC asks the node for its chain ID
func ProbeRPC(ctx context.Context, rpcURL string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return err
	}
	defer client.Close()

	_, err = client.ChainID(ctx)
	return err
}

// Node launches anvil for the development network when no node is running
type Node struct {
	binary  string
	logFile string
	probe   Prober
	log     *slog.Logger
}

// NewNode creates a node launcher using the anvil binary on PATH
func NewNode(log *slog.Logger) *Node {
	return NewNodeWithProber(DefaultBinary, ProbeRPC, log)
}

// NewNodeWithProber creates a node launcher with a custom binary and health check
func NewNodeWithProber(binary string, probe Prober, log *slog.Logger) *Node {
	return &Node{
		binary:  binary,
		logFile: filepath.Join(os.TempDir(), "tokenswap-anvil.log"),
		probe:   probe,
		log:     log.With("component", "anvil"),
	}
}

// Ensure starts anvil on the port of rpcURL unless a node already answers there
func (n *Node) Ensure(ctx context.Context, rpcURL string) (func(), error) {
	if err := n.probe(ctx, rpcURL); err == nil {
		n.log.Debug("development node already running", "rpc", rpcURL)
		return func() {}, nil
	}

	port, err := localPort(rpcURL)
	if err != nil {
		return nil, err
	}

	logFile, err := os.Create(n.logFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(n.binary, "--port", port)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", n.binary, err)
	}
	n.log.Info("started development node", "pid", cmd.Process.Pid, "port", port, "logs", n.logFile)

	stop := func() { n.stop(cmd) }

	if err := n.waitHealthy(ctx, rpcURL); err != nil {
		stop()
		return nil, err
	}

	return stop, nil
}

// waitHealthy polls rpcURL until the node answers or the startup timeout passes
func (n *Node) waitHealthy(ctx context.Context, rpcURL string) error {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = n.probe(ctx, rpcURL); lastErr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("development node did not answer on %s: %w", rpcURL, errors.Join(ctx.Err(), lastErr))
		case <-ticker.C:
		}
	}
}

// stop terminates the node, killing it if SIGTERM is not honoured in time
func (n *Node) stop(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		_ = cmd.Process.Kill()
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopTimeout):
		_ = cmd.Process.Kill()
		<-done
	}

	n.log.Debug("stopped development node", "pid", cmd.Process.Pid)
}

// localPort returns the port of rpcURL, refusing hosts other than loopback
func localPort(rpcURL string) (string, error) {
	u, err := url.Parse(rpcURL)
	if err != nil {
		return "", fmt.Errorf("invalid RPC URL %q: %w", rpcURL, err)
	}

	host := u.Hostname()
	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil || !ip.IsLoopback() {
			return "", fmt.Errorf("cannot launch a node for non-local RPC URL %s", rpcURL)
		}
	}

	if port := u.Port(); port != "" {
		return port, nil
	}
	return "8545", nil
}

// Ensure Node implements DevNode
var _ usecase.DevNode = (*Node)(nil)
