package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the deployment pipeline
var (
	// ErrConfiguration is matched by every ConfigurationError
	ErrConfiguration = errors.New("configuration error")

	// ErrCredential is matched by every CredentialError
	ErrCredential = errors.New("credential error")

	// ErrDeployment is matched by every DeploymentError
	ErrDeployment = errors.New("deployment error")

	// ErrIO is matched by every IOError
	ErrIO = errors.New("io error")
)

// ConfigurationError is returned when a required setting is missing or unusable
type ConfigurationError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration %q: %s", e.Key, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// CredentialError is returned when a private key cannot be turned into an account
type CredentialError struct {
	Reason string
	Err    error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid credential: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid credential: %s", e.Reason)
}

func (e *CredentialError) Unwrap() error { return e.Err }

func (e *CredentialError) Is(target error) bool { return target == ErrCredential }

// DeploymentStage names the step of a deployment that failed
type DeploymentStage string

const (
	StageConnect DeploymentStage = "connect"
	StageSend    DeploymentStage = "send"
	StageMining  DeploymentStage = "mining"
	StageCode    DeploymentStage = "code"
)

// DeploymentError is returned when the creation transaction cannot be
// broadcast, reverts, or never produces code
type DeploymentError struct {
	Stage   DeploymentStage
	Network string
	TxHash  string
	Err     error
}

func (e *DeploymentError) Error() string {
	msg := fmt.Sprintf("deployment failed on %s during %s", e.Network, e.Stage)
	if e.TxHash != "" {
		msg += fmt.Sprintf(" (tx %s)", e.TxHash)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DeploymentError) Unwrap() error { return e.Err }

func (e *DeploymentError) Is(target error) bool { return target == ErrDeployment }

// IOError is returned when the deployment log cannot be written
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
