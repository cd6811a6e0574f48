package render

import (
	"context"
	"fmt"
	"io"

	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// DeployRenderer prints the pipeline's console lines
type DeployRenderer struct {
	out    io.Writer
	errOut io.Writer
}

// NewDeployRenderer creates a renderer writing announcements to out and warnings to errOut
func NewDeployRenderer(out, errOut io.Writer) *DeployRenderer {
	return &DeployRenderer{
		out:    out,
		errOut: errOut,
	}
}

// Deploying is printed before the creation transaction is sent
func (r *DeployRenderer) Deploying(ctx context.Context, network *config.Network, account *models.Account) {
	fmt.Fprintln(r.out, "Deploying...")
}

// Deployed is printed once the contract is mined
func (r *DeployRenderer) Deployed(ctx context.Context, contract *models.DeployedContract) {
	fmt.Fprintf(r.out, "Deployed at %s !!!\n", contract.AddressHex())
}

// RenderVerification reports the source publication outcome on errOut
func (r *DeployRenderer) RenderVerification(contract *models.DeployedContract) {
	switch contract.Verification.Status {
	case models.VerificationStatusVerified:
		fmt.Fprintln(r.errOut, FormatSuccess("Source verified on the block explorer"))
	case models.VerificationStatusFailed:
		fmt.Fprintln(r.errOut, FormatWarning("Source verification failed: "+contract.Verification.Reason))
	}
}

// Ensure DeployRenderer implements DeploymentReporter
var _ usecase.DeploymentReporter = (*DeployRenderer)(nil)
