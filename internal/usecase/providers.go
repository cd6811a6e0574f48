package usecase

import "github.com/google/wire"

// UseCaseSet provides every use case of the deployer
var UseCaseSet = wire.NewSet(
	NewSelectAccount,
	NewDeployContract,
	NewRecordDeployment,
	NewRunDeployment,
	NewListNetworks,
	NewShowConfig,
)
