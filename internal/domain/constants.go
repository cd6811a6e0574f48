package domain

// DevelopmentNetwork is the name of the local network backed by the dev account pool
const DevelopmentNetwork = "development"

// Defaults for the deployment log and artifact
const (
	DefaultContractName    = "TokenSwap"
	DefaultArtifactPath    = "out/TokenSwap.sol/TokenSwap.json"
	DefaultLogTitle        = "TokenSwap"
	DefaultExplorerBaseURL = "https://rinkeby.etherscan.io/address/"
	DefaultLogPath         = "../Deployment Address.txt"
	DefaultDevelopmentRPC  = "http://127.0.0.1:8545"
)

// IsDevelopment reports whether name refers to the local development network
func IsDevelopment(name string) bool {
	return name == DevelopmentNetwork
}
