package models

import "fmt"

// DeploymentLogEntry is one record of the shared deployment address log
type DeploymentLogEntry struct {
	Title   string
	Link    string
	Address string
}

// NewDeploymentLogEntry builds the entry for a deployed contract
func NewDeploymentLogEntry(title, link string, contract *DeployedContract) *DeploymentLogEntry {
	return &DeploymentLogEntry{
		Title:   title,
		Link:    link,
		Address: contract.AddressHex(),
	}
}

// String renders the entry as "<title> => <link><address>"
func (e *DeploymentLogEntry) String() string {
	return fmt.Sprintf("%s => %s%s", e.Title, e.Link, e.Address)
}

// Record is the exact text appended to the log: the entry line and a blank line
func (e *DeploymentLogEntry) Record() string {
	return e.String() + "\n\n"
}
