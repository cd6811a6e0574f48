package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders every known network as a table, marking the active one
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintf(r.out, "🌐 Active network: %s\n\n", color.New(color.Bold).Sprint(cases.Title(language.English).String(result.Active)))

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 3, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"", "Network", "Chain ID", "RPC URL", "Explorer"})

	for _, network := range result.Networks {
		marker := ""
		if network.Name == result.Active {
			marker = "*"
		}

		chainID := "-"
		if network.Error != nil {
			chainID = color.New(color.FgRed).Sprintf("error: %v", network.Error)
		} else if network.ChainID != 0 {
			chainID = fmt.Sprintf("%d", network.ChainID)
		}

		explorer := network.ExplorerURL
		if explorer == "" {
			explorer = "-"
		}

		t.AppendRow(table.Row{marker, network.Name, chainID, network.RPCURL, explorer})
	}

	t.Render()
	return nil
}
