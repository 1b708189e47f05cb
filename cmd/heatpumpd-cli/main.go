package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/heatgrid/heatpumpd/internal/core"
	"github.com/heatgrid/heatpumpd/plugins/cop"
	"github.com/heatgrid/heatpumpd/plugins/costs"
	"github.com/heatgrid/heatpumpd/plugins/fleet"
	"github.com/heatgrid/heatpumpd/plugins/power"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client := &client{baseURL: resolveAddr()}

	switch os.Args[1] {
	case "plugins":
		pluginsCmd(client, os.Args[2:])
	case "cop":
		copCmd(client, os.Args[2:])
	case "source-power":
		sourcePowerCmd(client, os.Args[2:])
	case "output-power":
		outputPowerCmd(client, os.Args[2:])
	case "cost":
		costCmd(client, os.Args[2:])
	case "sites":
		sitesCmd(client, os.Args[2:])
	case "report":
		reportCmd(client)
	default:
		usage()
		os.Exit(2)
	}
}

func pluginsCmd(c *client, args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		var resp struct {
			Plugins []core.PluginSummary `json:"plugins"`
		}
		if err := c.get("/v1/plugins", &resp); err != nil {
			fatal("list plugins", err)
		}
		rows := [][]string{{"ID", "NAME", "VERSION", "STATUS"}}
		for _, plugin := range resp.Plugins {
			rows = append(rows, []string{plugin.PluginID, plugin.DisplayName, plugin.Version, plugin.Status})
		}
		printTable(rows)
	case "describe":
		if len(args) < 2 {
			fatal("describe", fmt.Errorf("missing plugin id"))
		}
		var descriptor core.PluginDescriptor
		if err := c.get("/v1/plugins/"+args[1], &descriptor); err != nil {
			fatal("describe plugin", err)
		}
		fmt.Printf("id: %s\n", descriptor.PluginID)
		fmt.Printf("name: %s\n", descriptor.DisplayName)
		fmt.Printf("version: %s\n", descriptor.Version)
		fmt.Printf("status: %s\n", descriptor.Status)
		if descriptor.HealthMessage != "" {
			fmt.Printf("health: %s\n", descriptor.HealthMessage)
		}
		fmt.Println("routes:")
		for _, route := range descriptor.Routes {
			fmt.Printf("  - %s\n", route)
		}
		if len(descriptor.Dashboards) > 0 {
			fmt.Println("dashboards:")
			for _, dash := range descriptor.Dashboards {
				fmt.Printf("  - %s (%s)\n", dash.Name, dash.Path)
			}
		}
		fmt.Println("docs:")
		fmt.Println(descriptor.Docs)
	default:
		usage()
		os.Exit(2)
	}
}

func copCmd(c *client, args []string) {
	fs := flag.NewFlagSet("cop", flag.ExitOnError)
	source := fs.Float64("source", 0, "heat source temperature in degC")
	sink := fs.Float64("sink", 0, "sink outlet temperature in degC")
	asJSON := fs.Bool("json", false, "print the raw response")
	_ = fs.Parse(args)

	req := cop.EvaluateRequest{SourceTempC: source, SinkTempC: sink}
	var resp cop.EvaluateResponse
	if err := c.post("/v1/cop", req, &resp); err != nil {
		fatal("cop", err)
	}

	if *asJSON {
		printJSON(resp)
		return
	}
	fmt.Printf("cop: %.4f (%s, lift %.1f K)\n", resp.COP, resp.Class, resp.DeltaTK)
	for _, warning := range resp.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
}

func sourcePowerCmd(c *client, args []string) {
	fs := flag.NewFlagSet("source-power", flag.ExitOnError)
	supply := fs.Float64("supply", 0, "source supply temperature in degC")
	ret := fs.Float64("return", 0, "source return temperature in degC")
	flow := fs.Float64("flow", 0, "source mass flow in kg/s")
	_ = fs.Parse(args)

	req := power.SourceRequest{SupplyTempC: supply, ReturnTempC: ret, MassFlowKgS: flow}
	var resp power.SourceResponse
	if err := c.post("/v1/power/source", req, &resp); err != nil {
		fatal("source-power", err)
	}
	fmt.Printf("thermal power: %.2f MW\n", resp.ThermalPowerW/1e6)
}

func outputPowerCmd(c *client, args []string) {
	fs := flag.NewFlagSet("output-power", flag.ExitOnError)
	copValue := fs.Float64("cop", 0, "coefficient of performance")
	sourceW := fs.Float64("source-watts", 0, "source thermal power in W")
	_ = fs.Parse(args)

	req := power.OutputRequest{COP: copValue, SourcePowerW: sourceW}
	var resp power.OutputResponse
	if err := c.post("/v1/power/output", req, &resp); err != nil {
		fatal("output-power", err)
	}
	fmt.Printf("output power: %.2f MW\n", resp.OutputPowerW/1e6)
	fmt.Printf("electrical input: %.2f MW\n", resp.ElectricalPowerW/1e6)
}

func costCmd(c *client, args []string) {
	fs := flag.NewFlagSet("cost", flag.ExitOnError)
	size := fs.Float64("size", 0, "heat pump size in MW")
	_ = fs.Parse(args)

	req := costs.EstimateRequest{SizeMW: size}
	var resp costs.EstimateResponse
	if err := c.post("/v1/costs", req, &resp); err != nil {
		fatal("cost", err)
	}
	fmt.Printf("specific cost: %.2f EUR/MW\n", resp.SpecificCostEURPerMW)
	fmt.Printf("capital cost: %.2f EUR\n", resp.CapitalCostEUR)
}

func sitesCmd(c *client, args []string) {
	if len(args) > 0 {
		var eval fleet.Evaluation
		if err := c.get("/v1/sites/"+args[0], &eval); err != nil {
			fatal("show site", err)
		}
		printJSON(eval)
		return
	}

	var resp struct {
		Sites []fleet.Evaluation `json:"sites"`
	}
	if err := c.get("/v1/sites", &resp); err != nil {
		fatal("list sites", err)
	}
	rows := [][]string{{"ID", "NAME", "CLASS", "COP", "OUTPUT MW", "COST EUR"}}
	for _, eval := range resp.Sites {
		rows = append(rows, []string{
			eval.Site.ID,
			eval.Site.Name,
			eval.Class,
			fmt.Sprintf("%.2f", eval.COP),
			fmt.Sprintf("%.2f", eval.OutputPowerW/1e6),
			fmt.Sprintf("%.0f", eval.CapitalCostEUR),
		})
	}
	printTable(rows)
}

func reportCmd(c *client) {
	var resp fleet.ReportResponse
	if err := c.post("/v1/reports", struct{}{}, &resp); err != nil {
		fatal("report", err)
	}
	fmt.Printf("report %s archived (%d sites)\n", resp.ReportID, resp.Sites)
}

func resolveAddr() string {
	if addr := os.Getenv("HEATPUMPD_ADDR"); addr != "" {
		return addr
	}
	return "http://127.0.0.1:8080"
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: heatpumpd-cli <command> [flags]

commands:
  plugins list|describe <id>   plugin registry
  cop -source N -sink N        evaluate a COP
  source-power -supply N -return N -flow N
  output-power -cop N -source-watts N
  cost -size N                 capital cost estimate
  sites [id]                   fleet evaluations
  report                       archive a fleet report`)
}

func fatal(action string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", action, err)
	os.Exit(1)
}
