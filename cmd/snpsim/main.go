package main

import (
	"flag"
	"os"

	"github.com/raulk/go-watchdog"
	"go.dedis.ch/onet/v3/log"

	"github.com/hhcho/snpsim/sim"
)

func main() {
	configPath := flag.String("config", "config/sim.toml", "path to the simulation toml config")
	flag.Parse()

	config, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if config.MemoryLimit > 0 {
		err, stopFn := watchdog.HeapDriven(config.MemoryLimit, 40, watchdog.NewAdaptivePolicy(0.5))
		if err != nil {
			log.Fatal(err)
		}
		defer stopFn()
	}

	simulation, err := config.BuildSimulation()
	if err != nil {
		log.Fatal(err)
	}
	log.LLvl1("\n" + simulation.String())

	dataset, err := simulation.GenerateCaseControl(config.NumCases, config.NumControls, config.Maf1, config.Maf2)
	if err != nil {
		log.Fatal(err)
	}
	log.LLvl1("Simulated", dataset.NumRows(), "individuals:", dataset.CaseCount(), "cases,", dataset.ControlCount(), "controls")

	out := os.Stdout
	if config.OutFile != "" {
		f, err := os.Create(config.OutFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := dataset.WriteCSV(out); err != nil {
		log.Fatal(err)
	}
	if config.OutFile != "" {
		log.LLvl1("Saved data to", config.OutFile)
	}
}
