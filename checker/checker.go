package checker

import (
	"errors"
	"log"
	"time"

	"github.com/boypt/simple-trackercheck/engine"
	"github.com/dustin/go-humanize"
)

// Checker wires the probe engine to its collaborators: tracker-list
// fetching, console progress/summary and the output file.
type Checker struct {
	//config
	ConfigPath     string `help:"Configuration file path"`
	Output         string `help:"Override output file path" short:"o"`
	Workers        int    `help:"Override number of concurrent probe workers" short:"w"`
	ProbeDebug     bool   `help:"Debug probe engine"`
	Stats          bool   `help:"Print process stats after the run"`
	DisableLogTime bool   `help:"Don't print timestamp in log"`

	//probe engine
	engine *engine.Engine
}

// Run fetches the candidate tracker lists, probes every endpoint and
// writes the ranked valid trackers out.
func (c *Checker) Run(version string) error {
	if c.DisableLogTime {
		log.SetFlags(log.Lmsgprefix)
		engine.SetLoggerFlag(log.Lmsgprefix)
	}
	log.Println("[checker] simple-trackercheck", version)

	cfg, err := engine.InitConf(c.ConfigPath)
	if err != nil {
		return err
	}
	if c.Output != "" {
		cfg.OutputFile = c.Output
	}
	if c.Workers > 0 {
		cfg.MaxWorkers = c.Workers
	}
	if c.ProbeDebug {
		cfg.ProbeDebug = true
	}

	candidates, err := c.fetchTrackerLists(cfg.TrackerListURLs)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		// distinct from "tested but none valid"
		return errors.New("no candidate trackers fetched")
	}

	c.engine = engine.New()
	if err := c.engine.Configure(cfg); err != nil {
		return err
	}

	log.Printf("[checker] testing %s trackers with %d workers",
		humanize.Comma(int64(len(candidates))), cfg.MaxWorkers)

	progressDone := make(chan struct{})
	go c.printProgress(c.engine.Progress(), progressDone)

	start := time.Now()
	batch := c.engine.RunAll(candidates)
	<-progressDone

	ranked, dist := engine.Aggregate(batch, cfg.MaxResponseTime)
	c.printSummary(dist, len(candidates), len(ranked), time.Since(start), cfg)

	switch {
	case dist.Count == 0:
		log.Println("[checker] COMPLETED. no valid trackers found")
	case len(ranked) == 0:
		log.Printf("[checker] COMPLETED. no valid trackers under the %v ceiling", cfg.MaxResponseTime)
	default:
		if err := writeTrackers(cfg.OutputFile, ranked); err != nil {
			return err
		}
		log.Printf("[checker] COMPLETED. %s trackers saved to %s",
			humanize.Comma(int64(len(ranked))), cfg.OutputFile)
	}

	if c.Stats {
		c.printRunStats()
	}
	return nil
}
