package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lumennet/pathfinder/pkg/logging"
	"github.com/lumennet/pathfinder/pkg/metrics"
	"github.com/lumennet/pathfinder/pkg/pathfinder"
	"github.com/lumennet/pathfinder/pkg/topology"
)

func main() {
	topologyPath := flag.String("topology", "", "YAML topology snapshot")
	requestPath := flag.String("request", "", "YAML/JSON path request")
	deadline := flag.Duration("deadline", 0, "Computation deadline (0 = none)")
	workers := flag.Int("workers", 4, "Parallel subgraph searches")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *topologyPath == "" || *requestPath == "" {
		fmt.Fprintln(os.Stderr, "usage: pathfinder -topology snapshot.yaml -request request.yaml")
		os.Exit(2)
	}

	graph, err := loadTopology(*topologyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load topology: %v\n", err)
		os.Exit(1)
	}

	req, err := loadRequest(*requestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load request: %v\n", err)
		os.Exit(1)
	}

	cfg := pathfinder.DefaultConfig()
	cfg.Workers = *workers
	cfg.LogLevel = *logLevel

	log := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(*logLevel))
	engine, err := pathfinder.New(cfg, log, metrics.DefaultRegistry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Bad configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if *deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *deadline)
		defer cancel()
	}

	start := time.Now()
	resp, err := engine.ComputePaths(ctx, graph, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Computation failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to encode response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "✅ %d path(s) in %s\n", len(resp.Paths), time.Since(start))
}

func loadTopology(path string) (*topology.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return topology.DecodeSnapshot(f)
}

func loadRequest(path string) (*pathfinder.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req pathfinder.Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
