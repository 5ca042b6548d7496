package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/obstaclesync/server/core"
)

func main() {
	port := flag.Uint("port", 8080, "Server port")
	tickRate := flag.Int("tickrate", 20, "Server tick rate (updates per second)")
	name := flag.String("name", "Obstacle Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	assetsDir := flag.String("assets", "assets", "Directory holding levels/")
	levelName := flag.String("level", "sandbox", "Level to serve")
	flag.Parse()

	level, err := core.LoadServerLevel(*assetsDir, *levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server := core.NewServer(level, *tickRate, *name, *version)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting server %q on port %d (level: %s, tick rate: %d/s, version: %s)",
		*name, *port, level.Name, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
