package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quidque.com/discord-votebot/internal/commands"
	"quidque.com/discord-votebot/internal/config"
	"quidque.com/discord-votebot/internal/discord"
	"quidque.com/discord-votebot/internal/logger"
	"quidque.com/discord-votebot/internal/poll"
	"quidque.com/discord-votebot/internal/shutdown"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to config file; environment only when missing")
	logLevel := flag.String("log", "", "Log level (error, warning, info, debug); overrides config")
	flag.Parse()

	cfg, fromFile, err := config.LoadOrEnv(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Setup(cfg.Level())
	if *logLevel != "" {
		if err := logger.SetLevel(*logLevel); err != nil {
			log.Fatalf("Invalid -log flag: %v", err)
		}
	}

	if fromFile {
		logger.Info.Printf("Loaded config from %s", *configPath)
	} else {
		logger.Info.Printf("%s not found, configured from environment", *configPath)
	}
	logger.Info.Printf("Starting Discord vote bot (log level %s)...", logger.CurrentLevel())

	shutdownManager := shutdown.NewManager()

	registry := poll.NewRegistry()
	router := commands.NewRouter(
		registry,
		commands.NewParser(cfg.PollIDMaxLen),
		commands.NewTrigger(cfg.BotName),
	)

	discordClient, err := discord.NewClient(cfg, router)
	if err != nil {
		log.Fatalf("Failed to create Discord client: %v", err)
	}

	if err := discordClient.Connect(); err != nil {
		log.Fatalf("Failed to connect to Discord: %v", err)
	}

	shutdownManager.SetStateNotifier(discordClient)
	shutdownManager.Register(discordClient)

	logger.Info.Printf("Bot is now running as .%s. Press Ctrl+C to exit.", cfg.BotName)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info.Println("Shutdown signal received...")

	go func() {
		<-stop
		if shutdownManager.IsShuttingDown() {
			logger.Warn.Println("Second signal received, exiting without waiting")
			os.Exit(1)
		}
	}()

	if err := shutdownManager.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		logger.Error.Printf("Shutdown error: %v", err)
		os.Exit(1)
	}

	logger.Info.Printf("Shutdown complete. %d polls were open.", registry.Len())
}
