// FILE: cmd/simple/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/sinklog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[sinklog]
  level = "debug"
  enable_profiling = true
  debug_file = "./simple_logs/debug.log"
  info_file = "./simple_logs/info.log"
  error_file = "./simple_logs/error.log"
  profiling_file = "./simple_logs/profiling.log"
  policy = "size"
  max_files = 4
  max_size_bytes = 65536
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	// Create dummy config file
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults potentially
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
		// defer os.Remove(configFile) // Remove to keep the saved config file
		// defer os.RemoveAll("./simple_logs") // Remove to keep the log directory
	}

	if err := os.MkdirAll("./simple_logs", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := sinklog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = sinklog.DefaultConfig()
	}

	// --- Initialize Logger ---
	logger := sinklog.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger configured.")

	// --- Logging ---
	logger.Debug("This is a debug message.", "user_id", 123)
	logger.Info("Application starting...")
	logger.Error("An error occurred!", "code", 500)

	// Stream accessors write the timestamped header, then hand back the
	// raw stream for free-form continuation
	fmt.Fprintf(logger.InfoStream(), "streamed line with %d values: %v", 2, []int{7, 9})

	// --- Level transitions ---
	logger.SetLevel(sinklog.LevelError)
	logger.Debug("suppressed after SetLevel(error)")
	logger.Info("suppressed after SetLevel(error)")
	logger.Error("still visible, error writes are never gated")

	logger.SetLevel(sinklog.LevelDebug)
	logger.Debug("visible again")

	// --- Profiling timers ---
	logger.TimerStart()
	logger.TimerStart()
	time.Sleep(5 * time.Millisecond)
	logger.TimerStop(sinklog.Milliseconds) // Pops the inner timer
	time.Sleep(5 * time.Millisecond)
	logger.TimerStop(sinklog.Milliseconds) // Pops the outer timer

	// --- Shutdown Logger ---
	fmt.Println("Shutting down logger...")
	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check log files in './simple_logs' and the config '%s'.\n", configFile)
}
