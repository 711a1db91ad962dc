package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/syntacticsugarglider/redis-backed/lib/serializer"
	"github.com/syntacticsugarglider/redis-backed/lib/session"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds the common connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "addr"
	cmd.PersistentFlags().String(key, "redis://localhost:6379/0", WrapString("The address of the redis server"))

	key = "pool-size"
	cmd.PersistentFlags().Int(key, 1, WrapString("Number of physical connections. 1 serializes all commands on a single session"))

	key = "event-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("Capacity of watcher event channels. 0 selects an unbounded queue"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("redisorm")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetSerializer creates a serializer based on configuration
func GetSerializer() (serializer.ISerializer, error) {
	switch viper.GetString("serializer") {
	case "cbor":
		return serializer.NewCBORSerializer(), nil
	case "json":
		return serializer.NewJSONSerializer(), nil
	case "gob":
		return serializer.NewGOBSerializer(), nil
	default:
		return nil, fmt.Errorf("invalid serializer %s", viper.GetString("serializer"))
	}
}

// GetClientConfig reads the session configuration from viper
func GetClientConfig() (session.Config, error) {
	s, err := GetSerializer()
	if err != nil {
		return session.Config{}, err
	}
	return session.Config{
		Addr:        viper.GetString("addr"),
		PoolSize:    viper.GetInt("pool-size"),
		EventBuffer: viper.GetInt("event-buffer"),
		Serializer:  s,
	}, nil
}

// GetDatabase creates a database from the current configuration. No
// connection is opened until the first operation.
func GetDatabase() (*session.Database, error) {
	cfg, err := GetClientConfig()
	if err != nil {
		return nil, err
	}
	return session.NewWithConfig(cfg)
}
