package config

import (
	"os"
	"time"

	json "github.com/json-iterator/go"
)

type (
	NET struct {
		// ReadBufferSize is the size of the single buffer a request is read into. Requests
		// exceeding it are truncated. Defaults to 12kb, which is enough for common header
		// size limits (8kb) and a start line (4kb).
		ReadBufferSize int
		// ReadTimeout bounds how long the server waits for a client to send the request.
		// Zero disables the deadline, so a stalled client blocks the whole server.
		ReadTimeout Duration `test:"nullable"`
		// WriteBufferSize is the size of the buffer the response is serialized into before
		// being flushed to the client.
		WriteBufferSize int
	}

	Log struct {
		// Level is the minimal level of the default logger: trace, debug, info, warn, error,
		// fatal, panic or disabled.
		Level string
	}
)

// Config holds settings used across various parts of florence, mainly limits of the
// network layer.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET NET
	Log Log
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:  12 * 1024,
			ReadTimeout:     Duration(90 * time.Second),
			WriteBufferSize: 4 * 1024,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Parse decodes a JSON document on top of the defaults, so only the fields present in
// the document are overridden.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the JSON config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Duration is a time.Duration which is represented in JSON as a string, e.g. "5s".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	dur, err := time.ParseDuration(str)
	if err != nil {
		return err
	}

	*d = Duration(dur)
	return nil
}
