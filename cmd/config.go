package main

import "time"

type Config struct {
	BufferSize                int           `env:"BUFFER_SIZE,default=1000"`
	ConnectionBufferSize      int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	SinkTimeout               time.Duration `env:"SINK_TIMEOUT,default=3s"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HeartbeatInterval         time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	BadgerFilepath            string        `env:"BADGER_FILEPATH,required=true"`
	AuthSecret                string        `env:"AUTH_SECRET,required=true"`
	LogLevel                  string        `env:"LOG_LEVEL,default=info"`
	DebugPort                 int           `env:"DEBUG_PORT"`
	Host                      string        `env:"HOST,default=localhost"`
	Port                      int           `env:"PORT,default=8080"`
}
