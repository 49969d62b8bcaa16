package config

import (
	"github.com/GoPowerDNS-Admin/randstring/internal/logger"
)

// Config overall data structure.
type Config struct {
	Title     string
	Log       logger.Log
	Generator Generator
	Metrics   Metrics
}

// Generator holds the defaults of the generate command.
type Generator struct {
	Source         string   `validate:"oneof=fast secure"` // fast or secure
	Length         int      `validate:"gte=1,lte=5000"`
	Categories     []string `validate:"min=1,dive,required"`
	ExcludeSimilar bool
	Count          int `validate:"gte=1,lte=100000"` // strings per run
	Workers        int `validate:"gte=1,lte=256"`    // concurrent generators for Count > 1
}

// Metrics configures the prometheus textfile written when a command finishes.
type Metrics struct {
	TextFile string // empty disables writing
}
