package data

import "github.com/larynjahor/brackets/internal/config"

var Config = config.Config{
	Pairs:      nil,
	Extensions: []string{".go", ".txt"},
	Workers:    2,
	Format:     config.FormatText,
	Debug:      false,
}
