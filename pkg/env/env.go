package env

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/larynjahor/brackets/internal/config"
	"github.com/samber/mo"
)

const (
	KeyConfig  = "BRACKETS_CONFIG"
	KeyDebug   = "BRACKETS_DEBUG"
	KeyWorkers = "BRACKETS_WORKERS"
	KeyFormat  = "BRACKETS_FORMAT"
)

func New() *Parser {
	return &Parser{}
}

type Parser struct{}

// Parse reads KEY=VALUE pairs, usually os.Environ(). Keys without the
// BRACKETS_ prefix are ignored.
func (p *Parser) Parse(vars []string) (zero Env, _ error) {
	for _, v := range vars {
		tokens := strings.SplitN(v, "=", 2)
		if len(tokens) < 2 {
			return zero, fmt.Errorf("invalid env var [%s]", v)
		}

		k, v := tokens[0], tokens[1]

		switch k {
		case KeyConfig:
			zero.Config = mo.Some(v)
		case KeyDebug:
			debug, err := strconv.ParseBool(v)
			if err != nil {
				return zero, fmt.Errorf("%s: %w", k, err)
			}

			zero.Debug = mo.Some(debug)
		case KeyWorkers:
			workers, err := strconv.Atoi(v)
			if err != nil {
				return zero, fmt.Errorf("%s: %w", k, err)
			}

			zero.Workers = mo.Some(workers)
		case KeyFormat:
			zero.Format = mo.Some(v)
		default:
			if strings.HasPrefix(k, "BRACKETS_") {
				slog.Debug("unknown env", slog.String("key", k), slog.String("value", v))
			}
		}
	}

	return zero, nil
}

// Env holds the variables that were set. Absent options leave the config
// untouched.
type Env struct {
	Config  mo.Option[string]
	Debug   mo.Option[bool]
	Workers mo.Option[int]
	Format  mo.Option[string]
}

func (e *Env) Apply(c *config.Config) {
	if v, ok := e.Debug.Get(); ok {
		c.Debug = v
	}

	if v, ok := e.Workers.Get(); ok {
		c.Workers = v
	}

	if v, ok := e.Format.Get(); ok {
		c.Format = v
	}
}
