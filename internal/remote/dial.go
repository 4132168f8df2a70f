package remote

import (
	"fmt"
	"log/slog"

	"github.com/procrest/engine-client-go/internal/config"
	"github.com/procrest/engine-client-go/internal/query"
	"github.com/procrest/engine-client-go/internal/transport"
)

// Dial builds an Engine from cfg. Queries log through logger.
func Dial(cfg config.Config, logger *slog.Logger, opts ...query.Option) (*Engine, error) {
	topts := cfg.Transport()
	topts.Logger = logger
	client, err := transport.New(topts)
	if err != nil {
		return nil, fmt.Errorf("remote: %w", err)
	}
	return New(client, append([]query.Option{query.WithLogger(logger)}, opts...)...), nil
}
