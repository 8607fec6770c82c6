package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"namegen/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	ReadyChecks   []probe.ReadyCheck
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		p.ReadyChecks...,
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
