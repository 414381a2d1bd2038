package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

// Network is a throwaway bridge network shared by the containers of one suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

// NewNetwork labels the network with project so leftovers can be pruned by label.
func NewNetwork(ctx context.Context, project string) (*Network, error) {
	n, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			"project": project,
			"purpose": "integration-tests",
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create docker network for %s", project)
	}

	return &Network{network: n}, nil
}

func (n *Network) Name() string { return n.network.Name }

func (n *Network) Remove(ctx context.Context) error {
	if err := n.network.Remove(ctx); err != nil {
		return errors.Wrapf(err, "remove docker network %s", n.network.Name)
	}
	return nil
}
