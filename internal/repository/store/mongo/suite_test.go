//go:build integration

package mongostore_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	mongocontainer "github.com/you-humble/fleet-maintenance/platform/testcontainers/mongo"
	"github.com/you-humble/fleet-maintenance/platform/testcontainers/network"
)

const collectionsCollection = "collections"

var (
	ctx       context.Context
	dockerNet *network.Network
	mongoC    *mongocontainer.Container
	coll      *mongo.Collection
)

func TestMongoStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mongo Store Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()

	By("creating docker network")
	var err error
	dockerNet, err = network.NewNetwork(ctx, "fleet-maintenance")
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = mongocontainer.NewContainer(ctx,
		mongocontainer.WithNetworkName(dockerNet.Name()),
		mongocontainer.WithDatabase("fleet"),
	)
	Expect(err).NotTo(HaveOccurred())

	coll = mongoC.Database().Collection(collectionsCollection)
})

var _ = AfterSuite(func() {
	if mongoC != nil {
		_ = mongoC.Terminate(ctx)
	}
	if dockerNet != nil {
		_ = dockerNet.Remove(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning collections")
	_, err := coll.DeleteMany(ctx, bson.M{})
	Expect(err).NotTo(HaveOccurred())
})
