//go:build integration

package pgstore_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/fleet-maintenance/internal/migrator"
	pgcontainer "github.com/you-humble/fleet-maintenance/platform/testcontainers/postgres"
)

const migrationDir = "../../../../migrations"

var (
	ctx context.Context
	pgC  *pgcontainer.Container
)

func TestPostgresStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Postgres Store Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()

	By("starting postgres container")
	var err error
	pgC, err = pgcontainer.NewContainer(ctx)
	Expect(err).NotTo(HaveOccurred())

	By("running migrations")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pgC.Pool()), migrationDir)
	version, err := m.Up(ctx)
	Expect(err).NotTo(HaveOccurred())
	Expect(version).To(BeNumerically(">=", 2))
	Expect(m.Close()).To(Succeed())
})

var _ = AfterSuite(func() {
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning collections table")
	_, err := pgC.Pool().Exec(ctx, "TRUNCATE TABLE fleet_collections")
	Expect(err).NotTo(HaveOccurred())
})
