//go:build integration

package pgstore_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
	"github.com/you-humble/fleet-maintenance/internal/repository/store"
	pgstore "github.com/you-humble/fleet-maintenance/internal/repository/store/postgres"
)

type counter struct {
	ID string `json:"id"`
	N  int    `json:"n"`
}

var _ = Describe("Postgres backend", func() {
	var backend store.Backend

	BeforeEach(func() {
		backend = pgstore.NewBackend(pgC.Pool())
	})

	Context("Load", func() {
		It("reports a missing key as not found", func() {
			_, err := backend.Load(ctx, "stockItems")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Context("Save", func() {
		It("inserts the first version and reads it back", func() {
			changedAt := time.Now().UTC().Truncate(time.Microsecond)

			By("saving version 1 against an absent key")
			err := backend.Save(ctx, store.Document{
				Key:       "stockItems",
				Version:   1,
				WriterID:  "instance-a",
				Payload:   []byte(`[{"id":"S1","code":"P-001","quantity":"2"}]`),
				UpdatedAt: changedAt,
			}, 0)
			Expect(err).NotTo(HaveOccurred())

			By("loading the stored document")
			doc, err := backend.Load(ctx, "stockItems")
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Key).To(Equal("stockItems"))
			Expect(doc.Version).To(Equal(int64(1)))
			Expect(doc.WriterID).To(Equal("instance-a"))
			Expect(doc.Payload).To(MatchJSON(`[{"id":"S1","code":"P-001","quantity":"2"}]`))
			Expect(doc.UpdatedAt).To(BeTemporally("~", changedAt, time.Millisecond))
		})

		It("rejects a second insert of the same key", func() {
			doc := store.Document{Key: "usedParts", Version: 1, Payload: []byte(`[]`), UpdatedAt: time.Now()}
			Expect(backend.Save(ctx, doc, 0)).To(Succeed())

			err := backend.Save(ctx, doc, 0)
			Expect(err).To(MatchError(store.ErrVersionConflict))
		})

		It("updates only when the expected version matches", func() {
			Expect(backend.Save(ctx, store.Document{
				Key: "repairOrders", Version: 1, Payload: []byte(`[]`), UpdatedAt: time.Now(),
			}, 0)).To(Succeed())

			By("writing against a stale version")
			err := backend.Save(ctx, store.Document{
				Key: "repairOrders", Version: 3, Payload: []byte(`[{"id":"x"}]`), UpdatedAt: time.Now(),
			}, 2)
			Expect(err).To(MatchError(store.ErrVersionConflict))

			By("writing against the current version")
			Expect(backend.Save(ctx, store.Document{
				Key: "repairOrders", Version: 2, WriterID: "instance-b", Payload: []byte(`[{"id":"x"}]`), UpdatedAt: time.Now(),
			}, 1)).To(Succeed())

			doc, err := backend.Load(ctx, "repairOrders")
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Version).To(Equal(int64(2)))
			Expect(doc.WriterID).To(Equal("instance-b"))
			Expect(doc.Payload).To(MatchJSON(`[{"id":"x"}]`))
		})
	})

	Context("concurrent writers", func() {
		It("keeps every append when two instances race on one collection", func() {
			const perWriter = 10

			writers := []*collection.Collection[counter]{
				collection.New[counter]("technicians", backend, collection.WithWriterID("a"), collection.WithRetries(100)),
				collection.New[counter]("technicians", backend, collection.WithWriterID("b"), collection.WithRetries(100)),
			}

			var wg sync.WaitGroup
			for w, coll := range writers {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					for i := 0; i < perWriter; i++ {
						_, err := coll.Mutate(ctx, func(items []counter) ([]counter, error) {
							return append(items, counter{ID: string(rune('a'+w)), N: i}), nil
						})
						Expect(err).NotTo(HaveOccurred())
					}
				}()
			}
			wg.Wait()

			items, version, err := writers[0].All(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(2 * perWriter))
			Expect(version).To(Equal(int64(2 * perWriter)))
		})

		It("gives up with a concurrent update error once retries are spent", func() {
			Expect(backend.Save(ctx, store.Document{
				Key: "stockTransactions", Version: 1, Payload: []byte(`[]`), UpdatedAt: time.Now(),
			}, 0)).To(Succeed())

			coll := collection.New[counter]("stockTransactions", backend, collection.WithRetries(0))
			_, err := coll.Mutate(ctx, func(items []counter) ([]counter, error) {
				// another writer commits between our read and our write
				Expect(backend.Save(ctx, store.Document{
					Key: "stockTransactions", Version: 2, Payload: []byte(`[]`), UpdatedAt: time.Now(),
				}, 1)).To(Succeed())
				return append(items, counter{ID: "late"}), nil
			})
			Expect(err).To(MatchError(model.ErrConcurrentUpdate))
		})
	})
})
