//go:build integration

package mongostore_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
	"github.com/you-humble/fleet-maintenance/internal/repository/store"
	mongostore "github.com/you-humble/fleet-maintenance/internal/repository/store/mongo"
)

type part struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

var _ = Describe("Mongo backend", func() {
	var backend store.Backend

	BeforeEach(func() {
		backend = mongostore.NewBackend(coll)
	})

	It("reports a missing key as not found", func() {
		_, err := backend.Load(ctx, "usedParts")
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	It("stores items as a queryable array and reads them back as JSON", func() {
		payload := `[{"id":"U1","name":"Alternator","quantity":"4"},{"id":"U2","name":"Brake pad","quantity":"0.5"}]`

		Expect(backend.Save(ctx, store.Document{
			Key:       "usedParts",
			Version:   1,
			WriterID:  "instance-a",
			Payload:   []byte(payload),
			UpdatedAt: time.Now().UTC(),
		}, 0)).To(Succeed())

		By("querying the raw document")
		var raw struct {
			Items []bson.M `bson:"items"`
		}
		Expect(coll.FindOne(ctx, bson.M{"_id": "usedParts"}).Decode(&raw)).To(Succeed())
		Expect(raw.Items).To(HaveLen(2))
		Expect(raw.Items[0]["name"]).To(Equal("Alternator"))

		By("loading through the backend")
		doc, err := backend.Load(ctx, "usedParts")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Version).To(Equal(int64(1)))
		Expect(doc.WriterID).To(Equal("instance-a"))
		Expect(doc.Payload).To(MatchJSON(payload))
	})

	It("rejects stale and duplicate writes", func() {
		first := store.Document{Key: "stockItems", Version: 1, Payload: []byte(`[]`), UpdatedAt: time.Now()}
		Expect(backend.Save(ctx, first, 0)).To(Succeed())
		Expect(backend.Save(ctx, first, 0)).To(MatchError(store.ErrVersionConflict))

		stale := store.Document{Key: "stockItems", Version: 5, Payload: []byte(`[]`), UpdatedAt: time.Now()}
		Expect(backend.Save(ctx, stale, 4)).To(MatchError(store.ErrVersionConflict))

		next := store.Document{Key: "stockItems", Version: 2, Payload: []byte(`[{"id":"S1","name":"Filter","quantity":"1"}]`), UpdatedAt: time.Now()}
		Expect(backend.Save(ctx, next, 1)).To(Succeed())

		doc, err := backend.Load(ctx, "stockItems")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Version).To(Equal(int64(2)))
	})

	It("keeps every append when two instances race on one collection", func() {
		const perWriter = 8

		writers := []*collection.Collection[part]{
			collection.New[part]("repairOrders", backend, collection.WithWriterID("a"), collection.WithRetries(100)),
			collection.New[part]("repairOrders", backend, collection.WithWriterID("b"), collection.WithRetries(100)),
		}

		var wg sync.WaitGroup
		for _, c := range writers {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for i := 0; i < perWriter; i++ {
					_, err := c.Mutate(ctx, func(items []part) ([]part, error) {
						return append(items, part{ID: "p", Quantity: "1"}), nil
					})
					Expect(err).NotTo(HaveOccurred())
				}
			}()
		}
		wg.Wait()

		items, version, err := writers[1].All(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(2 * perWriter))
		Expect(version).To(Equal(int64(2 * perWriter)))
	})
})
