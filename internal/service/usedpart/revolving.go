package usedpart

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

const (
	revolvingCodeSuffix = "-R"
	generatedCodePrefix = "REV-"
	fungibleNotePrefix  = "ย้ายไปยังสต็อกของเก่า: "
)

// Dispositions written before TargetStockItemID existed only carry the target in their notes.
var legacyFungibleNote = regexp.MustCompile(`ย้ายไปยังสต็อกของเก่า: (.+?) \(([0-9.]+) ?([^)]*)\)`)

func fungibleNote(name string, qty decimal.Decimal, unit string) string {
	return fmt.Sprintf("%s%s (%s)", fungibleNotePrefix, name, strings.TrimSpace(qty.String()+" "+unit))
}

var errTwinInUse = errors.New("revolving stock item already holds stock")

// resolveRevolvingTwin returns the revolving stock item that receives used parts of the
// batch, creating it when it does not exist yet. created reports whether this call inserted it.
func (svc *service) resolveRevolvingTwin(
	ctx context.Context,
	batch *model.UsedPart,
	now time.Time,
) (twin *model.StockItem, created bool, err error) {
	items, err := svc.stock.List(ctx)
	if err != nil {
		return nil, false, err
	}

	original := originalItem(items, batch)
	if twin := lookupTwin(items, batch, original); twin != nil {
		return twin, false, nil
	}

	twin = newTwin(batch, original, now)
	insertErr := svc.stock.Insert(ctx, twin)
	if insertErr == nil {
		return twin, true, nil
	}
	if !errors.Is(insertErr, model.ErrDuplicateCode) {
		return nil, false, insertErr
	}

	// Created by a concurrent writer.
	items, err = svc.stock.List(ctx)
	if err != nil {
		return nil, false, err
	}
	if existing := lookupTwin(items, batch, original); existing != nil {
		return existing, false, nil
	}

	return nil, false, insertErr
}

// dropUnusedTwin removes a twin created for a disposition that was never written. A twin
// some other disposition has already filled is kept.
func (svc *service) dropUnusedTwin(ctx context.Context, id string) {
	err := svc.stock.Delete(ctx, id, func(it *model.StockItem) error {
		if !it.Quantity.IsZero() {
			return errTwinInUse
		}
		return nil
	})
	if err != nil && !errors.Is(err, errTwinInUse) {
		logger.Error(ctx, "remove unused revolving stock item",
			logger.String("stock_item_id", id),
			logger.ErrorF(err),
		)
	}
}

// rollbackTarget finds the stock item a stock-moving disposition added to. A nil item with a
// nil error means it no longer exists.
func (svc *service) rollbackTarget(ctx context.Context, batch *model.UsedPart, disp model.Disposition) (*model.StockItem, error) {
	items, err := svc.stock.List(ctx)
	if err != nil {
		return nil, err
	}

	if disp.TargetStockItemID != "" {
		item, _ := lo.Find(items, func(it *model.StockItem) bool { return it.ID == disp.TargetStockItemID })
		return item, nil
	}

	switch disp.Type {
	case model.DispositionMovedToRevolving:
		original := originalItem(items, batch)
		if original != nil {
			if twin := twinByCode(items, original); twin != nil {
				return twin, nil
			}
		}
		return twinByName(items, batch.Name), nil

	case model.DispositionMovedToConsolidated:
		m := legacyFungibleNote.FindStringSubmatch(disp.Notes)
		if m == nil {
			return nil, nil
		}
		name := strings.TrimSpace(m[1])
		item, ok := lo.Find(items, func(it *model.StockItem) bool {
			return it.IsFungibleUsedItem && strings.EqualFold(it.Name, name)
		})
		if !ok {
			return nil, nil
		}
		return item, nil
	}

	return nil, nil
}

func originalItem(items []*model.StockItem, batch *model.UsedPart) *model.StockItem {
	if batch.OriginalStockItemID == "" {
		return nil
	}
	item, _ := lo.Find(items, func(it *model.StockItem) bool { return it.ID == batch.OriginalStockItemID })
	return item
}

func lookupTwin(items []*model.StockItem, batch *model.UsedPart, original *model.StockItem) *model.StockItem {
	if original != nil {
		return twinByCode(items, original)
	}
	return twinByName(items, batch.Name)
}

func twinByCode(items []*model.StockItem, original *model.StockItem) *model.StockItem {
	code := original.Code + revolvingCodeSuffix
	item, _ := lo.Find(items, func(it *model.StockItem) bool { return strings.EqualFold(it.Code, code) })
	return item
}

func twinByName(items []*model.StockItem, name string) *model.StockItem {
	name = strings.TrimSpace(name)
	item, _ := lo.Find(items, func(it *model.StockItem) bool {
		return it.IsRevolvingPart && strings.EqualFold(strings.TrimSpace(it.Name), name)
	})
	return item
}

func newTwin(batch *model.UsedPart, original *model.StockItem, now time.Time) *model.StockItem {
	twin := &model.StockItem{
		ID:              uuid.NewString(),
		Quantity:        decimal.Zero,
		IsRevolvingPart: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if original != nil {
		twin.Code = original.Code + revolvingCodeSuffix
		twin.Name = original.Name
		twin.Unit = original.Unit
		twin.Category = original.Category
		twin.Supplier = original.Supplier
		twin.Price = original.Price
		twin.OriginalStockItemID = original.ID
		return twin
	}

	twin.Code = generatedCode(batch.Name)
	twin.Name = batch.Name
	twin.Unit = batch.Unit
	twin.Category = model.DefaultUsedPartsCategory
	twin.Price = decimal.Zero
	return twin
}

// generatedCode derives the code of a twin without a known original from its name, so
// writers racing to create the same twin collide on the code.
func generatedCode(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	sum := uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
	return generatedCodePrefix + strings.ToUpper(sum[:8])
}
