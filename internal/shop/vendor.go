package shop

import (
	"context"
	"fmt"
	"io"

	"github.com/osse101/BrandishVendor_Go/internal/domain"
	"github.com/osse101/BrandishVendor_Go/internal/logger"
	"github.com/osse101/BrandishVendor_Go/internal/metrics"
)

// Vendor writes offer lines to an output, one per item
type Vendor struct {
	out io.Writer
}

// NewVendor creates a vendor that writes to out
func NewVendor(out io.Writer) *Vendor {
	return &Vendor{out: out}
}

// Present writes the offer for a statically typed item
func Present[T domain.Sellable](ctx context.Context, v *Vendor, item T) error {
	return v.write(ctx, Offer(item), domain.KindOf(item), item.Price(), DispatchStatic)
}

// PresentDynamic writes the offer for a single Sellable handle
func (v *Vendor) PresentDynamic(ctx context.Context, item domain.Sellable) error {
	return v.write(ctx, OfferDynamic(item), domain.KindOf(item), item.Price(), DispatchDynamic)
}

// PresentAll writes one offer per item in order, stopping at the first write error
func (v *Vendor) PresentAll(ctx context.Context, items []domain.Sellable) error {
	for _, item := range items {
		if err := v.PresentDynamic(ctx, item); err != nil {
			return err
		}
	}

	logger.FromContext(ctx).Debug(LogMsgStallPresented, "count", len(items))
	return nil
}

func (v *Vendor) write(ctx context.Context, line string, kind domain.ItemKind, price uint16, dispatch string) error {
	if _, err := fmt.Fprintln(v.out, line); err != nil {
		return fmt.Errorf(ErrMsgWriteOfferFailed, err)
	}

	metrics.OffersRendered.WithLabelValues(string(kind), dispatch).Inc()
	metrics.GoldQuoted.Add(float64(price))

	logger.FromContext(ctx).Debug(LogMsgOfferPresented,
		"kind", kind,
		"dispatch", dispatch,
		"price", price)
	return nil
}
