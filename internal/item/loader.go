package item

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/BrandishVendor_Go/internal/domain"
	"github.com/osse101/BrandishVendor_Go/internal/logger"
	"github.com/osse101/BrandishVendor_Go/internal/metrics"
	"github.com/osse101/BrandishVendor_Go/internal/validation"
)

// Sentinel errors for the stock loader
var (
	ErrDuplicateName = errors.New("duplicate item name")

	ErrInvalidStock = errors.New("invalid stock")
)

//go:embed stock.json
var embeddedStock []byte

//go:embed stock.schema.json
var embeddedSchema []byte

// Stock is the JSON document listing the items a vendor carries
type Stock struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def is a single item entry. Which numeric fields apply depends on Kind.
type Def struct {
	Kind        domain.ItemKind `json:"kind"`
	Name        string          `json:"name"`
	Damage      uint16          `json:"damage,omitempty"`
	SwingTimeMs uint16          `json:"swing_time_ms,omitempty"`
	Armor       uint16          `json:"armor,omitempty"`
	Block       uint16          `json:"block,omitempty"`
}

// Loader reads stock documents and turns them into sellable items
type Loader interface {
	Load(data []byte) (*Stock, error)
	LoadEmbedded() (*Stock, error)
	Validate(stock *Stock) error
	Build(ctx context.Context, stock *Stock) ([]domain.Sellable, error)
}

type stockLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &stockLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// LoadEmbedded loads the reference stock compiled into the binary
func (l *stockLoader) LoadEmbedded() (*Stock, error) {
	return l.Load(embeddedStock)
}

// Load validates data against the stock schema and decodes it
func (l *stockLoader) Load(data []byte) (*Stock, error) {
	if err := l.schemaValidator.Register(StockSchemaName, embeddedSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchemaFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, StockSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, err)
	}

	var stock Stock
	if err := json.Unmarshal(data, &stock); err != nil {
		return nil, fmt.Errorf(ErrMsgParseStockFailed, err)
	}

	return &stock, nil
}

// Validate checks the stock for errors the schema cannot express
func (l *stockLoader) Validate(stock *Stock) error {
	if stock == nil {
		return fmt.Errorf("%w: %s", ErrInvalidStock, ErrMsgStockNil)
	}

	if len(stock.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidStock, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(stock.Items))
	for i := range stock.Items {
		def := &stock.Items[i]

		if def.Name == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidStock, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
		}
		names[def.Name] = true

		if def.Kind != domain.KindSword && def.Kind != domain.KindShield {
			return fmt.Errorf(ErrFmtUnknownKind, ErrInvalidStock, def.Name, def.Kind)
		}
	}

	return nil
}

// Build validates the stock and constructs one owned handle per entry, in file order
func (l *stockLoader) Build(ctx context.Context, stock *Stock) ([]domain.Sellable, error) {
	if err := l.Validate(stock); err != nil {
		return nil, err
	}

	items := make([]domain.Sellable, 0, len(stock.Items))
	for _, def := range stock.Items {
		item, err := buildOne(def)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgBuildItemFailed, def.Name, err)
		}
		items = append(items, item)
	}

	metrics.StockItems.Set(float64(len(items)))
	logger.FromContext(ctx).Info(LogMsgStockLoaded,
		"version", stock.Version,
		"items", len(items))

	return items, nil
}

func buildOne(def Def) (domain.Sellable, error) {
	switch def.Kind {
	case domain.KindSword:
		return domain.NewSword(def.Name, def.Damage, def.SwingTimeMs)
	case domain.KindShield:
		return domain.NewShield(def.Name, def.Armor, def.Block)
	default:
		return nil, fmt.Errorf(ErrFmtUnknownKind, ErrInvalidStock, def.Name, def.Kind)
	}
}
