package item

// ==================== Embedded Resource Names ====================

const (
	// StockFileName is the embedded reference stock document
	StockFileName = "stock.json"
	// StockSchemaName is the name the stock schema is registered under
	StockSchemaName = "stock.schema.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgRegisterSchemaFailed = "failed to register stock schema: %w"
	ErrMsgSchemaFailed         = "stock failed schema validation: %w"
	ErrMsgParseStockFailed     = "failed to parse stock: %w"
	ErrMsgBuildItemFailed      = "failed to build item '%s': %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgStockNil       = "stock is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemAtIndexEmpty = "%w: item at index %d has empty name"
	ErrFmtUnknownKind      = "%w: item '%s' has unknown kind '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgStockLoaded = "Stock loaded"
)
