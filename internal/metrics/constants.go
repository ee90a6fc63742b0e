package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Vendor metric names
const (
	MetricNamespace          = "vendor"
	MetricNameOffersRendered = "offers_rendered_total"
	MetricNameGoldQuoted     = "gold_quoted_total"
	MetricNameStockItems     = "stock_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextOffersRendered = "Total number of offer lines written, by item kind and dispatch"
	HelpTextGoldQuoted     = "Sum of all prices quoted in offers"
	HelpTextStockItems     = "Number of items in the loaded reference stock"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelKind     = "kind"
	LabelDispatch = "dispatch"
)
