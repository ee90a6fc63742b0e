package shop

import "errors"

// OfferTemplate is the line a vendor says for a single item
const OfferTemplate = "I offer you %s, [%dg]"

// Dispatch labels
const (
	DispatchStatic  = "static"
	DispatchDynamic = "dynamic"
)

// Sentinel errors
var (
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Error messages
const (
	ErrFmtIndexOutOfRange  = "%w: %d (stall holds %d)"
	ErrMsgWriteOfferFailed = "failed to write offer: %w"
)

// Log messages
const (
	LogMsgOfferPresented = "Offer presented"
	LogMsgStallPresented = "Stall presented"
)
