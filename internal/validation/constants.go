package validation

import "errors"

// Sentinel errors
var (
	ErrSchemaNotRegistered = errors.New("schema not registered")
	ErrSchemaValidation    = errors.New("schema validation failed")
)

// Schema error messages
const (
	ErrMsgParseSchemaFailed   = "failed to parse schema JSON: %w"
	ErrMsgAddSchemaFailed     = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFailed = "failed to compile schema: %w"
	ErrMsgParseDataFailed     = "failed to parse JSON data: %w"
)
