package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldBackend     = "backend"
	FieldKey         = "key"
	FieldField       = "field"
	FieldStatus      = "status"
	FieldMonth       = "month"
	FieldEntryID     = "entry_id"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldTag         = "tag"
	FieldCount       = "count"
	FieldPath        = "path"
	FieldFormat      = "format"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentJournal  = "journal"
	ComponentStorage  = "storage"
	ComponentCache    = "cache"
	ComponentAMQP     = "amqp"
	ComponentSnapshot = "snapshot"
	ComponentBackend  = "backend"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpSeed     = "seed"
	OpImport   = "import"
	OpExport   = "export"
	OpNavigate = "navigate"
	OpRefresh  = "refresh"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithKey adds the store key field
func (f LogFields) WithKey(key string) LogFields {
	f[FieldKey] = key
	return f
}

// WithEntry adds entry-related fields
func (f LogFields) WithEntry(id string, amountCents int64, category string) LogFields {
	f[FieldEntryID] = id
	f[FieldAmountCents] = amountCents
	f[FieldCategory] = category
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
