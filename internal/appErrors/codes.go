package appErrors

// Коды ошибок генерации данных
const (
	CodeSchemaInitFailed    ErrorCode = "SCHEMA_INIT_FAILED"
	CodeDependencyMissing   ErrorCode = "DEPENDENCY_MISSING"
	CodeUniquenessViolation ErrorCode = "UNIQUENESS_VIOLATION"
	CodeConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION"
	CodeEmptyDomain         ErrorCode = "EMPTY_DOMAIN"
	CodeInvalidSeedConfig   ErrorCode = "INVALID_SEED_CONFIG"
	CodeGenerationFailed    ErrorCode = "GENERATION_FAILED"
	CodeWipeFailed          ErrorCode = "WIPE_FAILED"
)
