package erract

// DatabaseErrorKind is the closed catalog of database failure kinds,
// categorized by what the caller should do. It implements ErrorKind.
type DatabaseErrorKind int

const (
	// DBConnectionFailed: could not establish a connection. Retry.
	DBConnectionFailed DatabaseErrorKind = iota
	// DBConnectionLost: connection dropped mid-operation. Retry.
	DBConnectionLost
	// DBQuerySyntax: the query doesn't parse. Fix the query.
	DBQuerySyntax
	// DBQueryExecution: the query failed to execute, e.g. bad parameters.
	DBQueryExecution
	// DBConstraintViolation: unique/foreign-key constraint hit. Fix the data.
	DBConstraintViolation
	// DBDeadlock: deadlock detected. Retry with backoff.
	DBDeadlock
	// DBSerializationFailure: transaction serialization conflict. Retry with backoff.
	DBSerializationFailure
	// DBTransactionTimeout: transaction ran out of time. Retry with a longer timeout.
	DBTransactionTimeout
	// DBNestedTransaction: transaction already in progress. Fix transaction management.
	DBNestedTransaction
	// DBNoRows: no rows where rows were expected.
	DBNoRows
	// DBTooManyRows: more rows than expected. Fix the query to limit results.
	DBTooManyRows
	// DBTypeMismatch: result conversion failed. Fix the type mapping.
	DBTypeMismatch
	// DBSchemaMismatch: schema out of date. Migrate the database.
	DBSchemaMismatch
	// DBDatabaseLocked: database locked, e.g. SQLite. Retry with backoff.
	DBDatabaseLocked
	// DBDiskFull: disk full or quota exceeded. Free up space.
	DBDiskFull
	// DBPermissionDenied: operation not permitted. Fix permissions.
	DBPermissionDenied
	// DBReadOnly: database is read-only. Check the configuration.
	DBReadOnly
)

// IsRetryable reports the static retry hint for the kind. Connection
// failures, lock contention and timeouts are worth retrying; syntax, data
// and configuration problems are not.
func (k DatabaseErrorKind) IsRetryable() bool {
	switch k {
	case DBConnectionFailed, DBConnectionLost, DBDeadlock,
		DBSerializationFailure, DBTransactionTimeout, DBDatabaseLocked:
		return true
	default:
		return false
	}
}

// IsConnectionError reports whether the kind is connection-related.
func (k DatabaseErrorKind) IsConnectionError() bool {
	return k == DBConnectionFailed || k == DBConnectionLost
}

// IsQueryError reports whether the kind is query-related.
func (k DatabaseErrorKind) IsQueryError() bool {
	return k == DBQuerySyntax || k == DBQueryExecution || k == DBTypeMismatch
}

// IsTransactionError reports whether the kind is transaction-related.
func (k DatabaseErrorKind) IsTransactionError() bool {
	switch k {
	case DBDeadlock, DBSerializationFailure, DBTransactionTimeout, DBNestedTransaction:
		return true
	default:
		return false
	}
}

// IsDataError reports whether the kind is data-related.
func (k DatabaseErrorKind) IsDataError() bool {
	return k == DBConstraintViolation || k == DBNoRows || k == DBTooManyRows
}

// IsConfigurationError reports whether the kind is configuration-related.
func (k DatabaseErrorKind) IsConfigurationError() bool {
	return k == DBSchemaMismatch || k == DBReadOnly || k == DBPermissionDenied
}

// Category returns a coarse category label for the kind.
func (k DatabaseErrorKind) Category() string {
	switch {
	case k.IsConnectionError():
		return "Connection"
	case k.IsQueryError():
		return "Query"
	case k.IsTransactionError():
		return "Transaction"
	case k.IsDataError():
		return "Data"
	case k.IsConfigurationError():
		return "Configuration"
	default:
		return "System"
	}
}

// MachineString returns the stable wire representation, prefixed "database_".
func (k DatabaseErrorKind) MachineString() string {
	if name, ok := dbMachineNames[k]; ok {
		return "database_" + name
	}
	return "database_unknown"
}

var dbMachineNames = map[DatabaseErrorKind]string{
	DBConnectionFailed:     "connection_failed",
	DBConnectionLost:       "connection_lost",
	DBQuerySyntax:          "query_syntax",
	DBQueryExecution:       "query_execution",
	DBConstraintViolation:  "constraint_violation",
	DBDeadlock:             "deadlock",
	DBSerializationFailure: "serialization_failure",
	DBTransactionTimeout:   "transaction_timeout",
	DBNestedTransaction:    "nested_transaction",
	DBNoRows:               "no_rows",
	DBTooManyRows:          "too_many_rows",
	DBTypeMismatch:         "type_mismatch",
	DBSchemaMismatch:       "schema_mismatch",
	DBDatabaseLocked:       "database_locked",
	DBDiskFull:             "disk_full",
	DBPermissionDenied:     "permission_denied",
	DBReadOnly:             "read_only",
}

// String returns the human-readable name of the kind.
func (k DatabaseErrorKind) String() string {
	switch k {
	case DBConnectionFailed:
		return "connection failed"
	case DBConnectionLost:
		return "connection lost"
	case DBQuerySyntax:
		return "query syntax error"
	case DBQueryExecution:
		return "query execution error"
	case DBConstraintViolation:
		return "constraint violation"
	case DBDeadlock:
		return "deadlock detected"
	case DBSerializationFailure:
		return "serialization failure"
	case DBTransactionTimeout:
		return "transaction timeout"
	case DBNestedTransaction:
		return "nested transaction"
	case DBNoRows:
		return "no rows returned"
	case DBTooManyRows:
		return "too many rows returned"
	case DBTypeMismatch:
		return "type mismatch"
	case DBSchemaMismatch:
		return "schema mismatch"
	case DBDatabaseLocked:
		return "database locked"
	case DBDiskFull:
		return "disk full"
	case DBPermissionDenied:
		return "permission denied"
	case DBReadOnly:
		return "database is read-only"
	default:
		return "unknown"
	}
}
