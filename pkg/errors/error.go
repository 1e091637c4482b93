package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// OrderRejected represents an order rejected before touching the book
	// (non-positive quantity, missing price, unknown instrument).
	OrderRejected ErrorCode = "order_rejected"
	// OrderNotFound represents a cancel or lookup referencing an order id
	// that is not resting in the book.
	OrderNotFound ErrorCode = "order_not_found"
	// FOKNotFillable represents a fill-or-kill order whose quantity cannot
	// be fully matched at eligible prices.
	FOKNotFillable ErrorCode = "fok_not_fillable"
	// InvariantViolation represents internal book corruption (crossed book
	// after matching, index/book disagreement). Fatal to the instrument.
	InvariantViolation ErrorCode = "invariant_violation"
	// InstrumentHalted represents an operation against an instrument whose
	// book was halted after an invariant violation.
	InstrumentHalted ErrorCode = "instrument_halted"
	// InvalidNotional represents a fee computation on a negative notional.
	InvalidNotional ErrorCode = "invalid_notional"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"

	// KafkaReadError represents an error when reading from the order topic.
	KafkaReadError ErrorCode = "kafka_read_error"
	// KafkaPublishError represents an error when publishing to the trade topic.
	KafkaPublishError ErrorCode = "kafka_publish_error"
)
