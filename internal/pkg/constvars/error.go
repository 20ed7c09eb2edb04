package constvars

// Validation messages, keyed by the validator tag that failed.
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"gte":          "must be greater than or equal to %s",
	"phone_digits": "must be between 10 and 15 digits",
	"date_time":    "must be a valid date time",
}

// TagsWithParams lists validator tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gte": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientResourceNotFound              = "%s not found with ID: %s"
	ErrClientServiceUnavailable            = "service is unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamValidationFailed   = "validation failed for url param %s"
	ErrDevQueryParamValidationFailed = "validation failed for query param %s"
	ErrDevResourceNotFound           = "%s with id %s does not exist"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevRequestBodyTooLarge        = "request body too large"
	ErrDevHealthCheckFailed          = "health check failed for %s"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into exchange %s"
)
