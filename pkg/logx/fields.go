package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCount           = "count"
	FieldDurationMs      = "duration-ms"
	FieldEnding          = "ending"
	FieldError           = "error"
	FieldFile            = "file"
	FieldGender          = "gender"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldName            = "name"
	FieldNameKind        = "name-kind"
	FieldNamesSource     = "names-source"
	FieldPatronymic      = "patronymic"
	FieldPerson          = "person"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
