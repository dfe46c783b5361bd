package spec

// OpenAPIType is a JSON Schema data type name.
type OpenAPIType string

const (
	TypeString  OpenAPIType = "string"
	TypeInteger OpenAPIType = "integer"
	TypeNumber  OpenAPIType = "number"
	TypeBoolean OpenAPIType = "boolean"
	TypeObject  OpenAPIType = "object"
	TypeArray   OpenAPIType = "array"
	TypeNull    OpenAPIType = "null"
)

// OpenAPIFormat refines a type with a named format.
type OpenAPIFormat string

const (
	FormatDateTime OpenAPIFormat = "date-time"
	FormatDate     OpenAPIFormat = "date"
	FormatTime     OpenAPIFormat = "time"
	FormatDuration OpenAPIFormat = "duration"
	FormatEmail    OpenAPIFormat = "email"
	FormatIDNEmail OpenAPIFormat = "idn-email"
	FormatHostname OpenAPIFormat = "hostname"
	FormatIPv4     OpenAPIFormat = "ipv4"
	FormatIPv6     OpenAPIFormat = "ipv6"
	FormatURI      OpenAPIFormat = "uri"
	FormatURIRef   OpenAPIFormat = "uri-reference"
	FormatUUID     OpenAPIFormat = "uuid"
	FormatRegex    OpenAPIFormat = "regex"
	FormatBinary   OpenAPIFormat = "binary"
	FormatByte     OpenAPIFormat = "byte"
	FormatPassword OpenAPIFormat = "password"
	FormatInt32    OpenAPIFormat = "int32"
	FormatInt64    OpenAPIFormat = "int64"
	FormatFloat    OpenAPIFormat = "float"
	FormatDouble   OpenAPIFormat = "double"
)
