package dto

// Result is the JSON envelope every endpoint responds with.
type Result struct {
	Success  bool              `json:"success"`
	ErrorMsg string            `json:"errorMsg,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Data     interface{}       `json:"data,omitempty"`
}

// Ok returns a successful response without payload.
func Ok() Result {
	return Result{Success: true}
}

// OkWithData returns a successful response with data payload.
func OkWithData(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// Fail returns a failure response.
func Fail(msg string) Result {
	return Result{Success: false, ErrorMsg: msg}
}

// FailWithFields returns a failure response carrying per-field messages.
func FailWithFields(msg string, fields map[string]string) Result {
	return Result{Success: false, ErrorMsg: msg, Fields: fields}
}
