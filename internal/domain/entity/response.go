package entity

// APIResponse is the uniform success/failure envelope returned by the
// customer operations. It is constructed once per invocation and not
// mutated afterwards.
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	ErrorCode  string      `json:"error_code,omitempty"`
	StatusCode int         `json:"-"`
}

// ToResponse converts the envelope into a (body, status) pair for
// transport adapters that do not serialize the struct directly.
func (r *APIResponse) ToResponse() (map[string]interface{}, int) {
	body := map[string]interface{}{
		"success": r.Success,
		"message": r.Message,
	}

	if r.Data != nil {
		body["data"] = r.Data
	}

	if r.ErrorCode != "" {
		body["error_code"] = r.ErrorCode
	}

	return body, r.StatusCode
}
